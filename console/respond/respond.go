// Package respond writes the console's JSON responses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// WriteJSON writes data with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteError writes a standard error body.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// WriteStoreError maps a failed dispatch to a status code. Backend
// rejections keep their status; local failures map by kind.
func WriteStoreError(w http.ResponseWriter, err error, fallback string) {
	e, ok := client.AsError(err)
	if !ok {
		if errors.Is(err, http.ErrHandlerTimeout) {
			WriteError(w, http.StatusGatewayTimeout, fallback)
			return
		}
		WriteInternalError(w, fallback)
		return
	}
	status := http.StatusBadGateway
	switch e.Kind {
	case client.KindValidation:
		status = http.StatusBadRequest
	case client.KindAuth:
		status = http.StatusUnauthorized
	case client.KindTimeout:
		status = http.StatusGatewayTimeout
	case client.KindNetwork:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			status = e.StatusCode
		}
	}
	WriteJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    status,
		Message: e.Display(fallback),
		Kind:    e.Kind.String(),
	})
}
