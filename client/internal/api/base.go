package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	errs "github.com/Akash8377/futuresoulmate-admin/client/internal/errors"
	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

// Every function in this package takes the resty client configured by the
// public client package (base URL, bearer hook, debug dump) and returns
// either a decoded value or an *errs.Error.

// do executes one request and returns the raw body of a 2xx response.
func do(ctx context.Context, rc *resty.Client, op, method, path string, body any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Network(op, err)
	}
	req := rc.R().SetContext(ctx).SetHeader("Accept", "application/json")
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, errs.Network(op, err)
	}
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, errs.FromStatus(op, code, resp.Body())
	}
	return resp.Body(), nil
}

// decodeKeyed pulls the array stored under key out of a collection envelope.
// A missing key, or a value that is not an array, is a shape error.
func decodeKeyed[T any](op string, body []byte, key string) ([]T, error) {
	var env types.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errs.Shape(op, "response is not a JSON object", body)
	}
	raw, ok := env[key]
	if !ok {
		return nil, errs.Shape(op, fmt.Sprintf("response has no %q field", key), body)
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errs.Shape(op, fmt.Sprintf("%q is not a list", key), body)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.Shape(op, fmt.Sprintf("decode %q: %v", key, err), body)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// decodeData unwraps a {"data": entity} envelope.
func decodeData[T any](op string, body []byte) (*T, error) {
	var env types.DataEnvelope[*T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errs.Shape(op, fmt.Sprintf("decode response: %v", err), body)
	}
	if env.Data == nil {
		return nil, errs.Shape(op, "response has no data", body)
	}
	return env.Data, nil
}

// decodeRaw decodes an un-enveloped entity body.
func decodeRaw[T any](op string, body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, errs.Shape(op, fmt.Sprintf("decode response: %v", err), body)
	}
	return &v, nil
}

// requireID rejects blank path ids before they turn into "/plans/".
func requireID(op string, id types.ID) error {
	if id == "" {
		return errs.Validation(op, "id is required")
	}
	return nil
}

// validate runs the payload's struct tags.
func validate(op string, payload any) error {
	if err := types.Validate(payload); err != nil {
		return errs.Validation(op, err.Error())
	}
	return nil
}

func idPath(prefix string, id types.ID, suffix ...string) string {
	p := prefix + "/" + url.PathEscape(id.String())
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
