package types

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// requiredMessages overrides the generic "required" text for fields whose
// wording operators already know from the login form.
var requiredMessages = map[string]string{
	"Credentials.email":    "Email ID is required!",
	"Credentials.password": "Password is required!",
}

// Validate checks v's struct tags and returns the first violation as a
// readable message, or nil.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	return &ValidationError{Field: verrs[0].Field(), Message: describe(verrs[0])}
}

// ValidationError is a single rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func describe(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 && fe.Tag() == "required" {
		if msg, ok := requiredMessages[ns[:i]+"."+fe.Field()]; ok {
			return msg
		}
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is not valid", fe.Field())
	}
}

// TrimCredentials strips surrounding whitespace from both fields.
func TrimCredentials(c Credentials) Credentials {
	return Credentials{Email: strings.TrimSpace(c.Email), Password: strings.TrimSpace(c.Password)}
}

// ValidateStatus accepts only the two plan/service status values.
func ValidateStatus(status string) error {
	return Validate(StatusPayload{Status: status})
}

// ToggleStatus flips active and inactive. Any other value becomes active.
func ToggleStatus(status string) string {
	if status == StatusActive {
		return StatusInactive
	}
	return StatusActive
}
