// Package validation checks request payloads against their struct tags.
//
// We use go-playground/validator: rules live as `validate:"..."` tags on the
// DTO structs (see internal/model), and this package translates the
// library's failures into the field-level error list the API returns.
//
// WHY TAGS AND NOT HAND-WRITTEN CHECKS?
// The rules here (required, email, min length) are exactly what the library
// already implements, tested against far more edge cases than we would cover
// ourselves — particularly email syntax. Hand-rolling `strings.Contains(s, "@")`
// is how you end up accepting "@@" and rejecting "a+b@x.com".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
// validator.Validate caches struct metadata internally, so sharing one
// instance across requests is both safe and faster than constructing one
// per call.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json tag name, not the Go field name —
		// clients sent "password", not "Password".
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// FieldError is one entry in the "errors" array of a 400 response.
// Msg is the human-readable complaint; Param names the offending field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// Check validates a struct against its `validate` tags.
//
// Returns nil when the struct passes, or the complete list of field errors
// when it doesn't — all failing fields are reported in one pass, so a client
// fixing its payload sees every problem at once rather than one per request.
func Check(s any) []FieldError {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not a field failure — e.g. Check was called with a non-struct.
		// That's a programming error, but we still surface something sane.
		return []FieldError{{Msg: "invalid request"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Msg:   message(e),
			Param: e.Field(),
		})
	}
	return fieldErrors
}

// message builds the human-readable complaint for a single failed rule.
// The wording follows the API's public contract — tests assert on these
// strings, so change them deliberately.
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		if e.Field() == "name" {
			return "Name is required"
		}
		if e.Field() == "password" {
			return "Password is required"
		}
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return "Please include a valid email"
	case "min":
		if e.Field() == "password" {
			return fmt.Sprintf("Please enter a password with %s or more characters", e.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
