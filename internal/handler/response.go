package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// WIRE CONTRACT:
// Expected failures (bad input, duplicate email, bad credentials) share one
// shape — an itemized errors array:
//
//	{"errors":[{"msg":"Please include a valid email","param":"email"}]}
//	{"errors":[{"msg":"Invalid Credentials"}]}
//
// Unexpected failures are a plain-text 500 with a fixed body. The raw error
// never reaches the client — it might contain SQL fragments or file paths —
// and is only written to the server log at the call site.
//
// HEADER ORDER MATTERS:
// Headers and status code must be set BEFORE writing the body. Once
// json.Encode calls w.Write, the headers are sent and any later changes to
// them are silently ignored.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/identity-api/internal/apperror"
	"github.com/sakif/identity-api/internal/validation"
)

// errorList is the standard failure body: one entry per problem.
type errorList struct {
	Errors []validation.FieldError `json:"errors"`
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeFieldErrors sends a 400 with the full validation error list.
func writeFieldErrors(w http.ResponseWriter, fieldErrors []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, errorList{Errors: fieldErrors})
}

// writeError maps a domain error to the appropriate HTTP status and body.
//
// ERROR MAPPING:
// The service layer returns apperror values (ErrConflict, ErrUnauthorized,
// ...) with no knowledge of HTTP. This function is the single place those
// categories become status codes:
//
//	ErrValidation   → 400   ErrConflict  → 400 (duplicate registration)
//	ErrUnauthorized → 400 (bad credentials — same code as validation, by contract)
//	ErrNotFound     → 404   anything else → 500
//
// errors.As extracts the *AppError for its message; errors.Is walks the
// wrapped chain to find the sentinel category. Both work through any number
// of fmt.Errorf("...: %w", err) layers the service added.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation),
			errors.Is(err, apperror.ErrConflict),
			errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}

		if status != http.StatusInternalServerError {
			writeJSON(w, status, errorList{
				Errors: []validation.FieldError{{Msg: appErr.Message, Param: appErr.Field}},
			})
			return
		}
	}

	// Unknown error — return a fixed 500 body, never the error itself.
	http.Error(w, "Server Error", http.StatusInternalServerError)
}
