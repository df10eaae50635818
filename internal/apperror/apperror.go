package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// InvalidCredentialsMessage is the single canonical message for every failed
// login, whether the email is unknown or the password is wrong. Using one
// constant (rather than two near-identical strings) prevents the responses
// from ever diverging, which would let a caller probe which emails exist.
const InvalidCredentialsMessage = "Invalid Credentials"

type AppError struct {
	Err     error  // sentinel category
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// DuplicateUser is returned when a registration targets an email that is
// already taken. Mapped to 400 (not 409) to match the public API contract.
func DuplicateUser() *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: "User already exists",
	}
}

// InvalidCredentials is returned on any failed login attempt.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: InvalidCredentialsMessage,
	}
}
