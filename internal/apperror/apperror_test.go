package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
	}{
		{"not found", NotFound("user", "abc"), ErrNotFound},
		{"validation", ValidationFailed("email", "Please include a valid email"), ErrValidation},
		{"duplicate user", DuplicateUser(), ErrConflict},
		{"invalid credentials", InvalidCredentials(), ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestAppError_SurvivesWrapping(t *testing.T) {
	// Service layers wrap with fmt.Errorf("...: %w", err); the sentinel and
	// the *AppError must both remain reachable through the chain.
	wrapped := fmt.Errorf("service/auth: creating user: %w", DuplicateUser())

	if !errors.Is(wrapped, ErrConflict) {
		t.Error("sentinel lost through wrapping")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("*AppError lost through wrapping")
	}
	if appErr.Message != "User already exists" {
		t.Errorf("Message = %q, want %q", appErr.Message, "User already exists")
	}
}

func TestInvalidCredentials_CanonicalMessage(t *testing.T) {
	// One canonical string for every failed login — and no stray whitespace,
	// which would give wrong-password responses a distinguishable body.
	err := InvalidCredentials()
	if err.Message != InvalidCredentialsMessage {
		t.Errorf("Message = %q, want %q", err.Message, InvalidCredentialsMessage)
	}
	if InvalidCredentialsMessage != "Invalid Credentials" {
		t.Errorf("canonical message changed: %q", InvalidCredentialsMessage)
	}
}
