package repository

import (
	"context"

	"github.com/sakif/identity-api/internal/model"
)

// UserRepository is the credential store boundary.
//
// Create must fail with apperror.ErrConflict when the email is already taken
// — the database's UNIQUE constraint is the real uniqueness guarantee; the
// service's pre-check is only there to give a friendlier fast path.
//
// GetByEmail and GetByID fail with apperror.ErrNotFound for unknown keys.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
