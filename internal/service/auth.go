// Package service — authentication business logic.
//
// AuthService is the business logic layer for authentication. It sits between
// the HTTP handlers and the repository/auth utilities:
//
//	AuthHandler (HTTP) → AuthService (business rules) → UserRepository (DB)
//	                   ↘ TokenService (JWT), PasswordService (bcrypt)
//
// KEY RESPONSIBILITIES:
//   - Orchestrate registration: uniqueness check, avatar derivation, hashing,
//     persistence, token issuance
//   - Orchestrate login: lookup, password verification, token issuance
//   - Encapsulate all auth rules in one place, away from HTTP concerns
//   - Be easily testable with fake dependencies
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/identity-api/internal/apperror"
	"github.com/sakif/identity-api/internal/auth"
	"github.com/sakif/identity-api/internal/gravatar"
	"github.com/sakif/identity-api/internal/model"
	"github.com/sakif/identity-api/internal/repository"
)

// AuthService handles the authentication business logic.
//
// DEPENDENCIES (injected via NewAuthService):
//   - users      repository.UserRepository  → read/write user records
//   - tokens     *auth.TokenService         → generate/validate JWTs
//   - passwords  *auth.PasswordService      → bcrypt hashing
//   - logger     *slog.Logger               → structured logging
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
// Call this in server.go when wiring the dependency graph.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult is returned by Register and Login.
// It bundles the user record and the issued JWT together so the caller
// (the HTTP handler) can build the whole response in one step.
type AuthResult struct {
	User  *model.User
	Token string
}

// Register creates a new account and issues its first access token.
//
// The request is assumed to be shape-valid already (the handler runs
// validation before calling in); what happens here are the business rules:
//
//  1. Reject the email if an account already has it. This check is a fast
//     path only — the store's UNIQUE constraint settles the race between two
//     concurrent registrations, and its violation surfaces as the same error.
//  2. Derive the Gravatar URL from the email (pure computation, no network).
//  3. Hash the password. The plaintext is never stored or logged.
//  4. Persist, then issue a token for the new user's ID.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*AuthResult, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperror.DuplicateUser()
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("service/auth: checking existing email: %w", err)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		AvatarURL:    gravatar.URL(req.Email, gravatar.DefaultOptions()),
		PasswordHash: hash,
	}

	// Create fills in ID and timestamps. A lost uniqueness race comes back
	// from here as the duplicate-user error — pass it through untouched.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("service/auth: creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues an access token.
//
// USER ENUMERATION DEFENCE:
// An unknown email and a wrong password return the IDENTICAL error value.
// If the two cases differed — in message, status, or even consistently in
// timing — an attacker could probe which addresses have accounts. The
// distinction exists only in the server-side log line.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.logger.Info("login failed: unknown email", slog.String("email", req.Email))
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("service/auth: looking up email: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, req.Password); err != nil {
		s.logger.Info("login failed: wrong password", slog.String("userID", user.ID))
		return nil, apperror.InvalidCredentials()
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// GetUserByID returns the user for the given internal ID.
//
// Used by the protected GET /api/auth handler to look up the full record
// after the middleware validates the JWT and extracts the userID from the
// token's claims.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, fmt.Errorf("service/auth: user ID must not be empty")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service/auth: fetching user %s: %w", id, err)
	}

	return user, nil
}
