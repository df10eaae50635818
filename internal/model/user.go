// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// Email is the natural lookup key — the store enforces a UNIQUE constraint on
// it, so two accounts can never share an address. We still generate our own
// internal string ID (xid) as the primary key: tokens and foreign keys should
// not be coupled to a mutable, human-facing attribute like an email address.
//
// WHY PasswordHash IS NEVER SERIALIZED:
// The `json:"-"` tag means encoding/json skips the field entirely. Every
// handler that returns a User gets this protection for free — there is no
// "remember to strip the password" step that someone can forget.
type User struct {
	ID           string    `json:"id"        db:"id"`
	Name         string    `json:"name"      db:"name"`
	Email        string    `json:"email"     db:"email"`
	AvatarURL    string    `json:"avatar"    db:"avatar_url"` // Gravatar URL derived from Email
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// RegisterRequest is the JSON body accepted by POST /api/users.
//
// The `validate` tags drive go-playground/validator — see internal/validation.
// Password has a 72-byte upper bound because bcrypt silently truncates longer
// inputs; better to reject loudly at the edge.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the JSON body accepted by POST /api/auth.
//
// The password here is only "required", not "min=6": length rules apply when
// a password is chosen, not when it is checked. An account whose password
// predates a policy change must still be able to log in.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the success body of both registration and login.
type TokenResponse struct {
	Token string `json:"token"`
}
