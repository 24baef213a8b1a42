// Package users is the credential and session-token store: it owns user
// records, creates and authenticates accounts, and issues, resolves, and
// clears opaque bearer tokens by their SHA-256 hash.
package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means a lookup by email, id, or token hash matched no row.
	// Callers match it with errors.Is; any other error from a repository is a
	// storage failure and must be treated as "storage unavailable".
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned by AuthenticateUser for an unknown
	// email and for a wrong password alike, so the return value does not
	// reveal which half of the credential pair was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository is the persistence contract for user rows.
//
// Implementations map a missing row to ErrNotFound and are safe for
// concurrent use. Each method is one short-lived unit of work; no connection
// state is held between calls.
type Repository interface {
	// Create inserts a new user row and returns the stored record.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail returns the first user with the given email, or ErrNotFound.
	// Email case-sensitivity follows the store's default collation.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns the user with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByTokenHash resolves a token digest to its user via an indexed
	// equality lookup. An empty hash never matches, even though logged-out
	// rows store an empty token column.
	GetByTokenHash(ctx context.Context, tokenHash string) (*User, error)

	// SetTokenHash replaces the user's token column (empty clears it) and
	// returns the updated row, or ErrNotFound if the id does not exist.
	SetTokenHash(ctx context.Context, id, tokenHash string) (*User, error)

	// SetPasswordHash replaces the user's password column and returns the
	// updated row, or ErrNotFound if the id does not exist.
	SetPasswordHash(ctx context.Context, id, passwordHash string) (*User, error)

	// EnsureByEmail returns the existing user with user.Email, or inserts
	// user and returns it. Lookup and insert run in one transaction where the
	// backend supports it.
	EnsureByEmail(ctx context.Context, user *User) (*User, error)
}
