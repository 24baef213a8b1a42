package users

import "time"

// User is one account row.
//
// PasswordHash and TokenHash hold opaque digests only: the plaintext password
// and the raw bearer token are never stored. TokenHash is the SHA-256 hex
// digest of the currently active raw token, or empty when no session is
// active — at most one live session per user.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	TokenHash    string

	// TokenExpiresAt is carried in the schema but not consulted by any
	// lookup. Enforcing expiry is a pending product decision.
	TokenExpiresAt *time.Time
}
