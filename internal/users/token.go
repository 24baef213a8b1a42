package users

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// DefaultTokenLength is the number of random bytes in a generated bearer
// token. 32 bytes encode to a 43-character URL-safe string.
const DefaultTokenLength = 32

// GenerateToken returns a cryptographically random URL-safe string built
// from n random bytes. Tokens are never derived from user data and never
// reused.
func GenerateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token entropy error: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken returns the SHA-256 hex digest of a raw bearer token. Only this
// digest is ever persisted; a leaked database does not reveal live tokens.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
