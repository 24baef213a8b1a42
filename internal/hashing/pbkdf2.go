package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// pbkdf2Iterations is the minimum acceptable work factor for the fallback.
	pbkdf2Iterations = 200_000
	pbkdf2SaltSize   = 16
	pbkdf2KeySize    = 32
)

// PBKDF2KDF is the fallback KDF: PBKDF2-HMAC-SHA256 with a random 16-byte
// salt, encoded as iterations$salt_hex$digest_hex. The shape (exactly two '$'
// separators, numeric first field) is distinct from bcrypt's so stored hashes
// self-identify their algorithm.
type PBKDF2KDF struct {
	iterations int
}

// NewPBKDF2KDF returns the fallback KDF at its default work factor.
func NewPBKDF2KDF() *PBKDF2KDF {
	return &PBKDF2KDF{iterations: pbkdf2Iterations}
}

func (k *PBKDF2KDF) Name() string { return "pbkdf2-sha256" }

func (k *PBKDF2KDF) Hash(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt generation error: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), salt, k.iterations, pbkdf2KeySize, sha256.New)
	return fmt.Sprintf("%d$%s$%s", k.iterations, hex.EncodeToString(salt), hex.EncodeToString(dk)), nil
}

// Verify reports whether password matches encoded. Any parse failure —
// wrong field count, non-numeric iterations, invalid hex — is a mismatch,
// never an error or panic, so a corrupted row cannot take a login path down.
func (k *PBKDF2KDF) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false
	}
	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}
	dk := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(dk, want) == 1
}
