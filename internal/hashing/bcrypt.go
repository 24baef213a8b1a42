package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptKDF hashes passwords with bcrypt. The salt is generated per call and
// embedded in the output, so the encoded string is self-describing and fits
// in a single text column.
type BcryptKDF struct {
	cost int
}

// NewBcryptKDF returns a bcrypt KDF with the default cost.
func NewBcryptKDF() *BcryptKDF {
	return &BcryptKDF{cost: bcrypt.DefaultCost}
}

func (k *BcryptKDF) Name() string { return "bcrypt" }

func (k *BcryptKDF) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), k.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash error: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches encoded. A malformed hash is a
// mismatch, not an error.
func (k *BcryptKDF) Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
