// Package hashing turns plaintext passwords into storable, comparison-safe
// hashes and verifies passwords against them.
//
// Two key-derivation functions ship with the package: bcrypt (preferred) and
// a PBKDF2-HMAC-SHA256 fallback. The KDF used for new hashes is chosen once
// at startup via Select and injected into callers; verification always
// handles hashes produced by either KDF, so rows written under one algorithm
// keep verifying after a deployment switches to the other.
package hashing

import "strings"

// KDF derives a storable hash from a plaintext password and verifies a
// password against a previously produced hash.
//
// Implementations must be safe for concurrent use. Hash embeds a fresh random
// salt on every call, so hashing the same password twice yields different
// strings. Verify returns false for hashes the KDF did not produce or cannot
// parse; it never panics on malformed input.
type KDF interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
	Name() string
}

// Verify checks password against a stored hash produced by any of the
// package's KDFs, detecting the producing algorithm from the hash shape
// alone. Malformed or unrecognised hashes verify as false.
func Verify(password, encoded string) bool {
	return detect(encoded).Verify(password, encoded)
}

// detect picks the KDF that produced encoded. The fallback format is
// iterations$salt_hex$digest_hex: exactly two '$' separators and no leading
// '$'. Everything else is treated as bcrypt, whose Verify rejects anything
// it cannot parse.
func detect(encoded string) KDF {
	if strings.Count(encoded, "$") == 2 && !strings.HasPrefix(encoded, "$") {
		return NewPBKDF2KDF()
	}
	return NewBcryptKDF()
}
