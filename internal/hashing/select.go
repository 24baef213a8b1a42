package hashing

import "golang.org/x/crypto/bcrypt"

// Select returns the strongest KDF usable in this process. The choice is made
// once, at startup; callers inject the result rather than re-deciding per
// call. Verification through the package-level Verify is unaffected by the
// selection and accepts hashes from both KDFs.
//
// The probe round-trips a throwaway password through bcrypt at minimum cost.
// If that fails, the process falls back to PBKDF2-HMAC-SHA256.
func Select() KDF {
	probe, err := bcrypt.GenerateFromPassword([]byte("probe"), bcrypt.MinCost)
	if err == nil && bcrypt.CompareHashAndPassword(probe, []byte("probe")) == nil {
		return NewBcryptKDF()
	}
	return NewPBKDF2KDF()
}
