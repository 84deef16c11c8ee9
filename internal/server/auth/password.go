package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted, work-factor-tuned verifier from a raw
// password. The salt is generated and embedded by bcrypt itself, so equal
// passwords produce different verifiers. Password policy (e.g. rejecting
// empty passwords) is the caller's responsibility.
func HashPassword(raw string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(raw), cost)
}

// CheckPassword reports whether raw matches the stored verifier. The
// comparison inside bcrypt does not leak the mismatch position through
// timing. A mismatch is a false return, never an error.
func CheckPassword(raw string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(raw)) == nil
}
