package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted, one-way bcrypt hash from a plaintext
// password. The salt is generated by bcrypt itself and embedded in the
// returned hash, so no extra storage is needed.
//
// The default bcrypt cost is used; raising it is a deployment decision,
// not a code change.
//
// Returns the hash in bcrypt's standard encoded form, or an error if the
// password exceeds bcrypt's 72-byte limit.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt hash.
// Comparison is constant-time inside bcrypt; any error (including a
// malformed hash) is reported as a non-match.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
