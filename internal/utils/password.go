package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypts a plaintext secret. Fails only on environment-level
// errors, never on input shape.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePasswordAndHash reports whether password matches the stored hash.
// A mismatch is (false, nil); only corrupt hashes produce an error.
func ComparePasswordAndHash(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
