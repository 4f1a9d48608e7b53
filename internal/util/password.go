package util

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hash strength for login latency; 8 keeps a login
// under ~50ms while staying above the library minimum.
const bcryptCost = 8

// HashPassword turns a plaintext password into a bcrypt hash.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// It never reveals why a mismatch happened; callers only need yes/no.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
