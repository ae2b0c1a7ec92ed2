package helper

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes with bcrypt (per-password salt baked into the hash).
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash delegates the constant-time comparison to bcrypt.
func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
