package auth

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 20
	// MaxPasswordBytes is the largest input bcrypt accepts.
	MaxPasswordBytes = 72
)

var (
	ErrPasswordLength   = fmt.Errorf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)
	ErrPasswordTooLarge = errors.New("password must not exceed 72 bytes")
)

// ValidatePassword checks the plaintext length bounds. Characters are counted
// in UTF-16 code units, so a character outside the BMP counts twice. It must
// run before HashPassword since the bounds apply to the input, not the stored
// hash.
func ValidatePassword(password string) error {
	n := len(utf16.Encode([]rune(password)))
	if n < MinPasswordLength || n > MaxPasswordLength {
		return ErrPasswordLength
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLarge
	}
	return nil
}

// HashPassword returns a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
