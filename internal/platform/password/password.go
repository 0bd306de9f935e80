package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"petcare-marketplace/internal/platform/apperr"
)

// Hash genera un hash bcrypt para guardar en users/caregivers.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", apperr.New(apperr.ErrInvalidArgument, "password.hash", "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.New(apperr.ErrInvalidArgument, "password.hash", "password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify devuelve ErrUnauthorized si no coincide.
func Verify(plain, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperr.New(apperr.ErrUnauthorized, "password.verify", "invalid credentials")
		}
		return fmt.Errorf("could not verify password: %w", err)
	}
	return nil
}
