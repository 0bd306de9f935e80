package auth

import (
	"errors"
	"time"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims es la identidad extraída de un token verificado.
// UserID es siempre el id numérico del usuario (claim "uid").
type Claims struct {
	UserID    int64
	ExpiresAt time.Time
}
