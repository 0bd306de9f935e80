package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve claims o ErrTokenExpired/ErrTokenInvalid.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens de acceso para un usuario autenticado.
type TokenIssuer interface {
	Issue(userID int64) (token string, expiresAt time.Time, err error)
}
