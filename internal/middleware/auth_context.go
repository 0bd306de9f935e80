package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea claims.
// - Si verifier == nil => modo dev: X-Debug-User-ID (numérico) setea claims.
// - Sin claims el request sigue igual; los handlers deciden si exigen auth.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				raw := strings.TrimSpace(r.Header.Get("X-Debug-User-ID"))
				if uid, err := strconv.ParseInt(raw, 10, 64); err == nil && uid > 0 {
					ctx := context.WithValue(r.Context(), claimsKey, auth.Claims{UserID: uid})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// Expirado o inválido: sin claims, el handler responde 401.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	if !ok || c.UserID <= 0 {
		return auth.Claims{}, false
	}
	return c, true
}

// UserID devuelve el usuario autenticado o ErrUnauthorized.
func UserID(ctx context.Context) (int64, error) {
	c, ok := GetClaims(ctx)
	if !ok {
		return 0, apperr.New(apperr.ErrUnauthorized, "auth", "unauthorized")
	}
	return c.UserID, nil
}

// WithClaims es para tests y para callers internos (CLI).
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
