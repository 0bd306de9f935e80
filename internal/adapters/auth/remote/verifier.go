package remote

import (
	"context"
	"strings"

	"petcare-marketplace/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier delegando en el IAM remoto.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrTokenInvalid
	}
	return v.client.VerifyToken(ctx, token)
}
