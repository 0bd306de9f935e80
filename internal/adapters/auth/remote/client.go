package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petcare-marketplace/internal/platform/httpclient"
	"petcare-marketplace/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("remote auth not configured")
	ErrUpstream      = errors.New("remote auth upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Config del IAM remoto. BaseURL y APIKey vienen de AUTH_VERIFY_URL / AUTH_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Header de la API key; vacío => "X-Api-Key".
	APIKeyHeader string

	Timeout   time.Duration
	Transport http.RoundTripper
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return nil, ErrNotConfigured
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   timeout,
		Headers:   map[string]string{h: key},
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// VerifyToken llama al IAM y traduce 401/403 a los errores del port.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	var out verifyResponse
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath,
		map[string]string{"Authorization": "Bearer " + token},
		verifyRequest{Token: token}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			switch he.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				if strings.Contains(strings.ToLower(he.Body), "expired") {
					return auth.Claims{}, auth.ErrTokenExpired
				}
				return auth.Claims{}, auth.ErrTokenInvalid
			default:
				return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, he.StatusCode)
			}
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if out.UserID <= 0 {
		return auth.Claims{}, auth.ErrTokenInvalid
	}
	return auth.Claims{UserID: out.UserID, ExpiresAt: out.ExpiresAt}, nil
}
