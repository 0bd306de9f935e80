package jwt

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"petcare-marketplace/internal/ports/auth"
)

// Claims del access token. UID es la única identidad que se lee al verificar;
// Subject lleva el mismo id en texto para clientes que solo miran "sub".
type Claims struct {
	UID int64 `json:"uid"`
	gojwt.RegisteredClaims
}

// Service emite y verifica tokens HS256. Implementa auth.TokenIssuer y auth.AuthVerifier.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

func NewService(signingKey, issuer string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Service) Issue(userID int64) (string, time.Time, error) {
	if userID <= 0 {
		return "", time.Time{}, errors.New("jwt: user id must be positive")
	}

	now := s.now()
	exp := now.Add(s.ttl)
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		UID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	})

	signed, err := tok.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *Service) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrTokenInvalid
	}

	parsed, err := gojwt.ParseWithClaims(token, &Claims{}, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, gojwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		gojwt.WithIssuer(s.issuer),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return auth.Claims{}, auth.ErrTokenExpired
		}
		return auth.Claims{}, auth.ErrTokenInvalid
	}

	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || c.UID <= 0 {
		return auth.Claims{}, auth.ErrTokenInvalid
	}

	out := auth.Claims{UserID: c.UID}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}
