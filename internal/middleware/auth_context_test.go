package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/ports/auth"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(context.Context, string) (auth.Claims, error) {
	return s.claims, s.err
}

func run(t *testing.T, v auth.AuthVerifier, header, value string) (int64, error) {
	t.Helper()

	var uid int64
	var uerr error
	h := AuthContext(v)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		uid, uerr = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return uid, uerr
}

func TestAuthContext_DevHeader(t *testing.T) {
	uid, err := run(t, nil, "X-Debug-User-ID", "5")
	require.NoError(t, err)
	assert.EqualValues(t, 5, uid)

	_, err = run(t, nil, "X-Debug-User-ID", "alice")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAuthContext_Bearer(t *testing.T) {
	uid, err := run(t, stubVerifier{claims: auth.Claims{UserID: 9}}, "Authorization", "Bearer abc")
	require.NoError(t, err)
	assert.EqualValues(t, 9, uid)
}

func TestAuthContext_VerifierErrorsLeaveRequestAnonymous(t *testing.T) {
	for _, verr := range []error{auth.ErrTokenExpired, auth.ErrTokenInvalid} {
		_, err := run(t, stubVerifier{err: verr}, "Authorization", "Bearer abc")
		require.ErrorIs(t, err, apperr.ErrUnauthorized)
	}

	// Con verifier configurado el header de debug se ignora.
	_, err := run(t, stubVerifier{claims: auth.Claims{UserID: 9}}, "X-Debug-User-ID", "5")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("abc"))
}
