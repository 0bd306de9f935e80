package jwt

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-marketplace/internal/ports/auth"
)

func newTestService() *Service {
	return NewService("test-signing-key", "test-issuer", time.Hour)
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService()

	token, exp, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.Issue(7)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(context.Background(), token)
	require.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestVerify_Invalid(t *testing.T) {
	svc := newTestService()

	_, err := svc.Verify(context.Background(), "not-a-token")
	require.ErrorIs(t, err, auth.ErrTokenInvalid)

	_, err = svc.Verify(context.Background(), "")
	require.ErrorIs(t, err, auth.ErrTokenInvalid)

	other := NewService("other-key", "test-issuer", time.Hour)
	token, _, err := other.Issue(7)
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), token)
	require.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestVerify_RejectsMissingUID(t *testing.T) {
	svc := newTestService()

	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "test-issuer",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), signed)
	require.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestIssue_RejectsNonPositiveUser(t *testing.T) {
	_, _, err := newTestService().Issue(0)
	require.Error(t, err)
}
