package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "PORT", "DB_DSN", "JWT_SIGNING_KEY", "JWT_ISSUER", "TOKEN_TTL", "AUTH_VERIFY_URL", "DEV_AUTH", "SWEEP_INTERVAL", "APP_NAME"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, devSigningKey, cfg.JWTSigningKey)
	assert.Equal(t, DefaultJWTIssuer, cfg.JWTIssuer)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	assert.Equal(t, 300*time.Second, cfg.SweepInterval)
	assert.False(t, cfg.DevAuth)
	assert.Equal(t, "petcare-marketplace", cfg.AppName)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/petcare")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("SWEEP_INTERVAL", "30")
	t.Setenv("DEV_AUTH", "true")
	t.Setenv("AUTH_VERIFY_URL", " https://iam.local ")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/petcare", cfg.DBDSN)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.True(t, cfg.DevAuth)
	assert.Equal(t, "https://iam.local", cfg.AuthVerifyURL)
}

func TestFromEnv_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "-5s")
	t.Setenv("TOKEN_TTL", "soon")

	cfg := FromEnv()

	assert.Equal(t, DefaultSweepInterval, cfg.SweepInterval)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
}
