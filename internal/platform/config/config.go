package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr          = ":8080"
	DefaultTokenTTL      = 60 * time.Minute
	DefaultSweepInterval = 300 * time.Second
	DefaultJWTIssuer     = "petcare-marketplace"

	// Solo para desarrollo; en producción se sobreescribe con JWT_SIGNING_KEY.
	devSigningKey = "dev-secret-key-change-in-production"
)

type Config struct {
	Addr string

	// DBDSN vacío => repos in-memory.
	DBDSN string

	JWTSigningKey string
	JWTIssuer     string
	TokenTTL      time.Duration

	// Si AuthVerifyURL viene, los tokens se verifican contra el IAM remoto.
	AuthVerifyURL string
	AuthAPIKey    string

	// DevAuth habilita X-Debug-User-ID cuando no hay verifier.
	DevAuth bool

	SweepInterval time.Duration

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env (si existe) y luego el entorno.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	addr := strings.TrimSpace(os.Getenv("ADDR"))
	if addr == "" {
		addr = DefaultAddr
		if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
			addr = ":" + v
		}
	}

	key := os.Getenv("JWT_SIGNING_KEY")
	if key == "" {
		key = devSigningKey
	}

	issuer := strings.TrimSpace(os.Getenv("JWT_ISSUER"))
	if issuer == "" {
		issuer = DefaultJWTIssuer
	}

	appName := strings.TrimSpace(os.Getenv("APP_NAME"))
	if appName == "" {
		appName = "petcare-marketplace"
	}

	return Config{
		Addr:          addr,
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSigningKey: key,
		JWTIssuer:     issuer,
		TokenTTL:      durationEnv("TOKEN_TTL", DefaultTokenTTL),
		AuthVerifyURL: strings.TrimSpace(os.Getenv("AUTH_VERIFY_URL")),
		AuthAPIKey:    strings.TrimSpace(os.Getenv("AUTH_API_KEY")),
		DevAuth:       boolEnv("DEV_AUTH"),
		SweepInterval: durationEnv("SWEEP_INTERVAL", DefaultSweepInterval),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		AppName:       appName,
	}
}

// durationEnv acepta "90s"/"5m" o segundos enteros; inválido o <= 0 => default.
func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}
