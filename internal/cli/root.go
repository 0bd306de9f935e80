package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jwtauth "petcare-marketplace/internal/adapters/auth/jwt"
	"petcare-marketplace/internal/adapters/auth/remote"
	pg "petcare-marketplace/internal/adapters/storage/postgres"
	"petcare-marketplace/internal/platform/config"
	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/ports/auth"
)

// Execute corre el comando raíz; sin subcomando levanta el servidor.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := serveCmd()

	root := &cobra.Command{
		Use:          "petcare",
		Short:        "Pet care marketplace API",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(sweepCmd())
	root.AddCommand(migrateCmd())
	return root
}

// deps agrupa lo que comparten los subcomandos.
type deps struct {
	cfg config.Config
	log logger.Logger
	db  *sql.DB
}

func newDeps() (*deps, error) {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	rt := &deps{cfg: cfg, log: log}
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		rt.db = db
	}
	return rt, nil
}

func (rt *deps) Close() {
	if rt.db != nil {
		_ = rt.db.Close()
	}
}

// authFor elige el verifier: IAM remoto si hay URL, nil en DEV_AUTH, si no el JWT local.
// El JWT local siempre emite los tokens de /login.
func authFor(cfg config.Config) (auth.AuthVerifier, auth.TokenIssuer, error) {
	issuer := jwtauth.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)

	switch {
	case cfg.AuthVerifyURL != "":
		c, err := remote.NewClient(remote.Config{BaseURL: cfg.AuthVerifyURL, APIKey: cfg.AuthAPIKey})
		if err != nil {
			return nil, nil, fmt.Errorf("remote auth: %w", err)
		}
		return remote.NewVerifier(c), issuer, nil
	case cfg.DevAuth:
		return nil, issuer, nil
	default:
		return issuer, issuer, nil
	}
}
