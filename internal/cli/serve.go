package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	pg "petcare-marketplace/internal/adapters/storage/postgres"
	"petcare-marketplace/internal/router"
)

func serveCmd() *cobra.Command {
	var (
		migrate     bool
		noSweep     bool
		shutdownTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the booking expiry loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newDeps()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if migrate && rt.db != nil {
				if err := pg.Migrate(ctx, rt.db); err != nil {
					return err
				}
				rt.log.Info("schema applied", nil)
			}

			verifier, issuer, err := authFor(rt.cfg)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			app := router.NewApp(router.Options{
				AuthVerifier:  verifier,
				TokenIssuer:   issuer,
				DB:            rt.db,
				Logger:        rt.log,
				Registry:      reg,
				SweepInterval: rt.cfg.SweepInterval,
			})

			srv := &http.Server{
				Addr:         rt.cfg.Addr,
				Handler:      app.Handler,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				rt.log.Info("starting server", map[string]any{
					"addr":     rt.cfg.Addr,
					"postgres": rt.db != nil,
					"dev_auth": verifier == nil,
				})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})

			if !noSweep {
				g.Go(func() error {
					return app.Reconciler.Run(gctx)
				})
			}

			g.Go(func() error {
				<-gctx.Done()
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTTL)
				defer cancel()
				rt.log.Info("shutting down", nil)
				return srv.Shutdown(sctx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the postgres schema before serving")
	cmd.Flags().BoolVar(&noSweep, "no-sweep", false, "Disable the periodic booking expiry loop")
	cmd.Flags().DurationVar(&shutdownTTL, "shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")
	return cmd
}
