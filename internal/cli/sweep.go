package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"petcare-marketplace/internal/router"
)

type sweepOutput struct {
	RunID   string    `json:"run_id"`
	Scanned int       `json:"scanned"`
	Expired int       `json:"expired"`
	Skipped int       `json:"skipped"`
	RanAt   time.Time `json:"ran_at"`
}

func sweepCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a single booking expiry sweep and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "pretty" {
				return fmt.Errorf("invalid --format %q (expected json or pretty)", format)
			}

			rt, err := newDeps()
			if err != nil {
				return err
			}
			defer rt.Close()

			app := router.NewApp(router.Options{
				DB:            rt.db,
				Logger:        rt.log,
				Registry:      prometheus.NewRegistry(),
				SweepInterval: rt.cfg.SweepInterval,
			})

			res, err := app.Reconciler.RunOnce(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "pretty" {
				fmt.Fprintf(out, "run %s: scanned=%d expired=%d skipped=%d\n", res.RunID, res.Scanned, res.Expired, res.Skipped)
				return nil
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sweepOutput{
				RunID:   res.RunID,
				Scanned: res.Scanned,
				Expired: res.Expired,
				Skipped: res.Skipped,
				RanAt:   res.At,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json|pretty")
	return cmd
}
