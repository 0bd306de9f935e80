package cli

import (
	"errors"

	"github.com/spf13/cobra"

	pg "petcare-marketplace/internal/adapters/storage/postgres"
)

var errNoDSN = errors.New("DB_DSN is required to run migrations")

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newDeps()
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.db == nil {
				return errNoDSN
			}
			if err := pg.Migrate(cmd.Context(), rt.db); err != nil {
				return err
			}
			rt.log.Info("schema applied", nil)
			return nil
		},
	}
}
