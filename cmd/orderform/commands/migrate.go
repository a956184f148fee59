package commands

import (
	"github.com/spf13/cobra"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL session store migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := postgres.Connect(ctx, &cfg.Database, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := postgres.Migrate(ctx, db)
			if err != nil {
				return err
			}
			logger.Info("migrations complete", "applied", applied)
			return nil
		},
	}
}
