package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "orderform",
		Short:         "Buying Catalogue order form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				slog.Error("failed to load configuration", "error", err)
				return err
			}
			cfg = loaded
			logger = cfg.Logger.NewLogger()
			slog.SetDefault(logger)
			return nil
		},
	}

	root.AddCommand(serveCmd(), migrateCmd())
	if err := root.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", "error", err)
		}
		return err
	}
	return nil
}
