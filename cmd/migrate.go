package cmd

import (
	"freight-booking/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the quote settings schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Migrate(config.App.MigrationsPath, config.Database); err != nil {
			return err
		}
		logger.Info("Migrations applied", zap.String("path", config.App.MigrationsPath))
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.MigrateDown(config.App.MigrationsPath, config.Database); err != nil {
			return err
		}
		logger.Info("Rolled back one migration", zap.String("path", config.App.MigrationsPath))
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
