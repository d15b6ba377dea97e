package cmd

import (
	"fmt"
	"log"

	"freight-booking/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	config *utils.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "freight-booking",
	Short: "Booking wizard backend for the customer portal",
	Long: `freight-booking drives the three-step booking wizard of the customer
portal and forwards confirmed bookings to the logistics backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err = utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
		if err != nil {
			log.Printf("Failed to init logger: %v. Using production logger.", err)
			logger, _ = zap.NewProduction()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(estimateCmd)
}

// Execute runs the CLI. With no subcommand it prints help.
func Execute() error {
	return rootCmd.Execute()
}
