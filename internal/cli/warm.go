package cli

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/userdirs/internal/config"
	"github.com/GriffinCanCode/userdirs/internal/logging"
	"github.com/GriffinCanCode/userdirs/pkg/userdirs"
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Run the one-time directory warm-up and log every result",
	Long: `warm resolves every user directory once, logging each result at debug
level. Embedding applications run the equivalent hook once during startup,
after locale setup and before anything that queries these directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWarm()
	},
}

func init() {
	rootCmd.AddCommand(warmCmd)
}

func runWarm() error {
	cfg := config.LoadOrDefault()
	logger, err := logging.New(logging.Config{
		Level:       "debug",
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	acc := userdirs.New(userdirs.WithLogger(logger.Logger))
	return acc.Warm()
}
