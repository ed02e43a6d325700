package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "userdirs",
	Short: "Resolve per-user platform directories as UTF-8 text",
	Long: `userdirs resolves the per-user config, data, and cache directories and
the platform special folders (Desktop, Documents, Downloads, ...),
converting every path from the platform's native filename encoding into
guaranteed-valid UTF-8.

Folders the platform does not define resolve to null rather than failing.
A path that cannot be converted to UTF-8 is an error; run
'userdirs doctor' to diagnose filename-encoding misconfiguration.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
