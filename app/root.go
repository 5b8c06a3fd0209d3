// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lavacar",
	Short: "LavaCar is the backend service of the LavaCar car service ERP",
	Long: `LavaCar is the backend service of the LavaCar car service ERP.
It manages customer accounts, vehicles, breakdown reports and notifications
behind an attribute based permission model.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
