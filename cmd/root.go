package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devshelf",
	Short: "devshelf is a personal project tracker",
	Long:  "devshelf serves a private, per-user catalog of side projects behind a small HTML frontend.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; environment variables win when both are present.
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
