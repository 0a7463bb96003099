package cmd

import (
	"log"

	"github.com/devshelf/devshelf/db"
	"github.com/devshelf/devshelf/internal/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create any missing database tables and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		handle, err := db.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			_ = db.Close(handle)
		}()

		if err := db.Migrate(handle); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Println("Migration complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
