package cmd

import (
	"log"

	"github.com/devshelf/devshelf/db"
	"github.com/devshelf/devshelf/internal/config"
	"github.com/devshelf/devshelf/internal/router"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the devshelf HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		handle, err := db.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			if err := db.Close(handle); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}()

		if err := db.Migrate(handle); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		r := router.New(cfg, handle)

		log.Printf("Listening on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
