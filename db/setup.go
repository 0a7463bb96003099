package db

import (
	"os"
	"path/filepath"

	"github.com/devshelf/devshelf/internal/config"
	"github.com/devshelf/devshelf/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the relational store: postgres when DATABASE_URL is configured,
// an embedded sqlite file otherwise. The returned handle is passed explicitly to
// repositories; there is no package-level singleton.
func Connect(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

// Migrate creates any missing tables for the registered models.
func Migrate(handle *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Project{},
	}

	migrator := handle.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := handle.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(handle *gorm.DB) error {
	sqlDB, err := handle.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
