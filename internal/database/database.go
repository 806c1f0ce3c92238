package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"allupro/internal/models"
)

// Config selects the backing engine and how to reach it.
type Config struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// Open connects to the configured relational store and migrates the schema.
// The two engines share one code path; nothing outside this package knows
// which driver is in use.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	// TranslateError maps driver-specific constraint violations onto GORM's
	// sentinel errors so the repositories can detect duplicates uniformly.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Projeto{},
		&models.Material{},
		&models.ProjetoMaterial{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
