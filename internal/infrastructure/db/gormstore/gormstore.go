// Package gormstore implements the relational persistence layer on GORM.
// SQLite backs development and tests, MySQL backs deployments; both drivers
// see the same schema through AutoMigrate.
package gormstore

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// Config captures the settings for opening the relational store.
type Config struct {
	Driver string // "sqlite" or "mysql"
	DSN    string
}

// Connect opens the database handle for the configured driver.
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("gormstore: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("gormstore: open %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// Migrate creates or updates the users and sweets tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Sweet{})
}
