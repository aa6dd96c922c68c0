// Package repo implements the data persistence layer for the recipe catalog,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and schema migrations.
//
// The handle returned by Open is constructed explicitly and injected into
// services; nothing in this package holds process-global state. Close the
// handle with Close when the process shuts down.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-recipe-backend/internal/domain"
)

// Options tunes the database handle returned by Open.
type Options struct {
	// Tracing registers the GORM OpenTelemetry plugin so every query shows
	// up as a span. Enable together with the OTel exporter.
	Tracing bool
}

// Open opens (or creates) a SQLite database and applies PRAGMAs.
//
// foreign_keys is enabled through the DSN so that every pooled connection
// enforces referential integrity, not just the one that ran the PRAGMA.
func Open(path string, opts Options) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Cuisine{},
		&domain.Category{},
		&domain.FoodType{},
		&domain.Language{},
		&domain.Recipe{},
	)
}
