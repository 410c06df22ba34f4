package config

import (
	"fmt"

	"github.com/Jakeb65/WelnessTracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the sqlite store and prepares the entries schema. The
// handle is returned to the caller, which owns its lifecycle and passes
// it to the service layer; there is no package-level connection.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}

	if err := db.AutoMigrate(&models.Entry{}); err != nil {
		return nil, fmt.Errorf("migrate entries: %w", err)
	}

	if err := EnsurePhotoURIColumn(db); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsurePhotoURIColumn adds the photoUri column to an entries table
// created before photos existed. It is a no-op when the column is
// already present, so running it repeatedly is safe.
func EnsurePhotoURIColumn(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasColumn(&models.Entry{}, "photoUri") {
		return nil
	}
	if err := m.AddColumn(&models.Entry{}, "PhotoURI"); err != nil {
		return fmt.Errorf("add photoUri column: %w", err)
	}
	return nil
}

// CloseDB releases the underlying connection at shutdown.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
