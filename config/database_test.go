package config

import (
	"path/filepath"
	"testing"

	"github.com/Jakeb65/WelnessTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitDBCreatesSchema(t *testing.T) {
	cfg := Config{DBPath: filepath.Join(t.TempDir(), "wellness.db")}

	db, err := InitDB(cfg)
	require.NoError(t, err)
	defer CloseDB(db)

	assert.True(t, db.Migrator().HasTable(&models.Entry{}))
	assert.True(t, db.Migrator().HasColumn(&models.Entry{}, "photoUri"))

	// Second init against the same file is a no-op.
	db2, err := InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, CloseDB(db2))
}

func TestEnsurePhotoURIColumnUpgradesLegacyTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "legacy.db")), &gorm.Config{})
	require.NoError(t, err)
	defer CloseDB(db)

	// A table from before photos were added.
	require.NoError(t, db.Exec(`CREATE TABLE entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		steps INTEGER DEFAULT 0,
		stepsGoal INTEGER DEFAULT 10000,
		activity INTEGER DEFAULT 0,
		activityGoal INTEGER DEFAULT 60,
		mood TEXT DEFAULT '',
		exercises TEXT DEFAULT '[]',
		photoBrightness REAL
	)`).Error)
	require.False(t, db.Migrator().HasColumn(&models.Entry{}, "photoUri"))

	require.NoError(t, EnsurePhotoURIColumn(db))
	assert.True(t, db.Migrator().HasColumn(&models.Entry{}, "photoUri"))

	// Running it again must be a no-op, not an error.
	require.NoError(t, EnsurePhotoURIColumn(db))
}
