package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerCreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, InitLogger(dir))
	require.NotNil(t, Logger)
	defer Logger.Sync()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitLoggerFailsOnUnusableDir(t *testing.T) {
	// A path below a regular file cannot be created as a directory.
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := InitLogger(filepath.Join(file, "logs"))
	assert.Error(t, err)
}
