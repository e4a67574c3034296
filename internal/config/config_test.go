package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.History.WindowDays = 30
	cfg.Git.AutoCommit = false
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "portfolio.json", loaded.Data.File)
	assert.Equal(t, 30, loaded.History.WindowDays)
	assert.False(t, loaded.Git.AutoCommit)
}

func TestLoad_DefaultsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("git:\n  auto_commit: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "portfolio.json", cfg.Data.File)
	assert.Equal(t, 90, cfg.History.WindowDays)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("data: [not a mapping"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
