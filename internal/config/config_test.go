package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	svc := NewConfigService()

	cfg := DefaultConfig("/srv/listings")
	cfg.UISettings.DarkMode = true
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/listings", loaded.CatalogDir)
	assert.True(t, loaded.UISettings.DarkMode)
	assert.True(t, loaded.UISettings.AutosaveOnExit)
	assert.Equal(t, 1, loaded.Version)
}

func TestLoadFromPath_Missing(t *testing.T) {
	svc := NewConfigService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoadFromPath_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("version = [not toml"), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	assert.Error(t, err)
}
