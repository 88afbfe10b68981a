package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load_SeedsDefaultCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(filepath.Join(tmpDir, "apps.json"))

	loaded := store.Load()

	assert.Equal(t, DefaultCatalog(), loaded)

	// The defaults must have been persisted
	_, err := os.Stat(store.Path())
	require.NoError(t, err)

	// And reloading parses the same structure back
	reloaded := NewStore(store.Path()).Load()
	assert.Equal(t, DefaultCatalog(), reloaded)
}

func TestStore_Load_ExistingFileWins(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "apps.json")

	custom := Catalog{
		"games": {
			{Name: "Chess", Package: "com.example.chess", Category: "games", TabletOptimized: true},
		},
	}
	require.NoError(t, NewStore(path).Save(custom))

	loaded := NewStore(path).Load()

	assert.Equal(t, custom, loaded)
	assert.NotContains(t, loaded, CategoryProductivity)
}

func TestStore_Load_CorruptFileFallsBackToDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "apps.json")

	corrupt := []byte("{not valid json")
	require.NoError(t, os.WriteFile(path, corrupt, 0644))

	loaded := NewStore(path).Load()

	assert.Equal(t, DefaultCatalog(), loaded)

	// The broken file must not be overwritten
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corrupt, data)
}

func TestStore_Save_CreatesParentDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "etc", "tablet-apps", "apps.json")

	err := NewStore(path).Save(DefaultCatalog())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_Save_StableOutput(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "apps.json")
	store := NewStore(path)

	require.NoError(t, store.Save(DefaultCatalog()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(DefaultCatalog()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
