package main

import (
	"path/filepath"
	"testing"

	"github.com/gripgear/designer/internal/configurator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStoreSeedsReferenceCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.sqlite")
	store, err := openCatalogStore(path)
	require.NoError(t, err)
	defer store.Close()

	catalog, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, configurator.DefaultTemplates(), catalog.Templates())
	assert.Equal(t, configurator.PresetPalette, catalog.Palette())
}

func TestCatalogStoreKeepsEditedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.sqlite")
	store, err := openCatalogStore(path)
	require.NoError(t, err)
	_, err = store.db.Exec(`DELETE FROM palette WHERE position > 1`)
	require.NoError(t, err)
	_, err = store.db.Exec(`INSERT INTO templates (id, preview_asset) VALUES (7, '/sock-7.png')`)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	catalog, err := loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 7, catalog.Len())
	assert.Equal(t, configurator.PresetPalette[:2], catalog.Palette())
}

func TestLoadCatalogFallsBack(t *testing.T) {
	catalog, err := loadCatalog("")
	assert.Error(t, err)
	assert.Equal(t, configurator.DefaultCatalog().Templates(), catalog.Templates())
}
