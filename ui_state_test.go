package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := loadUIConfigFrom(filepath.Join(dir, "ui.yaml"))

	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, filepath.Join(dir, "catalog.sqlite"), cfg.CatalogPath)
	assert.Equal(t, filepath.Join(dir, "selections.jsonl"), cfg.JournalPath)
	assert.Equal(t, filepath.Join(dir, "designer.log"), cfg.LogPath)
	assert.True(t, cfg.journalEnabled())
	assert.Empty(t, cfg.MetricsAddr)
}

func TestUIConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	disabled := false
	require.NoError(t, saveUIConfig(&uiConfig{
		Theme:          "dark",
		MetricsAddr:    "127.0.0.1:9464",
		JournalEnabled: &disabled,
	}, path))

	cfg := loadUIConfigFrom(path)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "127.0.0.1:9464", cfg.MetricsAddr)
	assert.False(t, cfg.journalEnabled())
}

func TestUIConfigBrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o644))

	cfg := loadUIConfigFrom(path)
	assert.Equal(t, "auto", cfg.Theme)
}

func TestUIConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GRIPGEAR_METRICS_ADDR=:9100\nGRIPGEAR_JOURNAL_ENABLED=false\n"), 0o644))
	t.Setenv("GRIPGEAR_THEME", "light")
	t.Setenv("GRIPGEAR_METRICS_ADDR", "")
	os.Unsetenv("GRIPGEAR_METRICS_ADDR")
	t.Setenv("GRIPGEAR_JOURNAL_ENABLED", "")
	os.Unsetenv("GRIPGEAR_JOURNAL_ENABLED")

	cfg := defaultUIConfig(dir)
	cfg.applyEnv(envFile)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.False(t, cfg.journalEnabled())
}

func TestResolveConfigDirHonoursEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GRIPGEAR_CONFIG_DIR", dir)
	assert.Equal(t, dir, resolveConfigDir())
}
