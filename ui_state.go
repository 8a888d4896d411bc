package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type uiConfig struct {
	Theme          string `yaml:"theme,omitempty"`
	CatalogPath    string `yaml:"catalog_path,omitempty"`
	JournalPath    string `yaml:"journal_path,omitempty"`
	JournalEnabled *bool  `yaml:"journal_enabled,omitempty"`
	MetricsAddr    string `yaml:"metrics_addr,omitempty"`
	LogPath        string `yaml:"log_path,omitempty"`
}

func loadUIConfig() (*uiConfig, string) {
	configDir := resolveConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return defaultUIConfig(configDir), filepath.Join(configDir, "ui.yaml")
	}
	path := filepath.Join(configDir, "ui.yaml")
	return loadUIConfigFrom(path), path
}

func loadUIConfigFrom(path string) *uiConfig {
	dir := filepath.Dir(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultUIConfig(dir)
	}
	var cfg uiConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultUIConfig(dir)
	}
	cfg.fillDefaults(dir)
	return &cfg
}

func defaultUIConfig(dir string) *uiConfig {
	cfg := &uiConfig{}
	cfg.fillDefaults(dir)
	return cfg
}

func (c *uiConfig) fillDefaults(dir string) {
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = markdownThemeAuto.String()
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		c.CatalogPath = filepath.Join(dir, "catalog.sqlite")
	}
	if strings.TrimSpace(c.JournalPath) == "" {
		c.JournalPath = filepath.Join(dir, "selections.jsonl")
	}
	if strings.TrimSpace(c.LogPath) == "" {
		c.LogPath = filepath.Join(dir, "designer.log")
	}
	if c.JournalEnabled == nil {
		enabled := true
		c.JournalEnabled = &enabled
	}
}

func (c *uiConfig) journalEnabled() bool {
	return c.JournalEnabled == nil || *c.JournalEnabled
}

// applyEnv loads .env (when present) and lets GRIPGEAR_* variables override
// the file values.
func (c *uiConfig) applyEnv(envFiles ...string) {
	_ = godotenv.Load(envFiles...)
	overrides := map[string]*string{
		"GRIPGEAR_THEME":        &c.Theme,
		"GRIPGEAR_CATALOG":      &c.CatalogPath,
		"GRIPGEAR_JOURNAL":      &c.JournalPath,
		"GRIPGEAR_METRICS_ADDR": &c.MetricsAddr,
		"GRIPGEAR_LOG":          &c.LogPath,
	}
	for key, target := range overrides {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			*target = value
		}
	}
	if value := strings.TrimSpace(os.Getenv("GRIPGEAR_JOURNAL_ENABLED")); value != "" {
		enabled := value != "0" && !strings.EqualFold(value, "false")
		c.JournalEnabled = &enabled
	}
}

func saveUIConfig(cfg *uiConfig, path string) error {
	if cfg == nil {
		cfg = &uiConfig{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func resolveConfigDir() string {
	if dir := strings.TrimSpace(os.Getenv("GRIPGEAR_CONFIG_DIR")); dir != "" {
		return dir
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gripgear")
}
