package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gripgear/designer/internal/configurator"
	_ "modernc.org/sqlite"
)

// catalogStore keeps the template and palette catalog in SQLite. The
// reference catalog is seeded on first open.
type catalogStore struct {
	db   *sql.DB
	path string
}

func openCatalogStore(path string) (*catalogStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("catalog store: empty path")
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrateCatalogStore(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store := &catalogStore{db: db, path: path}
	if err := store.seed(configurator.DefaultTemplates(), configurator.PresetPalette); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func migrateCatalogStore(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS templates (
			id INTEGER PRIMARY KEY,
			preview_asset TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS palette (
			position INTEGER PRIMARY KEY,
			color TEXT NOT NULL
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("catalog store migration failed: %w", err)
		}
	}
	return nil
}

func (s *catalogStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// seed fills empty tables; existing rows are left alone so an edited
// catalog survives restarts.
func (s *catalogStore) seed(templates []configurator.Template, palette []configurator.Color) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count); err != nil {
		_ = tx.Rollback()
		return err
	}
	if count == 0 {
		stmt, err := tx.Prepare(`INSERT INTO templates (id, preview_asset) VALUES (?, ?)`)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		defer stmt.Close()
		for _, t := range templates {
			if _, err := stmt.Exec(t.ID, t.PreviewAsset); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("seed template %d: %w", t.ID, err)
			}
		}
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM palette`).Scan(&count); err != nil {
		_ = tx.Rollback()
		return err
	}
	if count == 0 {
		stmt, err := tx.Prepare(`INSERT INTO palette (position, color) VALUES (?, ?)`)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		defer stmt.Close()
		for i, c := range palette {
			if _, err := stmt.Exec(i, string(c)); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("seed palette %d: %w", i, err)
			}
		}
	}
	return tx.Commit()
}

func (s *catalogStore) Templates() ([]configurator.Template, error) {
	rows, err := s.db.Query(`SELECT id, preview_asset FROM templates ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []configurator.Template
	for rows.Next() {
		var t configurator.Template
		if err := rows.Scan(&t.ID, &t.PreviewAsset); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *catalogStore) Palette() ([]configurator.Color, error) {
	rows, err := s.db.Query(`SELECT color FROM palette ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var palette []configurator.Color
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		palette = append(palette, configurator.Color(strings.TrimSpace(c)))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return palette, nil
}

func (s *catalogStore) Load() (configurator.Catalog, error) {
	templates, err := s.Templates()
	if err != nil {
		return configurator.Catalog{}, fmt.Errorf("load templates: %w", err)
	}
	palette, err := s.Palette()
	if err != nil {
		return configurator.Catalog{}, fmt.Errorf("load palette: %w", err)
	}
	return configurator.NewCatalog(templates, palette)
}

// loadCatalog reads the catalog from path, falling back to the reference
// catalog when the store cannot be used.
func loadCatalog(path string) (configurator.Catalog, error) {
	store, err := openCatalogStore(path)
	if err != nil {
		return configurator.DefaultCatalog(), err
	}
	defer store.Close()
	catalog, err := store.Load()
	if err != nil {
		return configurator.DefaultCatalog(), err
	}
	return catalog, nil
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
