package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/carousel/internal/model"
)

const currentSchemaVersion = 2

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the migrated schema version.
func (s *SQLiteStorage) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

func (s *SQLiteStorage) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	if version < currentSchemaVersion {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS catalogs (
			name TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			scroll_lock INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS items (
			catalog TEXT NOT NULL,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL DEFAULT '',
			badge TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (catalog, id),
			FOREIGN KEY (catalog) REFERENCES catalogs(name) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_items_catalog_position ON items(catalog, position);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 adds the per-item accent colour.
func (s *SQLiteStorage) migrateV2() error {
	migration := `
		ALTER TABLE items ADD COLUMN color TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// Load reads the library from the database in stored order.
func (s *SQLiteStorage) Load() (*model.Library, error) {
	lib := model.NewLibrary()

	rows, err := s.db.Query(`
		SELECT name, title, scroll_lock
		FROM catalogs
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make(map[string]int)
	for rows.Next() {
		var rec model.CatalogRecord
		var scrollLock int
		if err := rows.Scan(&rec.Name, &rec.Title, &scrollLock); err != nil {
			return nil, err
		}
		rec.ScrollLock = scrollLock == 1
		rec.Items = []model.Item{}

		positions[rec.Name] = len(lib.Catalogs)
		lib.Catalogs = append(lib.Catalogs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(lib.Catalogs) == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, ErrNoCatalogs)
	}

	itemRows, err := s.db.Query(`
		SELECT catalog, id, title, subtitle, badge, color
		FROM items
		ORDER BY catalog, position
	`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var catalog string
		var item model.Item
		if err := itemRows.Scan(&catalog, &item.ID, &item.Title, &item.Subtitle, &item.Badge, &item.Color); err != nil {
			return nil, err
		}
		ci, ok := positions[catalog]
		if !ok {
			continue
		}
		lib.Catalogs[ci].Items = append(lib.Catalogs[ci].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return lib, nil
}

// Save replaces the stored library.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(lib *model.Library) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM catalogs"); err != nil {
		return err
	}

	catalogStmt, err := tx.Prepare(`
		INSERT INTO catalogs (name, title, scroll_lock, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer catalogStmt.Close()

	itemStmt, err := tx.Prepare(`
		INSERT INTO items (catalog, id, position, title, subtitle, badge, color)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer itemStmt.Close()

	for pos, rec := range lib.Catalogs {
		scrollLock := 0
		if rec.ScrollLock {
			scrollLock = 1
		}
		if _, err := catalogStmt.Exec(rec.Name, rec.Title, scrollLock, pos); err != nil {
			return fmt.Errorf("save catalog %q: %w", rec.Name, err)
		}

		for ipos, item := range rec.Items {
			if _, err := itemStmt.Exec(
				rec.Name, item.ID, ipos,
				item.Title, item.Subtitle, item.Badge, item.Color,
			); err != nil {
				return fmt.Errorf("save item %q in %q: %w", item.ID, rec.Name, err)
			}
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/carousel/catalogs.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "carousel", "catalogs.db"), nil
}
