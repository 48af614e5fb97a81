package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/carousel/internal/model"
)

// ErrNoCatalogs is returned by Load when the backend holds no catalogs yet.
var ErrNoCatalogs = errors.New("no catalogs stored")

// Storage defines the interface for persisting the catalog library.
// Selection state is never stored.
type Storage interface {
	Load() (*model.Library, error)
	Save(lib *model.Library) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the library from the JSON file.
// A missing file or an empty catalog list yields ErrNoCatalogs.
func (s *JSONStorage) Load() (*model.Library, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, ErrNoCatalogs)
		}
		return nil, err
	}

	var lib model.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	if len(lib.Catalogs) == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, ErrNoCatalogs)
	}
	lib.EnsureIDs()

	return &lib, nil
}

// Save writes the library to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(lib *model.Library) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// LoadLibrary loads from s and falls back to the built-in demo library when
// nothing is stored. The second return value reports the fallback.
func LoadLibrary(s Storage) (*model.Library, bool, error) {
	lib, err := s.Load()
	if errors.Is(err, ErrNoCatalogs) {
		return model.DefaultLibrary(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return lib, false, nil
}

// DefaultLibraryPath returns the default library path: ~/.config/carousel/catalogs.json
func DefaultLibraryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "carousel", "catalogs.json"), nil
}

// OpenStorage opens the storage backend for path.
// An empty path prefers the default SQLite database if it exists, otherwise
// the default JSON file. Explicit paths ending in .db or .sqlite use SQLite.
func OpenStorage(path string) (Storage, error) {
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite":
			return NewSQLiteStorage(path)
		default:
			return NewJSONStorage(path), nil
		}
	}

	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultLibraryPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
