package storage_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	_ "modernc.org/sqlite"

	"github.com/nikbrunner/carousel/internal/model"
	"github.com/nikbrunner/carousel/internal/storage"
)

func openSQLite(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "catalogs.db"))
	assert.NilError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_SaveAndLoad(t *testing.T) {
	s := openSQLite(t)

	assert.NilError(t, s.Save(testLibrary()))

	loaded, err := s.Load()
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, testLibrary())
}

func TestSQLiteStorage_EmptyDatabase(t *testing.T) {
	s := openSQLite(t)

	_, err := s.Load()

	assert.ErrorIs(t, err, storage.ErrNoCatalogs)
}

func TestSQLiteStorage_SchemaVersion(t *testing.T) {
	s := openSQLite(t)

	version, err := s.SchemaVersion()

	assert.NilError(t, err)
	assert.Equal(t, version, 2)
}

func TestSQLiteStorage_SaveReplaces(t *testing.T) {
	s := openSQLite(t)
	assert.NilError(t, s.Save(testLibrary()))

	smaller := &model.Library{
		Catalogs: []model.CatalogRecord{
			{Name: "only", Items: []model.Item{{ID: "x", Title: "X"}}},
		},
	}
	assert.NilError(t, s.Save(smaller))

	loaded, err := s.Load()
	assert.NilError(t, err)
	assert.Equal(t, len(loaded.Catalogs), 1)
	assert.Equal(t, loaded.Catalogs[0].Name, "only")
	assert.Equal(t, len(loaded.Catalogs[0].Items), 1)
}

func TestSQLiteStorage_PreservesOrder(t *testing.T) {
	s := openSQLite(t)

	lib := &model.Library{
		Catalogs: []model.CatalogRecord{
			{Name: "z-last-by-name", Items: []model.Item{{ID: "3", Title: "c"}, {ID: "1", Title: "a"}, {ID: "2", Title: "b"}}},
			{Name: "a-first-by-name", Items: []model.Item{{ID: "q", Title: "q"}}},
		},
	}
	assert.NilError(t, s.Save(lib))

	loaded, err := s.Load()
	assert.NilError(t, err)

	assert.Equal(t, loaded.Catalogs[0].Name, "z-last-by-name")
	var ids []string
	for _, item := range loaded.Catalogs[0].Items {
		ids = append(ids, item.ID)
	}
	assert.DeepEqual(t, ids, []string{"3", "1", "2"})
}

func TestSQLiteStorage_TransactionRollback(t *testing.T) {
	s := openSQLite(t)
	assert.NilError(t, s.Save(testLibrary()))

	// Duplicate item IDs in one catalog violate the primary key.
	bad := &model.Library{
		Catalogs: []model.CatalogRecord{
			{Name: "bad", Items: []model.Item{{ID: "dup", Title: "a"}, {ID: "dup", Title: "b"}}},
		},
	}
	err := s.Save(bad)
	assert.ErrorContains(t, err, "dup")

	loaded, err := s.Load()
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, testLibrary())
}

func TestSQLiteStorage_MigratesV1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", path)
	assert.NilError(t, err)
	_, err = db.Exec(`
		CREATE TABLE schema_version (version INTEGER PRIMARY KEY);
		CREATE TABLE catalogs (
			name TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			scroll_lock INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);
		CREATE TABLE items (
			catalog TEXT NOT NULL,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL DEFAULT '',
			badge TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (catalog, id)
		);
		INSERT INTO schema_version (version) VALUES (1);
		INSERT INTO catalogs (name, title, scroll_lock, position) VALUES ('old', 'Old', 1, 0);
		INSERT INTO items (catalog, id, position, title) VALUES ('old', 'i1', 0, 'Legacy');
	`)
	assert.NilError(t, err)
	assert.NilError(t, db.Close())

	s, err := storage.NewSQLiteStorage(path)
	assert.NilError(t, err)
	defer s.Close()

	version, err := s.SchemaVersion()
	assert.NilError(t, err)
	assert.Equal(t, version, 2)

	loaded, err := s.Load()
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded.Catalogs[0], model.CatalogRecord{
		Name:       "old",
		Title:      "Old",
		ScrollLock: true,
		Items:      []model.Item{{ID: "i1", Title: "Legacy"}},
	})
}
