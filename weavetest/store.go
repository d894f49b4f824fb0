package weavetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/xregister/store/sqlite"
)

// SQLiteStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func SQLiteStore(t testing.TB) (db *sqlite.Store, path string, cleanup func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "xregister")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	path = filepath.Join(dir, "state.db")
	db, err = sqlite.Open(path)
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot open database: %s", err)
	}
	return db, path, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}
