// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection. It is an explicitly constructed
// handle with an Open/Close lifecycle; the app owns exactly one per
// database file and shares it across operations.
type DB struct {
	db     *sql.DB
	dbPath string
	closed atomic.Bool
}

// Open opens or creates a SQLite database at the given path and brings its
// schema up to the latest declared version.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &DB{db: db, dbPath: dbPath}

	if err := d.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	return d, nil
}

// dsn encodes the connection pragmas in the data source name so every
// connection the pool opens gets them. Pragmas issued over the pool with
// Exec reach only the one connection that happens to run them; foreign
// keys in particular must be on for every connection or the ON DELETE
// CASCADE clauses silently stop firing.
func dsn(dbPath string) string {
	return "file:" + dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitrack")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "fitrack.db")
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection. Operations issued afterwards fail
// with ErrClosed.
func (d *DB) Close() error {
	d.closed.Store(true)
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// ready gates every operation so a closed handle surfaces as ErrClosed
// rather than an opaque driver error.
func (d *DB) ready() error {
	if d.closed.Load() {
		return ErrClosed
	}
	return nil
}
