// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside your Go binary as a single file.
// No separate database server to install, configure, or manage. The whole service
// persists to one file next to the binary, which is exactly the deployment model
// this API is built for.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C compiler
// installed and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed, works everywhere Go works.
//
// The standard database/sql pattern applies throughout:
//  1. sql.Open(driverName, dataSourceName) → creates a pool
//  2. db.QueryContext / db.ExecContext     → runs queries
//  3. rows.Scan(&field1, &field2)          → reads results into Go variables
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	// BLANK IMPORT:
	// `_ "modernc.org/sqlite"` is a side-effect only import. The package's
	// init() registers itself with database/sql as a driver named "sqlite";
	// after that, sql.Open("sqlite", ...) knows how to talk to SQLite.
	_ "modernc.org/sqlite"
)

// timestampLayout is the stored form of created_date and modified_date:
// second resolution, no timezone suffix, always UTC. Ordering by created_date
// relies on this layout sorting lexicographically.
const timestampLayout = "2006-01-02 15:04:05"

// DB wraps a sql.DB connection pool and provides repository methods.
//
// The now field is the clock used for created_date/modified_date; production
// code uses utcNow, tests substitute a fixed clock to get deterministic
// timestamps.
type DB struct {
	conn *sql.DB
	now  func() string
}

// utcNow formats the current time the way the store expects.
func utcNow() string {
	return time.Now().UTC().Format(timestampLayout)
}

// New opens (or creates) the SQLite database at dbPath and ensures the schema
// exists before returning. Callers can rely on every table and the seed
// credential being in place once New succeeds — the HTTP listener must not
// start before this returns.
//
// dbPath examples:
//   - "news_system.db" → file-based database (persistent)
//   - ":memory:"       → in-memory database (great for tests, lost on close)
//
// sql.Open does NOT actually open a connection — it just creates a pool
// manager. Ping forces an immediate connection so a bad path or permissions
// problem surfaces here instead of on the first request.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// SQLite allows one writer at a time. Capping the pool at a single
	// connection serializes access on our side instead of surfacing
	// SQLITE_BUSY errors under concurrent requests — and it's what makes
	// ":memory:" usable at all, since every pool connection would otherwise
	// get its own empty in-memory database.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL (Write-Ahead Logging) mode:
	// Default SQLite locks the entire database during writes. WAL allows
	// concurrent reads WHILE a write is happening, which matters once the
	// HTTP listener dispatches requests concurrently. Writer mutual
	// exclusion is still the store's — this service adds no locking of its
	// own on top.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn, now: utcNow}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
//
// Wherever you call New(), arrange for Close() to run on shutdown — it
// flushes the WAL and releases the file lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate ensures both tables exist and the admin credential is seeded.
//
// CREATE TABLE IF NOT EXISTS makes table creation idempotent, and seedAdmin
// only inserts when the admins table is empty, so migrate is safe to run on
// every startup — a restart neither errors nor duplicates data.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS news (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			title         TEXT NOT NULL,
			content       TEXT NOT NULL,
			author        TEXT NOT NULL,
			created_date  TEXT NOT NULL,
			modified_date TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_news_created_date ON news(created_date);
	`)
	if err != nil {
		return fmt.Errorf("creating news table: %w", err)
	}

	// username is UNIQUE — each admin name maps to exactly one row.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS admins (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating admins table: %w", err)
	}

	if err := db.seedAdmin(); err != nil {
		return fmt.Errorf("seeding admin credential: %w", err)
	}

	return nil
}
