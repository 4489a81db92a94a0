package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/maloquacious/fixturedb/internal/store"
	"github.com/ncruces/go-sqlite3/driver"    // database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"   // sqlite WASM binary
	_ "github.com/ncruces/go-sqlite3/vfs/xts" // encryption VFS
)

// SQLiteStore implements the Store interface using ncruces/go-sqlite3
// with the xts encryption VFS. The same WASM build of sqlite serves the
// downstream reader, so a fixture written here is readable there with
// the same key.
type SQLiteStore struct {
	dbPath string
	key    string
	db     *sql.DB
}

// New creates a new SQLiteStore for the fixture at dbPath, encrypted
// with key.
func New(dbPath, key string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
		key:    key,
	}
}

// Open opens the fixture read-write, creating the file if needed.
func (s *SQLiteStore) Open() error {
	return s.open(false)
}

// OpenReadOnly opens an existing fixture without write access.
func (s *SQLiteStore) OpenReadOnly() error {
	return s.open(true)
}

// open builds the connector DSN. The text key rides on the DSN as a
// connection pragma so it is applied before any statement runs.
// Foreign keys stay off: the projects table declares a reference to
// employees that the fixture intentionally does not enforce. No WAL
// either, the artifact must stay a single file.
func (s *SQLiteStore) open(readOnly bool) error {
	query := fmt.Sprintf("?vfs=xts&_pragma=textkey(%q)&_pragma=temp_store(memory)&_pragma=busy_timeout(5000)", s.key)
	if readOnly {
		query += "&mode=ro"
	}

	connector, err := (&driver.SQLite{}).OpenConnector("file:" + filepath.Clean(s.dbPath) + query)
	if err != nil {
		return fmt.Errorf("failed to create sqlite connector: %w", err)
	}

	db := sql.OpenDB(connector)
	// Single non-pooled connection; the fixture build is strictly sequential.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to open database: %w", err)
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Exec runs a DDL/DML script against the fixture.
func (s *SQLiteStore) Exec(ctx context.Context, sqlText string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if _, err := s.db.ExecContext(ctx, sqlText); err != nil {
		return fmt.Errorf("sql error: %w", err)
	}
	return nil
}

// Query runs a read-only statement and streams each row to fn as
// column-name/string-value pairs. NULL is rendered as the literal
// "NULL" so the output matches what the downstream reader prints.
func (s *SQLiteStore) Query(ctx context.Context, sqlText string, fn store.RowFunc) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx, sqlText)
	if err != nil {
		return fmt.Errorf("sql error: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read column names: %w", err)
	}

	scanned := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range scanned {
		dest[i] = &scanned[i]
	}

	// The values slice is reused between rows; callbacks that retain
	// row data must copy it.
	values := make([]string, len(columns))
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range scanned {
			if v.Valid {
				values[i] = v.String
			} else {
				values[i] = "NULL"
			}
		}
		if err := fn(columns, values); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sql error: %w", err)
	}

	return nil
}

// CheckState returns the current state of the fixture.
func (s *SQLiteStore) CheckState(ctx context.Context) (store.State, error) {
	if s.db == nil {
		return store.StateMissing, fmt.Errorf("database not opened")
	}

	exists, err := store.CheckExists(s.dbPath)
	if err != nil {
		return store.StateMissing, err
	}
	if !exists {
		return store.StateMissing, nil
	}

	// A wrong key surfaces here as a read error on the schema table.
	var count int
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('employees', 'projects')`,
	).Scan(&count)
	if err != nil {
		return store.StateUnreadable, nil
	}

	if count < 2 {
		return store.StateIncomplete, nil
	}

	return store.StateReady, nil
}
