package store

import "context"

// State represents the condition of a fixture file on disk.
type State int

const (
	StateMissing    State = iota // File doesn't exist
	StateUnreadable              // File exists but doesn't decrypt with this key
	StateIncomplete              // File decrypts but the fixture schema is missing
	StateReady                   // Schema present and readable
)

// RowFunc receives one result row: the column names and the values
// rendered as strings, with SQL NULL rendered as the literal "NULL".
// Returning an error stops the query.
type RowFunc func(columns []string, values []string) error

// Store defines the fixture datastore contract.
type Store interface {
	// Open opens (creating if necessary) the datastore read-write,
	// applying the encryption key before any statement runs
	Open() error

	// OpenReadOnly opens an existing datastore without write access
	OpenReadOnly() error

	// Close closes the datastore connection
	Close() error

	// Exec runs a DDL/DML script and returns the engine error, if any
	Exec(ctx context.Context, sql string) error

	// Query runs a read-only statement and streams each row to fn
	Query(ctx context.Context, sql string, fn RowFunc) error

	// CheckState classifies the datastore's current condition
	CheckState(ctx context.Context) (State, error)
}
