package types

import "errors"

// Gateway lifecycle errors.
var (
	ErrNotInitialized = errors.New("storage is not initialized")
)

// Record is one result row, keyed by the column names the engine returned.
type Record map[string]any

// Result reports the outcome of one executed statement. For SELECT texts
// only Rows is populated; for all other statement kinds Rows is empty and
// InsertedID/AffectedRows are populated when applicable.
type Result struct {
	Rows         []Record
	InsertedID   int64
	AffectedRows int64
}

// Executor runs one parameterized SQL statement. Both the open connection
// and a transaction scope implement it.
type Executor interface {
	// Execute runs the statement with the given bound parameters. Texts
	// beginning with SELECT (case-insensitive, surrounding whitespace
	// ignored) produce rows; everything else produces counts. Engine
	// errors are propagated unchanged.
	Execute(sqlText string, params []any) (Result, error)
}

// Gateway owns the single database connection. Exactly one handle exists
// per gateway; Open is idempotent, Close releases the handle, and every
// Execute before Open fails with ErrNotInitialized.
type Gateway interface {
	Executor

	// Open initializes the connection. A second call while connected is a
	// no-op.
	Open(config Config) error

	// Close tears down the connection. Idempotent.
	Close() error

	// Transaction runs fn inside a scoped transaction. When fn returns
	// nil the transaction commits; on any error it rolls back and the
	// original error is returned. A rollback failure is reported as a new
	// error that still carries the original.
	Transaction(fn func(tx Executor) error) error
}
