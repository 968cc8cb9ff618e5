// Package sqlite implements the Larder storage gateway on an embedded
// SQLite database. The gateway owns the single connection handle for the
// process: lazily created by Open, shared by every record accessor, and
// torn down by Close.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "larder.db"

// Gateway implements types.Gateway over a single SQLite connection.
type Gateway struct {
	mu     sync.RWMutex
	config types.Config
	db     *sql.DB
}

// NewGateway creates an unopened gateway; call Open with a Config to
// initialize the connection.
func NewGateway() *Gateway {
	return &Gateway{}
}

// Open initializes the connection. Creates the data directory when
// missing. A second call while already open is a no-op.
func (g *Gateway) Open(config types.Config) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return nil
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	g.db = db
	g.config = config
	return nil
}

// Close tears down the connection and nulls the handle. Idempotent.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil
	}
	if err := g.db.Close(); err != nil {
		return err
	}
	g.db = nil
	return nil
}

// Execute runs one parameterized statement on the shared connection.
// Returns ErrNotInitialized before Open. Engine errors are propagated
// unchanged.
func (g *Gateway) Execute(sqlText string, params []any) (types.Result, error) {
	g.mu.RLock()
	db := g.db
	g.mu.RUnlock()

	if db == nil {
		return types.Result{}, types.ErrNotInitialized
	}
	return execute(db, sqlText, params)
}

// Transaction runs fn inside a scoped transaction. A nil return from fn
// commits; any error rolls back and is returned unchanged. A rollback
// failure is reported as its own error carrying the original.
func (g *Gateway) Transaction(fn func(tx types.Executor) error) error {
	g.mu.RLock()
	db := g.db
	g.mu.RUnlock()

	if db == nil {
		return types.ErrNotInitialized
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&txExecutor{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// txExecutor scopes Execute to an open transaction.
type txExecutor struct {
	tx *sql.Tx
}

func (t *txExecutor) Execute(sqlText string, params []any) (types.Result, error) {
	return execute(t.tx, sqlText, params)
}

// runner is the subset of *sql.DB and *sql.Tx the gateway needs.
type runner interface {
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// execute dispatches on the statement kind: SELECT texts produce rows,
// everything else produces inserted-id and affected-row counts.
func execute(r runner, sqlText string, params []any) (types.Result, error) {
	if isSelect(sqlText) {
		rows, err := r.Query(sqlText, params...)
		if err != nil {
			return types.Result{}, err
		}
		defer rows.Close()

		records, err := scanRecords(rows)
		if err != nil {
			return types.Result{}, err
		}
		return types.Result{Rows: records}, nil
	}

	res, err := r.Exec(sqlText, params...)
	if err != nil {
		return types.Result{}, err
	}

	// The modernc driver supports both; errors here mean "not applicable"
	// for this statement kind and leave the zero value in place.
	insertedID, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()
	return types.Result{InsertedID: insertedID, AffectedRows: affected}, nil
}

// isSelect reports whether the statement text begins with SELECT,
// ignoring case and surrounding whitespace.
func isSelect(sqlText string) bool {
	trimmed := strings.TrimSpace(sqlText)
	return len(trimmed) >= 6 && strings.EqualFold(trimmed[:6], "SELECT")
}

// scanRecords reads every row into a Record keyed by the result column
// names.
func scanRecords(rows *sql.Rows) ([]types.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	var records []types.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		rec := make(types.Record, len(cols))
		for i, col := range cols {
			rec[col] = values[i]
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []types.Record{}
	}
	return records, rows.Err()
}
