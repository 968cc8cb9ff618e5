// Package larder exposes the per-model record accessor. A Model resolves
// its schema through an injected registry, delegates SQL generation to the
// statement builder, and delegates execution to a storage gateway. Models
// hold no state of their own; every operation is a single request/response
// against the gateway.
package larder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/larder/internal/statement"
	"github.com/mesh-intelligence/larder/pkg/registry"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// Model is the accessor for one registered model.
type Model struct {
	name     string
	registry *registry.Registry
	gateway  types.Executor
}

// NewModel creates the accessor for the named model. The registry resolves
// the model's table and columns; the gateway executes generated SQL. The
// gateway is usually the shared connection, but a transaction scope works
// too.
func NewModel(name string, reg *registry.Registry, gw types.Executor) *Model {
	return &Model{name: name, registry: reg, gateway: gw}
}

// Name returns the model identifier.
func (m *Model) Name() string { return m.name }

// TableName resolves the persisted table name, falling back to the model
// name lower-cased when nothing was registered.
func (m *Model) TableName() string {
	return m.registry.TableName(m.name)
}

// FindAll returns the records matching the query. A nil query returns
// every row.
func (m *Model) FindAll(q *types.Query) ([]types.Record, error) {
	sqlText, params, err := statement.Select(m.TableName(), q)
	if err != nil {
		return nil, err
	}
	res, err := m.gateway.Execute(sqlText, params)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// FindOne returns the first record matching the query, or nil when no row
// matches. The query's limit is forced to 1.
func (m *Model) FindOne(q *types.Query) (types.Record, error) {
	limited := types.Query{}
	if q != nil {
		limited = *q
	}
	limited.Limit = types.Limit(1)

	rows, err := m.FindAll(&limited)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FindByPK returns the record whose primary key equals id, or nil.
func (m *Model) FindByPK(id any) (types.Record, error) {
	return m.FindOne(&types.Query{
		Where: []types.Cond{types.Eq(m.PrimaryKeyName(), id)},
	})
}

// Create inserts a record and returns the assigned values merged with the
// engine-reported identifier under the primary key column. When the
// schema declares a TEXT primary key without autoincrement and the caller
// did not supply one, a UUID v7 is generated.
func (m *Model) Create(values types.Values) (types.Record, error) {
	schema, hasSchema := m.registry.Lookup(m.name)
	if hasSchema {
		if pk, ok := schema.PrimaryKey(); ok &&
			pk.Type == types.TypeText && !pk.AutoIncrement && !values.Has(pk.Name) {
			values = append(values, types.Set(pk.Name, newUUID()))
		}
	}

	sqlText, params, err := statement.Insert(m.TableName(), values)
	if err != nil {
		return nil, err
	}
	res, err := m.gateway.Execute(sqlText, params)
	if err != nil {
		return nil, err
	}

	record := make(types.Record, len(values)+1)
	for _, a := range values {
		record[a.Column] = a.Value
	}
	pkName := m.PrimaryKeyName()
	if !values.Has(pkName) {
		record[pkName] = res.InsertedID
	}
	return record, nil
}

// Update applies the assignments to every row matching the query and
// returns the count of affected rows. An empty assignment list fails with
// ErrEmptyUpdate.
func (m *Model) Update(values types.Values, q *types.Query) (int64, error) {
	sqlText, params, err := statement.Update(m.TableName(), values, q)
	if err != nil {
		return 0, err
	}
	res, err := m.gateway.Execute(sqlText, params)
	if err != nil {
		return 0, err
	}
	return res.AffectedRows, nil
}

// Destroy deletes every row matching the query and returns the count of
// affected rows. A nil query deletes everything.
func (m *Model) Destroy(q *types.Query) (int64, error) {
	sqlText, params, err := statement.Delete(m.TableName(), q)
	if err != nil {
		return 0, err
	}
	res, err := m.gateway.Execute(sqlText, params)
	if err != nil {
		return 0, err
	}
	return res.AffectedRows, nil
}

// Count returns the number of rows matching the query, 0 when none match.
func (m *Model) Count(q *types.Query) (int64, error) {
	sqlText, params, err := statement.Count(m.TableName(), q)
	if err != nil {
		return 0, err
	}
	res, err := m.gateway.Execute(sqlText, params)
	if err != nil {
		return 0, err
	}
	if len(res.Rows) == 0 {
		return 0, nil
	}
	n, ok := toInt64(res.Rows[0]["count"])
	if !ok {
		return 0, fmt.Errorf("counting %s: unexpected count value %v", m.TableName(), res.Rows[0]["count"])
	}
	return n, nil
}

// Sync creates the model's table from its registered columns. Fails with
// ErrNoColumns when the resolved schema has no columns. Without force the
// statement is CREATE TABLE IF NOT EXISTS and existing data survives; with
// force the table is dropped and recreated first, losing existing rows.
func (m *Model) Sync(force bool) error {
	schema, ok := m.registry.Lookup(m.name)
	if !ok || len(schema.Columns) == 0 {
		return fmt.Errorf("syncing %s: %w", m.name, types.ErrNoColumns)
	}

	table := m.TableName()
	if force {
		if _, err := m.gateway.Execute(statement.DropTable(table), nil); err != nil {
			return fmt.Errorf("dropping %s: %w", table, err)
		}
	}

	sqlText, err := statement.CreateTable(table, schema.Columns)
	if err != nil {
		return err
	}
	if _, err := m.gateway.Execute(sqlText, nil); err != nil {
		return fmt.Errorf("creating %s: %w", table, err)
	}
	return nil
}

// Drop removes the model's table unconditionally.
func (m *Model) Drop() error {
	_, err := m.gateway.Execute(statement.DropTable(m.TableName()), nil)
	return err
}

// Truncate removes every row, keeping the table.
func (m *Model) Truncate() error {
	_, err := m.gateway.Execute(statement.Truncate(m.TableName()), nil)
	return err
}

// PrimaryKeyName resolves the registered primary key column name, falling
// back to "id" when the model or its primary key was never registered.
func (m *Model) PrimaryKeyName() string {
	if schema, ok := m.registry.Lookup(m.name); ok {
		if pk, ok := schema.PrimaryKey(); ok {
			return pk.Name
		}
	}
	return "id"
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// toInt64 converts the driver's numeric representations to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
