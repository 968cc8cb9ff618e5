package types

import "errors"

// Mutation errors.
var (
	ErrEmptyInsert = errors.New("insert requires at least one column")
	ErrEmptyUpdate = errors.New("update requires at least one column")
)

// Assign is one column assignment of an insert or update. A nil Value
// binds SQL NULL; a column that should keep its current value is simply
// not assigned at all, so "set to null" and "not present" never collide.
type Assign struct {
	Column string
	Value  any
}

// Set constructs a column assignment.
func Set(column string, value any) Assign {
	return Assign{Column: column, Value: value}
}

// Values is an ordered list of column assignments. Order is preserved in
// generated SQL text and parameter lists.
type Values []Assign

// Columns returns the assigned column names in order.
func (v Values) Columns() []string {
	cols := make([]string, len(v))
	for i, a := range v {
		cols[i] = a.Column
	}
	return cols
}

// Has reports whether the column is assigned.
func (v Values) Has(column string) bool {
	for _, a := range v {
		if a.Column == column {
			return true
		}
	}
	return false
}

// Get returns the assigned value for the column.
func (v Values) Get(column string) (any, bool) {
	for _, a := range v {
		if a.Column == column {
			return a.Value, true
		}
	}
	return nil, false
}
