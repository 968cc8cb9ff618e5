package types

import "errors"

// Schema describes a registered model: its persisted table name and its
// columns in registration order. Column order is significant; it fixes the
// column order of generated CREATE TABLE statements.
type Schema struct {
	TableName string
	Columns   []Column
}

// Schema resolution errors.
var (
	ErrNoColumns = errors.New("no columns defined")
)

// Column returns the column registered under the given property name.
func (s *Schema) Column(property string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Property == property {
			return c, true
		}
	}
	return Column{}, false
}

// PrimaryKey returns the schema's primary key column, if one is declared.
func (s *Schema) PrimaryKey() (Column, bool) {
	for _, c := range s.Columns {
		if c.PrimaryKey {
			return c, true
		}
	}
	return Column{}, false
}
