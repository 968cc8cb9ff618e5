package types

import "errors"

// ColumnType is a SQLite storage class.
type ColumnType string

// Storage classes accepted in column declarations.
const (
	TypeInteger ColumnType = "INTEGER"
	TypeText    ColumnType = "TEXT"
	TypeReal    ColumnType = "REAL"
	TypeBlob    ColumnType = "BLOB"
	TypeNull    ColumnType = "NULL"
)

// Column declaration errors.
var (
	ErrUnknownColumnType = errors.New("unknown column type")
)

// IsValidColumnType reports whether t is a recognized storage class.
func IsValidColumnType(t ColumnType) bool {
	switch t {
	case TypeInteger, TypeText, TypeReal, TypeBlob, TypeNull:
		return true
	}
	return false
}

// Column describes one column of a model schema. Property is the name the
// column was registered under; Name is the persisted column identifier and
// defaults to Property when no explicit name was given.
//
// Nullable is tri-state: nil leaves nullability to the engine (nullable),
// false emits NOT NULL, true is an explicit "engine default" declaration.
// Default and HasDefault travel together so that a declared DEFAULT NULL is
// distinguishable from no default at all.
type Column struct {
	Property      string
	Name          string
	Type          ColumnType
	PrimaryKey    bool
	AutoIncrement bool
	Nullable      *bool
	Unique        bool
	Default       any
	HasDefault    bool
}

// ColumnOption mutates a single aspect of a Column declaration. Options are
// applied in order by the registry; each option overwrites only the field it
// names, so repeated registrations of the same property merge rather than
// replace.
type ColumnOption func(*Column)

// WithType sets the column storage class.
func WithType(t ColumnType) ColumnOption {
	return func(c *Column) { c.Type = t }
}

// WithName overrides the persisted column name. Without it the column is
// persisted under its property name.
func WithName(name string) ColumnOption {
	return func(c *Column) { c.Name = name }
}

// PrimaryKey marks the column as the table's primary key.
func PrimaryKey(autoIncrement bool) ColumnOption {
	return func(c *Column) {
		c.PrimaryKey = true
		c.AutoIncrement = autoIncrement
	}
}

// NotNull declares the column NOT NULL.
func NotNull() ColumnOption {
	return func(c *Column) {
		v := false
		c.Nullable = &v
	}
}

// Nullable declares the column explicitly nullable, clearing an earlier
// NotNull.
func Nullable() ColumnOption {
	return func(c *Column) {
		v := true
		c.Nullable = &v
	}
}

// Unique declares a UNIQUE constraint on the column.
func Unique() ColumnOption {
	return func(c *Column) { c.Unique = true }
}

// Default declares a literal default value. A nil value declares
// DEFAULT NULL.
func Default(v any) ColumnOption {
	return func(c *Column) {
		c.Default = v
		c.HasDefault = true
	}
}
