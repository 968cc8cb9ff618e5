package types

import "errors"

// Query construction errors.
var (
	ErrEmptyOperatorSet = errors.New("operator set requires at least one operator")
)

// Direction orders a sort column ascending or descending.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order is one (column, direction) pair of an ORDER BY clause.
type Order struct {
	Column    string
	Direction Direction
}

// OrderBy constructs an Order pair.
func OrderBy(column string, dir Direction) Order {
	return Order{Column: column, Direction: dir}
}

// Query is the filter/sort/pagination descriptor passed to find, update,
// destroy, and count operations. It is constructed per call and discarded.
// A nil or zero Query matches everything.
//
// Limit and Offset are pointers so that an explicit 0 is distinguishable
// from "not set"; use the Limit and Offset helpers.
type Query struct {
	Where  []Cond
	Order  []Order
	Limit  *int
	Offset *int
}

// Limit returns a pointer suitable for Query.Limit.
func Limit(n int) *int { return &n }

// Offset returns a pointer suitable for Query.Offset.
func Offset(n int) *int { return &n }

// condKind discriminates the three condition forms. Conditions are built
// only through the Eq, Null, and Ops constructors, so the distinction
// between "literal equality" and "operator set" is structural.
type condKind int

const (
	condEq condKind = iota
	condNull
	condOps
)

// Cond is one WHERE predicate on a single column. All predicates of a
// Query combine with AND; there is no OR and no nested grouping.
type Cond struct {
	Column string
	kind   condKind
	value  any
	ops    []Op
}

// Eq matches rows whose column equals value. A nil value matches IS NULL.
func Eq(column string, value any) Cond {
	if value == nil {
		return Null(column)
	}
	return Cond{Column: column, kind: condEq, value: value}
}

// Null matches rows whose column IS NULL.
func Null(column string) Cond {
	return Cond{Column: column, kind: condNull}
}

// Ops applies an operator set to the column. The operators combine with
// AND and are rendered in the fixed order GT, GTE, LT, LTE, NE, LIKE, IN
// regardless of the order they are passed in. An empty set is rejected
// with ErrEmptyOperatorSet at statement generation time.
func Ops(column string, ops ...Op) Cond {
	return Cond{Column: column, kind: condOps, ops: ops}
}

// IsNull reports whether the condition is an IS NULL test.
func (c Cond) IsNull() bool { return c.kind == condNull }

// EqValue returns the equality literal and whether the condition is a
// plain equality test.
func (c Cond) EqValue() (any, bool) {
	return c.value, c.kind == condEq
}

// OpSet returns the operator set and whether the condition is one.
func (c Cond) OpSet() ([]Op, bool) {
	return c.ops, c.kind == condOps
}

// Operator is a comparison operator of an operator set.
type Operator string

// Recognized operators, in their fixed rendering order.
const (
	OpGT   Operator = "gt"
	OpGTE  Operator = "gte"
	OpLT   Operator = "lt"
	OpLTE  Operator = "lte"
	OpNE   Operator = "ne"
	OpLike Operator = "like"
	OpIn   Operator = "in"
)

// Op pairs an operator with its comparison value. For OpIn the value is a
// []any of literals.
type Op struct {
	Operator Operator
	Value    any
}

// GT matches column > value.
func GT(value any) Op { return Op{Operator: OpGT, Value: value} }

// GTE matches column >= value.
func GTE(value any) Op { return Op{Operator: OpGTE, Value: value} }

// LT matches column < value.
func LT(value any) Op { return Op{Operator: OpLT, Value: value} }

// LTE matches column <= value.
func LTE(value any) Op { return Op{Operator: OpLTE, Value: value} }

// NE matches column != value.
func NE(value any) Op { return Op{Operator: OpNE, Value: value} }

// Like matches column LIKE pattern.
func Like(pattern string) Op { return Op{Operator: OpLike, Value: pattern} }

// In matches column IN (values...). An empty value list is rendered as a
// vacuously false predicate, never as IN ().
func In(values ...any) Op { return Op{Operator: OpIn, Value: values} }
