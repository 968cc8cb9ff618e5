// Package statement generates parameterized SQL from schema descriptors
// and query descriptors. Every function is pure: explicit inputs in, SQL
// text plus an ordered parameter list out. Nothing here touches the
// database.
package statement

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Select builds a SELECT * statement for the table. Missing WHERE, ORDER
// BY, LIMIT, and OFFSET clauses are omitted entirely; when present they
// appear in exactly that order, with LIMIT and OFFSET parameterized.
func Select(table string, q *types.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(table)

	params, err := appendTail(&sb, q)
	if err != nil {
		return "", nil, err
	}
	return sb.String(), params, nil
}

// Count builds a SELECT COUNT(*) statement sharing the WHERE algorithm
// with Select. Ordering and pagination do not apply to counts.
func Count(table string, q *types.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) AS count FROM ")
	sb.WriteString(table)

	if q != nil && len(q.Where) > 0 {
		clause, whereParams, err := whereClause(q.Where)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
		return sb.String(), whereParams, nil
	}
	return sb.String(), nil, nil
}

// Insert builds an INSERT statement from the ordered column assignments.
// At least one assignment is required.
func Insert(table string, values types.Values) (string, []any, error) {
	if len(values) == 0 {
		return "", nil, types.ErrEmptyInsert
	}

	cols := make([]string, len(values))
	placeholders := make([]string, len(values))
	params := make([]any, len(values))
	for i, a := range values {
		cols[i] = a.Column
		placeholders[i] = "?"
		params[i] = a.Value
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return sql, params, nil
}

// Update builds an UPDATE statement. SET parameters come first, WHERE
// parameters after. An empty assignment list fails with ErrEmptyUpdate
// rather than emitting invalid SQL.
func Update(table string, values types.Values, q *types.Query) (string, []any, error) {
	if len(values) == 0 {
		return "", nil, types.ErrEmptyUpdate
	}

	sets := make([]string, len(values))
	params := make([]any, 0, len(values))
	for i, a := range values {
		sets[i] = a.Column + " = ?"
		params = append(params, a.Value)
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))

	if q != nil && len(q.Where) > 0 {
		clause, whereParams, err := whereClause(q.Where)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
		params = append(params, whereParams...)
	}
	return sb.String(), params, nil
}

// Delete builds a DELETE statement with an optional WHERE clause.
func Delete(table string, q *types.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(table)

	if q != nil && len(q.Where) > 0 {
		clause, whereParams, err := whereClause(q.Where)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
		return sb.String(), whereParams, nil
	}
	return sb.String(), nil, nil
}

// CreateTable builds a CREATE TABLE IF NOT EXISTS statement with one
// definition per column, in declaration order. Constraints render in a
// fixed order: PRIMARY KEY (with AUTOINCREMENT), NOT NULL, UNIQUE,
// DEFAULT. Default literals are escaped here; everything else in the
// statement is structural.
func CreateTable(table string, columns []types.Column) (string, error) {
	if len(columns) == 0 {
		return "", types.ErrNoColumns
	}

	defs := make([]string, len(columns))
	for i, c := range columns {
		var sb strings.Builder
		sb.WriteString(c.Name)
		sb.WriteString(" ")
		sb.WriteString(string(c.Type))
		if c.PrimaryKey {
			sb.WriteString(" PRIMARY KEY")
			if c.AutoIncrement {
				sb.WriteString(" AUTOINCREMENT")
			}
		}
		if c.Nullable != nil && !*c.Nullable {
			sb.WriteString(" NOT NULL")
		}
		if c.Unique {
			sb.WriteString(" UNIQUE")
		}
		if c.HasDefault {
			sb.WriteString(" DEFAULT ")
			sb.WriteString(literal(c.Default))
		}
		defs[i] = sb.String()
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		table, strings.Join(defs, ", ")), nil
}

// DropTable builds an unconditional DROP TABLE IF EXISTS statement.
func DropTable(table string) string {
	return "DROP TABLE IF EXISTS " + table
}

// Truncate builds the statement that removes every row. SQLite has no
// TRUNCATE; an unfiltered DELETE is the equivalent.
func Truncate(table string) string {
	return "DELETE FROM " + table
}

// appendTail writes the WHERE, ORDER BY, LIMIT, and OFFSET clauses of a
// select and returns the accumulated parameters.
func appendTail(sb *strings.Builder, q *types.Query) ([]any, error) {
	if q == nil {
		return nil, nil
	}

	var params []any
	if len(q.Where) > 0 {
		clause, whereParams, err := whereClause(q.Where)
		if err != nil {
			return nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
		params = append(params, whereParams...)
	}

	if len(q.Order) > 0 {
		pairs := make([]string, len(q.Order))
		for i, o := range q.Order {
			pairs[i] = o.Column + " " + string(o.Direction)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(pairs, ", "))
	}

	if q.Limit != nil {
		sb.WriteString(" LIMIT ?")
		params = append(params, *q.Limit)
	}
	if q.Offset != nil {
		sb.WriteString(" OFFSET ?")
		params = append(params, *q.Offset)
	}
	return params, nil
}
