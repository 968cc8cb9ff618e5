package statement

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// operatorSQL maps each operator to its SQL comparison.
var operatorSQL = map[types.Operator]string{
	types.OpGT:   ">",
	types.OpGTE:  ">=",
	types.OpLT:   "<",
	types.OpLTE:  "<=",
	types.OpNE:   "!=",
	types.OpLike: "LIKE",
}

// operatorOrder fixes the rendering order of operator sets. An operator
// set renders its present operators in this order regardless of how the
// caller listed them, so the generated text is deterministic.
var operatorOrder = []types.Operator{
	types.OpGT, types.OpGTE, types.OpLT, types.OpLTE,
	types.OpNE, types.OpLike, types.OpIn,
}

// whereClause renders the predicates of a query, joined with AND, and
// returns the clause text (without the WHERE keyword) plus its bound
// parameters in rendering order.
func whereClause(conds []types.Cond) (string, []any, error) {
	fragments := make([]string, 0, len(conds))
	var params []any

	for _, c := range conds {
		if c.IsNull() {
			fragments = append(fragments, c.Column+" IS NULL")
			continue
		}
		if v, ok := c.EqValue(); ok {
			fragments = append(fragments, c.Column+" = ?")
			params = append(params, v)
			continue
		}
		ops, _ := c.OpSet()
		if len(ops) == 0 {
			return "", nil, fmt.Errorf("column %s: %w", c.Column, types.ErrEmptyOperatorSet)
		}
		frag, opParams, err := operatorFragments(c.Column, ops)
		if err != nil {
			return "", nil, err
		}
		fragments = append(fragments, frag...)
		params = append(params, opParams...)
	}

	return strings.Join(fragments, " AND "), params, nil
}

// operatorFragments expands an operator set into one SQL fragment per
// present operator, in the fixed operator order.
func operatorFragments(column string, ops []types.Op) ([]string, []any, error) {
	var fragments []string
	var params []any

	for _, want := range operatorOrder {
		for _, op := range ops {
			if op.Operator != want {
				continue
			}
			if op.Operator == types.OpIn {
				frag, inParams, err := inFragment(column, op.Value)
				if err != nil {
					return nil, nil, err
				}
				fragments = append(fragments, frag)
				params = append(params, inParams...)
				continue
			}
			cmp, ok := operatorSQL[op.Operator]
			if !ok {
				return nil, nil, fmt.Errorf("unsupported operator %q on column %s", op.Operator, column)
			}
			fragments = append(fragments, column+" "+cmp+" ?")
			params = append(params, op.Value)
		}
	}
	return fragments, params, nil
}

// inFragment expands an IN operator into one placeholder per element. An
// empty list renders the vacuously false predicate 1 = 0 instead of the
// malformed IN ().
func inFragment(column string, value any) (string, []any, error) {
	list, ok := value.([]any)
	if !ok {
		return "", nil, fmt.Errorf("in operator on column %s requires a value list, got %T", column, value)
	}
	if len(list) == 0 {
		return "1 = 0", nil, nil
	}

	placeholders := make([]string, len(list))
	for i := range list {
		placeholders[i] = "?"
	}
	return column + " IN (" + strings.Join(placeholders, ", ") + ")", list, nil
}
