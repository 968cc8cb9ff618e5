package statement

import (
	"fmt"
	"strings"
)

// literal renders a default value as a SQL literal. Strings are
// single-quoted with embedded quotes doubled; numbers and booleans render
// as their textual form; nil renders as the NULL keyword. Unrecognized
// types fall back to their quoted string form.
func literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", val)
	default:
		return quote(fmt.Sprintf("%v", val))
	}
}

// quote single-quotes a string, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
