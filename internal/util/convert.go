package util

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// ToString renders a database value the way it would appear in a CSV cell.
// Handles string, []byte, int64, int, float64, bool, time.Time and the
// sql.Null* wrappers. Nil and null values become the empty string.
func ToString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case []byte:
		return string(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	case time.Time:
		return n.Format(time.RFC3339)
	case sql.NullString:
		if n.Valid {
			return n.String
		}
		return ""
	case sql.NullInt64:
		if n.Valid {
			return strconv.FormatInt(n.Int64, 10)
		}
		return ""
	case sql.NullFloat64:
		if n.Valid {
			return strconv.FormatFloat(n.Float64, 'f', -1, 64)
		}
		return ""
	default:
		return fmt.Sprintf("%v", n)
	}
}
