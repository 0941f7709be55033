package model

import (
	"fmt"
	"strings"
	"time"
)

// Usuario is a usuarios row as stored. The table layout differs between
// deployments, so every column is kept in select order.
type Usuario struct {
	ID      string
	Columns []string
	Values  []any
}

// Field returns the value of the named column.
func (u Usuario) Field(column string) (any, bool) {
	for i, c := range u.Columns {
		if c == column && i < len(u.Values) {
			return u.Values[i], true
		}
	}
	return nil, false
}

// String renders the row as a tuple of its column values in table order,
// e.g. ('2a2c...', 'a@escola.com', '123456', None).
func (u Usuario) String() string {
	parts := make([]string, len(u.Values))
	for i, v := range u.Values {
		parts[i] = renderValue(v)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return quote(x)
	case []byte:
		return quote(string(x))
	case time.Time:
		return quote(x.Format(time.DateTime))
	case bool:
		if x {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(x)
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
