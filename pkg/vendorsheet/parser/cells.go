package parser

import (
	"fmt"
	"strconv"
)

// CellString renders a cell value for the export: integers without an
// exponent, floats in their shortest decimal form, nil as "".
func CellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}

// IsEmpty reports whether a cell is absent: nil or the empty string.
func IsEmpty(cell any) bool {
	if cell == nil {
		return true
	}
	s, ok := cell.(string)
	return ok && s == ""
}

// IsFalsy reports whether a cell carries no usable value: absent, numeric
// zero, or false. Row conversion drops records whose game-code cell is
// falsy.
func IsFalsy(cell any) bool {
	switch v := cell.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case int64:
		return v == 0
	case int:
		return v == 0
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}

// Numeric returns the cell as a float64 when it is already a number, so
// callers can distinguish native numeric cells from strings needing a
// parse.
func Numeric(cell any) (float64, bool) {
	switch v := cell.(type) {
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// ParseValue interprets a decoded cell string as int64, float64 or string.
// Workbook decoders use it so numeric cells survive as numbers.
func ParseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
