package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// scalarString formats a stored scalar as a string.
// Integral numbers are written without a fraction so that numeric ids survive unchanged.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e18 {
			return strconv.FormatInt(int64(v), 10), true
		}

		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// coerceInt accepts JSON numbers and numeric strings.
func coerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}

		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		return ParseInt(v)
	default:
		return 0, false
	}
}

// ParseInt parses a decimal integer, ignoring surrounding whitespace.
func ParseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}

	return n, true
}

// coerceStringList accepts a JSON array and formats every entry as a string.
// Entries that are not scalars are dropped.
func coerceStringList(value any) []string {
	list := make([]string, 0)

	switch v := value.(type) {
	case []any:
		for _, entry := range v {
			if s, ok := scalarString(entry); ok {
				list = append(list, s)
			}
		}
	case []string:
		list = append(list, v...)
	}

	return list
}

func stringField(doc map[string]any, key string, fallback string) string {
	value, ok := doc[key]
	if !ok || value == nil {
		return fallback
	}

	if s, isScalar := scalarString(value); isScalar {
		return s
	}

	return fallback
}

func intField(doc map[string]any, key string, fallback int) int {
	value, ok := doc[key]
	if !ok {
		return fallback
	}

	if n, isInt := coerceInt(value); isInt {
		return n
	}

	return fallback
}
