package domain

import (
	"math"
	"strconv"
	"strings"
)

// Cell is a single spreadsheet cell value as produced by the decoder:
// a string, a float64, or nil for an empty cell.
type Cell = interface{}

// Record maps canonical field names to cell values for one spreadsheet row.
// A field that was absent in the source row is simply not present in the map;
// consumers treat absent and nil the same way ("missing").
type Record map[string]Cell

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the stringified value of the field, or ok=false when the
// field is absent or nil.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	return CellString(v), true
}

// StringOr returns the stringified value of the field, or the empty string
// when the field is absent or nil.
func (r Record) StringOr(key string) string {
	s, _ := r.String(key)
	return s
}

// Number coerces the field to a float64 the way the review spreadsheets
// expect: absent, nil and empty string become 0, numeric strings parse, and
// anything else yields NaN so callers can exclude it from averages.
func (r Record) Number(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// CellString renders a cell value for categorical grouping. Numbers render
// without an exponent or trailing zeros so that 42.0 and "42" land in the
// same category.
func CellString(v Cell) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
