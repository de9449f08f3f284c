// Package model holds the V8 schema rows the service reads and writes,
// the service-owned audit row and the request/response shapes of the API.
//
// V8 tables and columns are PascalCase, so every row declares its table
// name and column tags. JSON keys follow the casing clients already use
// ("iD", "loanID", "depositTypeID").
package model

import (
	"strconv"
	"strings"
)

// Row is an opaque stored function result, column name to value.
type Row = map[string]any

// ParseID parses a path or body id. ok is false when the value is not an
// unsigned decimal integer that fits in int64.
func ParseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// RowInt64 reads an integer column from a stored function row. The key is
// matched case-insensitively since functions disagree on "iD" and "id".
func RowInt64(row Row, key string) (int64, bool) {
	for k, v := range row {
		if !strings.EqualFold(k, key) {
			continue
		}
		switch n := v.(type) {
		case int64:
			return n, true
		case int32:
			return int64(n), true
		case int:
			return int64(n), true
		case float64:
			return int64(n), true
		case []byte:
			return ParseID(string(n))
		case string:
			return ParseID(n)
		}
	}
	return 0, false
}
