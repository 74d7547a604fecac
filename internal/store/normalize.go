// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.999999"
	timeLayout      = "15:04:05.999999"
)

// normalizeValue makes a scanned column value JSON friendly.
//
// dbType is the upper-case database type name reported by the driver.
func normalizeValue(dbType string, v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return formatTime(dbType, val)
	case []byte:
		if isDecimalType(dbType) {
			return parseDecimal(string(val))
		}
		return string(val)
	case string:
		if isDecimalType(dbType) {
			return parseDecimal(val)
		}
		return val
	}
	return v
}

func isDecimalType(dbType string) bool {
	switch dbType {
	case "NUMERIC", "DECIMAL", "MONEY":
		return true
	}
	return false
}

// parseDecimal converts a textual decimal (optionally money formatted, e.g.
// "$1,234.50") to float64. Unparseable input is returned as is.
func parseDecimal(s string) any {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+', r == 'e', r == 'E':
			return r
		}
		return -1
	}, s)

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return s
	}
	return f
}

func formatTime(dbType string, t time.Time) string {
	switch dbType {
	case "DATE":
		return t.Format(dateLayout)
	case "TIMESTAMP":
		return t.Format(timestampLayout)
	case "TIME":
		return t.Format(timeLayout)
	}
	return t.Format(time.RFC3339Nano)
}

// scanRows reads every remaining row into column-name keyed maps. The result
// is never nil.
func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0)
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err = rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			row[column.Name()] = normalizeValue(strings.ToUpper(column.DatabaseTypeName()), values[i])
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
