// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	ts := time.Date(2024, 5, 17, 9, 30, 15, 250000000, time.UTC)

	tests := []struct {
		name   string
		dbType string
		in     any
		want   any
	}{
		{name: "nil", dbType: "NUMERIC", in: nil, want: nil},
		{name: "numeric bytes", dbType: "NUMERIC", in: []byte("12.50"), want: 12.5},
		{name: "decimal string", dbType: "DECIMAL", in: "7", want: 7.0},
		{name: "money", dbType: "MONEY", in: "$1,234.50", want: 1234.5},
		{name: "negative numeric", dbType: "NUMERIC", in: []byte("-0.25"), want: -0.25},
		{name: "numeric NaN stays text", dbType: "NUMERIC", in: "NaN", want: "NaN"},
		{name: "text bytes", dbType: "TEXT", in: []byte("Dartmoor Loop"), want: "Dartmoor Loop"},
		{name: "text string", dbType: "VARCHAR", in: "Loop", want: "Loop"},
		{name: "integer untouched", dbType: "INT4", in: int64(300), want: int64(300)},
		{name: "float untouched", dbType: "FLOAT8", in: 1.5, want: 1.5},
		{name: "bool untouched", dbType: "BOOL", in: true, want: true},
		{name: "date", dbType: "DATE", in: ts, want: "2024-05-17"},
		{name: "timestamp", dbType: "TIMESTAMP", in: ts, want: "2024-05-17T09:30:15.25"},
		{name: "time", dbType: "TIME", in: ts, want: "09:30:15.25"},
		{name: "timestamptz", dbType: "TIMESTAMPTZ", in: ts, want: "2024-05-17T09:30:15.25Z"},
		{name: "unknown time type", dbType: "", in: ts, want: "2024-05-17T09:30:15.25Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeValue(tt.dbType, tt.in))
		})
	}
}

func TestFormatTime_WholeSeconds(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "2024-01-02T03:04:05", formatTime("TIMESTAMP", ts))
	assert.Equal(t, "03:04:05", formatTime("TIME", ts))
}
