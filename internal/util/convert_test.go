package util

import (
	"database/sql"
	"testing"
	"time"
)

func TestToString(t *testing.T) {
	ts := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bytes", []byte("xyz"), "xyz"},
		{"int64", int64(42), "42"},
		{"int", 7, "7"},
		{"float64", 0.61, "0.61"},
		{"float64 whole", float64(120), "120"},
		{"bool", true, "true"},
		{"time", ts, "2024-06-15T10:00:00Z"},
		{"NullString valid", sql.NullString{String: "gpt", Valid: true}, "gpt"},
		{"NullString null", sql.NullString{}, ""},
		{"NullInt64 valid", sql.NullInt64{Int64: 99, Valid: true}, "99"},
		{"NullInt64 null", sql.NullInt64{}, ""},
		{"NullFloat64 valid", sql.NullFloat64{Float64: 8.5, Valid: true}, "8.5"},
		{"NullFloat64 null", sql.NullFloat64{}, ""},
		{"other", struct{ A int }{1}, "{1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
