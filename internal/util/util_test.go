package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   float64
		expected string
	}{
		{amount: 0, expected: "0.00"},
		{amount: 4.5, expected: "4.50"},
		{amount: 999.999, expected: "1,000.00"},
		{amount: 7001.5, expected: "7,001.50"},
		{amount: 1234567.891, expected: "1,234,567.89"},
		{amount: -12.3, expected: "-12.30"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if got := FormatAmount(tt.amount); got != tt.expected {
				t.Fatalf("FormatAmount(%v) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}
