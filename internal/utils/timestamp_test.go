package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTransactionDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "UTC marker with microseconds",
			input:    "2024-01-15T10:30:00.123456Z",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:     "excess precision is truncated not rounded",
			input:    "2024-01-15T10:30:00.1234567890Z",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:     "no fractional part no marker",
			input:    "2024-01-15T10:30:00",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "UTC marker without fraction keeps wall clock",
			input:    "2024-06-01T09:00:00Z",
			expected: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "short fraction",
			input:    "2024-01-15T10:30:00.5",
			expected: time.Date(2024, 1, 15, 10, 30, 0, 500000000, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := NormalizeTransactionDate(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed), "expected %v, got %v", tc.expected, parsed)
		})
	}
}

func TestNormalizeTransactionDateErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "date only", input: "2024-01-15"},
		{name: "garbage", input: "not-a-date"},
		{name: "trailing dot", input: "2024-01-15T10:30:00."},
		{name: "non digit fraction", input: "2024-01-15T10:30:00.abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeTransactionDate(tc.input)
			assert.Error(t, err)
		})
	}
}
