package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGroupID(t *testing.T) {
	tests := []struct {
		year, month, seq int
		want             string
	}{
		{2025, 1, 1, "2025-01-001"},
		{2025, 12, 99, "2025-12-099"},
		{2025, 1, 123, "2025-01-123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatGroupID(tt.year, tt.month, tt.seq))
	}
}

func TestParseGroupID(t *testing.T) {
	year, month, seq, err := ParseGroupID("2025-12-099")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, month)
	assert.Equal(t, 99, seq)
}

func TestParseGroupID_Invalid(t *testing.T) {
	for _, input := range []string{"", "2025-01", "abcd-01-001", "2025-13-001", "2025-01-xyz"} {
		_, _, _, err := ParseGroupID(input)
		assert.Error(t, err, "input: %q", input)
	}
}

func TestNextGroupID(t *testing.T) {
	march := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-001", NextGroupID(nil, march))
	assert.Equal(t, "2025-03-003", NextGroupID([]string{"2025-03-001", "2025-03-002", "2025-02-007"}, march))
	assert.Equal(t, "2025-03-011", NextGroupID([]string{"2025-03-010", "manual", "2025-03-004"}, march))
	assert.Equal(t, "2025-04-001", NextGroupID([]string{"2025-03-010"}, march.AddDate(0, 1, 0)))
}
