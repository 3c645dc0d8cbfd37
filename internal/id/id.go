// Package id formats payment group ids like "2025-03-001".
package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatGroupID returns a group ID like "2025-03-001".
func FormatGroupID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// ParseGroupID parses "2025-03-001" into year, month, seq.
func ParseGroupID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid group ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in group ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("invalid month in group ID %q", id)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in group ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// NextGroupID returns the first unused id for the month of t. Ids that do
// not parse are ignored.
func NextGroupID(existing []string, t time.Time) string {
	last := 0
	for _, e := range existing {
		y, m, seq, err := ParseGroupID(e)
		if err != nil || y != t.Year() || m != int(t.Month()) {
			continue
		}
		last = max(last, seq)
	}
	return FormatGroupID(t.Year(), int(t.Month()), last+1)
}
