// Package formatting provides helpers for human-readable value formatting.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count as a human-readable string, e.g. "2.5 MB".
func FormatBytes(n int64) string {
	if n < 0 {
		return "0 B"
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// ParseBytes converts a human-readable size string ("10MB", "512 KB", "1048576")
// into a byte count. A bare number is interpreted as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	upper := strings.ToUpper(s)
	for i := len(byteUnits) - 1; i >= 0; i-- {
		if strings.HasSuffix(upper, byteUnits[i]) {
			numeric := strings.TrimSpace(upper[:len(upper)-len(byteUnits[i])])
			value, err := strconv.ParseFloat(numeric, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid size %q: %w", s, err)
			}
			if value < 0 {
				return 0, fmt.Errorf("invalid size %q: negative value", s)
			}
			multiplier := int64(1)
			for range i {
				multiplier *= 1024
			}
			return int64(value * float64(multiplier)), nil
		}
	}

	value, err := strconv.ParseInt(upper, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid size %q: negative value", s)
	}
	return value, nil
}
