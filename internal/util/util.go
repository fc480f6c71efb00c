package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// ParseBytes parses sizes such as "512", "100KB", "5MB" or "1G" using 1024-based units.
func ParseBytes(size string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(size))
	if s == "" {
		return 0, errors.New("empty size")
	}

	s = strings.TrimSuffix(s, "B")
	multiplier := int64(1)
	if n := len(s); n > 0 {
		switch s[n-1] {
		case 'K':
			multiplier = 1 << 10
		case 'M':
			multiplier = 1 << 20
		case 'G':
			multiplier = 1 << 30
		case 'T':
			multiplier = 1 << 40
		}
		if multiplier > 1 {
			s = s[:n-1]
		}
	}

	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || value < 0 {
		return 0, errors.Errorf("invalid size %q", size)
	}

	return value * multiplier, nil
}
