package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/deskwm/internal/types"
)

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)$`)

// ParseSize parses a size string into a types.Size
// Supported formats:
//   - "1280x800"
//   - "600 x 400", "600X400"
//   - "512.5x300"
func ParseSize(s string) (types.Size, error) {
	s = strings.TrimSpace(s)

	matches := sizePattern.FindStringSubmatch(s)
	if matches == nil {
		return types.Size{}, fmt.Errorf("invalid size format: %q (want WIDTHxHEIGHT)", s)
	}

	w, _ := strconv.ParseFloat(matches[1], 64)
	h, _ := strconv.ParseFloat(matches[2], 64)
	if w <= 0 || h <= 0 {
		return types.Size{}, fmt.Errorf("size must be positive: %q", s)
	}
	return types.Size{Width: w, Height: h}, nil
}

// FormatSize converts a size back to string representation
func FormatSize(sz types.Size) string {
	return formatNumber(sz.Width) + "x" + formatNumber(sz.Height)
}

func formatNumber(v float64) string {
	if v == float64(int(v)) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseOptionalSize returns fallback when s is empty
func parseOptionalSize(s string, fallback types.Size) (types.Size, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseSize(s)
}
