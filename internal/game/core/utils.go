package core

import (
	"fmt"
	"strings"
)

// IntToStringFixedWidth converts an integer to a string of a specified width,
// left-padding with spaces if the number string is shorter than the width.
// Longer numbers are not truncated.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// FormatCoords renders a coordinate list for log fields, e.g. "(0,0) (0,1)".
func FormatCoords(coords []Coordinate) string {
	if len(coords) == 0 {
		return "-"
	}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
