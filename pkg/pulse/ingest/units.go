package ingest

import "strings"

// SplitLines breaks a pasted feedback block into text units: one per
// non-empty line, trimmed.
func SplitLines(text string) []string {
	var units []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		units = append(units, line)
	}
	return units
}

// IsBlank reports whether text has nothing but whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
