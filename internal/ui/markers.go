package ui

import (
	"strings"
)

// stripDoneMarkers removes the done marker from every line of text
func stripDoneMarkers(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, DoneMarker)
	}
	return strings.Join(lines, "\n")
}

// markLineDone appends the done marker to the given 1-based line. Out of
// range lines and lines already marked are left alone.
func markLineDone(text string, line int) string {
	lines := strings.Split(text, "\n")
	if line < 1 || line > len(lines) {
		return text
	}
	if !strings.HasSuffix(lines[line-1], DoneMarker) {
		lines[line-1] += DoneMarker
	}
	return strings.Join(lines, "\n")
}
