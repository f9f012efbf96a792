package utils

import "github.com/mattn/go-runewidth"

// Ellipsis ends truncated cell text.
const Ellipsis = "…"

// TruncateString shortens s to at most width cells, marking the cut with an
// ellipsis. The input must be plain text without escape sequences.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Width is the number of cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest of values, or fallback when values is empty.
func MaxWidth(values []string, fallback int) int {
	if len(values) == 0 {
		return fallback
	}
	w := 0
	for _, v := range values {
		w = max(w, Width(v))
	}
	return w
}
