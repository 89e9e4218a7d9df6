// Package textutil provides unicode-aware text helpers for card layout.
package textutil

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= Width(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads or truncates s to exactly width columns.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Hashtags renders tags as "#a #b", dropping whole tags from the end so the
// result fits maxWidth. A trailing "+N" counts the dropped tags when there
// is room for it.
func Hashtags(tags []string, maxWidth int) string {
	if len(tags) == 0 || maxWidth <= 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	for n := len(parts); n > 0; n-- {
		out := strings.Join(parts[:n], " ")
		if n < len(parts) {
			out += " +" + strconv.Itoa(len(parts)-n)
		}
		if Width(out) <= maxWidth {
			return out
		}
	}
	return Truncate(parts[0], maxWidth)
}
