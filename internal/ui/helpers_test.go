package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func stripANSI(s string) string { return ansi.Strip(s) }

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// typeText feeds each rune of s to update as a key press.
func typeText(update func(tea.Msg), s string) {
	for _, r := range s {
		update(keyMsg(string(r)))
	}
}
