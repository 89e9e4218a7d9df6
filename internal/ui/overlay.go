package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"jobportal/internal/ui/textutil"
)

// placeOverlay draws panel against the right edge of a width x height
// screen. The uncovered part of base shows through, stripped of styling and
// dimmed, as the backdrop.
func placeOverlay(base, panel string, width, height int) string {
	panelW := lipgloss.Width(panel)
	leftW := width - panelW
	if leftW <= 0 {
		return panel
	}

	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")
	rows := max(height, len(panelLines))

	var b strings.Builder
	for i := 0; i < rows; i++ {
		var line string
		if i < len(baseLines) {
			line = ansi.Strip(baseLines[i])
		}
		b.WriteString(Styles.Backdrop.Render(textutil.PadRight(line, leftW)))
		if i < len(panelLines) {
			b.WriteString(panelLines[i])
		}
		if i < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// inBackdrop reports whether screen column x falls left of the panel.
func inBackdrop(x, width, panelWidth int) bool {
	return x < width-panelWidth
}
