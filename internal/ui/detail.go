package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jobportal/internal/posting"
)

const (
	detailMinWidth = 44
	detailMaxWidth = 84
	// border (2) + padding (4) horizontally
	detailChromeW = 6
	// border (2) + padding (2) + close line (1) + rule and actions (2)
	detailChromeH = 7
)

// DetailView is the side panel for the selected posting. Its body scrolls.
type DetailView struct {
	Posting  posting.JobPosting
	viewport viewport.Model
	width    int // panel width
	height   int
}

// Ensure DetailView implements View.
var _ View = (*DetailView)(nil)

// NewDetailView creates the panel for p sized for a width x height terminal.
func NewDetailView(p posting.JobPosting, width, height int) *DetailView {
	d := &DetailView{Posting: p, viewport: viewport.New(0, 0)}
	d.SetSize(width, height)
	return d
}

// PanelWidth returns the rendered panel width for a terminal of width w.
func PanelWidth(w int) int {
	pw := max(w*3/5, detailMinWidth)
	pw = min(pw, detailMaxWidth)
	return min(pw, w)
}

// SetSize resizes the panel for a width x height terminal.
func (d *DetailView) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	d.width = PanelWidth(width)
	d.height = height
	d.viewport.Width = max(d.width-detailChromeW, 10)
	d.viewport.Height = max(height-detailChromeH, 3)
	d.viewport.SetContent(d.body())
}

// Init implements View.
func (d *DetailView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "x":
			return d, func() tea.Msg { return DismissPostingMsg{} }
		}
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DetailView) View() string {
	inner := d.width - detailChromeW
	closeHint := Styles.CloseHint.Width(inner).Align(lipgloss.Right).Render("esc ✕")
	rule := Styles.Rule.Render(strings.Repeat("─", inner))
	actions := Styles.Apply.Render("Apply for this position") + "  " + Styles.Save.Render("Save")

	content := lipgloss.JoinVertical(lipgloss.Left,
		closeHint,
		d.viewport.View(),
		rule,
		actions,
	)
	return Styles.Panel.
		Width(d.width - 2).
		Height(d.height - 2).
		Render(content)
}

// body is the scrollable part: header, about and responsibilities.
func (d *DetailView) body() string {
	p := d.Posting
	w := d.viewport.Width

	badge := Styles.Badge.Background(AccentColor(p.Accent)).Render(p.Initial)
	meta := Styles.Meta.Width(w).Render(strings.Join([]string{p.Company, p.Location, posting.PostedLabel}, " · "))
	facts := Styles.Meta.Render(p.Type+" · ") + Styles.Salary.Render(p.Salary)

	var b strings.Builder
	b.WriteString(badge + "\n\n")
	b.WriteString(Styles.DetailH.Width(w).Render(p.Title) + "\n")
	b.WriteString(meta + "\n")
	b.WriteString(facts + "\n")
	b.WriteString(Styles.Rule.Render(strings.Repeat("─", w)) + "\n")

	b.WriteString(Styles.Section.Render("About the role") + "\n")
	b.WriteString(Styles.Body.Width(w).Render(posting.AboutTheRole(p)) + "\n")

	b.WriteString(Styles.Section.Render("Responsibilities") + "\n")
	for _, r := range posting.Responsibilities {
		b.WriteString(bullet(r, w) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// bullet renders "• text" with continuation lines indented under the text.
func bullet(text string, width int) string {
	wrapped := Styles.Body.Width(max(width-2, 4)).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = "• " + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
