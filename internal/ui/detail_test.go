package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/posting"
)

func mustPosting(t *testing.T, id int) posting.JobPosting {
	t.Helper()
	p, ok := posting.DefaultCatalog().ByID(id)
	require.True(t, ok)
	return p
}

func TestPanelWidth(t *testing.T) {
	tests := []struct {
		term, want int
	}{
		{80, 48},
		{100, 60},
		{200, 84},
		{60, 44},
		{30, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PanelWidth(tt.term), "terminal width %d", tt.term)
	}
}

func TestDetailView_Content(t *testing.T) {
	d := NewDetailView(mustPosting(t, 3), 200, 40)
	out := stripANSI(d.View())

	for _, want := range []string{
		"S",
		"Backend Architect",
		"Stripe · Remote · Posted 2d ago",
		"Contract · $900/day",
		"About the role",
		"We are looking for a Backend Architect to join our growing team.",
		"Responsibilities",
		"• Design and implement core features of the platform.",
		"• Mentor junior members of the engineering team.",
		"Apply for this position",
		"Save",
		"esc ✕",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 84, lipgloss.Width(d.View()))
	assert.Equal(t, 40, lipgloss.Height(d.View()))
}

func TestDetailView_ResponsibilitiesSameForEveryPosting(t *testing.T) {
	bullets := func(out string) []string {
		var lines []string
		for _, l := range strings.Split(out, "\n") {
			if i := strings.Index(l, "• "); i >= 0 {
				lines = append(lines, strings.TrimRight(l[i:], " │"))
			}
		}
		return lines
	}

	first := bullets(stripANSI(NewDetailView(mustPosting(t, 1), 200, 60).View()))
	require.Len(t, first, len(posting.Responsibilities))
	for _, id := range []int{2, 3, 4} {
		out := stripANSI(NewDetailView(mustPosting(t, id), 200, 60).View())
		assert.Equal(t, first, bullets(out), "posting %d", id)
	}
}

func TestDetailView_DismissKeys(t *testing.T) {
	for _, k := range []string{"esc", "q", "x"} {
		d := NewDetailView(mustPosting(t, 1), 100, 30)
		_, cmd := d.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, DismissPostingMsg{}, cmd(), k)
	}
}

func TestDetailView_OtherKeysScroll(t *testing.T) {
	d := NewDetailView(mustPosting(t, 1), 60, 12)
	require.Greater(t, d.viewport.TotalLineCount(), d.viewport.Height)

	_, cmd := d.Update(keyMsg("j"))
	if cmd != nil {
		assert.NotEqual(t, DismissPostingMsg{}, cmd())
	}
	assert.Equal(t, 1, d.viewport.YOffset)
}

func TestDetailView_Resize(t *testing.T) {
	d := NewDetailView(mustPosting(t, 2), 80, 30)
	assert.Equal(t, 48, d.width)

	d.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, 84, d.width)
	assert.Equal(t, 50, d.height)
	assert.Contains(t, stripANSI(d.View()), "Fullstack Engineer")
}

func TestDetailView_ZeroSizeUsesDefaults(t *testing.T) {
	d := NewDetailView(mustPosting(t, 4), 0, 0)
	assert.Equal(t, PanelWidth(defaultWidth), d.width)
	assert.Equal(t, defaultHeight, d.height)
}
