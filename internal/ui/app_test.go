package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"jobportal/internal/listing"
	"jobportal/internal/posting"
	"jobportal/internal/telemetry"
)

func newTestApp(t *testing.T, opts ...Option) *appModelAdapter {
	t.Helper()
	a := NewAppModel(listing.New(nil), opts...)
	adapter := &appModelAdapter{AppModel: a}
	adapter.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return adapter
}

// isAppMsg reports whether msg is one the app feeds back to itself.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case SelectPostingMsg, DismissPostingMsg, SetViewModeMsg, ToggleViewModeMsg, FocusSearchMsg, ToggleHelpMsg:
		return true
	}
	return false
}

// send delivers msg and follows up with any app message its command produces.
// Returns the last command that was not followed.
func send(a *appModelAdapter, msg tea.Msg) tea.Cmd {
	for {
		_, cmd := a.Update(msg)
		if cmd == nil {
			return nil
		}
		next := cmd()
		if !isAppMsg(next) {
			return cmd
		}
		msg = next
	}
}

// input delivers a keystroke without running the command it returns; the
// text input answers edits with cursor blink timers.
func (a *appModelAdapter) input(msg tea.Msg) {
	a.Update(msg)
}

func press(a *appModelAdapter, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = send(a, keyMsg(k))
	}
	return cmd
}

func filteredTitles(a *appModelAdapter) []string {
	var out []string
	for _, p := range a.Controller.Filtered() {
		out = append(out, p.Title)
	}
	return out
}

func TestApp_SelectAndDismiss(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, ModeListing, a.Mode())

	press(a, "enter")
	p, ok := a.Controller.Selected()
	require.True(t, ok)
	assert.Equal(t, "Linear", p.Company)
	assert.Equal(t, ModeDetail, a.Mode())
	require.NotNil(t, a.Detail)

	out := stripANSI(a.View())
	assert.Contains(t, out, "About the role")
	assert.Contains(t, out, "We are looking for a Senior Product Designer")
	assert.Contains(t, out, "Responsibilities")
	assert.Contains(t, out, "Apply for this position")

	press(a, "esc")
	_, ok = a.Controller.Selected()
	assert.False(t, ok)
	assert.Nil(t, a.Detail)
	assert.Equal(t, ModeListing, a.Mode())
	assert.NotContains(t, stripANSI(a.View()), "About the role")
}

func TestApp_DetailDismissKeys(t *testing.T) {
	for _, k := range []string{"esc", "q", "x"} {
		t.Run(k, func(t *testing.T) {
			a := newTestApp(t)
			press(a, "j", "enter")
			p, _ := a.Controller.Selected()
			require.Equal(t, "Vercel", p.Company)

			cmd := press(a, k)
			assert.Nil(t, cmd, "dismiss must not quit")
			assert.False(t, a.Controller.OverlayOpen())
		})
	}
}

func TestApp_QuitKeys(t *testing.T) {
	a := newTestApp(t)
	cmd := press(a, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	cmd = press(a, " ", "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	cmd = press(a, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_TypingDoesNotTriggerBindings(t *testing.T) {
	a := newTestApp(t)
	press(a, "/")
	require.True(t, a.Listing.Typing())

	typeText(a.input, "qv ")
	assert.Equal(t, "qv ", a.Controller.Query())
	assert.Equal(t, listing.ModeList, a.Controller.ViewMode())
	assert.False(t, a.KeyHandler.LeaderWaiting)

	cmd := press(a, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SearchThenToggleKeepsResults(t *testing.T) {
	a := newTestApp(t)
	press(a, "/")
	typeText(a.input, "engineer")
	press(a, "esc")
	require.Equal(t, []string{"Fullstack Engineer"}, filteredTitles(a))

	press(a, "v")
	assert.Equal(t, listing.ModeGrid, a.Controller.ViewMode())
	assert.Equal(t, []string{"Fullstack Engineer"}, filteredTitles(a))
	assert.Contains(t, stripANSI(a.View()), "1 open roles")

	press(a, "v")
	assert.Equal(t, listing.ModeList, a.Controller.ViewMode())
}

func TestApp_LeaderViewMode(t *testing.T) {
	a := newTestApp(t)
	press(a, " ")
	assert.Contains(t, stripANSI(a.View()), "View")

	press(a, "v")
	assert.Contains(t, stripANSI(a.View()), "Grid")

	press(a, "g")
	assert.Equal(t, listing.ModeGrid, a.Controller.ViewMode())
	assert.False(t, a.KeyHandler.LeaderWaiting)

	press(a, " ", "v", "l")
	assert.Equal(t, listing.ModeList, a.Controller.ViewMode())

	press(a, " ", "/")
	assert.True(t, a.Listing.Typing())
}

func TestApp_HelpToggle(t *testing.T) {
	a := newTestApp(t)
	press(a, "?")
	assert.True(t, a.ShowHelp)
	assert.Contains(t, stripANSI(a.View()), "right (grid)")

	press(a, "esc")
	assert.False(t, a.ShowHelp)
}

func TestApp_SearchWithNoMatchesEnterDoesNothing(t *testing.T) {
	a := newTestApp(t)
	press(a, "/")
	typeText(a.input, "zzz")
	press(a, "esc", "enter")
	assert.False(t, a.Controller.OverlayOpen())
	assert.Contains(t, stripANSI(a.View()), "0 open roles")
}

func TestApp_ClickCardAndBackdrop(t *testing.T) {
	a := newTestApp(t)
	a.View()
	y := a.Listing.resultsTop + a.Listing.boxes[3].top
	send(a, tea.MouseMsg{X: 3, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	p, ok := a.Controller.Selected()
	require.True(t, ok)
	assert.Equal(t, "Airbnb", p.Company)

	// Clicks inside the panel keep it open.
	send(a, tea.MouseMsg{X: 99, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, a.Controller.OverlayOpen())

	send(a, tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, a.Controller.OverlayOpen())
}

func TestApp_UnknownSelectionIgnored(t *testing.T) {
	a := newTestApp(t)
	send(a, SelectPostingMsg{ID: 99})
	assert.False(t, a.Controller.OverlayOpen())
	assert.Nil(t, a.Detail)
}

func TestApp_ResizeKeepsDetail(t *testing.T) {
	a := newTestApp(t)
	send(a, SelectPostingMsg{ID: 3})
	send(a, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, PanelWidth(200), a.Detail.width)
	assert.Contains(t, stripANSI(a.View()), "Backend Architect")
}

func TestApp_PreselectedController(t *testing.T) {
	ctrl := listing.New(nil)
	ctrl.SelectByID(2)
	a := NewAppModel(ctrl)
	require.NotNil(t, a.Detail)
	assert.Equal(t, ModeDetail, a.Mode())
}

func TestApp_RecordsInteractions(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	core, logs := observer.New(zap.DebugLevel)
	a := newTestApp(t,
		WithTelemetry(telemetry.NewWithProcessor(rec, "test")),
		WithLogger(zap.New(core)),
	)

	press(a, "/")
	typeText(a.input, "st")
	press(a, "esc", "enter", "esc", "v")

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		telemetry.SpanSearch, telemetry.SpanSearch,
		telemetry.SpanSelect, telemetry.SpanDismiss,
		telemetry.SpanViewMode,
	}, names)

	assert.Equal(t, 2, logs.FilterMessage("search").Len())
	sel := logs.FilterMessage("select").All()
	require.Len(t, sel, 1)
	assert.Equal(t, a.Controller.SessionID(), sel[0].ContextMap()["session"])
}

func TestApp_DefaultController(t *testing.T) {
	a := NewAppModel(nil)
	require.NotNil(t, a.Controller)
	assert.Equal(t, posting.DefaultCatalog().Len(), a.Controller.Count())
}
