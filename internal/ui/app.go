package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"jobportal/internal/listing"
	"jobportal/internal/telemetry"
)

// AppModel is the root model. It owns the listing controller and switches
// between the listing screen and the detail overlay based on the selection.
type AppModel struct {
	Controller *listing.Controller
	Listing    *ListingView
	Detail     *DetailView // non-nil iff Controller.OverlayOpen()
	KeyHandler *KeyHandler
	Logger     *zap.Logger
	Telemetry  *telemetry.Provider
	ShowHelp   bool

	width, height int
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithLogger sets the interaction logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *AppModel) { a.Logger = l }
}

// WithTelemetry sets the span exporter for interactions.
func WithTelemetry(p *telemetry.Provider) Option {
	return func(a *AppModel) { a.Telemetry = p }
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model over ctrl.
func NewAppModel(ctrl *listing.Controller, opts ...Option) *AppModel {
	if ctrl == nil {
		ctrl = listing.New(nil)
	}
	a := &AppModel{
		Controller: ctrl,
		Listing:    NewListingView(ctrl),
		KeyHandler: NewKeyHandler(newRegistry()),
		Logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if p, ok := ctrl.Selected(); ok {
		a.Detail = NewDetailView(p, a.width, a.height)
	}
	return a
}

func newRegistry() *KeybindRegistry {
	listingOnly := []AppMode{ModeListing}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDescForMode("q", tea.Quit, "Quit", listingOnly)
	reg.BindWithDescForMode("v", msgCmd(ToggleViewModeMsg{}), "Toggle list/grid", listingOnly)
	reg.BindWithDescForMode("/", msgCmd(FocusSearchMsg{}), "Search", listingOnly)
	reg.BindWithDesc("?", msgCmd(ToggleHelpMsg{}), "Help")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("SPC /", msgCmd(FocusSearchMsg{}), "Search", listingOnly)
	reg.BindWithDesc("SPC v l", msgCmd(SetViewModeMsg{Mode: listing.ModeList}), "List")
	reg.BindWithDesc("SPC v g", msgCmd(SetViewModeMsg{Mode: listing.ModeGrid}), "Grid")
	return reg
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Mode reports the current screen.
func (a *AppModel) Mode() AppMode {
	if a.Controller.OverlayOpen() {
		return ModeDetail
	}
	return ModeListing
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Listing.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := a.snapshot()
	cmd := a.update(msg)
	a.observe(before)
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Listing.SetSize(msg.Width, msg.Height)
		if a.Detail != nil {
			a.Detail.SetSize(msg.Width, msg.Height)
		}
		return nil
	case SelectPostingMsg:
		if a.Controller.SelectByID(msg.ID) {
			p, _ := a.Controller.Selected()
			a.Detail = NewDetailView(p, a.width, a.height)
		}
		return nil
	case DismissPostingMsg:
		a.Controller.DismissPosting()
		a.Detail = nil
		return nil
	case SetViewModeMsg:
		a.Controller.SetViewMode(msg.Mode)
		a.Listing.ClampCursor()
		return nil
	case ToggleViewModeMsg:
		a.Controller.ToggleViewMode()
		a.Listing.ClampCursor()
		return nil
	case ToggleHelpMsg:
		a.ShowHelp = !a.ShowHelp
		return nil
	case tea.MouseMsg:
		if a.Detail != nil && msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft && inBackdrop(msg.X, a.screenWidth(), a.Detail.width) {
			return msgCmd(DismissPostingMsg{})
		}
	case tea.KeyMsg:
		mode := a.Mode()
		typing := mode == ModeListing && a.Listing.Typing()
		if typing && msg.String() == "ctrl+c" {
			return tea.Quit
		}
		if !typing && a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, mode); consumed {
				return keyCmd
			}
		}
		if mode == ModeListing && !typing && msg.String() == "enter" {
			if p, ok := a.Listing.CursorPosting(); ok {
				return msgCmd(SelectPostingMsg{ID: p.ID})
			}
			return nil
		}
		if mode == ModeListing && a.ShowHelp && msg.String() == "esc" {
			a.ShowHelp = false
			return nil
		}
	}

	if a.Detail != nil {
		v, cmd := a.Detail.Update(msg)
		a.Detail = v.(*DetailView)
		return cmd
	}
	_, cmd := a.Listing.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	footer := a.footer()
	a.Listing.Reserved = lipgloss.Height(footer)
	base := a.Listing.View() + "\n" + footer
	if a.Detail != nil {
		return placeOverlay(base, a.Detail.View(), a.screenWidth(), a.screenHeight())
	}
	return base
}

// footer is the leader hint bar after SPC, the full help after ?, or the
// short key hints otherwise.
func (a *AppModel) footer() string {
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	h := help.New()
	h.Styles.ShortKey = Styles.Muted.Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.FullKey = Styles.Muted.Bold(true)
	h.Styles.FullDesc = Styles.Hint
	h.ShowAll = a.ShowHelp
	h.Width = a.screenWidth()
	return h.View(a.Listing.keys)
}

func (a *AppModel) screenWidth() int {
	if a.width > 0 {
		return a.width
	}
	return defaultWidth
}

func (a *AppModel) screenHeight() int {
	if a.height > 0 {
		return a.height
	}
	return defaultHeight
}

// stateSnapshot is the controller state compared across one Update.
type stateSnapshot struct {
	query      string
	mode       listing.ViewMode
	selectedID int
	open       bool
}

func (a *AppModel) snapshot() stateSnapshot {
	s := stateSnapshot{query: a.Controller.Query(), mode: a.Controller.ViewMode()}
	if p, ok := a.Controller.Selected(); ok {
		s.selectedID, s.open = p.ID, true
	}
	return s
}

// observe logs and traces every state change made by the last Update.
func (a *AppModel) observe(before stateSnapshot) {
	after := a.snapshot()
	if after == before {
		return
	}
	ctx := context.Background()
	session := a.Controller.SessionID()

	if after.query != before.query {
		n := a.Controller.Count()
		a.Logger.Debug("search", zap.String("session", session), zap.String("query", after.query), zap.Int("results", n))
		a.Telemetry.Record(ctx, telemetry.SpanSearch, map[string]any{
			"session.id": session, "query": after.query, "results": n,
		})
	}
	if after.mode != before.mode {
		a.Logger.Debug("view mode", zap.String("session", session), zap.Stringer("mode", after.mode))
		a.Telemetry.Record(ctx, telemetry.SpanViewMode, map[string]any{
			"session.id": session, "view_mode": after.mode.String(),
		})
	}
	if after.open && (!before.open || after.selectedID != before.selectedID) {
		p, _ := a.Controller.Selected()
		a.Logger.Debug("select", zap.String("session", session), zap.Int("posting", p.ID), zap.String("title", p.Title))
		a.Telemetry.Record(ctx, telemetry.SpanSelect, map[string]any{
			"session.id": session, "posting.id": p.ID, "posting.title": p.Title,
		})
	}
	if before.open && !after.open {
		a.Logger.Debug("dismiss", zap.String("session", session), zap.Int("posting", before.selectedID))
		a.Telemetry.Record(ctx, telemetry.SpanDismiss, map[string]any{
			"session.id": session, "posting.id": before.selectedID,
		})
	}
}
