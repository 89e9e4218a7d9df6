package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jobportal/internal/listing"
	"jobportal/internal/posting"
)

const (
	defaultWidth  = 80
	defaultHeight = 30
)

// listingKeys are the result-navigation keys handled by ListingView itself.
type listingKeys struct {
	Up, Down, Left, Right key.Binding
	First, Last           key.Binding
	Open                  key.Binding
	Search                key.Binding
	Toggle                key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func newListingKeys() listingKeys {
	return listingKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left (grid)")),
		Right:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right (grid)")),
		First:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "list/grid")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k listingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k listingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.First, k.Last, k.Open},
		{k.Search, k.Toggle, k.Help, k.Quit},
	}
}

// cardBox is a card's hit area in results-content coordinates.
type cardBox struct {
	top, bottom int // inclusive line range
	left, right int // inclusive column range
}

func (b cardBox) contains(x, y int) bool {
	return y >= b.top && y <= b.bottom && x >= b.left && x <= b.right
}

// ListingView renders the page chrome, search input and result cards.
// It reads and writes the shared listing.Controller.
type ListingView struct {
	ctrl    *listing.Controller
	input   textinput.Model
	focus   *FocusManager
	results viewport.Model
	keys    listingKeys

	Cursor int // index into ctrl.Filtered()

	width, height int
	Reserved      int // rows kept free below the results for the footer
	resultsTop    int // screen row where the results viewport starts
	boxes         []cardBox
	freeScroll    bool // wheel moved the viewport; don't pull it back to the cursor
}

// Ensure ListingView implements View.
var _ View = (*ListingView)(nil)

// NewListingView creates the listing screen over ctrl. Focus starts on the
// results; the input shows the controller's current query.
func NewListingView(ctrl *listing.Controller) *ListingView {
	in := textinput.New()
	in.Prompt = "⌕ "
	in.Placeholder = "Search roles or companies"
	in.SetValue(ctrl.Query())

	v := &ListingView{
		ctrl:    ctrl,
		input:   in,
		focus:   NewFocusManager(PanelResults, PanelSearch),
		results: viewport.New(defaultWidth, 10),
		keys:    newListingKeys(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	v.focus.OnChange = func(_, to string) {
		if to == PanelSearch {
			v.input.Focus()
		} else {
			v.input.Blur()
		}
	}
	return v
}

// Typing reports whether keystrokes go to the search input.
func (v *ListingView) Typing() bool {
	return v.focus.Is(PanelSearch)
}

// FocusSearch moves focus to the search input.
func (v *ListingView) FocusSearch() tea.Cmd {
	v.focus.SetFocus(PanelSearch)
	return textinput.Blink
}

// CursorPosting returns the posting under the cursor.
func (v *ListingView) CursorPosting() (posting.JobPosting, bool) {
	items := v.ctrl.Filtered()
	if v.Cursor < 0 || v.Cursor >= len(items) {
		return posting.JobPosting{}, false
	}
	return items[v.Cursor], true
}

// SetSize updates the terminal dimensions.
func (v *ListingView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.input.Width = max(width-10, 10)
}

// Init implements View.
func (v *ListingView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ListingView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case FocusSearchMsg:
		return v, v.FocusSearch()
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	case tea.KeyMsg:
		if v.Typing() {
			return v, v.handleInputKey(msg)
		}
		v.handleNavKey(msg)
		return v, nil
	}
	// cursor blink and other input bookkeeping
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *ListingView) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "tab":
		v.focus.SetFocus(PanelResults)
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if q := v.input.Value(); q != v.ctrl.Query() {
		v.ctrl.SetSearchQuery(q)
		v.Cursor = 0
		v.freeScroll = false
	}
	return cmd
}

func (v *ListingView) handleNavKey(msg tea.KeyMsg) {
	v.freeScroll = false
	n := len(v.ctrl.Filtered())
	switch msg.String() {
	case "tab":
		v.focus.Next()
		return
	case "shift+tab":
		v.focus.Prev()
		return
	}
	if n == 0 {
		return
	}
	step := 1
	if v.ctrl.ViewMode() == listing.ModeGrid {
		step = v.columns()
	}
	switch {
	case key.Matches(msg, v.keys.Down):
		v.moveCursor(step)
	case key.Matches(msg, v.keys.Up):
		v.moveCursor(-step)
	case key.Matches(msg, v.keys.Right):
		if v.ctrl.ViewMode() == listing.ModeGrid {
			v.moveCursor(1)
		}
	case key.Matches(msg, v.keys.Left):
		if v.ctrl.ViewMode() == listing.ModeGrid {
			v.moveCursor(-1)
		}
	case key.Matches(msg, v.keys.First):
		v.Cursor = 0
	case key.Matches(msg, v.keys.Last):
		v.Cursor = n - 1
	}
}

// moveCursor moves by delta, staying put if that would leave the results.
func (v *ListingView) moveCursor(delta int) {
	next := v.Cursor + delta
	if next < 0 || next >= len(v.ctrl.Filtered()) {
		return
	}
	v.Cursor = next
}

// ClampCursor keeps the cursor inside the current results.
func (v *ListingView) ClampCursor() {
	n := len(v.ctrl.Filtered())
	if v.Cursor >= n {
		v.Cursor = n - 1
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
}

// handleMouse selects the card under a left click and scrolls on wheel.
func (v *ListingView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		v.freeScroll = true
		v.refresh()
		var cmd tea.Cmd
		v.results, cmd = v.results.Update(msg)
		return cmd
	case tea.MouseButtonLeft:
		idx := v.CardAt(msg.X, msg.Y)
		if idx < 0 {
			return nil
		}
		v.Cursor = idx
		v.freeScroll = false
		id := v.ctrl.Filtered()[idx].ID
		return func() tea.Msg { return SelectPostingMsg{ID: id} }
	}
	return nil
}

// CardAt returns the index of the result card at screen position (x, y),
// or -1.
func (v *ListingView) CardAt(x, y int) int {
	v.refresh()
	row := y - v.resultsTop
	if row < 0 || row >= v.results.Height {
		return -1
	}
	row += v.results.YOffset
	for i, b := range v.boxes {
		if b.contains(x, row) {
			return i
		}
	}
	return -1
}

// View implements View.
func (v *ListingView) View() string {
	chrome := v.refresh()
	return chrome + "\n" + v.results.View()
}

// refresh lays out the page, loads the results viewport and returns the
// chrome above it.
func (v *ListingView) refresh() string {
	if v.width == 0 {
		v.width = defaultWidth
	}
	if v.height == 0 {
		v.height = defaultHeight
	}
	v.ClampCursor()

	chrome := lipgloss.JoinVertical(lipgloss.Left,
		v.renderTopBar(),
		"",
		v.renderHero(),
		"",
		v.renderSearch(),
		v.renderResultsHeader(),
	)
	v.resultsTop = lipgloss.Height(chrome)

	content, boxes := v.renderResults()
	v.boxes = boxes
	v.results.Width = v.width
	v.results.Height = max(v.height-v.resultsTop-v.Reserved, 3)
	v.results.SetContent(content)
	if !v.freeScroll {
		v.scrollToCursor()
	}
	return chrome
}

func (v *ListingView) scrollToCursor() {
	if v.Cursor >= len(v.boxes) {
		return
	}
	b := v.boxes[v.Cursor]
	if b.top < v.results.YOffset {
		v.results.SetYOffset(b.top)
	} else if b.bottom >= v.results.YOffset+v.results.Height {
		v.results.SetYOffset(b.bottom - v.results.Height + 1)
	}
}

func (v *ListingView) renderTopBar() string {
	left := Styles.Brand.Render("J") + " " + Styles.BrandTxt.Render("Portal.")
	right := Styles.SignIn.Render("Sign In")
	if v.width >= 60 {
		right = Styles.Nav.Render("Find Work   Post a Job   Salaries") + "   " + right
	}
	gap := max(v.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (v *ListingView) renderHero() string {
	w := min(v.width, 72)
	title := Styles.Hero.Render("Work on things that ") +
		Styles.HeroEm.Render("actually") +
		Styles.Hero.Render(" matter.")
	sub := Styles.Subtitle.Width(w).Render("A curated job board for developers, designers, and creative minds. No noise, just high-quality opportunities.")
	return title + "\n" + sub
}

func (v *ListingView) renderSearch() string {
	style := Styles.Search
	if v.Typing() {
		style = Styles.SearchFocused
	}
	return style.Width(max(v.width-2, 10)).Render(v.input.View())
}

func (v *ListingView) renderResultsHeader() string {
	count := Styles.Count.Render(fmt.Sprintf("%d open roles", v.ctrl.Count()))
	listLbl, gridLbl := Styles.ToggleOff.Render("≡ list"), Styles.ToggleOff.Render("▦ grid")
	if v.ctrl.ViewMode() == listing.ModeGrid {
		gridLbl = Styles.ToggleOn.Render("▦ grid")
	} else {
		listLbl = Styles.ToggleOn.Render("≡ list")
	}
	toggle := listLbl + "  " + gridLbl
	gap := max(v.width-lipgloss.Width(count)-lipgloss.Width(toggle), 1)
	return count + strings.Repeat(" ", gap) + toggle
}

// columns is the number of grid columns for the current width.
func (v *ListingView) columns() int {
	if v.width >= gridTwoColumnMinWidth {
		return 2
	}
	return 1
}

// renderResults renders every matching card and records its hit box.
func (v *ListingView) renderResults() (string, []cardBox) {
	items := v.ctrl.Filtered()
	if len(items) == 0 {
		msg := "No roles match your search."
		if q := v.ctrl.Query(); q != "" {
			msg = fmt.Sprintf("No roles match %q.", q)
		}
		return Styles.Empty.Render(msg), nil
	}
	if v.ctrl.ViewMode() == listing.ModeGrid {
		return renderGrid(items, v.Cursor, v.width, v.columns())
	}
	return renderList(items, v.Cursor, v.width)
}
