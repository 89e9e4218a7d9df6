package ui

import (
	"github.com/charmbracelet/lipgloss"

	"jobportal/internal/posting"
)

// Theme colors used throughout the UI
const (
	ColorBrand     = "63"  // Indigo - brand mark, salary, focused borders
	ColorHighlight = "205" // Magenta - cursor card
	ColorMuted     = "241" // Gray - meta text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - card borders, tag chips
	ColorWhite     = "231"
)

// accentColors maps a posting accent to the badge background.
var accentColors = map[posting.Accent]lipgloss.Color{
	posting.AccentPurple: lipgloss.Color("93"),
	posting.AccentBlack:  lipgloss.Color("235"),
	posting.AccentBlue:   lipgloss.Color("33"),
	posting.AccentRose:   lipgloss.Color("204"),
}

// AccentColor returns the badge color for a, falling back to the brand color.
func AccentColor(a posting.Accent) lipgloss.Color {
	if c, ok := accentColors[a]; ok {
		return c
	}
	return lipgloss.Color(ColorBrand)
}

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Chrome
	Brand    lipgloss.Style // "J" mark
	BrandTxt lipgloss.Style // "Portal."
	Nav      lipgloss.Style // top bar links
	SignIn   lipgloss.Style
	Hero     lipgloss.Style
	HeroEm   lipgloss.Style // "actually"
	Subtitle lipgloss.Style

	// Search and results header
	Search        lipgloss.Style
	SearchFocused lipgloss.Style
	Count         lipgloss.Style
	ToggleOn      lipgloss.Style
	ToggleOff     lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardCursor lipgloss.Style
	CardTitle  lipgloss.Style
	Meta       lipgloss.Style
	Salary     lipgloss.Style
	Tag        lipgloss.Style
	Chevron    lipgloss.Style

	// Detail overlay
	Panel     lipgloss.Style
	Backdrop  lipgloss.Style
	Badge     lipgloss.Style // background set per accent
	DetailH   lipgloss.Style
	Section   lipgloss.Style
	Body      lipgloss.Style
	Rule      lipgloss.Style
	Apply     lipgloss.Style
	Save      lipgloss.Style
	CloseHint lipgloss.Style

	// Text
	Muted lipgloss.Style
	Hint  lipgloss.Style
	Empty lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	BrandTxt: lipgloss.NewStyle().Bold(true),
	Nav:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	SignIn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("236")).
		Padding(0, 2),
	Hero:     lipgloss.NewStyle().Bold(true),
	HeroEm:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBrand)),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),

	Search: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	SearchFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	Count:     lipgloss.NewStyle().Bold(true),
	ToggleOn:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrand)).Bold(true),
	ToggleOff: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardCursor: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
	Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Salary:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrand)),
	Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Italic(true),
	Chevron:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),

	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrand)).
		Padding(1, 2),
	Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),
	Badge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(1, 3),
	DetailH: lipgloss.NewStyle().Bold(true),
	Section: lipgloss.NewStyle().Bold(true).MarginTop(1),
	Body:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),
	Apply: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 2),
	Save: lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CloseHint: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),

	Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
