package ui

import "jobportal/internal/listing"

// SelectPostingMsg opens the detail overlay on the posting with ID.
type SelectPostingMsg struct {
	ID int
}

// DismissPostingMsg closes the detail overlay.
type DismissPostingMsg struct{}

// SetViewModeMsg switches the results layout (SPC v l / SPC v g).
type SetViewModeMsg struct {
	Mode listing.ViewMode
}

// ToggleViewModeMsg flips between list and grid (v).
type ToggleViewModeMsg struct{}

// FocusSearchMsg moves focus to the search input (/ or SPC /).
type FocusSearchMsg struct{}

// ToggleHelpMsg shows or hides the full key help (?).
type ToggleHelpMsg struct{}
