package ui

// AppMode is the top-level screen. It is derived from the controller:
// ModeDetail iff a posting is selected.
type AppMode int

const (
	ModeListing AppMode = iota
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeListing:
		return "Listing"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}
