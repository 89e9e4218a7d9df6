package listing

import (
	"strings"

	"github.com/pkg/errors"
)

// ViewMode selects how results are arranged. It never affects which
// postings are shown.
type ViewMode int

const (
	ModeList ViewMode = iota
	ModeGrid
)

func (m ViewMode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// ParseViewMode accepts "list" or "grid" (case-insensitive).
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return ModeList, nil
	case "grid":
		return ModeGrid, nil
	}
	return ModeList, errors.Errorf("unknown view mode %q (want list or grid)", s)
}
