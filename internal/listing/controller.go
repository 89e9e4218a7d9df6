// Package listing owns the presentation state of the job listing page:
// search query, selected posting and view mode, plus the filtered view
// derived from the query.
package listing

import (
	"github.com/google/uuid"

	"jobportal/internal/posting"
)

// Controller holds one session's ViewState. It is driven from a single event
// loop and is not safe for concurrent use.
type Controller struct {
	catalog   *posting.Catalog
	sessionID string

	query    string
	mode     ViewMode
	selected *posting.JobPosting // nil = overlay closed

	// memo of the last filter result, keyed by query and catalog
	memoValid   bool
	memoQuery   string
	memoCatalog *posting.Catalog
	memo        []posting.JobPosting
}

// New creates a controller over catalog with an empty query, no selection
// and list mode.
func New(catalog *posting.Catalog) *Controller {
	if catalog == nil {
		catalog = posting.DefaultCatalog()
	}
	return &Controller{
		catalog:   catalog,
		sessionID: uuid.NewString(),
		mode:      ModeList,
	}
}

// SessionID identifies this controller in logs and traces.
func (c *Controller) SessionID() string { return c.sessionID }

// Catalog returns the dataset the controller filters.
func (c *Controller) Catalog() *posting.Catalog { return c.catalog }

// Query returns the current search text.
func (c *Controller) Query() string { return c.query }

// ViewMode returns the current layout.
func (c *Controller) ViewMode() ViewMode { return c.mode }

// SetSearchQuery replaces the search text. Any text is valid.
func (c *Controller) SetSearchQuery(q string) {
	c.query = q
}

// SetViewMode replaces the layout.
func (c *Controller) SetViewMode(m ViewMode) {
	c.mode = m
}

// ToggleViewMode flips between list and grid and returns the new mode.
func (c *Controller) ToggleViewMode() ViewMode {
	if c.mode == ModeList {
		c.mode = ModeGrid
	} else {
		c.mode = ModeList
	}
	return c.mode
}

// SelectPosting opens the overlay on p.
func (c *Controller) SelectPosting(p posting.JobPosting) {
	c.selected = &p
}

// SelectByID selects the catalog posting with id. Returns false and leaves
// the selection unchanged if no such posting exists.
func (c *Controller) SelectByID(id int) bool {
	p, ok := c.catalog.ByID(id)
	if !ok {
		return false
	}
	c.SelectPosting(p)
	return true
}

// DismissPosting clears the selection and closes the overlay.
func (c *Controller) DismissPosting() {
	c.selected = nil
}

// Selected returns the selected posting, if any.
func (c *Controller) Selected() (posting.JobPosting, bool) {
	if c.selected == nil {
		return posting.JobPosting{}, false
	}
	return *c.selected, true
}

// OverlayOpen reports whether the detail overlay is shown.
func (c *Controller) OverlayOpen() bool {
	return c.selected != nil
}

// Filtered returns the postings matching the current query in catalog
// order. Callers must not modify the returned slice.
func (c *Controller) Filtered() []posting.JobPosting {
	if c.memoValid && c.memoQuery == c.query && c.memoCatalog == c.catalog {
		return c.memo
	}
	c.memo = c.catalog.Filter(c.query)
	c.memoQuery = c.query
	c.memoCatalog = c.catalog
	c.memoValid = true
	return c.memo
}

// Count returns the number of matching postings.
func (c *Controller) Count() int {
	return len(c.Filtered())
}
