package posting

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateID is returned when two postings share an ID.
	ErrDuplicateID = errors.New("duplicate posting id")
	// ErrInvalidPosting is returned for postings missing a title or company,
	// or with an initial longer than one character.
	ErrInvalidPosting = errors.New("invalid posting")
	// ErrNotFound is returned when an ID is not in the catalog.
	ErrNotFound = errors.New("posting not found")
)

// Catalog is an immutable, ordered set of postings with unique IDs.
type Catalog struct {
	postings []JobPosting
	index    map[int]int // id -> position
}

// NewCatalog validates postings and returns a catalog holding a private copy.
func NewCatalog(postings []JobPosting) (*Catalog, error) {
	c := &Catalog{
		postings: make([]JobPosting, 0, len(postings)),
		index:    make(map[int]int, len(postings)),
	}
	for _, p := range postings {
		if p.Title == "" || p.Company == "" {
			return nil, errors.Wrapf(ErrInvalidPosting, "posting %d: title and company are required", p.ID)
		}
		if utf8.RuneCountInString(p.Initial) > 1 {
			return nil, errors.Wrapf(ErrInvalidPosting, "posting %d: initial %q must be one character", p.ID, p.Initial)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "id %d", p.ID)
		}
		c.index[p.ID] = len(c.postings)
		c.postings = append(c.postings, p.clone())
	}
	return c, nil
}

// Postings returns a deep copy of the postings in catalog order.
func (c *Catalog) Postings() []JobPosting {
	out := make([]JobPosting, len(c.postings))
	for i, p := range c.postings {
		out[i] = p.clone()
	}
	return out
}

// Len returns the number of postings.
func (c *Catalog) Len() int {
	return len(c.postings)
}

// ByID looks up a posting by its ID.
func (c *Catalog) ByID(id int) (JobPosting, bool) {
	i, ok := c.index[id]
	if !ok {
		return JobPosting{}, false
	}
	return c.postings[i].clone(), true
}

// Lookup is ByID with an ErrNotFound error for callers that report failures.
func (c *Catalog) Lookup(id int) (JobPosting, error) {
	p, ok := c.ByID(id)
	if !ok {
		return JobPosting{}, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	return p, nil
}

// Filter applies the substring filter to the catalog.
func (c *Catalog) Filter(query string) []JobPosting {
	return Filter(c.postings, query)
}

var defaultPostings = []JobPosting{
	{ID: 1, Title: "Senior Product Designer", Company: "Linear", Location: "Remote", Type: "Full-time", Salary: "$140k - $180k", Tags: []string{"Design", "Systems"}, Initial: "L", Accent: AccentPurple},
	{ID: 2, Title: "Fullstack Engineer", Company: "Vercel", Location: "San Francisco, CA", Type: "Full-time", Salary: "$160k - $210k", Tags: []string{"React", "Next.js"}, Initial: "V", Accent: AccentBlack},
	{ID: 3, Title: "Backend Architect", Company: "Stripe", Location: "Remote", Type: "Contract", Salary: "$900/day", Tags: []string{"Node.js", "Ruby"}, Initial: "S", Accent: AccentBlue},
	{ID: 4, Title: "Marketing Lead", Company: "Airbnb", Location: "New York, NY", Type: "Full-time", Salary: "$130k - $160k", Tags: []string{"Growth", "Ads"}, Initial: "A", Accent: AccentRose},
}

// DefaultCatalog returns the built-in postings.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultPostings)
	if err != nil {
		panic(err) // built-in table is fixed
	}
	return c
}
