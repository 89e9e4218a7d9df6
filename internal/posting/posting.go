// Package posting holds the job posting records shown by the listing page and
// the substring filter applied to them.
package posting

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Accent is the colour token used for a posting's initial badge.
type Accent int

const (
	AccentPurple Accent = iota
	AccentBlack
	AccentBlue
	AccentRose
)

func (a Accent) String() string {
	switch a {
	case AccentPurple:
		return "purple"
	case AccentBlack:
		return "black"
	case AccentBlue:
		return "blue"
	case AccentRose:
		return "rose"
	default:
		return "unknown"
	}
}

// ParseAccent maps a token such as "rose" back to its Accent.
func ParseAccent(s string) (Accent, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "purple":
		return AccentPurple, nil
	case "black":
		return AccentBlack, nil
	case "blue":
		return AccentBlue, nil
	case "rose":
		return AccentRose, nil
	}
	return 0, errors.Errorf("unknown accent %q", s)
}

// JobPosting is one static job listing.
type JobPosting struct {
	ID       int
	Title    string
	Company  string
	Location string
	Type     string // employment type, e.g. "Full-time"
	Salary   string
	Tags     []string
	Initial  string // single-character logo
	Accent   Accent
}

// Matches reports whether the posting's title or company contains query,
// ignoring case. The empty query matches every posting.
func (p JobPosting) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Company), q)
}

// clone returns p with its own copy of Tags.
func (p JobPosting) clone() JobPosting {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// Filter returns copies of the postings matching query in catalog order.
// The input slice and its postings are never modified or shared.
func Filter(postings []JobPosting, query string) []JobPosting {
	out := make([]JobPosting, 0, len(postings))
	for _, p := range postings {
		if p.Matches(query) {
			out = append(out, p.clone())
		}
	}
	return out
}
