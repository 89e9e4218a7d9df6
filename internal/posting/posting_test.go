package posting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(ps []JobPosting) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestFilter_Scenarios(t *testing.T) {
	all := DefaultCatalog().Postings()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Senior Product Designer", "Fullstack Engineer", "Backend Architect", "Marketing Lead"}},
		{"stripe", []string{"Backend Architect"}},
		{"STRIPE", []string{"Backend Architect"}},
		{"engineer", []string{"Fullstack Engineer"}},
		{"zzz", []string{}},
		{"e", []string{"Senior Product Designer", "Fullstack Engineer", "Backend Architect", "Marketing Lead"}},
		{"lin", []string{"Senior Product Designer"}}, // company match
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(all, tt.query)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilter_MembershipMatchesPredicate(t *testing.T) {
	all := DefaultCatalog().Postings()
	for _, q := range []string{"", "a", "AR", "ch", "Air", "senior", " ", "xyz", "-"} {
		got := Filter(all, q)
		kept := map[int]bool{}
		for _, p := range got {
			kept[p.ID] = true
		}
		for _, p := range all {
			want := strings.Contains(strings.ToLower(p.Title), strings.ToLower(q)) ||
				strings.Contains(strings.ToLower(p.Company), strings.ToLower(q))
			assert.Equal(t, want, kept[p.ID], "query %q posting %d", q, p.ID)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	all := DefaultCatalog().Postings()
	got := Filter(all, "r")
	last := -1
	for _, p := range got {
		pos := -1
		for i, q := range all {
			if q.ID == p.ID {
				pos = i
			}
		}
		require.Greater(t, pos, last, "order broken at %s", p.Title)
		last = pos
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := DefaultCatalog().Postings()
	before := titles(all)
	Filter(all, "engineer")
	assert.Equal(t, before, titles(all))
}

func TestAccent_RoundTrip(t *testing.T) {
	for _, a := range []Accent{AccentPurple, AccentBlack, AccentBlue, AccentRose} {
		got, err := ParseAccent(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAccent("teal")
	assert.Error(t, err)
}

func TestAboutTheRole_InterpolatesOnlyTitle(t *testing.T) {
	c := DefaultCatalog()
	a, _ := c.ByID(1)
	b, _ := c.ByID(3)

	aboutA := AboutTheRole(a)
	assert.Contains(t, aboutA, "We are looking for a Senior Product Designer to join our growing team.")
	assert.NotContains(t, aboutA, "Linear")
	assert.Equal(t,
		strings.Replace(aboutA, a.Title, "", 1),
		strings.Replace(AboutTheRole(b), b.Title, "", 1))
	assert.Len(t, Responsibilities, 4)
}
