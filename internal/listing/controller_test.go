package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/posting"
)

func titles(ps []posting.JobPosting) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestController_Defaults(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "", c.Query())
	assert.Equal(t, ModeList, c.ViewMode())
	assert.False(t, c.OverlayOpen())
	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 4, c.Count())
	assert.NotEmpty(t, c.SessionID())
}

func TestController_SessionIDsDiffer(t *testing.T) {
	assert.NotEqual(t, New(nil).SessionID(), New(nil).SessionID())
}

func TestController_SearchScenarios(t *testing.T) {
	c := New(posting.DefaultCatalog())

	c.SetSearchQuery("")
	assert.Equal(t, []string{"Senior Product Designer", "Fullstack Engineer", "Backend Architect", "Marketing Lead"}, titles(c.Filtered()))

	c.SetSearchQuery("stripe")
	assert.Equal(t, []string{"Backend Architect"}, titles(c.Filtered()))

	c.SetSearchQuery("engineer")
	assert.Equal(t, []string{"Fullstack Engineer"}, titles(c.Filtered()))

	c.SetSearchQuery("zzz")
	assert.Empty(t, c.Filtered())
	assert.Equal(t, 0, c.Count())
}

func TestController_SetSearchQueryIdempotent(t *testing.T) {
	once := New(nil)
	once.SetSearchQuery("ar")

	twice := New(nil)
	twice.SetSearchQuery("ar")
	twice.SetSearchQuery("ar")

	assert.Equal(t, titles(once.Filtered()), titles(twice.Filtered()))
}

func TestController_MemoFollowsQuery(t *testing.T) {
	c := New(nil)
	c.SetSearchQuery("stripe")
	first := c.Filtered()
	require.Len(t, first, 1)

	c.SetSearchQuery("vercel")
	assert.Equal(t, []string{"Fullstack Engineer"}, titles(c.Filtered()))

	c.SetSearchQuery("stripe")
	assert.Equal(t, titles(first), titles(c.Filtered()))
}

func TestController_SelectThenDismiss(t *testing.T) {
	c := New(nil)
	for _, p := range c.Catalog().Postings() {
		c.SelectPosting(p)
		got, ok := c.Selected()
		require.True(t, ok)
		assert.Equal(t, p.ID, got.ID)
		assert.True(t, c.OverlayOpen())

		c.DismissPosting()
		_, ok = c.Selected()
		assert.False(t, ok)
		assert.False(t, c.OverlayOpen())
	}
}

func TestController_SelectLinear(t *testing.T) {
	c := New(nil)
	linear := c.Filtered()[0]
	require.Equal(t, "Linear", linear.Company)

	c.SelectPosting(linear)
	got, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Linear", got.Company)

	c.DismissPosting()
	assert.False(t, c.OverlayOpen())
}

func TestController_SelectByID(t *testing.T) {
	c := New(nil)
	assert.True(t, c.SelectByID(2))
	got, _ := c.Selected()
	assert.Equal(t, "Vercel", got.Company)

	assert.False(t, c.SelectByID(42))
	got, ok := c.Selected()
	require.True(t, ok, "unknown id must not clear the selection")
	assert.Equal(t, "Vercel", got.Company)
}

func TestController_ViewModeDoesNotChangeFilter(t *testing.T) {
	c := New(nil)
	c.SetSearchQuery("engineer")
	before := titles(c.Filtered())

	c.SetViewMode(ModeGrid)
	assert.Equal(t, ModeGrid, c.ViewMode())
	assert.Equal(t, before, titles(c.Filtered()))
	assert.Equal(t, []string{"Fullstack Engineer"}, before)

	assert.Equal(t, ModeList, c.ToggleViewMode())
	assert.Equal(t, ModeGrid, c.ToggleViewMode())
	assert.Equal(t, before, titles(c.Filtered()))
}

func TestController_SelectionIndependentOfQuery(t *testing.T) {
	c := New(nil)
	c.SelectByID(3)
	c.SetSearchQuery("zzz")
	assert.True(t, c.OverlayOpen())
	assert.Equal(t, 0, c.Count())
}

func TestParseViewMode(t *testing.T) {
	m, err := ParseViewMode("Grid")
	require.NoError(t, err)
	assert.Equal(t, ModeGrid, m)

	m, err = ParseViewMode("list")
	require.NoError(t, err)
	assert.Equal(t, ModeList, m)

	_, err = ParseViewMode("table")
	assert.Error(t, err)
	assert.Equal(t, "unknown", ViewMode(7).String())
}

func TestController_FilteredDoesNotExposeCatalog(t *testing.T) {
	c := New(nil)
	c.SetSearchQuery("linear")
	c.Filtered()[0].Tags[0] = "changed"

	p, ok := c.Catalog().ByID(1)
	require.True(t, ok)
	assert.Equal(t, []string{"Design", "Systems"}, p.Tags)
}
