package posting

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// catalogFile is the TOML layout accepted by LoadCatalog:
//
//	[[posting]]
//	id = 1
//	title = "Senior Product Designer"
//	company = "Linear"
//	tags = ["Design", "Systems"]
//	accent = "purple"
type catalogFile struct {
	Posting []postingEntry `toml:"posting"`
}

type postingEntry struct {
	ID       int      `toml:"id"`
	Title    string   `toml:"title"`
	Company  string   `toml:"company"`
	Location string   `toml:"location"`
	Type     string   `toml:"type"`
	Salary   string   `toml:"salary"`
	Tags     []string `toml:"tags"`
	Initial  string   `toml:"initial"`
	Accent   string   `toml:"accent"`
}

// LoadCatalog reads postings from a TOML file. A missing initial defaults to
// the first letter of the company; a missing accent defaults to purple.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	var f catalogFile
	if _, err := toml.Decode(string(b), &f); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", path)
	}
	postings := make([]JobPosting, 0, len(f.Posting))
	for _, e := range f.Posting {
		accent := AccentPurple
		if e.Accent != "" {
			if accent, err = ParseAccent(e.Accent); err != nil {
				return nil, errors.Wrapf(err, "posting %d", e.ID)
			}
		}
		initial := e.Initial
		if initial == "" && e.Company != "" {
			initial = string([]rune(e.Company)[:1])
		}
		postings = append(postings, JobPosting{
			ID:       e.ID,
			Title:    e.Title,
			Company:  e.Company,
			Location: e.Location,
			Type:     e.Type,
			Salary:   e.Salary,
			Tags:     e.Tags,
			Initial:  initial,
			Accent:   accent,
		})
	}
	c, err := NewCatalog(postings)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}
