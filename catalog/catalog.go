package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/vinayprograms/jobtailor/errors"
)

// Posting is one job opening. Field names follow the JSON record schema of
// the posting source.
type Posting struct {
	// ID uniquely identifies the posting within a catalog.
	ID string `json:"id"`

	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Summary          string   `json:"summary"`
	Skills           []string `json:"skills"`
	Tools            []string `json:"tools"`
	ExperienceLevel  string   `json:"experience_level"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// Validate reports the first missing required field as a MALFORMED error.
// Required fields are id, title, and company; the list fields may be empty.
func (p *Posting) Validate() error {
	switch {
	case p.ID == "":
		return errors.Malformed("posting is missing required field: id")
	case p.Title == "":
		return errors.Malformed("posting %q is missing required field: title", p.ID)
	case p.Company == "":
		return errors.Malformed("posting %q is missing required field: company", p.ID)
	}
	return nil
}

// Clone returns a deep copy of the posting. The list fields are copied so
// the result shares no memory with the original.
func (p Posting) Clone() Posting {
	c := p
	c.Skills = append([]string(nil), p.Skills...)
	c.Tools = append([]string(nil), p.Tools...)
	c.Responsibilities = append([]string(nil), p.Responsibilities...)
	return c
}

// Match pairs a posting copy with its keyword match score. Score counts the
// distinct normalized keywords found in the posting's search text; it is
// zero for unscored results and never negative.
type Match struct {
	Posting Posting `json:"posting"`
	Score   int     `json:"score"`
}

// Catalog is a read-only, load-ordered collection of postings.
type Catalog struct {
	postings []Posting
	byID     map[string]int
}

// New builds a catalog from postings. Every posting is validated, and a
// duplicate identifier is rejected with a DUPLICATE_KEY error rather than
// overwriting the earlier posting.
func New(postings []Posting) (*Catalog, error) {
	c := &Catalog{
		postings: make([]Posting, 0, len(postings)),
		byID:     make(map[string]int, len(postings)),
	}
	for _, p := range postings {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, errors.New(errors.CodeDuplicateKey,
				"duplicate posting id: "+p.ID,
				errors.WithMetadata("id", p.ID))
		}
		c.byID[p.ID] = len(c.postings)
		c.postings = append(c.postings, p.Clone())
	}
	return c, nil
}

// Load reads a JSON array of posting records. Records with unknown fields or
// missing required fields are rejected with a MALFORMED error.
func Load(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var postings []Posting
	if err := dec.Decode(&postings); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformed, "decoding postings")
	}
	return New(postings)
}

// LoadFile reads a catalog from a JSON file. A missing file is a NOT_FOUND
// error; any other read failure is an IO_ERROR.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("job file not found: %s", path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeIO, "reading job file")
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

// Get returns a copy of the posting with the given identifier.
func (c *Catalog) Get(id string) (Posting, error) {
	i, ok := c.byID[id]
	if !ok {
		return Posting{}, errors.NotFound("job with id %q not found", id)
	}
	return c.postings[i].Clone(), nil
}

// Postings returns copies of all postings in load order.
func (c *Catalog) Postings() []Posting {
	out := make([]Posting, len(c.postings))
	for i, p := range c.postings {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of postings in the catalog.
func (c *Catalog) Len() int {
	return len(c.postings)
}
