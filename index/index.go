// Package index provides free-text lookup over a posting catalog, backed by
// an in-memory Bleve index. It complements catalog.Search: the catalog scores
// exact keyword substrings deterministically, while the index answers loose
// multi-word queries with BM25 relevance. Both are lexical; neither attempts
// semantic interpretation.
package index

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/vinayprograms/jobtailor/catalog"
	"github.com/vinayprograms/jobtailor/errors"
)

// Index is a full-text view over a catalog's postings.
type Index struct {
	idx bleve.Index
	cat *catalog.Catalog
}

// Result pairs a posting with its Bleve relevance score. Scores are
// comparable only within one query's results.
type Result struct {
	Posting catalog.Posting
	Score   float64
}

// postingDocument is the shape indexed per posting.
type postingDocument struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Summary          string   `json:"summary"`
	Description      string   `json:"description"`
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`
}

// New builds an in-memory index over every posting in the catalog.
func New(c *catalog.Catalog) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "creating index")
	}

	for _, p := range c.Postings() {
		doc := postingDocument{
			Title:            p.Title,
			Company:          p.Company,
			Location:         p.Location,
			Summary:          p.Summary,
			Description:      p.Description,
			Skills:           p.Skills,
			Responsibilities: p.Responsibilities,
		}
		if err := idx.Index(p.ID, doc); err != nil {
			idx.Close()
			return nil, errors.Wrapf(err, "indexing posting %s", p.ID)
		}
	}

	return &Index{idx: idx, cat: c}, nil
}

// buildIndexMapping creates the Bleve index mapping for postings.
func buildIndexMapping() mapping.IndexMapping {
	postingMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name

	// Location is matched exactly, not analyzed.
	keywordFieldMapping := bleve.NewKeywordFieldMapping()

	for _, field := range []string{"title", "company", "summary", "description", "skills", "responsibilities"} {
		postingMapping.AddFieldMappingsAt(field, textFieldMapping)
	}
	postingMapping.AddFieldMappingsAt("location", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = postingMapping
	indexMapping.DefaultAnalyzer = standard.Name

	return indexMapping
}

// Query runs a free-text match query and returns postings ranked by
// relevance. A blank query is an INVALID_INPUT error; limit <= 0 means 10.
func (ix *Index) Query(q string, limit int) ([]Result, error) {
	if strings.TrimSpace(q) == "" {
		return nil, errors.InvalidInput("query must not be empty")
	}
	if limit <= 0 {
		limit = 10
	}

	searchReq := bleve.NewSearchRequest(bleve.NewMatchQuery(q))
	searchReq.Size = limit

	searchResult, err := ix.idx.Search(searchReq)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "query failed")
	}

	var results []Result
	for _, hit := range searchResult.Hits {
		p, err := ix.cat.Get(hit.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving hit %s", hit.ID)
		}
		results = append(results, Result{Posting: p, Score: hit.Score})
	}
	return results, nil
}

// Close releases the index.
func (ix *Index) Close() error {
	return ix.idx.Close()
}
