package catalog

import (
	"testing"

	"github.com/vinayprograms/jobtailor/errors"
)

func TestSearch_EmptyQueryReturnsAllInLoadOrder(t *testing.T) {
	c := sampleCatalog(t)

	matches, err := c.Search(nil, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != c.Len() {
		t.Fatalf("got %d matches, want %d", len(matches), c.Len())
	}

	ids := []string{"DS-101", "BE-210", "PM-301"}
	for i, m := range matches {
		if m.Posting.ID != ids[i] {
			t.Errorf("match %d: id = %s, want %s", i, m.Posting.ID, ids[i])
		}
		if m.Score != 0 {
			t.Errorf("match %d: score = %d, want 0", i, m.Score)
		}
	}
}

func TestSearch_BlankKeywordsAreDiscarded(t *testing.T) {
	c := sampleCatalog(t)

	// Only whitespace keywords and no location: same as an empty query.
	matches, err := c.Search([]string{"  ", "\t"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != c.Len() {
		t.Errorf("got %d matches, want %d", len(matches), c.Len())
	}
}

func TestSearch_KeywordRanking(t *testing.T) {
	c := sampleCatalog(t)

	matches, err := c.Search([]string{"machine", "learning"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Posting.ID != "DS-101" {
		t.Errorf("first match = %s, want DS-101", matches[0].Posting.ID)
	}
	if matches[0].Score != 2 {
		t.Errorf("score = %d, want 2", matches[0].Score)
	}
}

func TestSearch_SubstringMatching(t *testing.T) {
	postings := []Posting{
		{ID: "FE-1", Title: "Frontend Engineer", Company: "A", Description: "Ship features in JavaScript and TypeScript."},
	}
	c, err := New(postings)
	if err != nil {
		t.Fatal(err)
	}

	// "java" matches inside "javascript"; matching is not tokenized.
	matches, err := c.Search([]string{"java"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Score != 1 {
		t.Fatalf("got %v, want one match with score 1", matches)
	}
}

func TestSearch_KeywordCountsOncePerPosting(t *testing.T) {
	postings := []Posting{
		{ID: "X-1", Title: "Go Engineer", Company: "A",
			Summary:     "Write Go services.",
			Description: "Go, Go, and more Go."},
	}
	c, err := New(postings)
	if err != nil {
		t.Fatal(err)
	}

	matches, err := c.Search([]string{"go"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Score != 1 {
		t.Errorf("score = %d, want 1 despite repeated occurrences", matches[0].Score)
	}
}

func TestSearch_NoHitsIsEmptyNotError(t *testing.T) {
	c := sampleCatalog(t)

	matches, err := c.Search([]string{"blockchain"}, "")
	if err != nil {
		t.Fatalf("zero results should not be an error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestSearch_LocationOnly(t *testing.T) {
	c := sampleCatalog(t)

	matches, err := c.Search(nil, "New York")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Posting.ID != "PM-301" {
		t.Errorf("match = %s, want PM-301", matches[0].Posting.ID)
	}
	if matches[0].Score != 0 {
		t.Errorf("location-only match should have score 0, got %d", matches[0].Score)
	}
}

func TestSearch_LocationIsCaseInsensitivePartialMatch(t *testing.T) {
	c := sampleCatalog(t)

	// "austin" matches inside "Austin, TX (Hybrid)".
	matches, err := c.Search(nil, "austin")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Posting.ID != "BE-210" {
		t.Fatalf("got %v, want only BE-210", matches)
	}
}

func TestSearch_LocationFiltersKeywordHits(t *testing.T) {
	c := sampleCatalog(t)

	// "senior" appears nowhere in search text; "roadmap" only in PM-301.
	matches, err := c.Search([]string{"roadmap"}, "Remote")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("PM-301 is not Remote; got %v, want no matches", matches)
	}

	matches, err = c.Search([]string{"roadmap"}, "New York")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Posting.ID != "PM-301" {
		t.Fatalf("got %v, want only PM-301", matches)
	}
}

func TestSearch_InvalidPattern(t *testing.T) {
	c := sampleCatalog(t)

	_, err := c.Search(nil, "[unclosed")
	if !errors.Is(err, errors.CodeInvalidPattern) {
		t.Errorf("got %v, want INVALID_PATTERN", err)
	}
}

func TestSearch_StableOrderOnEqualScores(t *testing.T) {
	postings := []Posting{
		{ID: "A-1", Title: "Go Engineer", Company: "A", Summary: "Go services."},
		{ID: "B-2", Title: "Platform Engineer", Company: "B", Summary: "Go tooling and Kubernetes."},
		{ID: "C-3", Title: "SRE", Company: "C", Summary: "Go and Kubernetes on-call."},
	}
	c, err := New(postings)
	if err != nil {
		t.Fatal(err)
	}

	matches, err := c.Search([]string{"go", "kubernetes"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}

	// B-2 and C-3 both score 2 and must keep load order ahead of A-1 (score 1).
	want := []string{"B-2", "C-3", "A-1"}
	for i, m := range matches {
		if m.Posting.ID != want[i] {
			t.Errorf("match %d: id = %s, want %s", i, m.Posting.ID, want[i])
		}
	}
}

func TestSearch_ResultsAreIndependentCopies(t *testing.T) {
	c := sampleCatalog(t)

	matches, err := c.Search([]string{"python"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("expected a match")
	}
	matches[0].Posting.Skills[0] = "mutated"

	p, err := c.Get(matches[0].Posting.ID)
	if err != nil {
		t.Fatal(err)
	}
	if p.Skills[0] == "mutated" {
		t.Error("mutating a search result should not affect the catalog")
	}
}
