package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vinayprograms/jobtailor/errors"
)

// Search returns postings matching the keywords and optional location
// pattern, ranked by the number of distinct keywords found.
//
// Keywords are trimmed, lower-cased, and dropped when empty. With no
// keywords and no location, every posting is returned in load order with
// score zero. The location pattern compiles as a case-insensitive regular
// expression and matches anywhere in the posting's location field; a
// malformed pattern is an INVALID_PATTERN error.
//
// A keyword scores when it occurs as a substring of the posting's combined
// title, summary, description, and skills text, at most once per keyword. A
// posting is included when its score is positive, or when the query had no
// keywords but did have a location filter. Results sort by score descending;
// ties keep load order.
func (c *Catalog) Search(keywords []string, location string) ([]Match, error) {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}

	if len(normalized) == 0 && location == "" {
		matches := make([]Match, len(c.postings))
		for i, p := range c.postings {
			matches[i] = Match{Posting: p.Clone()}
		}
		return matches, nil
	}

	var locationRe *regexp.Regexp
	if location != "" {
		re, err := regexp.Compile("(?i)" + location)
		if err != nil {
			return nil, errors.New(errors.CodeInvalidPattern,
				"invalid location pattern: "+location,
				errors.WithCause(err))
		}
		locationRe = re
	}

	var matches []Match
	for _, p := range c.postings {
		if locationRe != nil && !locationRe.MatchString(p.Location) {
			continue
		}

		text := searchText(p)
		score := 0
		for _, kw := range normalized {
			if strings.Contains(text, kw) {
				score++
			}
		}

		if score > 0 || (len(normalized) == 0 && locationRe != nil) {
			matches = append(matches, Match{Posting: p.Clone(), Score: score})
		}
	}

	// Stable: equal scores keep load order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

// searchText builds the lower-cased haystack a posting is scored against.
func searchText(p Posting) string {
	parts := []string{p.Title, p.Summary, p.Description, strings.Join(p.Skills, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
