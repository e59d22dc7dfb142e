package tailor

import (
	"strings"
	"unicode"
)

// ParseSections splits resume text into sections delimited by header lines.
//
// A line is a header when, after trimming, it contains at least one letter,
// no lower-case letters, and at most four whitespace-separated words. This
// heuristic separates headers like "SKILLS" or "WORK EXPERIENCE" from body
// text; mixed-case headers are not recognized. Lines before the first header
// are never dropped: they become part of the first section's body. Input
// with no headers at all is stored whole under "summary".
func ParseSections(text string) *Document {
	doc := NewDocument()
	current := ""
	var buffer []string

	for _, line := range splitLines(text) {
		stripped := strings.TrimSpace(line)
		if isHeaderLine(stripped) {
			if current != "" {
				doc.Set(current, strings.TrimSpace(strings.Join(buffer, "\n")))
				buffer = buffer[:0]
			}
			current = strings.ToLower(stripped)
		} else {
			buffer = append(buffer, line)
		}
	}

	if current != "" {
		doc.Set(current, strings.TrimSpace(strings.Join(buffer, "\n")))
	} else if len(buffer) > 0 {
		doc.Set("summary", strings.TrimSpace(strings.Join(buffer, "\n")))
	}
	return doc
}

// ExtractSkillLines returns the resume's own skill claims: the lines of the
// "skills" section with any leading "- " marker and surrounding whitespace
// removed, blank lines dropped.
func ExtractSkillLines(doc *Document) []string {
	body, ok := doc.Get("skills")
	if !ok {
		return nil
	}

	var skills []string
	for _, line := range splitLines(body) {
		s := strings.TrimSpace(line)
		s = strings.TrimPrefix(s, "- ")
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// isHeaderLine reports whether a trimmed line qualifies as a section header.
func isHeaderLine(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasUpper = true
		}
	}
	return hasUpper && len(strings.Fields(s)) <= 4
}

// splitLines splits on newlines without producing a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
