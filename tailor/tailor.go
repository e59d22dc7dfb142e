package tailor

import (
	"fmt"
	"strings"

	"github.com/vinayprograms/jobtailor/catalog"
)

// Section keys synthesized by TailorResume, overwriting any section the
// resume already had under the same name.
const (
	KeyTailoredSummary = "tailored summary"
	KeyRoleHighlights  = "role highlights"
)

// fallbackSummary stands in when the resume offers no usable base summary.
const fallbackSummary = "Experienced professional ready to contribute."

// rapidLearnerBullet is rendered when no resume skill matches the posting.
const rapidLearnerBullet = "- Rapid learner with a track record of mastering new domains"

// canonicalOrder is the preferred rendering sequence for recognized
// sections. Sections outside this list render afterward in the order they
// were first encountered.
var canonicalOrder = []string{
	"name",
	"contact",
	KeyTailoredSummary,
	"summary",
	"professional summary",
	"experience",
	"projects",
	"education",
	"skills",
	KeyRoleHighlights,
}

// MatchSkills returns the posting skills also claimed by the resume. Resume
// skill lines are split on commas and normalized (trimmed, lower-cased) into
// a token set; a job skill matches when its normalized form is in that set.
// Output order follows the posting's skill list, so the tailored highlight
// reads in the employer's priority order.
func MatchSkills(resumeSkills, jobSkills []string) []string {
	tokens := make(map[string]bool)
	for _, item := range resumeSkills {
		for _, part := range strings.Split(item, ",") {
			if tok := normalizeToken(part); tok != "" {
				tokens[tok] = true
			}
		}
	}

	var matched []string
	for _, skill := range jobSkills {
		if tokens[normalizeToken(skill)] {
			matched = append(matched, skill)
		}
	}
	return matched
}

// TailorSummary builds the three-line tailored summary: the target role, the
// trimmed base summary (or a fixed fallback when blank), and a focus line
// naming up to five matched skills.
func TailorSummary(baseSummary string, p catalog.Posting, matchedSkills []string) string {
	base := strings.TrimSpace(baseSummary)
	if base == "" {
		base = fallbackSummary
	}

	var focus string
	if len(matchedSkills) > 0 {
		top := matchedSkills
		if len(top) > 5 {
			top = top[:5]
		}
		focus = fmt.Sprintf("Key strengths aligned with this role include %s.", strings.Join(top, ", "))
	} else {
		focus = "Eager to ramp up on the team's preferred tools and practices."
	}

	return fmt.Sprintf("Target Role: %s at %s.\n%s\nFocus for this application: %s",
		p.Title, p.Company, base, focus)
}

// TailorResume injects a tailored summary and a role-highlights section into
// the resume and reassembles it in canonical section order. Sections with
// empty bodies are kept in the document but not rendered; every non-empty
// section of the input reappears in the output exactly once.
func TailorResume(rawText string, p catalog.Posting) string {
	doc := ParseSections(rawText)

	resumeSkills := ExtractSkillLines(doc)
	matched := MatchSkills(resumeSkills, p.Skills)

	base := doc.GetOr("summary", "")
	if base == "" {
		base = doc.GetOr("professional summary", "")
	}

	highlighted := []string{"Highlighted Skills for this role:"}
	if len(matched) > 0 {
		for _, skill := range matched {
			highlighted = append(highlighted, "- "+skill)
		}
	} else {
		highlighted = append(highlighted, rapidLearnerBullet)
	}

	doc.Set(KeyTailoredSummary, TailorSummary(base, p, matched))
	doc.Set(KeyRoleHighlights, strings.Join(highlighted, "\n"))

	var assembled []string
	seen := make(map[string]bool)
	render := func(key string) {
		body, ok := doc.Get(key)
		if !ok || seen[key] || strings.TrimSpace(body) == "" {
			return
		}
		assembled = append(assembled, formatSection(key, body))
		seen[key] = true
	}

	for _, key := range canonicalOrder {
		render(key)
	}
	for _, key := range doc.Keys() {
		render(key)
	}

	return strings.TrimSpace(strings.Join(assembled, "\n\n")) + "\n"
}

// formatSection renders one section: upper-cased header, then trimmed body.
func formatSection(header, body string) string {
	return strings.ToUpper(header) + "\n" + strings.TrimSpace(body)
}

// normalizeToken trims and lower-cases a skill token.
func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
