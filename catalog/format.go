package catalog

import (
	"fmt"
	"strings"
)

// FormatPosting renders a posting for CLI display.
func FormatPosting(p Posting) string {
	lines := []string{
		fmt.Sprintf("[%s] %s - %s", p.ID, p.Title, p.Company),
		fmt.Sprintf("Location: %s | Type: %s | Experience: %s", p.Location, p.Type, p.ExperienceLevel),
		"Summary: " + p.Summary,
		"Skills: " + strings.Join(p.Skills, ", "),
		"Tools: " + strings.Join(p.Tools, ", "),
		"Responsibilities:",
	}
	for _, resp := range p.Responsibilities {
		lines = append(lines, "  - "+resp)
	}
	return strings.Join(lines, "\n")
}

// Format renders the match, appending the score line when keywords matched.
func (m Match) Format() string {
	s := FormatPosting(m.Posting)
	if m.Score > 0 {
		s += fmt.Sprintf("\nMatch score: %d", m.Score)
	}
	return s
}
