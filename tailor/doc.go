// Package tailor rewrites a plain-text resume to highlight overlap with a
// job posting. It parses the resume into named sections, computes the skill
// overlap against the posting, synthesizes a tailored summary and a
// role-highlights section, and reassembles everything in a canonical order.
//
// Matching is purely token based: a job skill counts as matched when its
// normalized form appears among the comma-separated tokens of the resume's
// skills section. There is no semantic interpretation of the text.
package tailor
