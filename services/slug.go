package services

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\- ]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a human title: lower-case,
// everything outside [a-z0-9- ] stripped, whitespace runs collapsed to a
// single hyphen, hyphen runs collapsed, leading/trailing hyphens trimmed.
// Pure and deterministic; create and update paths share this exact
// function so a title always maps to the same slug.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
