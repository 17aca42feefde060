package services

import (
	"regexp"
	"strings"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsScheme      = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+=`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Sanitize strips angle brackets, javascript: scheme substrings and
// inline event-handler-looking substrings from free text, then trims.
// It is a defense-in-depth character filter, not an HTML parser; HTML
// content fields rendered raw remain a trusted-admin concern.
func Sanitize(text string) string {
	s := angleBrackets.ReplaceAllString(text, "")
	s = stripAll(jsScheme, s)
	s = stripAll(eventHandler, s)
	return strings.TrimSpace(s)
}

// stripAll removes matches until none remain, so a removal cannot splice
// the surrounding text into a fresh match.
func stripAll(re *regexp.Regexp, s string) string {
	for {
		next := re.ReplaceAllString(s, "")
		if next == s {
			return s
		}
		s = next
	}
}

// SanitizeAll sanitizes every element of a string slice
func SanitizeAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Sanitize(item)
	}
	return out
}

// ValidateEmail is a format gate for local@domain.tld shaped addresses,
// not a deliverability check.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}
