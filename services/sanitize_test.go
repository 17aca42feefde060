package services

import (
	"regexp"
	"strings"
	"testing"
)

func TestSanitizeStripsUnsafePatterns(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<script>Bob</script>", "scriptBob/script"},
		{"click javascript:alert(1) here", "click alert(1) here"},
		{"JAVASCRIPT:alert(1)", "alert(1)"},
		{`img onerror=alert(1)`, "img alert(1)"},
		{"  padded  ", "padded"},
	}

	for _, c := range cases {
		got := Sanitize(c.in)
		if got != c.want {
			t.Errorf("Sanitize(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestSanitizeRemovesAllOccurrences(t *testing.T) {
	angle := regexp.MustCompile(`[<>]`)
	jsScheme := regexp.MustCompile(`(?i)javascript:`)
	handler := regexp.MustCompile(`(?i)on\w+=`)

	inputs := []string{
		"<<>>",
		"javascript:javascript:alert(1)",
		"onclick=onload=x",
		"a<b javascript:c onmouseover=d>e",
		"oonclick=nclick=x",
	}

	for _, in := range inputs {
		got := Sanitize(in)
		if angle.MatchString(got) || jsScheme.MatchString(got) || handler.MatchString(got) {
			t.Errorf("Sanitize(%q): %q still contains an unsafe pattern", in, got)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"<script>alert('x')</script>",
		"javascjavascript:ript:x",
		"oonclick=nclick=x",
		strings.Repeat("<on x=", 10),
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize(%q) not idempotent: %q vs %q", in, once, twice)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	accept := []string{"a@b.co", "first.last@example.com", "user+tag@sub.domain.org"}
	reject := []string{"a@b", "@b.com", "a b@c.com", "", "a@.", "plain"}

	for _, s := range accept {
		if !ValidateEmail(s) {
			t.Errorf("ValidateEmail(%q): expected true", s)
		}
	}
	for _, s := range reject {
		if ValidateEmail(s) {
			t.Errorf("ValidateEmail(%q): expected false", s)
		}
	}
}
