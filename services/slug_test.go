package services

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello   World", "hello-world"},
		{"  Smart India Hackathon 2024!  ", "smart-india-hackathon-2024"},
		{"Already-Slugged-Title", "already-slugged-title"},
		{"C++ & Go: A Comparison", "c-go-a-comparison"},
		{"", ""},
	}

	for _, c := range cases {
		got := Slugify(c.title)
		if got != c.want {
			t.Errorf("Slugify(%q): expected %q, got %q", c.title, c.want, got)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Hello World",
		"A  B   C",
		"--trim--me--",
		"2024 Review!",
	}

	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify(%q) not idempotent: %q vs %q", title, once, twice)
		}
	}
}

func TestSlugifyPunctuationOnly(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	for _, title := range []string{"!!!", "???", "...", "   ", "@#$%", "()[]"} {
		got := Slugify(title)
		if !valid.MatchString(got) {
			t.Errorf("Slugify(%q): %q contains characters outside [a-z0-9-]", title, got)
		}
	}
}
