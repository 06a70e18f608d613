package quotes

import (
	"strings"
	"testing"
	"unicode"
)

func TestCleanStripsDecorativeSymbols(t *testing.T) {
	cases := map[string]string{
		"📱 Your phone can wait.":   "Your phone can wait.",
		"☕️ Stay.":                 "Stay.",
		"plain text":              "plain text",
		"  ✨  spaced   out ✨ ":     "spaced out",
		"Don't 🚀 stop, it's fine": "Don't stop, it's fine",
	}
	for in, want := range cases {
		if got := Clean(in); got != want {
			t.Fatalf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultQuotesCleanToText(t *testing.T) {
	for _, q := range Default {
		got := Clean(q)
		if got == "" {
			t.Fatalf("quote %q cleaned to empty", q)
		}
		for _, r := range got {
			if unicode.Is(unicode.So, r) {
				t.Fatalf("quote %q still has symbol %q", got, r)
			}
		}
		if strings.HasPrefix(got, " ") {
			t.Fatalf("quote %q has leading space", got)
		}
	}
}
