package notes

import (
	"regexp"
	"strings"
)

// Format is a markdown line format from the editor toolbar.
type Format int

const (
	Bold Format = iota
	Italic
	Strike
	Code
	Heading
	Bullet
	Numbered
	Quote
)

func (f Format) String() string {
	switch f {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Strike:
		return "strike"
	case Code:
		return "code"
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	case Numbered:
		return "numbered"
	case Quote:
		return "quote"
	default:
		return "unknown"
	}
}

var inlineMarkers = map[Format]string{
	Bold:   "**",
	Italic: "_",
	Strike: "~~",
	Code:   "`",
}

var blockPrefixes = []struct {
	format Format
	re     *regexp.Regexp
	insert string
}{
	{Heading, regexp.MustCompile(`^#{1,6} `), "# "},
	{Bullet, regexp.MustCompile(`^[-*+] `), "- "},
	{Numbered, regexp.MustCompile(`^\d+\. `), "1. "},
	{Quote, regexp.MustCompile(`^> `), "> "},
}

// ApplyFormat toggles f on line n of body. Inline formats wrap the line
// content; block formats replace any other block prefix. Out of range lines
// and blank lines for inline formats leave body unchanged.
func ApplyFormat(body string, n int, f Format) string {
	lines := strings.Split(body, "\n")
	if n < 0 || n >= len(lines) {
		return body
	}
	lines[n] = FormatLine(lines[n], f)
	return strings.Join(lines, "\n")
}

// FormatLine toggles f on a single line, keeping its indentation.
func FormatLine(line string, f Format) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]
	trimmed = strings.TrimRight(trimmed, " \t")

	if marker, ok := inlineMarkers[f]; ok {
		if trimmed == "" {
			return line
		}
		return indent + toggleInline(trimmed, marker)
	}

	prefix, content := splitBlock(trimmed)
	for _, bp := range blockPrefixes {
		if bp.format != f {
			continue
		}
		if prefix != "" && bp.re.MatchString(prefix) {
			return indent + content
		}
		return indent + bp.insert + content
	}
	return line
}

func toggleInline(s, marker string) string {
	if len(s) >= 2*len(marker) && strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker) {
		return s[len(marker) : len(s)-len(marker)]
	}
	return marker + s + marker
}

func splitBlock(s string) (prefix, content string) {
	for _, bp := range blockPrefixes {
		if loc := bp.re.FindStringIndex(s); loc != nil {
			return s[:loc[1]], s[loc[1]:]
		}
	}
	return "", s
}

func LineCount(body string) int {
	return strings.Count(body, "\n") + 1
}
