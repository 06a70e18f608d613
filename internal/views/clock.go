package views

import "strings"

// Five-row block glyphs for the large clock.
var bigGlyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// BigClock renders an MM:SS string in block glyphs. Unknown runes are
// dropped.
func BigClock(clock string) string {
	rows := make([]string, 5)
	for _, r := range clock {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			rows[i] += g[i]
		}
	}
	return strings.Join(rows, "\n")
}

// CompactClock spaces the digits out on one line, used once the minutes
// need more than two digits.
func CompactClock(clock string) string {
	return strings.Join(strings.Split(clock, ""), " ")
}
