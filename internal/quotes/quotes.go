// Package quotes rotates the distraction-mocking lines shown on the
// fullscreen surface.
package quotes

import (
	"strings"
	"unicode"
)

// Default is the built-in quote list. Entries carry decorative symbols that
// Clean strips before display.
var Default = []string{
	"📱 Your phone can wait. It always does.",
	"✨ That tab you want to open? Still there in 25 minutes.",
	"🐦 Nobody on the timeline needs your opinion right now.",
	"☕ The coffee refill is a trap. Stay.",
	"📧 Inbox zero was never the goal. Focus is.",
	"🎮 One more level is how afternoons disappear.",
	"🍪 The snack will taste better after this session.",
	"🔔 Notifications are just other people's priorities.",
	"🧹 Your desk is clean enough. Keep going.",
	"📺 The video will still be on the internet later.",
	"💬 The group chat survived without you before.",
	"🚀 Future you is already grateful. Don't disappoint them.",
}

// Clean removes emoji and other decorative symbols and collapses the
// leftover whitespace.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		if decorative(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func decorative(r rune) bool {
	switch {
	case r == 0x200d, r == 0x20e3:
		return true
	case r >= 0xfe00 && r <= 0xfe0f:
		return true
	case r >= 0x1f3fb && r <= 0x1f3ff:
		return true
	}
	return unicode.In(r, unicode.So, unicode.Co, unicode.Cs)
}
