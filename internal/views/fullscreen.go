package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/sandeepkv93/pomodesk/internal/display"
	"github.com/sandeepkv93/pomodesk/internal/quotes"
)

type FullscreenData struct {
	Theme        Theme
	Frame        display.Frame
	Quote        quotes.State
	Width        int
	Height       int
	ProgressView string
}

const quoteMargin = 2

// RenderFullscreen draws the immersive surface: the clock in the centre, the
// indicator under it and the quote at its anchor. The result is exactly
// Height rows; on short terminals the centre block sheds its spacers, then the
// big clock, then the ring, until it fits between the quote bands.
func RenderFullscreen(data FullscreenData) string {
	th, fr := data.Theme, data.Frame
	w, h := max(data.Width, 40), max(data.Height, 16)
	band := quoteMargin + 1
	room := h - 1 - 2*band

	centre := fullscreenCentre(data, w, room)
	blank := strings.Repeat(" ", w)
	canvas := make([]string, 0, h)
	for i := 0; i < band; i++ {
		canvas = append(canvas, blank)
	}
	middle := strings.Split(lipgloss.Place(w, room, lipgloss.Center, lipgloss.Center, centre), "\n")
	canvas = append(canvas, middle[:min(len(middle), room)]...)
	for i := 0; i < band; i++ {
		canvas = append(canvas, blank)
	}

	if data.Quote.Text != "" {
		canvas = placeQuote(canvas, w, data.Quote, quoteStyle(th, fr.Intensity, data.Quote.Fading))
	}
	canvas = append(canvas, th.fg(th.Muted).Render(padRight("[f/esc] close  [space] start/pause  [r] reset", w)))
	return strings.Join(canvas, "\n")
}

func fullscreenCentre(data FullscreenData, w, room int) string {
	th, fr := data.Theme, data.Frame
	compact := fr.FontSize == display.FontCompact
	ring := fr.Style != display.StyleLinear
	spaced := true
	for {
		clockText := BigClock(fr.Clock)
		if compact {
			clockText = CompactClock(fr.Clock)
		}
		indicator := data.ProgressView
		if ring {
			indicator = RenderRing(fr.Geometry, "")
		} else if indicator == "" {
			indicator = RenderBar(fr.Geometry, min(60, w-8))
		}
		rows := []string{
			modeStyle(th, fr.Mode).Render(fr.ModeLabel),
			clockStyle(th, fr).Render(clockText),
			clockStyle(th, display.Frame{Band: fr.Band}).Render(indicator),
			RenderControls(th, fr.Controls),
		}
		if spaced {
			rows = []string{rows[0], "", rows[1], "", rows[2], "", rows[3]}
		}
		centre := lipgloss.JoinVertical(lipgloss.Center, rows...)
		switch {
		case lipgloss.Height(centre) <= room:
			return centre
		case spaced:
			spaced = false
		case !compact:
			compact = true
		case ring:
			ring = false
		default:
			return centre
		}
	}
}

// placeQuote overwrites the anchor row of canvas with the quote. Anchor rows
// sit in the bands above and below the centre block. The quote is truncated
// to the usable width by display cells.
func placeQuote(canvas []string, w int, q quotes.State, st lipgloss.Style) []string {
	limit := max(10, w/2-quoteMargin)
	text := runewidth.Truncate(q.Text, limit, "…")
	tw := runewidth.StringWidth(text)

	row := quoteMargin
	if !q.Anchor.Top() {
		row = len(canvas) - 1 - quoteMargin
	}
	col := (w - tw) / 2
	switch {
	case q.Anchor.Left():
		col = quoteMargin
	case q.Anchor.Right():
		col = w - tw - quoteMargin
	}
	if row < 0 || row >= len(canvas) {
		return canvas
	}
	canvas[row] = strings.Repeat(" ", max(0, col)) + st.Render(text)
	return canvas
}

// quoteStyle fades the quote toward the background. Reduced intensity fades
// halfway; off never fades.
func quoteStyle(th Theme, in display.Intensity, fading bool) lipgloss.Style {
	base := th.fg(th.Muted).Italic(true)
	if !fading || in == display.IntensityOff {
		return base
	}
	amount := 0.85
	if in == display.IntensityReduced {
		amount = 0.5
	}
	return base.Foreground(lipgloss.Color(Blend(th.Muted, th.Background, amount)))
}

// Blend mixes two hex colours in Lab space; t=0 is a, t=1 is b. Invalid
// input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return runewidth.Truncate(s, width, "")
}
