package views

import (
	"math"
	"strings"

	"github.com/sandeepkv93/pomodesk/internal/display"
)

const (
	ringDots    = 32
	ringRadiusX = 9.0
	ringRadiusY = 4.0
)

// RenderRing draws the circular indicator as a dotted ellipse. Dots are
// filled clockwise from twelve o'clock up to the geometry's drawn fraction,
// and center is placed in the middle row.
func RenderRing(g display.Geometry, center string) string {
	w := int(2*ringRadiusX) + 1
	h := int(2*ringRadiusY) + 1
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}

	filled := int(math.Round(ringFraction(g) * ringDots))
	for i := 0; i < ringDots; i++ {
		angle := 2*math.Pi*float64(i)/ringDots - math.Pi/2
		x := int(math.Round(ringRadiusX + ringRadiusX*math.Cos(angle)))
		y := int(math.Round(ringRadiusY + ringRadiusY*math.Sin(angle)))
		dot := '·'
		if i < filled {
			dot = '●'
		}
		grid[y][x] = dot
	}

	lines := make([]string, h)
	for y, row := range grid {
		lines[y] = string(row)
	}
	if center != "" {
		mid := h / 2
		pad := max(0, (w-len([]rune(center)))/2)
		row := []rune(lines[mid])
		for i, r := range []rune(center) {
			if pad+i < len(row) {
				row[pad+i] = r
			}
		}
		lines[mid] = string(row)
	}
	return strings.Join(lines, "\n")
}

// ringFraction converts the stroke offset back to the drawn fraction.
func ringFraction(g display.Geometry) float64 {
	if g.Circumference <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, 1-g.StrokeOffset/g.Circumference))
}

// RenderBar is the plain-text linear indicator used when no progress
// component view is supplied.
func RenderBar(g display.Geometry, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(math.Round(g.Filled() * float64(width)))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
