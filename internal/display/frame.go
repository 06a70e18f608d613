package display

import (
	"math"

	"github.com/sandeepkv93/pomodesk/internal/timer"
)

// RingRadius is the radius of the circular indicator, in the same abstract
// units as Circumference.
const RingRadius = 45.0

var Circumference = 2 * math.Pi * RingRadius

// FillDirection says whether an indicator grows with elapsed time or drains
// with remaining time.
type FillDirection int

const (
	FillElapsed FillDirection = iota
	FillRemaining
)

type FontSize int

const (
	FontLarge FontSize = iota
	FontCompact
)

// Geometry of the progress indicator. StrokeOffset is the undrawn part of
// the ring; FillWidth is the drawn part of the bar, in percent.
type Geometry struct {
	Circumference float64
	StrokeOffset  float64
	FillWidth     float64
}

// Filled returns the drawn fraction of the indicator in [0,1].
func (g Geometry) Filled() float64 {
	return g.FillWidth / 100
}

type Frame struct {
	Clock             string
	ModeLabel         string
	Mode              timer.Mode
	Percentage        float64
	Geometry          Geometry
	Band              timer.Band
	Pulsing           bool
	Controls          timer.Controls
	Style             Style
	Intensity         Intensity
	Running           bool
	FontSize          FontSize
	SessionsCompleted int
	TotalFocusMinutes int
}

// BuildFrame derives a frame from a snapshot. Both surfaces go through here
// so their clock, band and controls never disagree; only the fill direction
// differs.
func BuildFrame(snap timer.Snapshot, v VisualSettings, dir FillDirection) Frame {
	p := timer.Progress(snap)
	clock := timer.FormatClock(snap.TimeLeft)
	return Frame{
		Clock:             clock,
		ModeLabel:         snap.Mode.Label(),
		Mode:              snap.Mode,
		Percentage:        p.Percentage,
		Geometry:          geometry(p.Percentage, dir),
		Band:              p.Band,
		Pulsing:           p.Pulsing && v.Intensity != IntensityOff,
		Controls:          snap.Controls,
		Style:             v.Style,
		Intensity:         v.Intensity,
		Running:           snap.Running,
		FontSize:          fontFor(clock),
		SessionsCompleted: snap.SessionsCompleted,
		TotalFocusMinutes: snap.TotalFocusMinutes,
	}
}

func geometry(pct float64, dir FillDirection) Geometry {
	filled := pct
	if dir == FillRemaining {
		filled = 100 - pct
	}
	filled = math.Max(0, math.Min(100, filled))
	return Geometry{
		Circumference: Circumference,
		StrokeOffset:  Circumference * (1 - filled/100),
		FillWidth:     filled,
	}
}

// fontFor shrinks the clock once minutes need a third digit.
func fontFor(clock string) FontSize {
	if len(clock) > len("00:00") {
		return FontCompact
	}
	return FontLarge
}
