package timer

import "fmt"

// Band is the urgency styling for the remaining time.
type Band int

const (
	BandNormal Band = iota
	BandLowTime
	BandCriticalTime
)

const (
	lowTimeThreshold      = 300
	criticalTimeThreshold = 60
)

func (b Band) String() string {
	switch b {
	case BandLowTime:
		return "low-time"
	case BandCriticalTime:
		return "critical-time"
	default:
		return "normal"
	}
}

func BandFor(timeLeft int) Band {
	switch {
	case timeLeft < criticalTimeThreshold:
		return BandCriticalTime
	case timeLeft < lowTimeThreshold:
		return BandLowTime
	default:
		return BandNormal
	}
}

// ProgressInfo is the derived progress shared by both surfaces.
type ProgressInfo struct {
	ElapsedSeconds int
	Percentage     float64
	Band           Band
	// Pulsing is set only in the critical band while the countdown runs.
	Pulsing bool
}

func Progress(s Snapshot) ProgressInfo {
	span := s.Span
	if span <= 0 {
		span = s.ModeDuration
	}
	left := clamp(s.TimeLeft, 0, span)
	elapsed := span - left

	pct := 0.0
	if span > 0 {
		pct = float64(elapsed) / float64(span) * 100
	}
	band := BandFor(s.TimeLeft)
	return ProgressInfo{
		ElapsedSeconds: elapsed,
		Percentage:     pct,
		Band:           band,
		Pulsing:        band == BandCriticalTime && s.Running,
	}
}

// FormatClock renders seconds as MM:SS. Minutes grow past two digits
// instead of wrapping.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
