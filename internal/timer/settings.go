package timer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSettings = errors.New("timer: invalid settings")
	ErrRunning         = errors.New("timer: not allowed while running")
)

type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// Upper bounds for Settings. A duration is at most one day.
const (
	MaxMinutes            = 24 * 60
	MaxSessionsBeforeLong = 100
)

// Settings are the user-configurable durations, in minutes.
type Settings struct {
	WorkMinutes        int
	BreakMinutes       int
	LongBreakMinutes   int
	SessionsBeforeLong int
}

func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:        25,
		BreakMinutes:       5,
		LongBreakMinutes:   15,
		SessionsBeforeLong: 4,
	}
}

// Validate requires every field to be a positive integer no larger than its
// cap.
func (s Settings) Validate() error {
	fields := []struct {
		name  string
		value int
		limit int
	}{
		{"work duration", s.WorkMinutes, MaxMinutes},
		{"break duration", s.BreakMinutes, MaxMinutes},
		{"long break duration", s.LongBreakMinutes, MaxMinutes},
		{"sessions before long break", s.SessionsBeforeLong, MaxSessionsBeforeLong},
	}
	for _, f := range fields {
		if f.value <= 0 || f.value > f.limit {
			return fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalidSettings, f.name, f.limit, f.value)
		}
	}
	return nil
}

func ValidMinutes(n int) bool {
	return n > 0 && n <= MaxMinutes
}

func (s Settings) Seconds(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return s.BreakMinutes * 60
	case ModeLongBreak:
		return s.LongBreakMinutes * 60
	default:
		return s.WorkMinutes * 60
	}
}

// withFallback replaces each out-of-range field with the matching field of
// def.
func (s Settings) withFallback(def Settings) Settings {
	if !ValidMinutes(s.WorkMinutes) {
		s.WorkMinutes = def.WorkMinutes
	}
	if !ValidMinutes(s.BreakMinutes) {
		s.BreakMinutes = def.BreakMinutes
	}
	if !ValidMinutes(s.LongBreakMinutes) {
		s.LongBreakMinutes = def.LongBreakMinutes
	}
	if s.SessionsBeforeLong <= 0 || s.SessionsBeforeLong > MaxSessionsBeforeLong {
		s.SessionsBeforeLong = def.SessionsBeforeLong
	}
	return s
}
