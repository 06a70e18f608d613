// Package display keeps the primary and fullscreen timer surfaces in step
// with the timer engine.
package display

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/pomodesk/internal/storage"
)

type Style string

const (
	StyleCircular Style = "circular"
	StyleLinear   Style = "linear"
)

func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleCircular:
		return StyleCircular, nil
	case StyleLinear:
		return StyleLinear, nil
	default:
		return "", fmt.Errorf("unknown timer style %q", s)
	}
}

// Next cycles circular and linear.
func (s Style) Next() Style {
	if s == StyleLinear {
		return StyleCircular
	}
	return StyleLinear
}

type Intensity string

const (
	IntensityNormal  Intensity = "normal"
	IntensityReduced Intensity = "reduced"
	IntensityOff     Intensity = "off"
)

func ParseIntensity(s string) (Intensity, error) {
	switch Intensity(strings.ToLower(strings.TrimSpace(s))) {
	case IntensityNormal:
		return IntensityNormal, nil
	case IntensityReduced:
		return IntensityReduced, nil
	case IntensityOff:
		return IntensityOff, nil
	default:
		return "", fmt.Errorf("unknown animation intensity %q", s)
	}
}

// Next cycles normal, reduced, off.
func (i Intensity) Next() Intensity {
	switch i {
	case IntensityNormal:
		return IntensityReduced
	case IntensityReduced:
		return IntensityOff
	default:
		return IntensityNormal
	}
}

// VisualSettings are presentation-only and never affect timing.
type VisualSettings struct {
	Style     Style
	Intensity Intensity
}

func DefaultVisualSettings() VisualSettings {
	return VisualSettings{Style: StyleCircular, Intensity: IntensityNormal}
}

// LoadVisualSettings reads both values, falling back per field when a stored
// value is missing or unknown.
func LoadVisualSettings(store *storage.Store) VisualSettings {
	v := DefaultVisualSettings()
	if st, err := ParseStyle(storage.Get(store, storage.KeyTimerStyle, string(v.Style))); err == nil {
		v.Style = st
	}
	if in, err := ParseIntensity(storage.Get(store, storage.KeyAnimationIntensity, string(v.Intensity))); err == nil {
		v.Intensity = in
	}
	return v
}

func SaveVisualSettings(store *storage.Store, v VisualSettings) {
	store.Set(storage.KeyTimerStyle, string(v.Style))
	store.Set(storage.KeyAnimationIntensity, string(v.Intensity))
}
