package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/pomodesk/internal/display"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

type TimerPanelData struct {
	Theme Theme
	Frame display.Frame
	// ProgressView is the rendered linear progress component; RenderBar is
	// used when empty.
	ProgressView string
	// Editing shows the custom-time input instead of the controls.
	Editing   bool
	InputView string
}

func RenderTimerPanel(data TimerPanelData) string {
	th, fr := data.Theme, data.Frame
	var b strings.Builder

	b.WriteString(modeStyle(th, fr.Mode).Render(fr.ModeLabel) + "\n\n")
	clock := clockStyle(th, fr).Render(fr.Clock)
	if fr.Style == display.StyleLinear {
		b.WriteString(clock + "\n")
		bar := data.ProgressView
		if bar == "" {
			bar = RenderBar(fr.Geometry, 30)
		}
		b.WriteString(bar + "\n")
	} else {
		b.WriteString(clockStyle(th, fr).Render(RenderRing(fr.Geometry, fr.Clock)) + "\n")
	}
	b.WriteString(fmt.Sprintf("%.0f%% %s\n\n", fr.Percentage, th.fg(th.Muted).Render(fr.Band.String())))

	if data.Editing {
		b.WriteString("minutes: " + data.InputView + "\n")
		b.WriteString(th.fg(th.Muted).Render("[enter] set  [esc] cancel"))
	} else {
		b.WriteString(RenderControls(th, fr.Controls) + "\n")
		b.WriteString(th.fg(th.Muted).Render(fmt.Sprintf("sessions %d  focus %dm", fr.SessionsCompleted, fr.TotalFocusMinutes)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderControls dims whichever of start and pause is unavailable.
func RenderControls(th Theme, c timer.Controls) string {
	on := th.fg(th.Accent).Bold(true)
	off := th.fg(th.Muted).Faint(true)
	start, pause := off, off
	if c.StartEnabled {
		start = on
	}
	if c.PauseEnabled {
		pause = on
	}
	return start.Render("[space] start") + "  " + pause.Render("[space] pause") + "  " + th.fg(th.Text).Render("[r] reset")
}

func modeStyle(th Theme, m timer.Mode) lipgloss.Style {
	if m.IsBreak() {
		return th.fg(th.Break).Bold(true)
	}
	return th.fg(th.Accent).Bold(true)
}

// clockStyle colours the clock by band. A pulsing frame alternates reverse
// video every second.
func clockStyle(th Theme, fr display.Frame) lipgloss.Style {
	var st lipgloss.Style
	switch fr.Band {
	case timer.BandCriticalTime:
		st = th.fg(th.Critical).Bold(true)
	case timer.BandLowTime:
		st = th.fg(th.LowTime).Bold(true)
	default:
		st = th.fg(th.Text).Bold(true)
	}
	if fr.Pulsing && fr.Intensity == display.IntensityNormal && pulsePhase(fr.Clock) {
		st = st.Reverse(true)
	}
	return st
}

func pulsePhase(clock string) bool {
	if clock == "" {
		return false
	}
	last := clock[len(clock)-1]
	return (last-'0')%2 == 0
}
