package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/pomodesk/internal/commands"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

func (m Model) handleTimerKey(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case m.Keys.StartPause:
		m.toggleRunning()
	case m.Keys.Reset:
		m.engine.Reset()
		m.Status = StatusBar{Text: "timer reset"}
	case m.Keys.EditTime:
		if m.engine.Running() {
			m.Status = StatusBar{Text: "pause the timer before editing the time", IsError: true}
			return m, true
		}
		m.editingTime = true
		m.timeInput.SetValue(fmt.Sprintf("%d", max(1, m.engine.Snapshot().TimeLeft/60)))
		m.timeInput.CursorEnd()
		m.timeInput.Focus()
		m.Status = StatusBar{Text: "enter minutes"}
	case m.Keys.Style:
		st := m.sync.Visual().Style.Next()
		m.sync.SetStyle(st)
		m.Status = StatusBar{Text: "display style: " + string(st)}
	case m.Keys.Intensity:
		in := m.sync.Visual().Intensity.Next()
		m.sync.SetIntensity(in)
		m.Status = StatusBar{Text: "animation intensity: " + string(in)}
	case m.Keys.Fullscreen:
		m.sync.OpenFullscreen()
		m.Status = StatusBar{Text: "fullscreen"}
	default:
		return m, false
	}
	return m, true
}

func (m *Model) toggleRunning() {
	if m.engine.Running() {
		m.engine.Pause()
		m.Status = StatusBar{Text: "timer paused"}
		return
	}
	m.engine.Start()
	m.Status = StatusBar{Text: "timer running"}
}

func (m Model) handleTimeInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeTimeInput()
		m.Status = StatusBar{Text: "time edit cancelled"}
	case "enter":
		raw := strings.TrimSpace(m.timeInput.Value())
		m.closeTimeInput()
		minutes, err := commands.ParseMinutes(raw)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m = m.setCustomTime(minutes)
	default:
		m.timeInput, _ = m.timeInput.Update(msg)
	}
	return m
}

func (m *Model) closeTimeInput() {
	m.editingTime = false
	m.timeInput.Blur()
	m.timeInput.SetValue("")
}

func (m Model) setCustomTime(minutes int) Model {
	if err := m.engine.SetCustomTime(minutes); err != nil {
		msg := err.Error()
		if errors.Is(err, timer.ErrRunning) {
			msg = "pause the timer before editing the time"
		}
		m.Status = StatusBar{Text: msg, IsError: true}
		m.LastError = err
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("time set to %d min", minutes)}
	return m
}

// handleFullscreenKey routes keys while the fullscreen surface is shown.
// Only the timer controls and the close keys do anything there.
func (m Model) handleFullscreenKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", m.Keys.Fullscreen:
		m.sync.CloseFullscreen()
		m.Status = StatusBar{Text: "fullscreen closed"}
	case m.Keys.StartPause:
		m.toggleRunning()
	case m.Keys.Reset:
		m.engine.Reset()
	case m.Keys.Intensity:
		m.sync.SetIntensity(m.sync.Visual().Intensity.Next())
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}
