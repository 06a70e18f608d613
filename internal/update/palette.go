package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/pomodesk/internal/commands"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Time: func(a commands.TimeArgs) (commands.Result, error) {
			if err := m.engine.SetCustomTime(a.Minutes); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("time set to %d min", a.Minutes)}, nil
		},
		Style: func(a commands.StyleArgs) (commands.Result, error) {
			m.sync.SetStyle(a.Style)
			return commands.Result{Message: "display style: " + string(a.Style)}, nil
		},
		Intensity: func(a commands.IntensityArgs) (commands.Result, error) {
			m.sync.SetIntensity(a.Intensity)
			return commands.Result{Message: "animation intensity: " + string(a.Intensity)}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			t, err := m.tasks.Add(a.Title)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Panel = PanelTasks
			m.taskCursor = len(m.tasks.Items()) - 1
			return commands.Result{Message: "added: " + t.Title}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			m.setTheme(views.ThemeByName(a.Name))
			return commands.Result{Message: "theme: " + m.Theme.Name}, nil
		},
		Fullscreen: func() (commands.Result, error) {
			m.sync.ToggleFullscreen()
			if m.sync.IsOpen() {
				return commands.Result{Message: "fullscreen"}, nil
			}
			return commands.Result{Message: "fullscreen closed"}, nil
		},
		Skip: func() (commands.Result, error) {
			m.engine.Skip()
			return commands.Result{Message: "skipped to " + m.engine.Snapshot().Mode.Label()}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	m.notify("Command", res.Message, "info")
	return m
}
