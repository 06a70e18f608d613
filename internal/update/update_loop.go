package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/notify"
	"github.com/sandeepkv93/pomodesk/internal/scheduler"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForFireCmd(m.fires)}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// waitForFireCmd blocks on the clock channel and hands the fire to Update.
func waitForFireCmd(ch <-chan scheduler.Fire) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return nil
		}
		return FireMsg{Fire: f}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	// Tick fires and window changes are handled even while a form is open so
	// the countdown never stalls behind a modal.
	switch typed := msg.(type) {
	case FireMsg:
		return m.onFire(typed.Fire), waitForFireCmd(m.fires)
	case tea.WindowSizeMsg:
		m.Width, m.Height = typed.Width, typed.Height
		m.timerProgress.Width = min(40, max(10, typed.Width/3))
		if m.form != nil {
			m.form = m.form.WithWidth(min(60, typed.Width-4))
		}
		return m, nil
	case ConfigChangedMsg:
		m.applyConfig(typed)
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

// onFire runs one tick callback and reports a finished countdown in the
// status bar.
func (m Model) onFire(f scheduler.Fire) Model {
	before := m.engine.Snapshot()
	if !f.Run() {
		debug.Log("update: dropped stale fire")
		return m
	}
	after := m.engine.Snapshot()
	if after.Mode != before.Mode {
		title, body := notify.Message(before.Mode)
		m.Status = StatusBar{Text: fmt.Sprintf("%s. %s", title, body)}
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	switch {
	case m.Palette.Active:
		if keyStr == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg), nil
	case m.editingTime:
		return m.handleTimeInputKey(msg), nil
	case m.addingTask:
		return m.handleTaskInputKey(msg), nil
	case m.editingNote != "":
		return m.handleNoteEditorKey(msg)
	case m.sync.IsOpen():
		return m.handleFullscreenKey(msg)
	}

	switch keyStr {
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.SwitchPanel:
		if m.Panel == PanelTasks {
			m.Panel = PanelNotes
		} else {
			m.Panel = PanelTasks
		}
		return m, nil
	case m.Keys.Theme:
		m.setTheme(m.Theme.Toggle())
		m.Status = StatusBar{Text: "theme: " + m.Theme.Name}
		return m, nil
	case m.Keys.Settings:
		cmd := m.openSettingsForm()
		return m, cmd
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	if next, handled := m.handleTimerKey(msg); handled {
		return next, nil
	}
	if m.Panel == PanelNotes {
		return m.handleNotesKey(msg)
	}
	return m.handleTasksKey(msg), nil
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && (km.String() == "esc" || km.String() == "ctrl+c") {
		m.closeForm("cancelled")
		return m, nil
	}
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.completeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm("cancelled")
		return m, nil
	}
	return m, cmd
}

func (m Model) View() string {
	if m.form != nil {
		return views.RenderApp(views.AppData{
			Theme:      m.Theme,
			Width:      m.Width,
			Header:     "pomodesk | " + m.formTitle(),
			TimerPane:  m.renderTimerPane(),
			SidePane:   m.form.View(),
			StatusLine: m.statusLine(),
			Footer:     "[enter] next  [esc] cancel",
		})
	}
	if m.sync.IsOpen() {
		return m.renderFullscreen()
	}

	side := m.renderTasksPane()
	if m.Panel == PanelNotes {
		side = m.renderNotesPane()
	}
	side += m.renderCommandPalette() + m.renderHelpIfVisible()

	snap := m.engine.Snapshot()
	return views.RenderApp(views.AppData{
		Theme:        m.Theme,
		Width:        m.Width,
		Header:       fmt.Sprintf("pomodesk | %s | panel: %s | session %d", snap.Mode.Label(), m.Panel, snap.SessionsCompleted+1),
		TimerPane:    m.renderTimerPane(),
		SidePane:     side,
		SideFocused:  true,
		StatusLine:   m.statusLine(),
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: space start/pause | %s reset | %s edit | %s settings | %s style | %s intensity | %s fullscreen | %s panel | %s theme | / cmd | %s help | %s quit",
			m.Keys.Reset, m.Keys.EditTime, m.Keys.Settings, m.Keys.Style, m.Keys.Intensity, m.Keys.Fullscreen, m.Keys.SwitchPanel, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) statusLine() string {
	if m.Status.Text == "" {
		return ""
	}
	if m.Status.IsError {
		return fmt.Sprintf("status: error: %s", m.Status.Text)
	}
	return fmt.Sprintf("status: %s", m.Status.Text)
}
