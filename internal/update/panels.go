package update

import (
	"strings"
	"time"

	"github.com/sandeepkv93/pomodesk/internal/display"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

func (m Model) renderTimerPane() string {
	fr := m.sync.Primary()
	progressView := ""
	if fr.Style == display.StyleLinear {
		progressView = m.timerProgress.ViewAs(fr.Geometry.Filled())
	}
	return views.RenderTimerPanel(views.TimerPanelData{
		Theme:        m.Theme,
		Frame:        fr,
		ProgressView: progressView,
		Editing:      m.editingTime,
		InputView:    m.timeInput.View(),
	})
}

func (m Model) renderFullscreen() string {
	fr, _ := m.sync.Fullscreen()
	return views.RenderFullscreen(views.FullscreenData{
		Theme:        m.Theme,
		Frame:        fr,
		Quote:        m.sync.Quote(),
		Width:        m.Width,
		Height:       m.Height,
		ProgressView: m.timerProgress.ViewAs(fr.Geometry.Filled()),
	})
}

func (m Model) renderTasksPane() string {
	done, total := m.tasks.Counts()
	return views.RenderTasksPanel(views.TasksPanelData{
		Theme:     m.Theme,
		ListView:  m.tasksList.View(),
		Done:      done,
		Total:     total,
		Adding:    m.addingTask,
		InputView: m.taskInput.View(),
	})
}

func (m Model) renderNotesPane() string {
	return views.RenderNotesPanel(views.NotesPanelData{
		Theme:      m.Theme,
		ListView:   m.notesList.View(),
		Count:      len(m.notes.Items()),
		Editing:    m.editingNote != "",
		EditorView: m.notesArea.View(),
		Preview:    m.notePreview.View(),
	})
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return "\n\n" + views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}
