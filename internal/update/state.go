package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/sandeepkv93/pomodesk/internal/model"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

func loadTheme(store *storage.Store) views.Theme {
	return views.ThemeByName(storage.Get(store, storage.KeyTheme, views.DarkTheme.Name))
}

func (m *Model) setTheme(th views.Theme) {
	m.Theme = th
	m.store.Set(storage.KeyTheme, th.Name)
}

func (m *Model) selectedTask() (model.Task, bool) {
	items := m.tasks.Items()
	if len(items) == 0 {
		return model.Task{}, false
	}
	m.taskCursor = clampIndex(m.taskCursor, len(items))
	return items[m.taskCursor], true
}

func (m *Model) selectedNote() (model.Note, bool) {
	items := m.notes.Items()
	if len(items) == 0 {
		return model.Note{}, false
	}
	m.noteCursor = clampIndex(m.noteCursor, len(items))
	return items[m.noteCursor], true
}

// syncBubbleData pushes domain state into the bubble components. It runs
// after every Update.
func (m *Model) syncBubbleData() {
	_, sideW := paneSizes(m.Width)
	listH := max(6, m.Height-18)
	m.tasksList.SetSize(sideW, listH)
	m.notesList.SetSize(sideW, max(4, listH/2))
	m.notesArea.SetWidth(sideW)
	m.notePreview.Width = sideW
	m.notePreview.Height = max(4, listH/2)

	tasks := m.tasks.Items()
	taskItems := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		box := "[ ]"
		desc := "open"
		if t.Done {
			box = "[x]"
			desc = "done"
			if t.CompletedAt != nil {
				desc = fmt.Sprintf("done %s", t.CompletedAt.Local().Format("Jan 2 15:04"))
			}
		}
		taskItems = append(taskItems, listItem{title: box + " " + t.Title, description: desc})
	}
	m.tasksList.SetItems(taskItems)
	if len(taskItems) > 0 {
		m.taskCursor = clampIndex(m.taskCursor, len(taskItems))
		m.tasksList.Select(m.taskCursor)
	}

	noteList := m.notes.Items()
	noteItems := make([]list.Item, 0, len(noteList))
	for _, n := range noteList {
		noteItems = append(noteItems, listItem{
			title:       n.Title(),
			description: "edited " + n.UpdatedAt.Local().Format("Jan 2 15:04"),
		})
	}
	m.notesList.SetItems(noteItems)
	if len(noteItems) > 0 {
		m.noteCursor = clampIndex(m.noteCursor, len(noteItems))
		m.notesList.Select(m.noteCursor)
	}
	if n, ok := m.selectedNote(); ok {
		key := fmt.Sprintf("%s|%d|%s|%d", n.ID, n.UpdatedAt.UnixNano(), m.Theme.Name, sideW)
		if key != m.previewKey {
			m.previewKey = key
			m.notePreview.SetContent(views.RenderMarkdown(n.Body, m.Theme, sideW))
		}
	} else {
		m.previewKey = ""
		m.notePreview.SetContent("")
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

func paneSizes(width int) (int, int) {
	if width <= 0 {
		return 44, 54
	}
	usable := width - 8
	left := min(44, max(30, usable*2/5))
	return left, max(30, usable-left)
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
