package update

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/pomodesk/internal/notes"
)

// editorFormats maps editor shortcuts to markdown toggles. Terminals send
// ctrl+i as tab.
var editorFormats = map[string]notes.Format{
	"ctrl+b": notes.Bold,
	"ctrl+i": notes.Italic,
	"tab":    notes.Italic,
	"ctrl+k": notes.Strike,
	"ctrl+e": notes.Code,
	"ctrl+h": notes.Heading,
	"ctrl+l": notes.Bullet,
	"ctrl+o": notes.Numbered,
	"ctrl+q": notes.Quote,
}

func (m Model) handleNotesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.noteCursor = clampIndex(m.noteCursor+1, len(m.notes.Items()))
	case "k", "up":
		m.noteCursor = clampIndex(m.noteCursor-1, len(m.notes.Items()))
	case "n":
		n := m.notes.Create()
		m.noteCursor = m.noteIndex(n.ID)
		return m.openNoteEditor(n.ID, n.Body)
	case "enter":
		if n, ok := m.selectedNote(); ok {
			return m.openNoteEditor(n.ID, n.Body)
		}
	case "y":
		n, ok := m.selectedNote()
		if !ok {
			return m, nil
		}
		if err := notes.Copy(n); err != nil {
			text := "copy failed: " + err.Error()
			if errors.Is(err, notes.ErrClipboardUnavailable) {
				text = "clipboard is not available on this system"
			}
			m.Status = StatusBar{Text: text, IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "copied: " + n.Title()}
	case "d":
		n, ok := m.selectedNote()
		if !ok {
			return m, nil
		}
		if err := m.notes.Delete(n.ID); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.noteCursor = clampIndex(m.noteCursor, len(m.notes.Items()))
		m.Status = StatusBar{Text: "deleted: " + n.Title()}
	}
	return m, nil
}

func (m Model) openNoteEditor(id, body string) (Model, tea.Cmd) {
	m.editingNote = id
	m.notesArea.SetValue(body)
	cmd := m.notesArea.Focus()
	m.Status = StatusBar{Text: "editing note, esc saves"}
	return m, cmd
}

func (m Model) handleNoteEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "esc" {
		return m.saveNote(), nil
	}
	if f, ok := editorFormats[keyStr]; ok {
		m.formatCurrentLine(f)
		return m, nil
	}
	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}

// formatCurrentLine toggles f on the cursor's line and leaves the cursor at
// the end of that line.
func (m *Model) formatCurrentLine(f notes.Format) {
	row := m.notesArea.Line()
	body := notes.ApplyFormat(m.notesArea.Value(), row, f)
	if body == m.notesArea.Value() {
		return
	}
	m.notesArea.SetValue(body)
	for guard := notes.LineCount(body); m.notesArea.Line() > row && guard > 0; guard-- {
		m.notesArea.CursorUp()
	}
	m.notesArea.CursorEnd()
}

func (m Model) saveNote() Model {
	id := m.editingNote
	body := m.notesArea.Value()
	m.editingNote = ""
	m.notesArea.Blur()
	m.notesArea.Reset()

	if strings.TrimSpace(body) == "" {
		if err := m.notes.Delete(id); err == nil {
			m.Status = StatusBar{Text: "discarded empty note"}
		}
		m.noteCursor = clampIndex(m.noteCursor, len(m.notes.Items()))
		return m
	}
	n, err := m.notes.Update(id, body)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	m.noteCursor = m.noteIndex(n.ID)
	m.Status = StatusBar{Text: "saved: " + n.Title()}
	return m
}

func (m Model) noteIndex(id string) int {
	for i, n := range m.notes.Items() {
		if n.ID == id {
			return i
		}
	}
	return 0
}
