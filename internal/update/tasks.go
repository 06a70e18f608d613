package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		m.taskCursor = clampIndex(m.taskCursor+1, len(m.tasks.Items()))
	case "k", "up":
		m.taskCursor = clampIndex(m.taskCursor-1, len(m.tasks.Items()))
	case "n":
		m.openTaskInput("", "")
	case "enter":
		if t, ok := m.selectedTask(); ok {
			m.openTaskInput(t.ID, t.Title)
		}
	case "x":
		t, ok := m.selectedTask()
		if !ok {
			return m
		}
		toggled, err := m.tasks.Toggle(t.ID)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		if toggled.Done {
			m.Status = StatusBar{Text: "done: " + toggled.Title}
		} else {
			m.Status = StatusBar{Text: "reopened: " + toggled.Title}
		}
	case "d":
		t, ok := m.selectedTask()
		if !ok {
			return m
		}
		if err := m.tasks.Delete(t.ID); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.taskCursor = clampIndex(m.taskCursor, len(m.tasks.Items()))
		m.Status = StatusBar{Text: "deleted: " + t.Title}
	case "c":
		n := m.tasks.ClearDone()
		m.taskCursor = clampIndex(m.taskCursor, len(m.tasks.Items()))
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d done task(s)", n)}
	}
	return m
}

func (m *Model) openTaskInput(id, value string) {
	m.addingTask = true
	m.taskInputFor = id
	m.taskInput.SetValue(value)
	m.taskInput.CursorEnd()
	m.taskInput.Focus()
}

func (m Model) handleTaskInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeTaskInput()
		return m
	case "enter":
		title := strings.TrimSpace(m.taskInput.Value())
		id := m.taskInputFor
		m.closeTaskInput()
		if id != "" {
			if err := m.tasks.Rename(id, title); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m
			}
			m.Status = StatusBar{Text: "renamed: " + title}
			return m
		}
		return m.addTask(title)
	}
	m.taskInput, _ = m.taskInput.Update(msg)
	return m
}

func (m *Model) closeTaskInput() {
	m.addingTask = false
	m.taskInputFor = ""
	m.taskInput.Blur()
	m.taskInput.SetValue("")
}

func (m Model) addTask(title string) Model {
	t, err := m.tasks.Add(title)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	m.taskCursor = len(m.tasks.Items()) - 1
	m.Status = StatusBar{Text: "added: " + t.Title}
	return m
}
