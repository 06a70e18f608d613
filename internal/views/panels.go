package views

import (
	"fmt"
	"strings"
)

type TasksPanelData struct {
	Theme     Theme
	ListView  string
	Done      int
	Total     int
	Adding    bool
	InputView string
}

func RenderTasksPanel(data TasksPanelData) string {
	th := data.Theme
	var b strings.Builder
	b.WriteString(th.header().Render("tasks") + th.fg(th.Muted).Render(fmt.Sprintf("  %d/%d done", data.Done, data.Total)) + "\n")
	if data.Adding {
		b.WriteString("new: " + data.InputView + "\n")
	}
	if data.Total == 0 {
		b.WriteString(th.fg(th.Muted).Render("(no tasks, press n to add one)") + "\n")
	} else {
		b.WriteString(data.ListView + "\n")
	}
	b.WriteString(th.fg(th.Muted).Render("[n]new [x]toggle [d]delete [c]clear done"))
	return b.String()
}

type NotesPanelData struct {
	Theme      Theme
	ListView   string
	Count      int
	Editing    bool
	EditorView string
	Preview    string
}

func RenderNotesPanel(data NotesPanelData) string {
	th := data.Theme
	var b strings.Builder
	b.WriteString(th.header().Render("notes") + th.fg(th.Muted).Render(fmt.Sprintf("  %d", data.Count)) + "\n")
	if data.Editing {
		b.WriteString(data.EditorView + "\n")
		b.WriteString(th.fg(th.Muted).Render("[ctrl+b]bold [ctrl+i]italic [ctrl+k]strike [ctrl+e]code [ctrl+h]heading [ctrl+l]bullet [ctrl+o]numbered [ctrl+q]quote [esc]save"))
		return b.String()
	}
	if data.Count == 0 {
		b.WriteString(th.fg(th.Muted).Render("(no notes, press n to create one)") + "\n")
	} else {
		b.WriteString(data.ListView + "\n")
		if data.Preview != "" {
			b.WriteString("\n" + data.Preview + "\n")
		}
	}
	b.WriteString(th.fg(th.Muted).Render("[n]new [enter]edit [y]copy [d]delete"))
	return b.String()
}

type HelpPanelData struct {
	Theme    Theme
	Panel    string
	Bindings []string
	HelpView string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s panel:\n%s\n%s",
		strings.ToLower(data.Panel),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

type StatsData struct {
	SessionsCompleted int
	TotalFocusMinutes int
	TasksDone         int
	TasksTotal        int
	Notes             int
}

func RenderStats(s StatsData) string {
	hours, mins := s.TotalFocusMinutes/60, s.TotalFocusMinutes%60
	return strings.Join([]string{
		fmt.Sprintf("sessions completed: %d", s.SessionsCompleted),
		fmt.Sprintf("total focus time:   %dh %02dm", hours, mins),
		fmt.Sprintf("tasks done:         %d/%d", s.TasksDone, s.TasksTotal),
		fmt.Sprintf("notes:              %d", s.Notes),
	}, "\n")
}
