package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Theme        Theme
	Width        int
	Header       string
	TimerPane    string
	SidePane     string
	SideFocused  bool
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
}

const (
	minPaneWidth = 30
	timerPaneMax = 44
)

// RenderApp lays out the main screen: timer on the left, the focused
// collaborator panel on the right.
func RenderApp(data AppData) string {
	th := data.Theme
	if th.Name == "" {
		th = DarkTheme
	}
	leftW, rightW := paneWidths(data.Width)
	left := th.panel(!data.SideFocused).Width(leftW).Render(data.TimerPane)
	right := th.panel(data.SideFocused).Width(rightW).Render(data.SidePane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := th.status().Render(data.StatusLine)
	if data.StatusError {
		status = th.errorStyle().Render(data.StatusLine)
	}

	lines := []string{
		th.header().Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, th.panel(false).Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, th.footer().Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func paneWidths(total int) (int, int) {
	if total <= 0 {
		return timerPaneMax, 58
	}
	// Each pane adds two border and two padding columns.
	usable := total - 8
	left := min(timerPaneMax, max(minPaneWidth, usable*2/5))
	right := max(minPaneWidth, usable-left)
	return left, right
}

// RenderMarkdown renders md with the theme's glamour style, falling back to
// the raw text.
func RenderMarkdown(md string, th Theme, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := th.Markdown
	if style == "" {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
