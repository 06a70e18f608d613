package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Colours are hex so they can be blended.
type Theme struct {
	Name       string
	Background string
	Text       string
	Muted      string
	Accent     string
	Break      string
	LowTime    string
	Critical   string
	Border     string
	Error      string
	Markdown   string
}

var (
	DarkTheme = Theme{
		Name:       "dark",
		Background: "#1e1e2e",
		Text:       "#cdd6f4",
		Muted:      "#7f849c",
		Accent:     "#89b4fa",
		Break:      "#a6e3a1",
		LowTime:    "#f9e2af",
		Critical:   "#f38ba8",
		Border:     "#45475a",
		Error:      "#f38ba8",
		Markdown:   "dark",
	}
	LightTheme = Theme{
		Name:       "light",
		Background: "#eff1f5",
		Text:       "#4c4f69",
		Muted:      "#8c8fa1",
		Accent:     "#1e66f5",
		Break:      "#40a02b",
		LowTime:    "#df8e1d",
		Critical:   "#d20f39",
		Border:     "#bcc0cc",
		Error:      "#d20f39",
		Markdown:   "light",
	}
)

// ThemeByName falls back to the dark theme for unknown names.
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), LightTheme.Name) {
		return LightTheme
	}
	return DarkTheme
}

func (t Theme) Toggle() Theme {
	if t.Name == LightTheme.Name {
		return DarkTheme
	}
	return LightTheme
}

func (t Theme) fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func (t Theme) header() lipgloss.Style {
	return t.fg(t.Accent).Bold(true)
}

func (t Theme) status() lipgloss.Style {
	return t.fg(t.Break)
}

func (t Theme) errorStyle() lipgloss.Style {
	return t.fg(t.Error)
}

func (t Theme) footer() lipgloss.Style {
	return t.fg(t.Muted)
}

func (t Theme) panel(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}
