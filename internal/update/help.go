package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/pomodesk/internal/commands"
	"github.com/sandeepkv93/pomodesk/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	global := toKeyBindings(m.globalBindings())
	panel := toKeyBindings(m.panelBindings())
	h := m.helpModel
	h.ShowAll = true
	var plain []string
	for _, kb := range m.panelBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	plain = append(plain, fmt.Sprintf("- commands: %v", commands.Names))
	return views.RenderHelpPanel(views.HelpPanelData{
		Theme:    m.Theme,
		Panel:    string(m.Panel),
		Bindings: plain,
		HelpView: h.View(helpKeyMap{short: global, full: [][]key.Binding{global, panel}}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "space", Action: "start/pause timer"},
		{Key: m.Keys.Reset, Action: "reset timer"},
		{Key: m.Keys.EditTime, Action: "edit time"},
		{Key: m.Keys.Settings, Action: "settings"},
		{Key: m.Keys.Style, Action: "circular/linear"},
		{Key: m.Keys.Intensity, Action: "animation intensity"},
		{Key: m.Keys.Fullscreen, Action: "fullscreen"},
		{Key: m.Keys.SwitchPanel, Action: "tasks/notes"},
		{Key: m.Keys.Theme, Action: "light/dark"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) panelBindings() []KeyBinding {
	if m.Panel == PanelNotes {
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "n", Action: "new note"},
			{Key: "enter", Action: "edit note"},
			{Key: "y", Action: "copy to clipboard"},
			{Key: "d", Action: "delete note"},
			{Key: "ctrl+b/i/k/e", Action: "bold/italic/strike/code"},
			{Key: "ctrl+h/l/o/q", Action: "heading/bullet/numbered/quote"},
		}
	}
	return []KeyBinding{
		{Key: "j/k", Action: "move cursor"},
		{Key: "n", Action: "new task"},
		{Key: "enter", Action: "rename task"},
		{Key: "x", Action: "toggle done"},
		{Key: "d", Action: "delete task"},
		{Key: "c", Action: "clear done"},
	}
}

func toKeyBindings(kbs []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(kbs))
	for _, kb := range kbs {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
