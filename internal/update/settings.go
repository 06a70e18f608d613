package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sandeepkv93/pomodesk/internal/notify"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

// settingsDraft holds the raw form text; nothing is applied until the form
// completes and every field parses.
type settingsDraft struct {
	Work     string
	Break    string
	Long     string
	Sessions string
}

type permissionDraft struct {
	Allow bool
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true).
		WithWidth(56)
}

func boundedInt(limit int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 || n > limit {
			return fmt.Errorf("enter a whole number from 1 to %d", limit)
		}
		return nil
	}
}

func (m *Model) openSettingsForm() tea.Cmd {
	s := m.engine.Settings()
	d := &settingsDraft{
		Work:     strconv.Itoa(s.WorkMinutes),
		Break:    strconv.Itoa(s.BreakMinutes),
		Long:     strconv.Itoa(s.LongBreakMinutes),
		Sessions: strconv.Itoa(s.SessionsBeforeLong),
	}
	m.settingsDraft = d
	m.formKind = formSettings
	m.form = newForm(
		huh.NewGroup(
			huh.NewInput().Title("Work duration (minutes)").Value(&d.Work).Validate(boundedInt(timer.MaxMinutes)),
			huh.NewInput().Title("Short break (minutes)").Value(&d.Break).Validate(boundedInt(timer.MaxMinutes)),
			huh.NewInput().Title("Long break (minutes)").Value(&d.Long).Validate(boundedInt(timer.MaxMinutes)),
			huh.NewInput().Title("Sessions before long break").Value(&d.Sessions).Validate(boundedInt(timer.MaxSessionsBeforeLong)),
		),
	)
	return m.form.Init()
}

func (m *Model) openPermissionForm() tea.Cmd {
	d := &permissionDraft{Allow: true}
	m.permissionDraft = d
	m.formKind = formPermission
	m.form = newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show desktop notifications?").
				Description("pomodesk can notify you when a focus session or break ends.").
				Affirmative("Allow").
				Negative("Not now").
				Value(&d.Allow),
		),
	)
	return m.form.Init()
}

func (m Model) formTitle() string {
	switch m.formKind {
	case formSettings:
		return "settings"
	case formPermission:
		return "notifications"
	default:
		return ""
	}
}

func (m *Model) completeForm() {
	kind := m.formKind
	m.form = nil
	m.formKind = formNone
	switch kind {
	case formSettings:
		if err := m.applySettings(m.settingsDraft); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			m.LastError = err
			return
		}
		m.Status = StatusBar{Text: "settings saved"}
	case formPermission:
		p := notify.PermissionDenied
		if m.permissionDraft != nil && m.permissionDraft.Allow {
			p = notify.PermissionGranted
		}
		m.answerPermission(p)
	}
	m.settingsDraft = nil
	m.permissionDraft = nil
}

func (m *Model) closeForm(reason string) {
	if m.formKind == formPermission {
		// Dismissing the prompt leaves the question open for next launch.
		reason = "notifications not enabled"
	}
	m.form = nil
	m.formKind = formNone
	m.settingsDraft = nil
	m.permissionDraft = nil
	m.Status = StatusBar{Text: reason}
}

// applySettings parses every field before touching the engine, so one bad
// value leaves all settings unchanged.
func (m *Model) applySettings(d *settingsDraft) error {
	if d == nil {
		return nil
	}
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"work duration", d.Work, new(int)},
		{"short break", d.Break, new(int)},
		{"long break", d.Long, new(int)},
		{"sessions before long break", d.Sessions, new(int)},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f.raw))
		if err != nil {
			return fmt.Errorf("%w: %s must be a number, got %q", timer.ErrInvalidSettings, f.name, f.raw)
		}
		*f.dst = n
	}
	return m.engine.SaveSettings(timer.Settings{
		WorkMinutes:        *fields[0].dst,
		BreakMinutes:       *fields[1].dst,
		LongBreakMinutes:   *fields[2].dst,
		SessionsBeforeLong: *fields[3].dst,
	})
}

func (m *Model) answerPermission(p notify.Permission) {
	notify.SavePermission(m.store, p)
	if m.dispatcher != nil {
		m.dispatcher.SetPermission(p)
	}
	if p == notify.PermissionGranted {
		m.Status = StatusBar{Text: "notifications enabled"}
		return
	}
	m.Status = StatusBar{Text: "notifications disabled"}
}
