package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrExists = errors.New("config: file already exists")

type document struct {
	DBPath          string   `yaml:"db_path"`
	Notifications   bool     `yaml:"notifications"`
	Sound           bool     `yaml:"sound"`
	QuoteInterval   string   `yaml:"quote_interval"`
	QuoteFade       string   `yaml:"quote_fade"`
	TickInterval    string   `yaml:"tick_interval"`
	SchedulerBuffer int      `yaml:"scheduler_buffer"`
	Debug           bool     `yaml:"debug"`
	DebugLog        string   `yaml:"debug_log"`
	Defaults        defaults `yaml:"defaults"`
}

type defaults struct {
	WorkMinutes        int `yaml:"work_minutes"`
	BreakMinutes       int `yaml:"break_minutes"`
	LongBreakMinutes   int `yaml:"long_break_minutes"`
	SessionsBeforeLong int `yaml:"sessions_before_long"`
}

func toDocument(c Config) document {
	return document{
		DBPath:          c.DBPath,
		Notifications:   c.Notifications,
		Sound:           c.Sound,
		QuoteInterval:   c.QuoteInterval.String(),
		QuoteFade:       c.QuoteFade.String(),
		TickInterval:    c.TickInterval.String(),
		SchedulerBuffer: c.SchedulerBuffer,
		Debug:           c.Debug,
		DebugLog:        c.DebugLog,
		Defaults: defaults{
			WorkMinutes:        c.Defaults.WorkMinutes,
			BreakMinutes:       c.Defaults.BreakMinutes,
			LongBreakMinutes:   c.Defaults.LongBreakMinutes,
			SessionsBeforeLong: c.Defaults.SessionsBeforeLong,
		},
	}
}

// Encode writes c as YAML with durations in Go duration syntax.
func Encode(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(c)); err != nil {
		return fmt.Errorf("config encode: %w", err)
	}
	return enc.Close()
}

// WriteFile writes c to path, creating parent directories. An existing file
// is only replaced when force is set.
func WriteFile(path string, c Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config create: %w", err)
	}
	if err := Encode(f, c); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
