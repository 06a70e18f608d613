// Package config loads pomodesk's runtime configuration from a YAML file,
// POMODESK_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/pomodesk/internal/debug"
)

const envPrefix = "POMODESK"

// TimerDefaults seed the timer settings when the store holds none.
type TimerDefaults struct {
	WorkMinutes        int `mapstructure:"work_minutes"`
	BreakMinutes       int `mapstructure:"break_minutes"`
	LongBreakMinutes   int `mapstructure:"long_break_minutes"`
	SessionsBeforeLong int `mapstructure:"sessions_before_long"`
}

type Config struct {
	DBPath          string        `mapstructure:"db_path"`
	Notifications   bool          `mapstructure:"notifications"`
	Sound           bool          `mapstructure:"sound"`
	QuoteInterval   time.Duration `mapstructure:"quote_interval"`
	QuoteFade       time.Duration `mapstructure:"quote_fade"`
	TickInterval    time.Duration `mapstructure:"tick_interval"`
	SchedulerBuffer int           `mapstructure:"scheduler_buffer"`
	Debug           bool          `mapstructure:"debug"`
	DebugLog        string        `mapstructure:"debug_log"`
	Defaults        TimerDefaults `mapstructure:"defaults"`
}

func Default() Config {
	return Config{
		DBPath:          defaultDBPath(),
		Notifications:   true,
		Sound:           true,
		QuoteInterval:   5 * time.Minute,
		QuoteFade:       600 * time.Millisecond,
		TickInterval:    time.Second,
		SchedulerBuffer: 64,
		DebugLog:        "pomodesk-debug.log",
		Defaults: TimerDefaults{
			WorkMinutes:        25,
			BreakMinutes:       5,
			LongBreakMinutes:   15,
			SessionsBeforeLong: 4,
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/pomodesk/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pomodesk", "config.yaml"), nil
}

func defaultDBPath() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); dir != "" {
		return filepath.Join(dir, "pomodesk", "pomodesk.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pomodesk.db"
	}
	return filepath.Join(home, ".local", "share", "pomodesk", "pomodesk.db")
}

// Loader owns one viper instance so that Load and Watch agree on the file.
type Loader struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// NewLoader reads path, or DefaultPath when path is empty.
func NewLoader(path string) (*Loader, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
		path = p
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("notifications", def.Notifications)
	v.SetDefault("sound", def.Sound)
	v.SetDefault("quote_interval", def.QuoteInterval)
	v.SetDefault("quote_fade", def.QuoteFade)
	v.SetDefault("tick_interval", def.TickInterval)
	v.SetDefault("scheduler_buffer", def.SchedulerBuffer)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("debug_log", def.DebugLog)
	v.SetDefault("defaults.work_minutes", def.Defaults.WorkMinutes)
	v.SetDefault("defaults.break_minutes", def.Defaults.BreakMinutes)
	v.SetDefault("defaults.long_break_minutes", def.Defaults.LongBreakMinutes)
	v.SetDefault("defaults.sessions_before_long", def.Defaults.SessionsBeforeLong)

	return &Loader{v: v, path: path}, nil
}

func (l *Loader) Path() string { return l.path }

// Load reads the file if it exists. A missing file is not an error; a
// malformed one is.
func (l *Loader) Load() (Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("config read %s: %w", l.path, err)
		}
	}
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("config unmarshal: %w", err)
	}
	return sanitize(cfg), nil
}

// Watch calls fn with the reloaded config after every change to the file.
// fn runs on the watcher goroutine. Watching a file that does not exist yet
// is skipped.
func (l *Loader) Watch(fn func(Config)) {
	if _, err := os.Stat(l.path); err != nil {
		debug.Log("config: not watching %s: %v", l.path, err)
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.Load()
		if err != nil {
			debug.Log("config: reload after %s failed: %v", e.Op, err)
			return
		}
		debug.Log("config: reloaded after %s", e.Op)
		fn(cfg)
	})
	l.v.WatchConfig()
}

// sanitize replaces non-positive numbers and durations with defaults.
func sanitize(cfg Config) Config {
	def := Default()
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.QuoteInterval <= 0 {
		cfg.QuoteInterval = def.QuoteInterval
	}
	if cfg.QuoteFade < 0 {
		cfg.QuoteFade = def.QuoteFade
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.SchedulerBuffer <= 0 {
		cfg.SchedulerBuffer = def.SchedulerBuffer
	}
	if cfg.Defaults.WorkMinutes <= 0 {
		cfg.Defaults.WorkMinutes = def.Defaults.WorkMinutes
	}
	if cfg.Defaults.BreakMinutes <= 0 {
		cfg.Defaults.BreakMinutes = def.Defaults.BreakMinutes
	}
	if cfg.Defaults.LongBreakMinutes <= 0 {
		cfg.Defaults.LongBreakMinutes = def.Defaults.LongBreakMinutes
	}
	if cfg.Defaults.SessionsBeforeLong <= 0 {
		cfg.Defaults.SessionsBeforeLong = def.Defaults.SessionsBeforeLong
	}
	return cfg
}
