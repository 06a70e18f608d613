package notify

import (
	"sync"

	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

type Sound interface {
	Play() error
}

type Notifier interface {
	Notify(title, body string) error
}

// Options toggles the two effects independently.
type Options struct {
	SoundEnabled         bool
	NotificationsEnabled bool
}

// Dispatcher fires the completion side effects. Both effects are
// fire-and-forget: the runner executes them off the caller's goroutine and
// failures are only logged.
type Dispatcher struct {
	mu         sync.Mutex
	sound      Sound
	notifier   Notifier
	permission Permission
	opts       Options
	run        func(func())
}

type DispatcherOption func(*Dispatcher)

// WithRunner replaces the goroutine runner; tests pass a synchronous one.
func WithRunner(run func(func())) DispatcherOption {
	return func(d *Dispatcher) {
		if run != nil {
			d.run = run
		}
	}
}

func NewDispatcher(sound Sound, notifier Notifier, perm Permission, opts Options, extra ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sound:      sound,
		notifier:   notifier,
		permission: perm,
		opts:       opts,
		run:        func(fn func()) { go fn() },
	}
	for _, opt := range extra {
		opt(d)
	}
	return d
}

func (d *Dispatcher) SetPermission(p Permission) {
	d.mu.Lock()
	d.permission = p
	d.mu.Unlock()
}

func (d *Dispatcher) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.permission
}

func (d *Dispatcher) SetOptions(opts Options) {
	d.mu.Lock()
	d.opts = opts
	d.mu.Unlock()
}

// NeedsPrompt reports whether the user has not answered the permission
// question yet.
func (d *Dispatcher) NeedsPrompt() bool {
	return d.Permission() == PermissionDefault
}

func (d *Dispatcher) SessionEnded(finished timer.Mode) {
	d.mu.Lock()
	sound, notifier := d.sound, d.notifier
	opts, perm := d.opts, d.permission
	d.mu.Unlock()

	if opts.SoundEnabled && sound != nil {
		d.run(func() {
			if err := sound.Play(); err != nil {
				debug.Log("notify: sound playback failed: %v", err)
			}
		})
	}
	if !opts.NotificationsEnabled || perm != PermissionGranted || notifier == nil {
		debug.LogIf(opts.NotificationsEnabled && perm != PermissionGranted, "notify: skipped, permission %s", perm)
		return
	}
	title, body := Message(finished)
	d.run(func() {
		if err := notifier.Notify(title, body); err != nil {
			debug.Log("notify: notification failed: %v", err)
		}
	})
}

func Message(finished timer.Mode) (string, string) {
	if finished.IsBreak() {
		return "Break is over", "Time to focus!"
	}
	return "Focus session complete", "Take a break!"
}
