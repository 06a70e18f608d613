package timer

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/scheduler"
	"github.com/sandeepkv93/pomodesk/internal/storage"
)

// Completer receives the side effects of a finished countdown. It must not
// block; the engine does not wait for or inspect the outcome.
type Completer interface {
	SessionEnded(finished Mode)
}

type Controls struct {
	StartEnabled bool
	PauseEnabled bool
}

type Snapshot struct {
	TimeLeft          int
	Running           bool
	Mode              Mode
	ModeDuration      int
	Span              int
	SessionsCompleted int
	TotalFocusMinutes int
	Settings          Settings
	Controls          Controls
}

// Engine owns the countdown, the mode sequence and the timer settings.
//
// Engine is not safe for concurrent use. Every call, including the tick
// callback, must come from the goroutine that owns the UI (the bubbletea
// Update loop runs tick fires there).
type Engine struct {
	clock     scheduler.Clock
	store     *storage.Store
	completer Completer
	interval  time.Duration

	settings          Settings
	mode              Mode
	timeLeft          int
	span              int
	running           bool
	sessionsCompleted int
	totalFocusMinutes int

	tick scheduler.Handle

	subs    map[int]func(Snapshot)
	order   []int
	nextSub int
}

type Option func(*Engine)

func WithCompleter(c Completer) Option {
	return func(e *Engine) { e.completer = c }
}

// WithTickInterval overrides the one-second tick, mostly for tests.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithDefaults sets the settings used when the store holds none.
func WithDefaults(s Settings) Option {
	return func(e *Engine) { e.settings = s.withFallback(DefaultSettings()) }
}

// New loads settings and counters from store and returns a paused engine in
// Work mode.
func New(clock scheduler.Clock, store *storage.Store, opts ...Option) *Engine {
	if store == nil {
		store = storage.NewStore(nil)
	}
	e := &Engine{
		clock:    clock,
		store:    store,
		interval: time.Second,
		settings: DefaultSettings(),
		mode:     ModeWork,
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load()
	e.timeLeft = e.settings.Seconds(ModeWork)
	e.span = e.timeLeft
	return e
}

func (e *Engine) load() {
	def := e.settings
	loaded := Settings{
		WorkMinutes:        storage.Get(e.store, storage.KeyWorkDuration, def.WorkMinutes),
		BreakMinutes:       storage.Get(e.store, storage.KeyBreakDuration, def.BreakMinutes),
		LongBreakMinutes:   storage.Get(e.store, storage.KeyLongBreakDuration, def.LongBreakMinutes),
		SessionsBeforeLong: storage.Get(e.store, storage.KeySessionsBeforeLong, def.SessionsBeforeLong),
	}
	e.settings = loaded.withFallback(def)
	e.sessionsCompleted = max(0, storage.Get(e.store, storage.KeySessionsCompleted, 0))
	e.totalFocusMinutes = max(0, storage.Get(e.store, storage.KeyTotalFocusMinutes, 0))
}

// Subscribe registers fn for every state change and returns its
// unsubscribe function. fn runs synchronously inside the operation that
// changed the state.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	e.nextSub++
	id := e.nextSub
	e.subs[id] = fn
	e.order = append(e.order, id)
	return func() {
		if _, ok := e.subs[id]; !ok {
			return
		}
		delete(e.subs, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		TimeLeft:          e.timeLeft,
		Running:           e.running,
		Mode:              e.mode,
		ModeDuration:      e.settings.Seconds(e.mode),
		Span:              e.span,
		SessionsCompleted: e.sessionsCompleted,
		TotalFocusMinutes: e.totalFocusMinutes,
		Settings:          e.settings,
		Controls:          Controls{StartEnabled: !e.running, PauseEnabled: e.running},
	}
}

func (e *Engine) Settings() Settings { return e.settings }

func (e *Engine) Running() bool { return e.running }

// Start begins counting down. Starting a running timer is a no-op.
func (e *Engine) Start() {
	if e.running {
		return
	}
	if e.timeLeft <= 0 {
		e.timeLeft = e.settings.Seconds(e.mode)
		e.span = e.timeLeft
	}
	e.running = true
	e.tick = scheduler.Replace(e.tick, func() scheduler.Handle {
		return e.clock.Every(e.interval, e.Tick)
	})
	e.publish()
}

// Pause stops the countdown. Pausing a paused timer is a no-op.
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.halt()
	e.publish()
}

// Reset pauses and restores the full duration of the current mode.
func (e *Engine) Reset() {
	e.halt()
	e.timeLeft = e.settings.Seconds(e.mode)
	e.span = e.timeLeft
	e.publish()
}

// Tick accounts for one elapsed interval. Reaching zero completes the
// countdown instead of going negative.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	e.timeLeft--
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.Complete()
		return
	}
	e.publish()
}

// Complete finishes the current countdown and moves to the next mode,
// paused. A finished Work countdown is credited to the session counters.
func (e *Engine) Complete() {
	finished := e.mode
	e.halt()
	if e.completer != nil {
		e.completer.SessionEnded(finished)
	}
	if finished == ModeWork {
		e.sessionsCompleted++
		e.totalFocusMinutes += e.settings.WorkMinutes
		e.store.Set(storage.KeySessionsCompleted, e.sessionsCompleted)
		e.store.Set(storage.KeyTotalFocusMinutes, e.totalFocusMinutes)
		debug.Log("timer: work session %d complete, %d focus minutes", e.sessionsCompleted, e.totalFocusMinutes)
	}
	e.enter(e.nextMode(finished))
}

// Skip abandons the current countdown without crediting it and moves to
// the next mode, paused.
func (e *Engine) Skip() {
	e.halt()
	if e.mode == ModeWork {
		e.enter(ModeShortBreak)
		return
	}
	e.enter(ModeWork)
}

// SetCustomTime overrides the remaining time of the current countdown. The
// override is not persisted and does not change the mode.
func (e *Engine) SetCustomTime(minutes int) error {
	if e.running {
		return ErrRunning
	}
	if !ValidMinutes(minutes) {
		return fmt.Errorf("%w: minutes must be between 1 and %d, got %d", ErrInvalidSettings, MaxMinutes, minutes)
	}
	e.timeLeft = minutes * 60
	e.span = e.timeLeft
	e.publish()
	return nil
}

// SaveSettings validates, persists and applies s, then resets the current
// countdown. Invalid settings change nothing.
func (e *Engine) SaveSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		debug.Log("timer: rejected settings %+v: %v", s, err)
		return err
	}
	e.settings = s
	e.store.Set(storage.KeyWorkDuration, s.WorkMinutes)
	e.store.Set(storage.KeyBreakDuration, s.BreakMinutes)
	e.store.Set(storage.KeyLongBreakDuration, s.LongBreakMinutes)
	e.store.Set(storage.KeySessionsBeforeLong, s.SessionsBeforeLong)
	e.Reset()
	return nil
}

// Close cancels the tick source without publishing.
func (e *Engine) Close() {
	e.halt()
}

func (e *Engine) nextMode(finished Mode) Mode {
	if finished != ModeWork {
		return ModeWork
	}
	if e.sessionsCompleted%e.settings.SessionsBeforeLong == 0 {
		return ModeLongBreak
	}
	return ModeShortBreak
}

func (e *Engine) enter(mode Mode) {
	e.mode = mode
	e.timeLeft = e.settings.Seconds(mode)
	e.span = e.timeLeft
	e.publish()
}

func (e *Engine) halt() {
	scheduler.Cancel(e.tick)
	e.tick = nil
	e.running = false
}

func (e *Engine) publish() {
	if len(e.order) == 0 {
		return
	}
	snap := e.Snapshot()
	ids := append([]int(nil), e.order...)
	for _, id := range ids {
		if fn, ok := e.subs[id]; ok {
			fn(snap)
		}
	}
}
