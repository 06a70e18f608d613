package timer

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sandeepkv93/pomodesk/internal/scheduler"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/storage/storagetest"
)

type recordingCompleter struct {
	finished []Mode
}

func (r *recordingCompleter) SessionEnded(m Mode) { r.finished = append(r.finished, m) }

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *scheduler.Manual, *recordingCompleter) {
	t.Helper()
	clock := scheduler.NewManual()
	rec := &recordingCompleter{}
	opts = append([]Option{WithCompleter(rec)}, opts...)
	e := New(clock, storage.NewStore(storage.NewMemoryRepository()), opts...)
	return e, clock, rec
}

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }

func TestNewEngineDefaults(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	s := e.Snapshot()
	if s.Mode != ModeWork || s.Running || s.TimeLeft != 25*60 {
		t.Fatalf("unexpected initial snapshot: %+v", s)
	}
	if !s.Controls.StartEnabled || s.Controls.PauseEnabled {
		t.Fatalf("unexpected initial controls: %+v", s.Controls)
	}
	if clock.ActiveCount() != 0 {
		t.Fatalf("expected no tick source before start, got %d", clock.ActiveCount())
	}
}

func TestStartTwiceKeepsSingleTickSource(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	e.Start()
	if clock.ActiveCount() != 1 {
		t.Fatalf("expected exactly one tick source, got %d", clock.ActiveCount())
	}

	clock.Advance(10 * time.Second)
	if got := e.Snapshot().TimeLeft; got != 25*60-10 {
		t.Fatalf("expected single-speed countdown, got %d", got)
	}
	s := e.Snapshot()
	if s.Controls.StartEnabled || !s.Controls.PauseEnabled {
		t.Fatalf("unexpected running controls: %+v", s.Controls)
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	publishes := 0
	e.Subscribe(func(Snapshot) { publishes++ })

	e.Pause()
	if publishes != 0 {
		t.Fatalf("expected pause on paused timer to be silent, got %d publishes", publishes)
	}

	e.Start()
	clock.Advance(3 * time.Second)
	e.Pause()
	before := e.Snapshot()
	count := publishes
	e.Pause()
	if e.Snapshot() != before || publishes != count {
		t.Fatalf("expected second pause to change nothing")
	}
	clock.Advance(time.Minute)
	if e.Snapshot().TimeLeft != before.TimeLeft {
		t.Fatalf("expected no ticks while paused")
	}
	if clock.ActiveCount() != 0 {
		t.Fatalf("expected tick source cancelled, got %d", clock.ActiveCount())
	}
}

func TestWorkSessionCompletesExactlyOnce(t *testing.T) {
	e, clock, rec := newTestEngine(t)
	e.Start()
	clock.Advance(1500 * time.Second)

	s := e.Snapshot()
	if len(rec.finished) != 1 || rec.finished[0] != ModeWork {
		t.Fatalf("expected one work completion, got %v", rec.finished)
	}
	if s.Mode != ModeShortBreak || s.SessionsCompleted != 1 || s.TotalFocusMinutes != 25 {
		t.Fatalf("unexpected state after work session: %+v", s)
	}
	if s.Running || s.TimeLeft != 5*60 {
		t.Fatalf("expected paused short break at full length, got %+v", s)
	}

	clock.Advance(time.Hour)
	if len(rec.finished) != 1 || e.Snapshot().TimeLeft != 5*60 {
		t.Fatal("expected no auto-restart after completion")
	}
}

func TestTimeLeftNeverNegative(t *testing.T) {
	e, clock, rec := newTestEngine(t)
	lowest := e.Snapshot().TimeLeft
	e.Subscribe(func(s Snapshot) {
		if s.TimeLeft < lowest {
			lowest = s.TimeLeft
		}
	})
	if err := e.SetCustomTime(1); err != nil {
		t.Fatalf("set custom time: %v", err)
	}
	e.Start()
	clock.Advance(59 * time.Second)
	if got := e.Snapshot().TimeLeft; got != 1 {
		t.Fatalf("expected 1 second left, got %d", got)
	}
	clock.Advance(5 * time.Second)
	if lowest < 0 {
		t.Fatalf("time went negative: %d", lowest)
	}
	if len(rec.finished) != 1 {
		t.Fatalf("expected one completion, got %d", len(rec.finished))
	}
}

func TestLongBreakAfterConfiguredSessions(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	var breaks []Mode
	for i := 0; i < 8; i++ {
		e.Start()
		clock.Advance(minutes(25))
		breaks = append(breaks, e.Snapshot().Mode)
		e.Start()
		clock.Advance(minutes(e.Snapshot().TimeLeft / 60))
		if e.Snapshot().Mode != ModeWork {
			t.Fatalf("expected return to work after break %d", i+1)
		}
	}
	want := []Mode{ModeShortBreak, ModeShortBreak, ModeShortBreak, ModeLongBreak, ModeShortBreak, ModeShortBreak, ModeShortBreak, ModeLongBreak}
	for i := range want {
		if breaks[i] != want[i] {
			t.Fatalf("completion %d: got %s, want %s (all: %v)", i+1, breaks[i], want[i], breaks)
		}
	}
	if got := e.Snapshot().SessionsCompleted; got != 8 {
		t.Fatalf("expected 8 sessions, got %d", got)
	}
}

func TestBreakCompletionDoesNotCountSession(t *testing.T) {
	e, clock, rec := newTestEngine(t)
	e.Start()
	clock.Advance(minutes(25))
	e.Start()
	clock.Advance(minutes(5))

	s := e.Snapshot()
	if s.SessionsCompleted != 1 || s.TotalFocusMinutes != 25 {
		t.Fatalf("break changed counters: %+v", s)
	}
	if len(rec.finished) != 2 || rec.finished[1] != ModeShortBreak {
		t.Fatalf("unexpected completions: %v", rec.finished)
	}
}

func TestResetUsesCurrentModeDuration(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	clock.Advance(minutes(25))
	e.Start()
	clock.Advance(42 * time.Second)

	e.Reset()
	s := e.Snapshot()
	if s.Mode != ModeShortBreak || s.TimeLeft != 5*60 || s.Running {
		t.Fatalf("unexpected state after reset: %+v", s)
	}
	if clock.ActiveCount() != 0 {
		t.Fatalf("expected reset to cancel tick source, got %d", clock.ActiveCount())
	}
}

func TestSaveSettingsRejectsInvalidInput(t *testing.T) {
	repo := storagetest.NewFlakyRepository()
	e := New(scheduler.NewManual(), storage.NewStore(repo))
	if err := e.SetCustomTime(7); err != nil {
		t.Fatalf("set custom time: %v", err)
	}
	before := e.Snapshot()

	bad := DefaultSettings()
	bad.WorkMinutes = -5
	err := e.SaveSettings(bad)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	if e.Snapshot() != before {
		t.Fatalf("expected no state change, got %+v", e.Snapshot())
	}
	if repo.Writes() != 0 {
		t.Fatalf("expected nothing persisted, got %d writes", repo.Writes())
	}
}

func TestSaveSettingsPersistsAndResets(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryRepository())
	clock := scheduler.NewManual()
	e := New(clock, store)
	e.Start()
	clock.Advance(time.Minute)

	next := Settings{WorkMinutes: 50, BreakMinutes: 10, LongBreakMinutes: 30, SessionsBeforeLong: 2}
	if err := e.SaveSettings(next); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	s := e.Snapshot()
	if s.Running || s.TimeLeft != 50*60 || s.Settings != next {
		t.Fatalf("unexpected state after save: %+v", s)
	}

	reloaded := New(scheduler.NewManual(), store)
	if reloaded.Settings() != next {
		t.Fatalf("settings not persisted: %+v", reloaded.Settings())
	}
}

func TestSetCustomTimeRules(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if err := e.SetCustomTime(0); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings for zero minutes, got %v", err)
	}
	if err := e.SetCustomTime(90); err != nil {
		t.Fatalf("set custom time: %v", err)
	}
	s := e.Snapshot()
	if s.TimeLeft != 90*60 || s.Mode != ModeWork || s.Settings.WorkMinutes != 25 {
		t.Fatalf("unexpected custom time state: %+v", s)
	}
	e.Start()
	if err := e.SetCustomTime(10); !errors.Is(err, ErrRunning) {
		t.Fatalf("expected ErrRunning, got %v", err)
	}
}

func TestCountersPersistAcrossEngines(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryRepository())
	clock := scheduler.NewManual()
	e := New(clock, store)
	e.Start()
	clock.Advance(minutes(25))

	reloaded := New(scheduler.NewManual(), store)
	s := reloaded.Snapshot()
	if s.SessionsCompleted != 1 || s.TotalFocusMinutes != 25 {
		t.Fatalf("counters not persisted: %+v", s)
	}
	if s.Mode != ModeWork || s.TimeLeft != 25*60 {
		t.Fatalf("expected fresh work countdown on reload, got %+v", s)
	}
}

func TestStoreWriteFailureDoesNotBlockTransition(t *testing.T) {
	repo := storagetest.NewFlakyRepository()
	repo.FailWrites(true)
	clock := scheduler.NewManual()
	e := New(clock, storage.NewStore(repo))
	e.Start()
	clock.Advance(minutes(25))

	s := e.Snapshot()
	if s.Mode != ModeShortBreak || s.SessionsCompleted != 1 {
		t.Fatalf("expected transition despite write failure: %+v", s)
	}
}

func TestLoadFallsBackOnInvalidStoredSettings(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryRepository())
	store.Set(storage.KeyWorkDuration, -3)
	store.Set(storage.KeyBreakDuration, 8)
	e := New(scheduler.NewManual(), store, WithDefaults(Settings{WorkMinutes: 45}))
	got := e.Settings()
	if got.WorkMinutes != 45 || got.BreakMinutes != 8 || got.LongBreakMinutes != 15 || got.SessionsBeforeLong != 4 {
		t.Fatalf("unexpected loaded settings: %+v", got)
	}
}

func TestOversizedDurationsAreRejected(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryRepository())
	clock := scheduler.NewManual()
	e := New(clock, store)

	huge := DefaultSettings()
	huge.WorkMinutes = math.MaxInt64 / 30
	if err := e.SaveSettings(huge); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings for an oversized work duration, got %v", err)
	}
	over := DefaultSettings()
	over.SessionsBeforeLong = MaxSessionsBeforeLong + 1
	if err := e.SaveSettings(over); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings for too many sessions, got %v", err)
	}
	if err := e.SetCustomTime(math.MaxInt64); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings for an oversized custom time, got %v", err)
	}
	if err := e.SetCustomTime(MaxMinutes); err != nil {
		t.Fatalf("the cap itself should be accepted: %v", err)
	}
	if s := e.Snapshot(); s.TimeLeft != MaxMinutes*60 || s.Settings != DefaultSettings() {
		t.Fatalf("unexpected state: %+v", s)
	}

	e.Start()
	clock.Advance(time.Second)
	if s := e.Snapshot(); s.TimeLeft != MaxMinutes*60-1 || s.TotalFocusMinutes != 0 {
		t.Fatalf("unexpected state after one tick: %+v", s)
	}
	reloaded := New(scheduler.NewManual(), store)
	if reloaded.Settings() != DefaultSettings() {
		t.Fatalf("oversized settings leaked into the store: %+v", reloaded.Settings())
	}
}

func TestLoadFallsBackOnOversizedStoredSettings(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryRepository())
	store.Set(storage.KeyWorkDuration, math.MaxInt64/30)
	store.Set(storage.KeyLongBreakDuration, MaxMinutes+1)
	store.Set(storage.KeySessionsBeforeLong, 1_000_000)
	e := New(scheduler.NewManual(), store)
	if got := e.Settings(); got != DefaultSettings() {
		t.Fatalf("expected defaults for out-of-range stored values, got %+v", got)
	}
	if s := e.Snapshot(); s.TimeLeft != 25*60 {
		t.Fatalf("unexpected time left %d", s.TimeLeft)
	}
}

func TestSkipDoesNotCredit(t *testing.T) {
	e, _, rec := newTestEngine(t)
	e.Skip()
	s := e.Snapshot()
	if s.Mode != ModeShortBreak || s.SessionsCompleted != 0 || len(rec.finished) != 0 {
		t.Fatalf("unexpected skip result: %+v finished=%v", s, rec.finished)
	}
	e.Skip()
	if e.Snapshot().Mode != ModeWork {
		t.Fatalf("expected skip from break to return to work")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	e, _, _ := newTestEngine(t)
	a, b := 0, 0
	unsubA := e.Subscribe(func(Snapshot) { a++ })
	e.Subscribe(func(Snapshot) { b++ })

	e.Reset()
	unsubA()
	unsubA()
	e.Reset()
	if a != 1 || b != 2 {
		t.Fatalf("unexpected deliveries a=%d b=%d", a, b)
	}
}
