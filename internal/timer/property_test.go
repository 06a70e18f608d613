package timer

import (
	"testing"
	"time"

	"github.com/sandeepkv93/pomodesk/internal/scheduler"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"pgregory.net/rapid"
)

func TestModeSequenceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		every := rapid.IntRange(1, 6).Draw(rt, "sessionsBeforeLong")
		cycles := rapid.IntRange(1, 14).Draw(rt, "cycles")

		clock := scheduler.NewManual()
		e := New(clock, storage.NewStore(nil))
		if err := e.SaveSettings(Settings{WorkMinutes: 1, BreakMinutes: 1, LongBreakMinutes: 2, SessionsBeforeLong: every}); err != nil {
			rt.Fatalf("save settings: %v", err)
		}

		for i := 1; i <= cycles; i++ {
			e.Start()
			clock.Advance(time.Minute)
			s := e.Snapshot()
			want := ModeShortBreak
			if i%every == 0 {
				want = ModeLongBreak
			}
			if s.Mode != want {
				rt.Fatalf("completion %d with period %d: got %s, want %s", i, every, s.Mode, want)
			}
			if s.SessionsCompleted != i {
				rt.Fatalf("expected %d sessions, got %d", i, s.SessionsCompleted)
			}
			e.Start()
			clock.Advance(time.Duration(s.TimeLeft) * time.Second)
			if got := e.Snapshot(); got.Mode != ModeWork || got.SessionsCompleted != i {
				rt.Fatalf("break completion changed counters or mode: %+v", got)
			}
		}
	})
}

func TestCountdownInvariantProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		clock := scheduler.NewManual()
		e := New(clock, storage.NewStore(nil))
		e.Subscribe(func(s Snapshot) {
			if s.TimeLeft < 0 {
				rt.Fatalf("negative time left: %d", s.TimeLeft)
			}
			if s.Running == s.Controls.StartEnabled {
				rt.Fatalf("controls disagree with running flag: %+v", s)
			}
		})

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 4).Draw(rt, "op") {
			case 0:
				e.Start()
			case 1:
				e.Pause()
			case 2:
				e.Reset()
			case 3:
				_ = e.SetCustomTime(rapid.IntRange(1, 3).Draw(rt, "custom"))
			case 4:
				clock.Advance(time.Duration(rapid.IntRange(1, 400).Draw(rt, "seconds")) * time.Second)
			}
			active := clock.ActiveCount()
			if e.Running() && active != 1 {
				rt.Fatalf("running with %d tick sources", active)
			}
			if !e.Running() && active != 0 {
				rt.Fatalf("paused with %d tick sources", active)
			}
		}
	})
}
