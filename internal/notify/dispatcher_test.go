package notify

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

type fakeSound struct {
	plays int
	err   error
}

func (f *fakeSound) Play() error {
	f.plays++
	return f.err
}

type sent struct{ title, body string }

type fakeNotifier struct {
	sent []sent
	err  error
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.sent = append(f.sent, sent{title, body})
	return f.err
}

func syncRunner(fn func()) { fn() }

func TestSessionEndedPlaysSoundAndNotifies(t *testing.T) {
	snd, ntf := &fakeSound{}, &fakeNotifier{}
	d := NewDispatcher(snd, ntf, PermissionGranted, Options{SoundEnabled: true, NotificationsEnabled: true}, WithRunner(syncRunner))

	d.SessionEnded(timer.ModeWork)
	d.SessionEnded(timer.ModeLongBreak)

	if snd.plays != 2 {
		t.Fatalf("expected 2 sounds, got %d", snd.plays)
	}
	if len(ntf.sent) != 2 || ntf.sent[0].body != "Take a break!" || ntf.sent[1].body != "Time to focus!" {
		t.Fatalf("unexpected notifications: %+v", ntf.sent)
	}
}

func TestSessionEndedSkipsWithoutPermission(t *testing.T) {
	for _, perm := range []Permission{PermissionDefault, PermissionDenied} {
		snd, ntf := &fakeSound{}, &fakeNotifier{}
		d := NewDispatcher(snd, ntf, perm, Options{SoundEnabled: true, NotificationsEnabled: true}, WithRunner(syncRunner))
		d.SessionEnded(timer.ModeWork)
		if len(ntf.sent) != 0 {
			t.Fatalf("permission %s: expected no notification, got %+v", perm, ntf.sent)
		}
		if snd.plays != 1 {
			t.Fatalf("permission %s: expected sound regardless, got %d", perm, snd.plays)
		}
	}
}

func TestSessionEndedSwallowsFailures(t *testing.T) {
	snd := &fakeSound{err: errors.New("autoplay blocked")}
	ntf := &fakeNotifier{err: errors.New("no dbus")}
	d := NewDispatcher(snd, ntf, PermissionGranted, Options{SoundEnabled: true, NotificationsEnabled: true}, WithRunner(syncRunner))

	d.SessionEnded(timer.ModeShortBreak)
	if snd.plays != 1 || len(ntf.sent) != 1 {
		t.Fatalf("expected both effects attempted, sound=%d notify=%d", snd.plays, len(ntf.sent))
	}
}

func TestOptionsDisableEffects(t *testing.T) {
	snd, ntf := &fakeSound{}, &fakeNotifier{}
	d := NewDispatcher(snd, ntf, PermissionGranted, Options{}, WithRunner(syncRunner))
	d.SessionEnded(timer.ModeWork)
	if snd.plays != 0 || len(ntf.sent) != 0 {
		t.Fatalf("expected no effects when disabled, sound=%d notify=%d", snd.plays, len(ntf.sent))
	}

	d.SetOptions(Options{NotificationsEnabled: true})
	d.SessionEnded(timer.ModeWork)
	if snd.plays != 0 || len(ntf.sent) != 1 {
		t.Fatalf("expected notification only, sound=%d notify=%d", snd.plays, len(ntf.sent))
	}
}

func TestDispatcherDrivenByEngine(t *testing.T) {
	ntf := &fakeNotifier{}
	d := NewDispatcher(nil, ntf, PermissionGranted, Options{NotificationsEnabled: true}, WithRunner(syncRunner))
	e := timer.New(nil, storage.NewStore(nil), timer.WithCompleter(d))

	e.Complete()
	if len(ntf.sent) != 1 || ntf.sent[0].body != "Take a break!" {
		t.Fatalf("unexpected notifications: %+v", ntf.sent)
	}
}

func TestPermissionPersistence(t *testing.T) {
	store := storage.NewStore(nil)
	if got := LoadPermission(store); got != PermissionDefault {
		t.Fatalf("expected default permission, got %s", got)
	}
	SavePermission(store, PermissionGranted)
	if got := LoadPermission(store); got != PermissionGranted {
		t.Fatalf("expected granted, got %s", got)
	}
	SavePermission(store, PermissionDefault)
	if got := LoadPermission(store); got != PermissionDefault {
		t.Fatalf("expected default after reset, got %s", got)
	}
	store.Set(storage.KeyNotificationPermission, "maybe")
	if got := LoadPermission(store); got != PermissionDefault {
		t.Fatalf("expected unknown value to read as default, got %s", got)
	}
}
