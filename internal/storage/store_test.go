package storage_test

import (
	"context"
	"testing"

	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/storage/storagetest"
)

type visual struct {
	Style     string `json:"style"`
	Intensity string `json:"intensity"`
}

func TestStoreRoundTripsValues(t *testing.T) {
	s := storage.NewStore(storage.NewMemoryRepository())

	s.Set(storage.KeyWorkDuration, 50)
	s.Set(storage.KeyTimerStyle, visual{Style: "linear", Intensity: "reduced"})

	if got := storage.Get(s, storage.KeyWorkDuration, 25); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	got := storage.Get(s, storage.KeyTimerStyle, visual{})
	if got.Style != "linear" || got.Intensity != "reduced" {
		t.Fatalf("unexpected struct value: %+v", got)
	}
}

func TestStoreGetFallsBackToDefault(t *testing.T) {
	repo := storage.NewMemoryRepository()
	s := storage.NewStore(repo)

	if got := storage.Get(s, storage.KeyBreakDuration, 5); got != 5 {
		t.Fatalf("expected default for missing key, got %d", got)
	}

	if err := repo.PutValue(context.Background(), storage.KeyBreakDuration, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if got := storage.Get(s, storage.KeyBreakDuration, 5); got != 5 {
		t.Fatalf("expected default for corrupt value, got %d", got)
	}

	if err := repo.PutValue(context.Background(), storage.KeyBreakDuration, []byte(`"seven"`)); err != nil {
		t.Fatalf("seed mistyped value: %v", err)
	}
	if got := storage.Get(s, storage.KeyBreakDuration, 5); got != 5 {
		t.Fatalf("expected default for mistyped value, got %d", got)
	}
}

func TestStoreSwallowsRepositoryFailures(t *testing.T) {
	repo := storagetest.NewFlakyRepository()
	s := storage.NewStore(repo)
	s.Set(storage.KeySessionsCompleted, 2)

	repo.FailWrites(true)
	s.Set(storage.KeySessionsCompleted, 3)
	s.Remove(storage.KeySessionsCompleted)
	repo.FailWrites(false)

	if got := storage.Get(s, storage.KeySessionsCompleted, 0); got != 2 {
		t.Fatalf("expected stale value 2 after failed write, got %d", got)
	}

	repo.FailReads(true)
	if got := storage.Get(s, storage.KeySessionsCompleted, -1); got != -1 {
		t.Fatalf("expected default on read failure, got %d", got)
	}
}

func TestStoreRemove(t *testing.T) {
	s := storage.NewStore(nil)
	s.Set(storage.KeyTheme, "light")
	s.Remove(storage.KeyTheme)
	s.Remove(storage.KeyTheme)
	if got := storage.Get(s, storage.KeyTheme, "dark"); got != "dark" {
		t.Fatalf("expected default after remove, got %q", got)
	}
}
