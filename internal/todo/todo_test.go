package todo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/pomodesk/internal/model"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/storage/storagetest"
)

func newTestList(store *storage.Store) *List {
	n := 0
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return Load(store,
		WithClock(func() time.Time { return now }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		}),
	)
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	l := newTestList(nil)
	if _, err := l.Add("   "); !errors.Is(err, model.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if len(l.Items()) != 0 {
		t.Fatalf("rejected task was stored")
	}
}

func TestListPersistsAcrossLoads(t *testing.T) {
	store := storage.NewStore(nil)
	l := newTestList(store)
	a, err := l.Add("  write tests ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.Title != "write tests" {
		t.Fatalf("expected trimmed title, got %q", a.Title)
	}
	if _, err := l.Add("review"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := l.Toggle(a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reloaded := Load(store)
	items := reloaded.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 tasks after reload, got %d", len(items))
	}
	if !items[0].Done || items[0].CompletedAt == nil || items[1].Done {
		t.Fatalf("unexpected reloaded state: %+v", items)
	}
}

func TestToggleRenameDeleteClearDone(t *testing.T) {
	l := newTestList(nil)
	a, _ := l.Add("a")
	b, _ := l.Add("b")
	c, _ := l.Add("c")

	got, err := l.Toggle(a.ID)
	if err != nil || !got.Done {
		t.Fatalf("toggle on: %+v %v", got, err)
	}
	got, _ = l.Toggle(a.ID)
	if got.Done || got.CompletedAt != nil {
		t.Fatalf("toggle off left completion: %+v", got)
	}

	if err := l.Rename(b.ID, ""); !errors.Is(err, model.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := l.Rename(b.ID, "bee"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := l.Rename("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, _ = l.Toggle(b.ID)
	_, _ = l.Toggle(c.ID)
	if done, total := l.Counts(); done != 2 || total != 3 {
		t.Fatalf("unexpected counts %d/%d", done, total)
	}
	if n := l.ClearDone(); n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if err := l.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(l.Items()) != 0 {
		t.Fatalf("expected empty list, got %+v", l.Items())
	}
	if err := l.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	store := storage.NewStore(nil)
	store.Set(storage.KeyTasks, []model.Task{
		{ID: "ok", Title: "fine", CreatedAt: time.Now()},
		{ID: "", Title: "no id", CreatedAt: time.Now()},
		{ID: "blank", Title: " ", CreatedAt: time.Now()},
	})
	items := Load(store).Items()
	if len(items) != 1 || items[0].ID != "ok" {
		t.Fatalf("expected only the valid task, got %+v", items)
	}
}

func TestWriteFailureKeepsInMemoryList(t *testing.T) {
	repo := storagetest.NewFlakyRepository()
	repo.FailWrites(true)
	l := newTestList(storage.NewStore(repo))
	if _, err := l.Add("still here"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(l.Items()) != 1 {
		t.Fatalf("expected task kept in memory despite failed write")
	}
}
