package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "pomodesk-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestValueCRUD(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.GetValue(ctx, KeySessionsCompleted); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}
	if err := repo.PutValue(ctx, KeySessionsCompleted, []byte("3")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.PutValue(ctx, KeySessionsCompleted, []byte("4")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.GetValue(ctx, KeySessionsCompleted)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "4" {
		t.Fatalf("expected upserted value 4, got %q", got)
	}

	if err := repo.DeleteValue(ctx, KeySessionsCompleted); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteValue(ctx, KeySessionsCompleted); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListKeysByPrefix(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	for _, key := range []string{"timerStyle", "totalFocusMinutes", "tasks", "notes"} {
		if err := repo.PutValue(ctx, key, []byte(`"x"`)); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}

	keys, err := repo.ListKeys(ctx, "t")
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	want := []string{"tasks", "timerStyle", "totalFocusMinutes"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys: %#v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	all, err := repo.ListKeys(ctx, "")
	if err != nil {
		t.Fatalf("list all keys: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 keys, got %#v", all)
	}
}

func TestOpenSQLiteCreatesDirectoryAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "pomodesk.db")
	repo, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	if err := repo.PutValue(context.Background(), KeyTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("put after open: %v", err)
	}
}
