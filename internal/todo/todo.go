// Package todo is the task list collaborator. The whole list is persisted
// under one store key after every change.
package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/pomodesk/internal/model"
	"github.com/sandeepkv93/pomodesk/internal/storage"
)

var ErrNotFound = errors.New("todo: task not found")

type List struct {
	store *storage.Store
	items []model.Task
	now   func() time.Time
	newID func() string
}

type Option func(*List)

func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

func WithIDs(newID func() string) Option {
	return func(l *List) { l.newID = newID }
}

// Load reads the persisted list. Entries that fail validation are dropped.
func Load(store *storage.Store, opts ...Option) *List {
	if store == nil {
		store = storage.NewStore(nil)
	}
	l := &List{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	for _, t := range storage.Get(store, storage.KeyTasks, []model.Task{}) {
		if t.Validate() == nil {
			l.items = append(l.items, t)
		}
	}
	return l
}

// Items returns a copy in insertion order.
func (l *List) Items() []model.Task {
	return append([]model.Task(nil), l.items...)
}

func (l *List) Counts() (done, total int) {
	for _, t := range l.items {
		if t.Done {
			done++
		}
	}
	return done, len(l.items)
}

func (l *List) Add(title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	t := model.Task{ID: l.newID(), Title: title, CreatedAt: l.now().UTC()}
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	l.items = append(l.items, t)
	l.save()
	return t, nil
}

// Toggle flips the done flag and stamps or clears the completion time.
func (l *List) Toggle(id string) (model.Task, error) {
	i, err := l.index(id)
	if err != nil {
		return model.Task{}, err
	}
	t := &l.items[i]
	t.Done = !t.Done
	if t.Done {
		now := l.now().UTC()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	l.save()
	return *t, nil
}

func (l *List) Rename(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.ErrEmptyTitle
	}
	i, err := l.index(id)
	if err != nil {
		return err
	}
	l.items[i].Title = title
	l.save()
	return nil
}

func (l *List) Delete(id string) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.save()
	return nil
}

// ClearDone removes every completed task and returns how many went.
func (l *List) ClearDone() int {
	kept := l.items[:0]
	for _, t := range l.items {
		if !t.Done {
			kept = append(kept, t)
		}
	}
	removed := len(l.items) - len(kept)
	l.items = kept
	if removed > 0 {
		l.save()
	}
	return removed
}

func (l *List) index(id string) (int, error) {
	for i, t := range l.items {
		if t.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (l *List) save() {
	l.store.Set(storage.KeyTasks, l.items)
}
