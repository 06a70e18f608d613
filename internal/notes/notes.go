// Package notes is the markdown note pad collaborator.
package notes

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/pomodesk/internal/model"
	"github.com/sandeepkv93/pomodesk/internal/storage"
)

var ErrNotFound = errors.New("notes: note not found")

type Book struct {
	store *storage.Store
	items []model.Note
	now   func() time.Time
	newID func() string
}

type Option func(*Book)

func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

func WithIDs(newID func() string) Option {
	return func(b *Book) { b.newID = newID }
}

func Load(store *storage.Store, opts ...Option) *Book {
	if store == nil {
		store = storage.NewStore(nil)
	}
	b := &Book{store: store, now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(b)
	}
	for _, n := range storage.Get(store, storage.KeyNotes, []model.Note{}) {
		if n.Validate() == nil {
			b.items = append(b.items, n)
		}
	}
	return b
}

// Items returns the notes, most recently updated first.
func (b *Book) Items() []model.Note {
	out := append([]model.Note(nil), b.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (b *Book) Get(id string) (model.Note, error) {
	i, err := b.index(id)
	if err != nil {
		return model.Note{}, err
	}
	return b.items[i], nil
}

func (b *Book) Create() model.Note {
	now := b.now().UTC()
	n := model.Note{ID: b.newID(), CreatedAt: now, UpdatedAt: now}
	b.items = append(b.items, n)
	b.save()
	return n
}

// Update replaces the body. An unchanged body does not bump UpdatedAt.
func (b *Book) Update(id, body string) (model.Note, error) {
	i, err := b.index(id)
	if err != nil {
		return model.Note{}, err
	}
	n := &b.items[i]
	if n.Body == body {
		return *n, nil
	}
	n.Body = body
	n.UpdatedAt = b.now().UTC()
	b.save()
	return *n, nil
}

func (b *Book) Delete(id string) error {
	i, err := b.index(id)
	if err != nil {
		return err
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	b.save()
	return nil
}

func (b *Book) index(id string) (int, error) {
	for i, n := range b.items {
		if n.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (b *Book) save() {
	b.store.Set(storage.KeyNotes, b.items)
}
