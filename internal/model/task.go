package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle = errors.New("model: title is required")
	ErrMissingID  = errors.New("model: id is required")
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Done && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is done")
	}
	if !t.Done && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is open")
	}
	return nil
}
