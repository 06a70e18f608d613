package model

import (
	"strings"
	"time"
)

const untitledNote = "Untitled note"

type Note struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Title is the first non-empty line of the body with markdown markers
// removed.
func (n Note) Title() string {
	for _, line := range strings.Split(n.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "#>-*0123456789. ")
		line = strings.Trim(line, "*_~`")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return untitledNote
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return ErrMissingID
	}
	return nil
}
