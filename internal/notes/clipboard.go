package notes

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/model"
)

var ErrClipboardUnavailable = errors.New("notes: clipboard unavailable")

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

func Copy(n model.Note) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := writeClipboard(n.Body); err != nil {
		debug.Log("notes: clipboard write failed: %v", err)
		return err
	}
	return nil
}
