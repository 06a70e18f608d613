// Package debug provides conditional debug logging for pomodesk.
//
// Logging is off until SetOutput is given a file path. The TUI does this when
// --debug or the debug config key (POMODESK_DEBUG=1) is set. Output goes to a
// file because the terminal belongs to the TUI.
package debug

import (
	"io"
	"log"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "[pomodesk] "

var (
	mu      sync.Mutex
	enabled bool
	closer  io.Closer
)

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetOutput routes debug output to path and enables logging.
// An empty path disables logging.
func SetOutput(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if strings.TrimSpace(path) == "" {
		enabled = false
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(path, strings.TrimSpace(prefix))
	if err != nil {
		enabled = false
		return err
	}
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	closer = f
	enabled = true
	return nil
}

func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	log.SetOutput(w)
	log.SetPrefix(prefix)
	log.SetFlags(0)
	enabled = w != nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func Log(format string, args ...any) {
	if !Enabled() {
		return
	}
	log.Printf(format, args...)
}

func LogIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	Log(format, args...)
}
