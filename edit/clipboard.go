package edit

import (
	"errors"
	"sync"
)

var (
	// ErrClipboardEmpty is returned when the clipboard holds no text.
	ErrClipboardEmpty = errors.New("edit: clipboard has no text")

	// ErrNoClipboard is returned by clipboard operations on a field
	// configured without a clipboard.
	ErrNoClipboard = errors.New("edit: no clipboard configured")
)

// Clipboard is the system clipboard service.
// Calls are synchronous; implementations report unavailable or denied
// access through the returned error.
type Clipboard interface {
	// Text returns the clipboard text, or an error if there is none.
	Text() (string, error)
	// SetText replaces the clipboard content.
	SetText(s string) error
}

// MemoryClipboard is a process-local Clipboard. It is safe for concurrent use.
// The zero value is an empty clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	set  bool
}

// Text implements Clipboard.
func (c *MemoryClipboard) Text() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set {
		return "", ErrClipboardEmpty
	}
	return c.text, nil
}

// SetText implements Clipboard.
func (c *MemoryClipboard) SetText(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = s
	c.set = true
	return nil
}
