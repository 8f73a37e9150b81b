package edit

import "sync"

// Clipboard exchanges text with the rest of the application.
type Clipboard interface {
	// SetText replaces the clipboard contents.
	SetText(text string)

	// Text returns the clipboard contents.
	Text() string
}

// MemoryClipboard is a process-local clipboard. It is safe for concurrent use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// SetText implements Clipboard.
func (c *MemoryClipboard) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

// Text implements Clipboard.
func (c *MemoryClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}
