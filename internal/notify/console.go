package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Console prints notifications to a terminal. It is the default notifier for
// the watch process, which runs in the foreground of its own terminal.
type Console struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewConsole creates a console notifier writing to stdout.
func NewConsole() *Console {
	return &Console{writer: os.Stdout}
}

// NewConsoleWriter creates a console notifier writing to w.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{writer: w}
}

// ShowOngoing prints the notification with a hint about the cancel control.
// The console has no buttons; cancellation happens via Ctrl+C handling in
// the watch runner, so the action itself is not invoked here.
func (c *Console) ShowOngoing(id int, title, body string, cancelAction func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.writer, "[%d] %s: %s (press Ctrl+C to cancel)\n", id, title, body)
}

// ShowOnce prints the notification.
func (c *Console) ShowOnce(id int, title, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.writer, "[%d] %s: %s\n", id, title, body)
}

// Cancel is a no-op for the console; printed lines cannot be withdrawn.
func (c *Console) Cancel(id int) {}
