package gui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Cap on retained console lines so long sessions don't grow unbounded.
const maxConsoleLines = 1000

// console is the GUI log view. It doubles as an io.Writer so it can be
// registered as an extra sink with the log package.
type console struct {
	mu    sync.Mutex
	lines []string
	entry *widget.Entry
}

func newConsole() *console {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.Disable()
	return &console{entry: entry}
}

// Append adds one message line to the view.
func (c *console) Append(msg string) {
	c.mu.Lock()
	c.lines = append(c.lines, strings.TrimRight(msg, "\n"))
	if len(c.lines) > maxConsoleLines {
		c.lines = c.lines[len(c.lines)-maxConsoleLines:]
	}
	text := strings.Join(c.lines, "\n")
	c.mu.Unlock()

	c.entry.SetText(text)
	c.entry.CursorRow = len(c.lines) // keep scrolled to the newest line
}

// Write implements io.Writer for the log sink.
func (c *console) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		c.Append(line)
	}
	return len(p), nil
}
