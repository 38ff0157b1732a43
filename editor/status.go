package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/iw2rmb/kite/internal/cells"
)

type statusMessage struct {
	text string
	at   time.Time
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = statusMessage{
		text: fmt.Sprintf(format, args...),
		at:   m.cfg.Now(),
	}
}

// StatusMessage returns the message line text, or "" once it expired.
func (m Model) StatusMessage() string {
	if m.prompt != nil {
		return m.prompt.Message()
	}
	if m.status.text == "" {
		return ""
	}
	if m.cfg.Now().Sub(m.status.at) >= m.cfg.MessageTimeout {
		return ""
	}
	return m.status.text
}

func (m Model) displayName() string {
	if m.filename == "" {
		return "[No Name]"
	}
	return m.filename
}

// statusLine returns the plain status text for width cells: the left part
// truncated to width and the right part right-aligned only when both fit.
func (m Model) statusLine(width int) string {
	left := fmt.Sprintf("%s %s - %d lines", m.mode, m.displayName(), m.buf.Len())
	if m.buf.Dirty() {
		left += " (modified)"
	}
	right := fmt.Sprintf("[%s] %d/%d", m.buf.Profile().Filetype(), m.buf.Cursor().Row+1, m.buf.Len())

	left = cells.Truncate(left, width)
	lw := cells.Width(left)
	rw := cells.Width(right)
	if lw+rw > width {
		return left + strings.Repeat(" ", width-lw)
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}
