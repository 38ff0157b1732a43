package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/kite/buffer"
	"github.com/iw2rmb/kite/internal/cells"
)

// Frame is one composed screen: the content rows, the status line and the
// message line, plus the one-based cursor cell.
type Frame struct {
	Lines   []string
	CursorX int
	CursorY int
}

// String renders the frame for a raw terminal: clear, draw every line and
// place the cursor.
func (f Frame) String() string {
	var sb strings.Builder
	sb.WriteString(ansi.EraseEntireScreen)
	sb.WriteString(ansi.CursorHomePosition)
	sb.WriteString(strings.Join(f.Lines, "\r\n"))
	sb.WriteString(ansi.CursorPosition(f.CursorX, f.CursorY))
	return sb.String()
}

// Frame composes the next screen. The viewport is adjusted to the cursor
// first so the frame never shows a stale offset.
func (m Model) Frame() Frame {
	m.scroll()
	return m.compose(false)
}

// View renders the frame for Bubble Tea with the cursor drawn inline. The
// content above the bottom of the window is handed to the display viewport,
// which shows it from rowOff.
func (m Model) View() string {
	m.scroll()
	end := m.vp.rowOff + m.vp.rows
	content := make([]string, 0, end)
	for row := 0; row < end; row++ {
		content = append(content, m.contentLine(row, true))
	}
	m.display.SetContent(strings.Join(content, "\n"))
	m.display.SetYOffset(m.vp.rowOff)
	return m.display.View() + "\n" + m.renderStatus() + "\n" + m.renderMessage()
}

func (m Model) compose(drawCursor bool) Frame {
	cursorX := m.buf.CursorRx() - m.vp.colOff
	cursorY := m.buf.Cursor().Row - m.vp.rowOff

	lines := make([]string, 0, m.vp.rows+2)
	for y := 0; y < m.vp.rows; y++ {
		lines = append(lines, m.contentLine(y+m.vp.rowOff, drawCursor))
	}
	lines = append(lines, m.renderStatus(), m.renderMessage())

	return Frame{Lines: lines, CursorX: cursorX + 1, CursorY: cursorY + 1}
}

// contentLine draws buffer row fileRow, or the banner or filler past the end.
func (m Model) contentLine(fileRow int, drawCursor bool) string {
	cursorCol := -1
	if drawCursor && fileRow == m.buf.Cursor().Row {
		cursorCol = m.buf.CursorRx() - m.vp.colOff
	}

	switch {
	case fileRow < m.buf.Len():
		return m.renderRow(m.buf.Row(fileRow), cursorCol)
	case m.buf.Len() == 0 && fileRow == m.vp.rows/3 && cursorCol < 0:
		return m.renderBanner()
	default:
		return m.renderFiller(cursorCol)
	}
}

// renderRow draws render columns [colOff, colOff+cols) of r, one styled
// segment per run of equal classes. cursorCol < 0 draws no cursor.
func (m Model) renderRow(r *buffer.Row, cursorCol int) string {
	st := m.cfg.Style
	start := m.vp.colOff
	runes := r.RenderRunes(start, start+m.vp.cols)
	hl := r.Highlight()

	var sb strings.Builder
	for i := 0; i < len(runes); {
		if i == cursorCol {
			sb.WriteString(st.Cursor.Render(string(runes[i])))
			i++
			continue
		}
		c := hl[start+i]
		j := i + 1
		for j < len(runes) && j != cursorCol && hl[start+j] == c {
			j++
		}
		sb.WriteString(st.ForClass(c).Render(string(runes[i:j])))
		i = j
	}
	if cursorCol >= len(runes) && cursorCol < m.vp.cols {
		sb.WriteString(strings.Repeat(" ", cursorCol-len(runes)))
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderBanner() string {
	st := m.cfg.Style
	banner := cells.Truncate(m.cfg.Banner, m.vp.cols)
	pad := cells.Center(banner, m.vp.cols)

	var sb strings.Builder
	if pad > 0 {
		sb.WriteString(st.Filler.Render("~"))
		pad--
	}
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(st.Banner.Render(banner))
	return sb.String()
}

func (m Model) renderFiller(cursorCol int) string {
	if cursorCol == 0 {
		return m.cfg.Style.Cursor.Render("~")
	}
	return m.cfg.Style.Filler.Render("~")
}

func (m Model) renderStatus() string {
	st := m.cfg.Style
	plain := m.statusLine(m.vp.cols)
	name := m.mode.String()
	if strings.HasPrefix(plain, name) {
		return st.ForMode(m.mode).Render(name) + st.Status.Render(plain[len(name):])
	}
	return st.Status.Render(plain)
}

func (m Model) renderMessage() string {
	msg := cells.Truncate(m.StatusMessage(), m.vp.cols)
	if msg == "" {
		return ""
	}
	return m.cfg.Style.Message.Render(msg)
}
