package editor

import (
	"unicode/utf8"

	"github.com/iw2rmb/kite/buffer"
	"github.com/iw2rmb/kite/syntax"
)

// searchSession holds the state of one incremental search.
type searchSession struct {
	saved          buffer.Pos
	rowOff, colOff int
	dir            int

	// Row carrying the match overlay and its classes before marking, or -1.
	markedRow   int
	markedSaved []syntax.Class
}

func (m *Model) startSearch() {
	m.search = &searchSession{
		saved:     m.buf.Cursor(),
		rowOff:    m.vp.rowOff,
		colOff:    m.vp.colOff,
		dir:       1,
		markedRow: -1,
	}
	m.openPrompt(promptSearch, "Search: ", " (Use ESC/Arrows/Enter)")
}

func (m *Model) clearMatchMark() {
	s := m.search
	if s == nil || s.markedRow < 0 {
		return
	}
	if r := m.buf.Row(s.markedRow); r != nil {
		r.RestoreHighlight(s.markedSaved)
	}
	s.markedRow = -1
	s.markedSaved = nil
}

// searchStep runs after every prompt input. Arrow keys pick the direction
// and any other input resets it to forward.
func (m *Model) searchStep(query string, ev Event, res PromptResult) {
	s := m.search
	if s == nil {
		return
	}
	m.clearMatchMark()
	if res != PromptContinue {
		return
	}

	switch ev.Kind {
	case KeyUp, KeyLeft:
		s.dir = -1
	default:
		s.dir = 1
	}
	if query == "" {
		return
	}

	pos, ok := m.buf.Find(query, m.buf.Cursor().Row, s.dir)
	if !ok {
		return
	}
	m.buf.SetCursor(pos)
	// Past the end so the next scroll puts the match row on top.
	m.vp.rowOff = m.buf.Len()

	row := m.buf.Row(pos.Row)
	s.markedRow = pos.Row
	s.markedSaved = row.Highlight()
	start := row.CxToRx(pos.Col)
	end := row.CxToRx(pos.Col + utf8.RuneCountInString(query))
	row.MarkSpan(start, end, syntax.Match)
}

// endSearch closes the session, restoring the saved position on cancel.
func (m *Model) endSearch(cancel bool) {
	s := m.search
	if s == nil {
		return
	}
	m.clearMatchMark()
	if cancel {
		m.buf.SetCursor(s.saved)
		m.vp.rowOff = s.rowOff
		m.vp.colOff = s.colOff
	}
	m.search = nil
}
