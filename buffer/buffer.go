package buffer

import (
	"strings"

	"github.com/iw2rmb/kite/syntax"
)

// Buffer is the document state: rows, cursor and the modified flag.
type Buffer struct {
	rows    []*Row
	profile *syntax.Profile
	opt     Options

	cursor Pos
	dirty  bool
}

// New builds a buffer with one row per line. A nil profile is replaced by
// syntax.Empty.
func New(lines []string, profile *syntax.Profile, opt Options) *Buffer {
	if profile == nil {
		profile = syntax.Empty()
	}
	b := &Buffer{
		profile: profile,
		opt:     opt.normalize(),
	}
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, newRow(line, profile, b.opt))
	}
	return b
}

// Len returns the number of rows.
func (b *Buffer) Len() int { return len(b.rows) }

// Row returns row i, or nil when i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// Options returns the normalized tab options.
func (b *Buffer) Options() Options { return b.opt }

// Profile returns the rule table shared by all rows.
func (b *Buffer) Profile() *syntax.Profile { return b.profile }

// SetProfile switches every row to p and reclassifies it. The previous
// profile is left untouched.
func (b *Buffer) SetProfile(p *syntax.Profile) {
	if p == nil {
		p = syntax.Empty()
	}
	b.profile = p
	for _, r := range b.rows {
		r.setProfile(p)
	}
}

// Lines returns the raw text of every row.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.Raw()
	}
	return out
}

// Text returns the save form of the buffer: every row followed by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, r := range b.rows {
		sb.WriteString(string(r.raw))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dirty reports whether the buffer changed since creation or MarkClean.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkClean clears the modified flag after a successful save.
func (b *Buffer) MarkClean() { b.dirty = false }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p clamped into the document.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = b.clampPos(p)
}

// CursorRx returns the render column of the cursor; 0 on the past-end line.
func (b *Buffer) CursorRx() int {
	r := b.Row(b.cursor.Row)
	if r == nil {
		return 0
	}
	return r.CxToRx(b.cursor.Col)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return len(b.rows[row].raw)
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.rows), b.lineLen)
}
