package buffer

import (
	"github.com/iw2rmb/kite/syntax"
)

// Row is one line of text.
type Row struct {
	raw       []rune
	render    []rune
	highlight []syntax.Class

	profile *syntax.Profile
	opt     Options
}

func newRow(s string, profile *syntax.Profile, opt Options) *Row {
	r := &Row{
		raw:     []rune(s),
		profile: profile,
		opt:     opt.normalize(),
	}
	r.update()
	return r
}

// Raw returns the raw text.
func (r *Row) Raw() string { return string(r.raw) }

// Render returns the tab-expanded text.
func (r *Row) Render() string { return string(r.render) }

// Len returns the raw length in runes.
func (r *Row) Len() int { return len(r.raw) }

// RenderLen returns the render length in runes.
func (r *Row) RenderLen() int { return len(r.render) }

// RenderRunes returns a copy of the render runes in [start, end).
func (r *Row) RenderRunes(start, end int) []rune {
	start = clampInt(start, 0, len(r.render))
	end = clampInt(end, start, len(r.render))
	return append([]rune(nil), r.render[start:end]...)
}

// Highlight returns a copy of the per render rune classes.
func (r *Row) Highlight() []syntax.Class {
	return append([]syntax.Class(nil), r.highlight...)
}

// Profile returns the shared rule table used to classify this row.
func (r *Row) Profile() *syntax.Profile { return r.profile }

// update rebuilds render and highlight from raw.
func (r *Row) update() {
	r.render = expandTabs(r.raw, r.opt.TabStop)
	r.highlight = syntax.Highlight(r.render, r.profile)
}

func (r *Row) setProfile(p *syntax.Profile) {
	r.profile = p
	r.highlight = syntax.Highlight(r.render, r.profile)
}

func expandTabs(raw []rune, tabStop int) []rune {
	out := make([]rune, 0, len(raw))
	col := 0
	for _, ch := range raw {
		if ch != '\t' {
			out = append(out, ch)
			col++
			continue
		}
		out = append(out, ' ')
		col++
		for col%tabStop != 0 {
			out = append(out, ' ')
			col++
		}
	}
	return out
}

// CxToRx converts a raw column into a render column.
func (r *Row) CxToRx(cx int) int {
	cx = clampInt(cx, 0, len(r.raw))
	rx := 0
	for _, ch := range r.raw[:cx] {
		if ch == '\t' {
			rx += (r.opt.TabStop - 1) - (rx % r.opt.TabStop)
		}
		rx++
	}
	return rx
}

// InsertChar inserts ch before raw column at. at is clamped to [0, Len()].
func (r *Row) InsertChar(at int, ch rune) {
	at = clampInt(at, 0, len(r.raw))
	r.raw = append(r.raw, 0)
	copy(r.raw[at+1:], r.raw[at:])
	r.raw[at] = ch
	r.update()
}

// AppendString appends s to the raw text.
func (r *Row) AppendString(s string) {
	r.raw = append(r.raw, []rune(s)...)
	r.update()
}

// Truncate drops the raw text from column at onwards and returns it.
func (r *Row) Truncate(at int) string {
	at = clampInt(at, 0, len(r.raw))
	tail := string(r.raw[at:])
	r.raw = r.raw[:at]
	r.update()
	return tail
}

// DeleteChar removes the rune at raw column at and reports how many runes
// were removed.
//
// When the SoftTab runes ending at at are all spaces, the whole run is removed
// at once so a soft tab is undone by a single backspace. Out of range columns
// are a no-op reporting 0.
func (r *Row) DeleteChar(at int) int {
	if at < 0 || at >= len(r.raw) {
		return 0
	}
	n := r.opt.SoftTab
	if start := at + 1 - n; start >= 0 && allSpaces(r.raw[start:at+1]) {
		r.raw = append(r.raw[:start], r.raw[at+1:]...)
		r.update()
		return n
	}
	r.raw = append(r.raw[:at], r.raw[at+1:]...)
	r.update()
	return 1
}

func allSpaces(rs []rune) bool {
	for _, ch := range rs {
		if ch != ' ' {
			return false
		}
	}
	return true
}

// MarkSpan overlays class c on render columns [start, end). The overlay lasts
// until the next raw change or RestoreHighlight.
func (r *Row) MarkSpan(start, end int, c syntax.Class) {
	start = clampInt(start, 0, len(r.highlight))
	end = clampInt(end, start, len(r.highlight))
	for i := start; i < end; i++ {
		r.highlight[i] = c
	}
}

// RestoreHighlight puts back classes saved with Highlight. It is ignored when
// the row changed length since the classes were saved.
func (r *Row) RestoreHighlight(saved []syntax.Class) bool {
	if len(saved) != len(r.highlight) {
		return false
	}
	copy(r.highlight, saved)
	return true
}
