package buffer

import (
	"strings"
	"unicode/utf8"
)

// Find scans for the first row containing query as a literal substring.
//
// The scan starts one row after from (one row before when dir < 0), wraps
// around the document and visits at most Len() rows. The returned Pos holds
// the row and the rune column of the first match in it. An empty query or an
// empty buffer never matches.
func (b *Buffer) Find(query string, from int, dir int) (Pos, bool) {
	n := len(b.rows)
	if query == "" || n == 0 {
		return Pos{}, false
	}
	step := 1
	if dir < 0 {
		step = -1
	}

	cur := from
	for i := 0; i < n; i++ {
		cur += step
		if cur < 0 {
			cur = n - 1
		} else if cur >= n {
			cur = 0
		}
		raw := b.rows[cur].Raw()
		if idx := strings.Index(raw, query); idx >= 0 {
			return Pos{Row: cur, Col: utf8.RuneCountInString(raw[:idx])}, true
		}
	}
	return Pos{}, false
}
