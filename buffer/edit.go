package buffer

// InsertRow inserts a row holding s at index at. Indices past Len() are ignored.
func (b *Buffer) InsertRow(at int, s string) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = newRow(s, b.profile, b.opt)
	b.dirty = true
}

// DeleteRow removes row at. Out of range indices are ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.dirty = true
}

// InsertRune inserts ch at the cursor and advances it. On the past-end line a
// new row is appended first.
func (b *Buffer) InsertRune(ch rune) {
	if b.cursor.Row == len(b.rows) {
		b.InsertRow(len(b.rows), "")
	}
	b.rows[b.cursor.Row].InsertChar(b.cursor.Col, ch)
	b.cursor.Col++
	b.dirty = true
}

// InsertSoftTab inserts Options.SoftTab spaces at the cursor.
func (b *Buffer) InsertSoftTab() {
	for i := 0; i < b.opt.SoftTab; i++ {
		b.InsertRune(' ')
	}
}

// InsertNewline splits the current row at the cursor and moves the cursor to
// the start of the new row.
func (b *Buffer) InsertNewline() {
	if b.cursor.Col == 0 {
		b.InsertRow(b.cursor.Row, "")
	} else {
		tail := b.rows[b.cursor.Row].Truncate(b.cursor.Col)
		b.InsertRow(b.cursor.Row+1, tail)
	}
	b.cursor.Row++
	b.cursor.Col = 0
	b.dirty = true
}

// DeleteBackward applies backspace semantics: remove the rune (or soft tab)
// before the cursor, or join the row into the previous one at column 0.
// It is a no-op at (0,0) and on the past-end line.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == len(b.rows) {
		return
	}
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		n := b.rows[row].DeleteChar(col - 1)
		b.cursor.Col -= n
		if n > 0 {
			b.dirty = true
		}
		return
	}

	// Join with previous line.
	prev := b.rows[row-1]
	b.cursor.Col = prev.Len()
	prev.AppendString(b.rows[row].Raw())
	b.DeleteRow(row)
	b.cursor.Row--
	b.dirty = true
}

// DeleteForward applies delete-key semantics: step right then backspace, or
// join the next row when the cursor is at the end of its row.
func (b *Buffer) DeleteForward() {
	row := b.cursor.Row
	if row >= len(b.rows) {
		return
	}
	if b.cursor.Col < b.rows[row].Len() {
		b.cursor.Col++
		b.DeleteBackward()
		return
	}
	if row+1 < len(b.rows) {
		b.rows[row].AppendString(b.rows[row+1].Raw())
		b.DeleteRow(row + 1)
		b.dirty = true
	}
}
