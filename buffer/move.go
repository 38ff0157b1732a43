package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
)

// Move steps the cursor one position in dir.
//
// Horizontal moves stay inside the current row. Vertical moves may reach the
// past-end line and clamp the column to the new row's length.
func (b *Buffer) Move(dir MoveDir) {
	p := b.cursor
	rowLen := b.lineLen(p.Row)

	switch dir {
	case DirLeft:
		if p.Col > 0 {
			p.Col--
		}
	case DirRight:
		if rowLen > 0 && p.Col < rowLen {
			p.Col++
		}
	case DirUp:
		if p.Row > 0 {
			p.Row--
		}
	case DirDown:
		if p.Row < len(b.rows) {
			p.Row++
		}
	}

	b.cursor = b.clampPos(p)
}
