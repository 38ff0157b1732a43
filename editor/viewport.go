package editor

// window is the visible part of the buffer in render coordinates. The
// offsets follow the cursor here; viewport.Model only displays the result.
type window struct {
	rowOff, colOff int
	rows, cols     int
}

func newWindow(width, height int) window {
	var v window
	v.resize(width, height)
	return v
}

// resize reserves the two bottom lines for status and message.
func (v *window) resize(width, height int) {
	v.cols = maxInt(width, 1)
	v.rows = maxInt(height-2, 1)
}

// scroll moves the offsets by the minimum needed to show (cy, rx).
func (v *window) scroll(cy, rx int) {
	if cy < v.rowOff {
		v.rowOff = cy
	}
	if cy >= v.rowOff+v.rows {
		v.rowOff = cy - v.rows + 1
	}
	if rx < v.colOff {
		v.colOff = rx
	}
	if rx >= v.colOff+v.cols {
		v.colOff = rx - v.cols + 1
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
