package buffer

// Pos points into the document by (row, col) in raw runes.
type Pos struct {
	Row int
	Col int
}

// Options configures tab handling.
type Options struct {
	// TabStop is the display width a tab expands to. Default: 8.
	TabStop int
	// SoftTab is the number of spaces inserted by the tab key and removed at
	// once by a backspace over an all-space run. Default: 4.
	SoftTab int
}

const (
	DefaultTabStop = 8
	DefaultSoftTab = 4
)

func (o Options) normalize() Options {
	if o.TabStop <= 0 {
		o.TabStop = DefaultTabStop
	}
	if o.SoftTab <= 0 {
		o.SoftTab = DefaultSoftTab
	}
	return o
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row <= rowCount (rowCount is the past-end line)
// - 0 <= Col <= lineLen(Row), and Col == 0 on the past-end line
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount < 0 {
		rowCount = 0
	}
	row := clampInt(p.Row, 0, rowCount)
	if row == rowCount {
		return Pos{Row: row}
	}

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}
