package buffer

import "testing"

func TestMove_LeftRight(t *testing.T) {
	b := New([]string{"ab"}, nil, Options{})
	b.Move(DirLeft)
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("left at 0: cursor=%v, want %v", got, want)
	}
	b.Move(DirRight)
	b.Move(DirRight)
	b.Move(DirRight)
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("right past end: cursor=%v, want %v", got, want)
	}
	b.Move(DirLeft)
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("left: cursor=%v, want %v", got, want)
	}
}

func TestMove_RightOnEmptyRowIsNoop(t *testing.T) {
	b := New([]string{""}, nil, Options{})
	b.Move(DirRight)
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_UpDownClampsColumn(t *testing.T) {
	b := New([]string{"long line", "ab", "longer line"}, nil, Options{})
	b.SetCursor(Pos{Row: 0, Col: 8})
	b.Move(DirDown)
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("down: cursor=%v, want %v", got, want)
	}
	b.Move(DirDown)
	if got, want := b.Cursor(), (Pos{Row: 2, Col: 2}); got != want {
		t.Fatalf("down: cursor=%v, want %v", got, want)
	}
	b.Move(DirDown)
	if got, want := b.Cursor(), (Pos{Row: 3, Col: 0}); got != want {
		t.Fatalf("down to past-end line: cursor=%v, want %v", got, want)
	}
	b.Move(DirDown)
	if got, want := b.Cursor(), (Pos{Row: 3, Col: 0}); got != want {
		t.Fatalf("down past end: cursor=%v, want %v", got, want)
	}
	b.Move(DirUp)
	b.Move(DirUp)
	b.Move(DirUp)
	b.Move(DirUp)
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 0}); got != want {
		t.Fatalf("up: cursor=%v, want %v", got, want)
	}
}

func TestMove_EmptyBuffer(t *testing.T) {
	b := New(nil, nil, Options{})
	for _, d := range []MoveDir{DirLeft, DirRight, DirUp, DirDown} {
		b.Move(d)
		if got, want := b.Cursor(), (Pos{}); got != want {
			t.Fatalf("move %d: cursor=%v, want %v", d, got, want)
		}
	}
}
