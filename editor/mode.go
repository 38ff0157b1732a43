package editor

import "github.com/iw2rmb/kite/buffer"

// Mode selects how plain keys are interpreted.
type Mode uint8

const (
	ModeInsert Mode = iota
	ModeNormal
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeVisual:
		return "Visual"
	default:
		return "Insert"
	}
}

func (m *Model) dispatch(ev Event) {
	switch m.mode {
	case ModeNormal:
		m.handleNormal(ev)
	case ModeVisual:
		m.handleVisual(ev)
	default:
		m.handleInsert(ev)
	}
}

func (m *Model) handleInsert(ev Event) {
	switch ev.Kind {
	case KeyRune:
		m.buf.InsertRune(ev.Rune)
	case KeyEnter:
		m.buf.InsertNewline()
	case KeyTab:
		m.buf.InsertSoftTab()
	case KeyBackspace:
		m.buf.DeleteBackward()
	case KeyDelete:
		m.buf.DeleteForward()
	case KeyEsc:
		m.mode = ModeNormal
	default:
		m.moveArrow(ev.Kind)
	}
}

func (m *Model) handleNormal(ev Event) {
	if ev.Kind != KeyRune {
		m.moveArrow(ev.Kind)
		return
	}
	switch ev.Rune {
	case 'i':
		m.mode = ModeInsert
	case 'a':
		m.buf.Move(buffer.DirRight)
		m.mode = ModeInsert
	case 'v':
		m.mode = ModeVisual
	case 'x':
		if r := m.buf.Row(m.buf.Cursor().Row); r != nil && m.buf.Cursor().Col < r.Len() {
			m.buf.DeleteForward()
		}
	default:
		m.moveVim(ev.Rune)
	}
}

func (m *Model) handleVisual(ev Event) {
	switch ev.Kind {
	case KeyEsc:
		m.mode = ModeNormal
	case KeyRune:
		m.moveVim(ev.Rune)
	default:
		m.moveArrow(ev.Kind)
	}
}

func (m *Model) moveArrow(k KeyKind) {
	switch k {
	case KeyLeft:
		m.buf.Move(buffer.DirLeft)
	case KeyRight:
		m.buf.Move(buffer.DirRight)
	case KeyUp:
		m.buf.Move(buffer.DirUp)
	case KeyDown:
		m.buf.Move(buffer.DirDown)
	}
}

func (m *Model) moveVim(r rune) {
	switch r {
	case 'h':
		m.moveArrow(KeyLeft)
	case 'j':
		m.moveArrow(KeyDown)
	case 'k':
		m.moveArrow(KeyUp)
	case 'l':
		m.moveArrow(KeyRight)
	}
}
