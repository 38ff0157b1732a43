package editor

import "fmt"

// KeyKind is the closed set of inputs the editor reacts to.
type KeyKind uint8

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySave
	KeyQuit
	KeyFind
)

var keyKindNames = [...]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeySave:      "save",
	KeyQuit:      "quit",
	KeyFind:      "find",
}

func (k KeyKind) String() string {
	if int(k) < len(keyKindNames) {
		return keyKindNames[k]
	}
	return fmt.Sprintf("KeyKind(%d)", uint8(k))
}

// Event is one decoded input. Rune is only meaningful for KeyRune.
type Event struct {
	Kind KeyKind
	Rune rune
}

// Char returns a printable character event.
func Char(r rune) Event { return Event{Kind: KeyRune, Rune: r} }

// Press returns a non-character event.
func Press(k KeyKind) Event { return Event{Kind: k} }

func (e Event) String() string {
	if e.Kind == KeyRune {
		return fmt.Sprintf("rune(%q)", e.Rune)
	}
	return e.Kind.String()
}
