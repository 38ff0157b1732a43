package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace, Delete key.Binding
	Enter, Tab, Esc   key.Binding

	Save, Quit, Find key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl-S", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl-Q", "quit")),
		Find: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("Ctrl-F", "find")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Save.Keys()) == 0 && len(km.Quit.Keys()) == 0 && len(km.Find.Keys()) == 0
}

// ShortHelp lists the bindings shown in the startup help message.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Find, km.Quit}
}

// HelpLine formats ShortHelp for the message line. Disabled bindings and
// bindings without help text are left out.
func (km KeyMap) HelpLine() string {
	parts := make([]string, 0, 3)
	for _, b := range km.ShortHelp() {
		h := b.Help()
		if !b.Enabled() || h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" = "+h.Desc)
	}
	return "HELP: " + strings.Join(parts, " | ")
}

// Events decodes a Bubble Tea key message into editor events.
//
// Rune messages may carry several runes (paste), each becomes its own event.
// Keys with no binding and alt-modified runes decode to nothing.
func (km KeyMap) Events(msg tea.KeyMsg) []Event {
	bound := []struct {
		b    key.Binding
		kind KeyKind
	}{
		{km.Save, KeySave},
		{km.Quit, KeyQuit},
		{km.Find, KeyFind},
		{km.Left, KeyLeft},
		{km.Right, KeyRight},
		{km.Up, KeyUp},
		{km.Down, KeyDown},
		{km.Backspace, KeyBackspace},
		{km.Delete, KeyDelete},
		{km.Enter, KeyEnter},
		{km.Tab, KeyTab},
		{km.Esc, KeyEsc},
	}
	if !msg.Paste {
		for _, bk := range bound {
			if key.Matches(msg, bk.b) {
				return []Event{Press(bk.kind)}
			}
		}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []Event{Char(' ')}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		evs := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\r':
				// Paste from CRLF sources.
			case '\n':
				evs = append(evs, Press(KeyEnter))
			case '\t':
				evs = append(evs, Press(KeyTab))
			default:
				evs = append(evs, Char(r))
			}
		}
		return evs
	}
	return nil
}
