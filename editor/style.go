package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/kite/syntax"
)

// Style controls the editor's rendering. The zero Style renders plain text.
type Style struct {
	Normal  lipgloss.Style
	Number  lipgloss.Style
	Type    lipgloss.Style
	Keyword lipgloss.Style
	Match   lipgloss.Style

	Filler lipgloss.Style
	Banner lipgloss.Style
	Cursor lipgloss.Style

	Status     lipgloss.Style
	ModeNormal lipgloss.Style
	ModeInsert lipgloss.Style
	ModeVisual lipgloss.Style
	Message    lipgloss.Style
}

func DefaultStyle() Style {
	return StyleWithRenderer(lipgloss.DefaultRenderer())
}

// StyleWithRenderer builds the default palette on r, which fixes the color
// profile used for output.
func StyleWithRenderer(r *lipgloss.Renderer) Style {
	status := r.NewStyle().Reverse(true)
	return Style{
		Normal:  r.NewStyle(),
		Number:  r.NewStyle().Foreground(lipgloss.Color("1")),
		Type:    r.NewStyle().Foreground(lipgloss.Color("3")),
		Keyword: r.NewStyle().Foreground(lipgloss.Color("5")),
		Match:   r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),

		Filler: r.NewStyle().Bold(true),
		Banner: r.NewStyle(),
		Cursor: r.NewStyle().Reverse(true),

		Status:     status,
		ModeNormal: status.Foreground(lipgloss.Color("3")),
		ModeInsert: status.Foreground(lipgloss.Color("4")),
		ModeVisual: status.Foreground(lipgloss.Color("1")),
		Message:    r.NewStyle(),
	}
}

// ForClass maps a highlight class to its style.
func (s Style) ForClass(c syntax.Class) lipgloss.Style {
	switch c {
	case syntax.Number:
		return s.Number
	case syntax.Type:
		return s.Type
	case syntax.Keyword:
		return s.Keyword
	case syntax.Match:
		return s.Match
	default:
		return s.Normal
	}
}

// ForMode returns the style of the mode name in the status line.
func (s Style) ForMode(m Mode) lipgloss.Style {
	switch m {
	case ModeNormal:
		return s.ModeNormal
	case ModeVisual:
		return s.ModeVisual
	default:
		return s.ModeInsert
	}
}
