package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/kite/buffer"
	"github.com/iw2rmb/kite/internal/filestore"
)

// Model is the editor state: one buffer, its viewport, the current mode and
// the active prompt if any.
//
// Model is used by value like other Bubble Tea components. The buffer is
// shared by pointer between copies.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	filename string
	mode     Mode
	vp       window
	display  viewport.Model
	status   statusMessage

	prompt *Prompt
	search *searchSession

	quitLeft int
	quitting bool
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(filestore.SplitLines(cfg.Text), cfg.profileFor(""), cfg.bufferOptions()),
		mode:     ModeInsert,
		vp:       newWindow(cfg.Width, cfg.Height),
		quitLeft: cfg.QuitTimes,
	}
	m.display = viewport.New(m.vp.cols, m.vp.rows)
	m.setStatus("%s", cfg.KeyMap.HelpLine())
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Mode() Mode { return m.mode }

// Offsets returns the first visible buffer row and render column.
func (m Model) Offsets() (rowOff, colOff int) { return m.vp.rowOff, m.vp.colOff }

// Prompting reports whether a search or save-as prompt is active.
func (m Model) Prompting() bool { return m.prompt != nil }

// Quitting reports whether the quit protocol completed.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.vp.resize(width, height)
	m.display.Width, m.display.Height = m.vp.cols, m.vp.rows
	m.scroll()
	return m
}

func (m *Model) scroll() {
	m.vp.scroll(m.buf.Cursor().Row, m.buf.CursorRx())
}
