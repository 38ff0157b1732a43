package editor

import (
	"errors"
	"io/fs"

	"github.com/iw2rmb/kite/buffer"
)

// Open replaces the buffer with the contents of path. A missing file starts
// an empty buffer named path; other read errors are shown in the message
// line. Neither is fatal.
func (m Model) Open(path string) Model {
	m.open(path)
	return m
}

func (m *Model) open(path string) {
	m.endSearch(true)
	m.prompt = nil
	m.filename = path
	profile := m.cfg.profileFor(path)

	lines, err := m.cfg.Store.ReadLines(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		lines = nil
		m.setStatus("%s [New file]", path)
	case err != nil:
		lines = nil
		m.setStatus("Can't open %s: %v", path, err)
		m.cfg.Logf("open %s: %v", path, err)
	default:
		m.cfg.Logf("opened %s: %d lines, filetype %q", path, len(lines), profile.Filetype())
	}

	m.buf = buffer.New(lines, profile, m.cfg.bufferOptions())
	m.vp.rowOff, m.vp.colOff = 0, 0
	m.quitLeft = m.cfg.QuitTimes
}

// Filename returns the file the buffer is saved to, or "" if unnamed.
func (m Model) Filename() string { return m.filename }

// Save writes the buffer to its file, or opens the save-as prompt when the
// buffer is unnamed. The result is reported in the message line.
func (m Model) Save() Model {
	m.save()
	return m
}

func (m *Model) save() {
	if m.filename == "" {
		m.openPrompt(promptSaveAs, "Save as: ", " (ESC to cancel)")
		return
	}
	m.writeFile()
}

func (m *Model) saveAs(name string) {
	m.filename = name
	profile := m.cfg.profileFor(name)
	if profile != m.buf.Profile() {
		m.buf.SetProfile(profile)
		m.cfg.Logf("filetype for %s: %q", name, profile.Filetype())
	}
	m.writeFile()
}

func (m *Model) writeFile() {
	text := m.buf.Text()
	n, err := m.cfg.Store.WriteFile(m.filename, text)
	if err != nil {
		m.setStatus("Can't save! I/O error: %v", err)
		m.cfg.Logf("save %s: %v", m.filename, err)
		return
	}
	m.buf.MarkClean()
	m.setStatus("%d bytes written to disk", n)
	m.cfg.Logf("saved %s: %d bytes", m.filename, n)
}
