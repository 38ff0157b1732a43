package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		for _, ev := range m.cfg.KeyMap.Events(msg) {
			m.handle(ev)
			if m.quitting {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// HandleEvent applies one decoded input and returns the updated model.
func (m Model) HandleEvent(ev Event) Model {
	m.handle(ev)
	return m
}

func (m *Model) handle(ev Event) {
	if m.quitting {
		return
	}
	if m.prompt != nil {
		m.quitLeft = m.cfg.QuitTimes
		m.handlePrompt(ev)
		m.scroll()
		return
	}
	if ev.Kind == KeyQuit {
		m.quit()
		return
	}
	m.quitLeft = m.cfg.QuitTimes

	switch ev.Kind {
	case KeySave:
		m.save()
	case KeyFind:
		m.startSearch()
	default:
		m.dispatch(ev)
	}
	m.scroll()
}

// quit counts down consecutive quit inputs while the buffer is modified.
func (m *Model) quit() {
	m.quitLeft--
	if m.buf.Dirty() && m.quitLeft > 0 {
		m.setStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitLeft)
		return
	}
	m.quitting = true
}
