// Package editor provides the interactive part of kite: modes, viewport,
// prompts, incremental search, file open/save and frame composition over a
// buffer.Buffer.
//
// Model consumes one decoded Event at a time through HandleEvent and
// produces a Frame for the host to draw. It is also a Bubble Tea component:
// Update decodes tea.KeyMsg through the KeyMap and View renders the frame.
package editor
