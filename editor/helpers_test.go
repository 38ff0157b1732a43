package editor

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/iw2rmb/kite/internal/filestore"
	"github.com/iw2rmb/kite/syntax"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testEnv struct {
	fs    afero.Fs
	clock *fakeClock
	logs  []string
}

func newTestEnv() *testEnv {
	return &testEnv{
		fs:    afero.NewMemMapFs(),
		clock: &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func (e *testEnv) config(text string, width, height int) Config {
	return Config{
		Text:     text,
		Width:    width,
		Height:   height,
		Store:    filestore.New(e.fs),
		Profiles: syntax.Builtin(),
		Now:      e.clock.Now,
		Logf: func(format string, args ...any) {
			e.logs = append(e.logs, format)
		},
	}
}

func (e *testEnv) readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		switch r {
		case '\n':
			m = m.HandleEvent(Press(KeyEnter))
		case '\t':
			m = m.HandleEvent(Press(KeyTab))
		default:
			m = m.HandleEvent(Char(r))
		}
	}
	return m
}

func press(m Model, kinds ...KeyKind) Model {
	for _, k := range kinds {
		m = m.HandleEvent(Press(k))
	}
	return m
}
