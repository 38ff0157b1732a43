package editor

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/iw2rmb/kite/buffer"
	"github.com/iw2rmb/kite/internal/filestore"
)

func TestNew_StartsInInsertWithHelp(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("a\nb", 40, 10))

	if got := m.Mode(); got != ModeInsert {
		t.Fatalf("mode: got %v, want %v", got, ModeInsert)
	}
	if got, want := m.Buffer().Lines(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if got := m.StatusMessage(); got != HelpMessage {
		t.Fatalf("status: got %q, want %q", got, HelpMessage)
	}
	if m.Buffer().Dirty() {
		t.Fatalf("new model should be clean")
	}
}

func TestStatusMessage_Expires(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("", 40, 10))

	env.clock.Advance(4900 * time.Millisecond)
	if got := m.StatusMessage(); got != HelpMessage {
		t.Fatalf("status before timeout: got %q", got)
	}
	env.clock.Advance(100 * time.Millisecond)
	if got := m.StatusMessage(); got != "" {
		t.Fatalf("status after timeout: got %q, want empty", got)
	}

	cfg := env.config("", 40, 10)
	cfg.MessageTimeout = time.Minute
	m = New(cfg)
	env.clock.Advance(30 * time.Second)
	if got := m.StatusMessage(); got != HelpMessage {
		t.Fatalf("status with custom timeout: got %q", got)
	}
}

func TestInsertMode_Editing(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("", 40, 10))

	m = typeText(m, "ab\n\tc")
	if got, want := m.Buffer().Lines(), []string{"ab", "    c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, Col: 5}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}

	m = press(m, KeyLeft, KeyBackspace)
	if got, want := m.Buffer().Lines()[1], "c"; got != want {
		t.Fatalf("line after soft tab backspace: got %q, want %q", got, want)
	}

	m = press(m, KeyBackspace)
	if got, want := m.Buffer().Lines(), []string{"abc"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines after join: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor after join: got %v, want %v", got, want)
	}

	m = press(m, KeyDelete)
	if got, want := m.Buffer().Lines()[0], "ab"; got != want {
		t.Fatalf("line after delete: got %q, want %q", got, want)
	}
	if !m.Buffer().Dirty() {
		t.Fatalf("expected dirty buffer")
	}
}

func TestModes_Dispatch(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("hello\nworld", 40, 10))

	m = press(m, KeyEsc)
	if got := m.Mode(); got != ModeNormal {
		t.Fatalf("mode after esc: got %v, want %v", got, ModeNormal)
	}

	// Plain runes move or act in normal mode instead of inserting.
	m = typeText(m, "lljz")
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor after hjkl: got %v, want %v", got, want)
	}
	if got, want := m.Buffer().Lines(), []string{"hello", "world"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("normal mode changed text: %q", got)
	}

	m = typeText(m, "x")
	if got, want := m.Buffer().Lines()[1], "wold"; got != want {
		t.Fatalf("x: got %q, want %q", got, want)
	}

	m = typeText(m, "a")
	if got := m.Mode(); got != ModeInsert {
		t.Fatalf("mode after a: got %v, want %v", got, ModeInsert)
	}
	m = typeText(m, "R")
	if got, want := m.Buffer().Lines()[1], "wolRd"; got != want {
		t.Fatalf("append: got %q, want %q", got, want)
	}

	m = press(m, KeyEsc)
	m = typeText(m, "v")
	if got := m.Mode(); got != ModeVisual {
		t.Fatalf("mode after v: got %v, want %v", got, ModeVisual)
	}
	m = typeText(m, "kh")
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("visual move: got %v, want %v", got, want)
	}
	m = press(m, KeyDown, KeyEsc)
	if got := m.Mode(); got != ModeNormal {
		t.Fatalf("mode after visual esc: got %v, want %v", got, ModeNormal)
	}
	m = typeText(m, "i")
	if got := m.Mode(); got != ModeInsert {
		t.Fatalf("mode after i: got %v, want %v", got, ModeInsert)
	}
}

func TestNormalMode_XAtEndOfLineDoesNotJoin(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("ab\ncd", 40, 10))
	m = press(m, KeyRight, KeyRight, KeyEsc)
	m = typeText(m, "x")
	if got, want := m.Buffer().Lines(), []string{"ab", "cd"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
}

func TestQuit_CleanBufferQuitsImmediately(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("a", 40, 10))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if !m.Quitting() {
		t.Fatalf("expected quitting")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestQuit_DirtyBufferNeedsConsecutivePresses(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("a", 40, 10))
	m = typeText(m, "x")

	m = press(m, KeyQuit)
	if m.Quitting() {
		t.Fatalf("quit on first press with unsaved changes")
	}
	want := "WARNING!!! File has unsaved changes. Press Ctrl-Q 1 more times to quit."
	if got := m.StatusMessage(); got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}

	// Any other input resets the counter.
	m = press(m, KeyLeft, KeyQuit)
	if m.Quitting() {
		t.Fatalf("counter was not reset by other input")
	}
	m = press(m, KeyQuit)
	if !m.Quitting() {
		t.Fatalf("expected quitting after consecutive presses")
	}

	// Inputs after quitting are ignored.
	m = typeText(m, "zzz")
	if got := m.Buffer().Lines()[0]; got != "xa" {
		t.Fatalf("input after quit changed text: %q", got)
	}
}

func TestQuit_CustomQuitTimes(t *testing.T) {
	env := newTestEnv()
	cfg := env.config("a", 40, 10)
	cfg.QuitTimes = 3
	m := New(cfg)
	m = typeText(m, "x")

	m = press(m, KeyQuit)
	if got := m.StatusMessage(); !strings.Contains(got, "2 more times") {
		t.Fatalf("status: got %q", got)
	}
	m = press(m, KeyQuit)
	if m.Quitting() {
		t.Fatalf("quit too early")
	}
	m = press(m, KeyQuit)
	if !m.Quitting() {
		t.Fatalf("expected quitting")
	}
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("", 40, 10)).Open("/work/main.go")

	if got := m.Buffer().Len(); got != 0 {
		t.Fatalf("rows: got %d, want 0", got)
	}
	if got, want := m.StatusMessage(), "/work/main.go [New file]"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Profile().Filetype(), "go"; got != want {
		t.Fatalf("filetype: got %q, want %q", got, want)
	}
	if got, want := m.Filename(), "/work/main.go"; got != want {
		t.Fatalf("filename: got %q, want %q", got, want)
	}
}

func TestOpen_ExistingFile(t *testing.T) {
	env := newTestEnv()
	if err := afero.WriteFile(env.fs, "/work/lib.rs", []byte("fn main() {\r\n}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := New(env.config("", 40, 10)).Open("/work/lib.rs")

	if got, want := m.Buffer().Lines(), []string{"fn main() {", "}"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Profile().Filetype(), "rust"; got != want {
		t.Fatalf("filetype: got %q, want %q", got, want)
	}
	if got := m.StatusMessage(); got != HelpMessage {
		t.Fatalf("status: got %q, want help", got)
	}
}

func TestSave_NamedBuffer(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("", 40, 10)).Open("/work/main.go")
	m = typeText(m, "package main\n\tx")

	m = press(m, KeySave)
	if got, want := env.readFile(t, "/work/main.go"), "package main\n    x\n"; got != want {
		t.Fatalf("file: got %q, want %q", got, want)
	}
	if got, want := m.StatusMessage(), "19 bytes written to disk"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
	if m.Buffer().Dirty() {
		t.Fatalf("buffer still dirty after save")
	}
}

func TestSave_MethodMatchesKey(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("", 40, 10)).Open("/work/a.txt")
	m = typeText(m, "hi")

	m = m.Save()
	if got, want := env.readFile(t, "/work/a.txt"), "hi\n"; got != want {
		t.Fatalf("file: got %q, want %q", got, want)
	}
	if !New(env.config("x", 40, 10)).Save().Prompting() {
		t.Fatalf("Save on unnamed buffer should open the prompt")
	}
}

func TestSave_UnnamedBufferPromptsForName(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("fn x", 40, 10))
	if got := m.Buffer().Profile().Filetype(); got != "" {
		t.Fatalf("filetype before save: got %q, want empty", got)
	}

	m = press(m, KeySave)
	if !m.Prompting() {
		t.Fatalf("expected save-as prompt")
	}
	if got, want := m.StatusMessage(), "Save as:  (ESC to cancel)"; got != want {
		t.Fatalf("prompt: got %q, want %q", got, want)
	}

	m = typeText(m, "/a.rs")
	m = press(m, KeyEnter)
	if m.Prompting() {
		t.Fatalf("prompt still open")
	}
	if got, want := env.readFile(t, "/a.rs"), "fn x\n"; got != want {
		t.Fatalf("file: got %q, want %q", got, want)
	}
	if got, want := m.Filename(), "/a.rs"; got != want {
		t.Fatalf("filename: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Profile().Filetype(), "rust"; got != want {
		t.Fatalf("filetype after save-as: got %q, want %q", got, want)
	}
}

func TestSave_PromptCancel(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("", 40, 10))
	m = typeText(m, "data")
	m = press(m, KeySave)
	m = typeText(m, "/x.txt")
	m = press(m, KeyEsc)

	if got, want := m.StatusMessage(), "Save aborted"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
	if !m.Buffer().Dirty() {
		t.Fatalf("buffer should stay dirty")
	}
	if got := m.Filename(); got != "" {
		t.Fatalf("filename: got %q, want empty", got)
	}
	if ok, _ := afero.Exists(env.fs, "/x.txt"); ok {
		t.Fatalf("file written after cancel")
	}
	// Prompt input did not reach the buffer.
	if got, want := m.Buffer().Lines(), []string{"data"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
}

func TestSave_WriteFailureKeepsDirty(t *testing.T) {
	env := newTestEnv()
	cfg := env.config("", 40, 10)
	cfg.Store = filestore.New(afero.NewReadOnlyFs(env.fs))
	m := New(cfg).Open("/ro.txt")
	m = typeText(m, "x")
	m = press(m, KeySave)

	if got := m.StatusMessage(); !strings.HasPrefix(got, "Can't save! I/O error: ") {
		t.Fatalf("status: got %q", got)
	}
	if !m.Buffer().Dirty() {
		t.Fatalf("buffer should stay dirty after failed save")
	}
	found := false
	for _, l := range env.logs {
		if strings.HasPrefix(l, "save ") {
			found = true
		}
	}
	if !found {
		t.Fatalf("save failure not logged: %q", env.logs)
	}
}

func TestSetSize_ReservesStatusLines(t *testing.T) {
	env := newTestEnv()
	m := New(env.config("a", 10, 10))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})

	if got, want := len(m.Frame().Lines), 6; got != want {
		t.Fatalf("frame lines: got %d, want %d", got, want)
	}
}
