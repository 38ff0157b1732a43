package editor

import (
	"time"

	"github.com/iw2rmb/kite"
	"github.com/iw2rmb/kite/buffer"
	"github.com/iw2rmb/kite/internal/filestore"
	"github.com/iw2rmb/kite/syntax"
)

const (
	DefaultQuitTimes      = 2
	DefaultMessageTimeout = 5 * time.Second
)

// HelpMessage is the startup help line of DefaultKeyMap.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-F = find | Ctrl-Q = quit"

// Store reads and writes whole files. A missing file must be reported with an
// error matching fs.ErrNotExist.
type Store interface {
	ReadLines(path string) ([]string, error)
	WriteFile(path, text string) (int, error)
}

// ProfileLookup resolves the syntax profile for a filename. syntax.Catalog
// implements it.
type ProfileLookup interface {
	ForFilename(name string) *syntax.Profile
}

// Config configures the editor Model. Zero values get defaults.
type Config struct {
	// Initial text for an unnamed buffer.
	Text string

	// Terminal size in cells. The bottom two rows hold the status and
	// message lines.
	Width, Height int

	// Forwarded to buffer.Options.
	TabStop int
	SoftTab int

	// Number of consecutive quit inputs needed to leave a modified buffer.
	QuitTimes int
	// How long a status message stays visible.
	MessageTimeout time.Duration

	KeyMap KeyMap
	Style  Style

	// Banner replaces the welcome text shown for an empty buffer.
	Banner string

	Store    Store
	Profiles ProfileLookup

	// Now is the clock used for status message expiry.
	Now func() time.Time
	// Logf receives diagnostics such as open and save failures.
	Logf func(format string, args ...any)
}

func (c Config) normalized() Config {
	if c.QuitTimes <= 0 {
		c.QuitTimes = DefaultQuitTimes
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = DefaultMessageTimeout
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Banner == "" {
		c.Banner = kite.Banner()
	}
	if c.Store == nil {
		c.Store = filestore.New(nil)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Logf == nil {
		c.Logf = func(string, ...any) {}
	}
	return c
}

func (c Config) bufferOptions() buffer.Options {
	return buffer.Options{TabStop: c.TabStop, SoftTab: c.SoftTab}
}

func (c Config) profileFor(name string) *syntax.Profile {
	if c.Profiles == nil || name == "" {
		return syntax.Empty()
	}
	if p := c.Profiles.ForFilename(name); p != nil {
		return p
	}
	return syntax.Empty()
}
