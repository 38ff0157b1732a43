// Package config loads user settings for the kite binary.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatYAML SettingsFormat = "yaml"
)

const (
	DefaultTabStop        = 8
	DefaultSoftTab        = 4
	DefaultQuitTimes      = 2
	DefaultMessageSeconds = 5
)

type SettingsFormat string

type Settings struct {
	TabStop        int    `toml:"tab_stop"        yaml:"tab_stop"`
	SoftTab        int    `toml:"soft_tab"        yaml:"soft_tab"`
	QuitTimes      int    `toml:"quit_times"      yaml:"quit_times"`
	MessageSeconds int    `toml:"message_seconds" yaml:"message_seconds"`
	SyntaxFile     string `toml:"syntax_file"     yaml:"syntax_file"`
	LogFile        string `toml:"log_file"        yaml:"log_file"`
}

type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

func Default() Settings {
	return Settings{
		TabStop:        DefaultTabStop,
		SoftTab:        DefaultSoftTab,
		QuitTimes:      DefaultQuitTimes,
		MessageSeconds: DefaultMessageSeconds,
	}
}

// Normalise replaces out of range values with defaults.
func Normalise(s Settings) Settings {
	d := Default()
	if s.TabStop <= 0 {
		s.TabStop = d.TabStop
	}
	if s.SoftTab <= 0 {
		s.SoftTab = d.SoftTab
	}
	if s.QuitTimes <= 0 {
		s.QuitTimes = d.QuitTimes
	}
	if s.MessageSeconds <= 0 {
		s.MessageSeconds = d.MessageSeconds
	}
	return s
}

// MessageTimeout returns how long a status message stays visible.
func (s Settings) MessageTimeout() time.Duration {
	return time.Duration(s.MessageSeconds) * time.Second
}

// Dir returns the kite settings directory, falling back to the working
// directory when the user config dir is unknown.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "kite"
	}
	return filepath.Join(base, "kite")
}

// Load reads settings from path, or from settings.toml then settings.yaml in
// dir when path is empty. Missing files yield defaults; parse errors fail.
func Load(fsys afero.Fs, path, dir string) (Settings, SettingsHandle, error) {
	var candidates []SettingsHandle
	if path != "" {
		format, ok := FormatForPath(path)
		if !ok {
			return Default(), SettingsHandle{}, fmt.Errorf("settings %q: unsupported extension", path)
		}
		candidates = []SettingsHandle{{Path: path, Format: format}}
	} else {
		candidates = []SettingsHandle{
			{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
			{Path: filepath.Join(dir, "settings.yaml"), Format: SettingsFormatYAML},
		}
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := afero.ReadFile(fsys, candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return Default(), SettingsHandle{}, fmt.Errorf(
				"parse settings %q: %w",
				candidate.Path,
				err,
			)
		}
		return Normalise(settings), candidate, nil
	}

	if accumulated != nil {
		return Default(), SettingsHandle{}, accumulated
	}
	return Default(), candidates[0], nil
}

// FormatForPath picks the settings format from the file extension.
func FormatForPath(path string) (SettingsFormat, bool) {
	switch filepath.Ext(path) {
	case ".toml":
		return SettingsFormatTOML, true
	case ".yaml", ".yml":
		return SettingsFormatYAML, true
	}
	return "", false
}

func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	var settings Settings
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}
