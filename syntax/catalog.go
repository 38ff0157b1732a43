package syntax

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed syntax.toml
var builtinRules []byte

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the rule file format from the file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

type ruleFile struct {
	Syntax []Rules `toml:"syntax" yaml:"syntax"`
}

// Catalog is an ordered set of compiled profiles looked up by filename suffix.
type Catalog struct {
	profiles []*Profile
}

// NewCatalog wraps already compiled profiles. Earlier profiles win on lookup.
func NewCatalog(profiles ...*Profile) Catalog {
	out := make([]*Profile, 0, len(profiles))
	for _, p := range profiles {
		if p != nil {
			out = append(out, p)
		}
	}
	return Catalog{profiles: out}
}

// Builtin returns the catalog compiled from the embedded rule file.
func Builtin() Catalog {
	c, err := Parse(builtinRules, FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("syntax: builtin rules: %v", err))
	}
	return c
}

// Parse decodes and compiles a rule file. Entries that fail to compile are
// skipped and reported through the joined error; the rest are still returned.
func Parse(data []byte, format Format) (Catalog, error) {
	var file ruleFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return Catalog{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("decode: unsupported format %q", format)
	}

	var combined error
	profiles := make([]*Profile, 0, len(file.Syntax))
	for _, r := range file.Syntax {
		p, err := New(r)
		if err != nil {
			combined = errors.Join(combined, err)
			continue
		}
		profiles = append(profiles, p)
	}
	return Catalog{profiles: profiles}, combined
}

// Load reads a rule file from fsys. A missing file, or an empty path, yields
// the builtin catalog.
func Load(fsys afero.Fs, path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin(), nil
	}
	format, ok := FormatForPath(path)
	if !ok {
		return Builtin(), fmt.Errorf("syntax: %q: unknown rule file extension", path)
	}
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Builtin(), nil
	}
	if err != nil {
		return Builtin(), fmt.Errorf("syntax: read %q: %w", path, err)
	}
	c, err := Parse(data, format)
	if err != nil {
		err = fmt.Errorf("syntax: %q: %w", path, err)
	}
	return c, err
}

// Len returns the number of profiles.
func (c Catalog) Len() int { return len(c.profiles) }

// Profiles returns the catalog profiles in lookup order.
func (c Catalog) Profiles() []*Profile {
	return append([]*Profile(nil), c.profiles...)
}

// Lookup returns the first profile whose suffix matches filename.
func (c Catalog) Lookup(filename string) (*Profile, bool) {
	for _, p := range c.profiles {
		if p.Matches(filename) {
			return p, true
		}
	}
	return nil, false
}

// ForFilename returns the matching profile or a fresh Empty profile.
func (c Catalog) ForFilename(filename string) *Profile {
	if p, ok := c.Lookup(filename); ok {
		return p
	}
	return Empty()
}
