package syntax

import (
	"fmt"
	"regexp"
	"strings"
)

// TypePattern matches a type token after a colon, optionally behind a
// reference marker ("x: &str", "n: u32"). Group 1 is the token.
const TypePattern = `[^:]:\s?(&?\w+)`

// Rules is the decoded form of one entry of a syntax rule file.
type Rules struct {
	Filetype  string   `toml:"filetype"  yaml:"filetype"`
	Filenames []string `toml:"filenames" yaml:"filenames"`
	Keywords  []string `toml:"keywords"  yaml:"keywords"`
	// Numbers is a regular expression for numeric literals. Empty disables it.
	Numbers string `toml:"numbers" yaml:"numbers"`
}

// Profile is a compiled, read-only rule table.
type Profile struct {
	filetype  string
	filenames []string
	keywords  []string

	numbers     *regexp.Regexp
	types       *regexp.Regexp
	keywordsRE  *regexp.Regexp
	numbersText string
}

// New compiles r into a Profile.
func New(r Rules) (*Profile, error) {
	p := &Profile{
		filetype:    r.Filetype,
		filenames:   append([]string(nil), r.Filenames...),
		keywords:    append([]string(nil), r.Keywords...),
		numbersText: r.Numbers,
		types:       regexp.MustCompile(TypePattern),
	}

	if r.Numbers != "" {
		re, err := regexp.Compile(r.Numbers)
		if err != nil {
			return nil, fmt.Errorf("syntax %q: numbers pattern: %w", r.Filetype, err)
		}
		p.numbers = re
	}

	words := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		words = append(words, regexp.QuoteMeta(k))
	}
	if len(words) > 0 {
		re, err := regexp.Compile(`\b(` + strings.Join(words, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("syntax %q: keywords: %w", r.Filetype, err)
		}
		p.keywordsRE = re
	}
	return p, nil
}

// Empty returns the profile used when no rule table matches a file.
// It has no keywords and no number pattern; type tokens are still classified.
func Empty() *Profile {
	p, _ := New(Rules{})
	return p
}

// Filetype returns the label shown in the status line.
func (p *Profile) Filetype() string {
	if p == nil {
		return ""
	}
	return p.filetype
}

// Keywords returns a copy of the configured keyword list.
func (p *Profile) Keywords() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keywords...)
}

// Filenames returns a copy of the filename suffixes served by p.
func (p *Profile) Filenames() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.filenames...)
}

// Rules returns the rule table p was built from.
func (p *Profile) Rules() Rules {
	if p == nil {
		return Rules{}
	}
	return Rules{
		Filetype:  p.filetype,
		Filenames: p.Filenames(),
		Keywords:  p.Keywords(),
		Numbers:   p.numbersText,
	}
}

// Matches reports whether filename ends with one of p's suffixes.
func (p *Profile) Matches(filename string) bool {
	if p == nil || filename == "" {
		return false
	}
	for _, suffix := range p.filenames {
		if suffix != "" && strings.HasSuffix(filename, suffix) {
			return true
		}
	}
	return false
}
