// Package filestore reads and writes whole text files for the editor.
package filestore

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Store is line oriented file access on top of an afero filesystem.
type Store struct {
	fs afero.Fs
}

// New returns a Store backed by fsys. A nil fsys uses the OS filesystem.
func New(fsys afero.Fs) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{fs: fsys}
}

// ReadLines returns the file split into lines with line endings removed.
// A missing file is reported with an error matching fs.ErrNotExist.
func (s *Store) ReadLines(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// WriteFile replaces the file with text and returns the number of bytes
// written.
func (s *Store) WriteFile(path, text string) (int, error) {
	f, err := s.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	n, err := f.WriteString(text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// SplitLines splits text on '\n' and drops a trailing '\r' from every line.
// A final newline does not start an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
