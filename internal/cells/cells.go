// Package cells measures and trims plain text in terminal cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the number of terminal cells a single grapheme cluster occupies.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// Some clusters (emoji with modifiers) report 0 from runewidth.
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Width returns the cell width of text.
func Width(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += ClusterWidth(c)
	}
	return n
}

// Truncate cuts text so that it fits into width cells without splitting a
// grapheme cluster.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used+w > width {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// Center returns the left padding needed to center text in width cells.
// The result is zero when text does not fit.
func Center(text string, width int) int {
	pad := (width - Width(text)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}
