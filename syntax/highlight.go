package syntax

import "regexp"

// Highlight classifies every character of render using p.
//
// Matches are painted in order numbers, types, keywords; a later class
// overwrites an earlier one on overlapping characters. Only capture group 1 is
// painted, so anchors such as the colon before a type stay Normal. Patterns
// without a group paint the whole match.
//
// The result always has len(render) entries.
func Highlight(render []rune, p *Profile) []Class {
	hl := make([]Class, len(render))
	if p == nil || len(render) == 0 {
		return hl
	}

	text := string(render)
	runeAt := byteToRuneIndex(text)
	paint := func(re *regexp.Regexp, c Class) {
		if re == nil {
			return
		}
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[0], m[1]
			if len(m) >= 4 {
				if m[2] < 0 {
					continue
				}
				start, end = m[2], m[3]
			}
			for i := runeAt[start]; i < runeAt[end]; i++ {
				hl[i] = c
			}
		}
	}

	paint(p.numbers, Number)
	paint(p.types, Type)
	paint(p.keywordsRE, Keyword)
	return hl
}

// byteToRuneIndex maps every byte offset of s (including len(s)) to the index
// of the rune that starts at or contains it.
func byteToRuneIndex(s string) []int {
	idx := make([]int, len(s)+1)
	n := 0
	for off := range s {
		idx[off] = n
		n++
	}
	idx[len(s)] = n
	// Continuation bytes inherit the index of the following rune boundary.
	for i := len(s) - 1; i >= 0; i-- {
		if i > 0 && idx[i] == 0 {
			idx[i] = idx[i+1]
		}
	}
	return idx
}
