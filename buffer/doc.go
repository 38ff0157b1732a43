// Package buffer implements the line-oriented document model of the editor.
//
// A Buffer is an ordered list of rows. Each Row keeps its raw runes, the
// tab-expanded render runes and one highlight class per render rune; the
// derived parts are rebuilt in full whenever the raw runes change.
//
// Coordinates are 0-based (Row, Col) in raw runes. Row may equal Len(), the
// line just past the end of the document, where Col is always 0.
package buffer
