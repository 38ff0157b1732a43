package syntax

// Class is the highlight classification of one render character.
type Class uint8

const (
	Normal Class = iota
	Number
	Type
	Keyword
	// Match marks the current search hit. It is never produced by Highlight.
	Match
)

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Number:
		return "number"
	case Type:
		return "type"
	case Keyword:
		return "keyword"
	case Match:
		return "match"
	default:
		return "unknown"
	}
}
