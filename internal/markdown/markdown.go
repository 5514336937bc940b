// Package markdown parses a small markup subset into blocks and styled
// segments that stay addressable by source offset. Every displayed character
// carries the offset of the character it came from, so callers can map
// terminal positions back into the original string. Offsets are 0-based rune
// indices.
package markdown

import "fmt"

// BlockKind classifies a top-level block.
type BlockKind uint8

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindCode
	KindList
	KindQuote
	KindRule
	KindBlank
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindCode:
		return "code"
	case KindList:
		return "list"
	case KindQuote:
		return "quote"
	case KindRule:
		return "rule"
	case KindBlank:
		return "blank"
	}
	return "unknown"
}

// Block is one non-overlapping span of the source document. SourceText keeps
// the raw text including the trailing newline when the source has one, so the
// concatenation of all blocks reconstructs the document exactly.
type Block struct {
	Kind       BlockKind
	SourceText string
	Off        int // rune offset of SourceText[0] in the document
	Level      int // heading level, 1-4
	Ordered    bool
	Items      []Item
}

// Item is a single list item: the marker line plus any absorbed continuation
// lines, verbatim.
type Item struct {
	Text string
	Off  int
}

// Style is the markup style of a segment.
type Style uint8

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
	StyleCode
	StyleLink
	StyleHeading
	StyleMarker
	StyleRule
)

// Overlay is a visual state attached on top of a segment's style. Overlays
// are applied by range splitting and never alter text or offsets.
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayAdd
	OverlayDelete
	OverlaySelect
)

// Segment is a run of displayed characters with one style. Text index i
// corresponds to source offset Off+i; Len is the source length of the run.
// Markup delimiters are stripped at segment boundaries, never inside.
type Segment struct {
	Text    string
	Off     int
	Len     int
	Style   Style
	Overlay Overlay
}

func seg(text string, off int, style Style) Segment {
	return Segment{Text: text, Off: off, Len: len([]rune(text)), Style: style}
}

// Line is one physical terminal row after reflow. Indent is display-only
// left padding for wrapped continuation rows; padding has no source offsets.
type Line struct {
	Num    int // 1-based row in the full render, before scrolling
	Off    int // source offset of the first displayed character
	Len    int // source span of the row, excluding a dropped break space
	Segs   []Segment
	Indent int
	Blank  bool
}

// Text returns the row's displayed characters without indent padding.
func (l Line) Text() string {
	n := 0
	for _, s := range l.Segs {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range l.Segs {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Span is a half-open [Start,End) range of source offsets.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span selects no characters.
func (s Span) Empty() bool { return s.End <= s.Start }

// DiffType marks a changed region as added or deleted text.
type DiffType uint8

const (
	DiffAdd DiffType = iota
	DiffDelete
)

func (t DiffType) String() string {
	if t == DiffDelete {
		return "delete"
	}
	return "add"
}

// MarshalJSON encodes the type as its wire name.
func (t DiffType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the wire names; anything else is an error.
func (t *DiffType) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"add"`:
		*t = DiffAdd
	case `"delete"`:
		*t = DiffDelete
	default:
		return fmt.Errorf("markdown: bad diff type %s", b)
	}
	return nil
}

// Diff is an externally supplied changed region of the document.
type Diff struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Type  DiffType `json:"type"`
}
