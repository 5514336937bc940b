package markdown

import "strings"

// Unit is one logical run of segments that reflows as a whole: a heading, a
// paragraph, a list item, a single quote line, or a single code line. Off
// anchors the unit when it has no segments (blank rows). Indent is the left
// padding applied to wrapped continuation rows.
type Unit struct {
	Segs   []Segment
	Off    int
	Indent int
}

// Units expands a block into its logical units. Paragraphs and list items
// join their source lines for display with each newline replaced by a single
// space, which keeps the joined text 1:1 with source offsets (the space maps
// to the newline). Quote and code blocks stay one unit per source line.
func (b Block) Units() []Unit {
	switch b.Kind {
	case KindBlank:
		return []Unit{{Off: b.Off}}
	case KindRule:
		text := strings.TrimSuffix(b.SourceText, "\n")
		return []Unit{{Segs: []Segment{seg(text, b.Off, StyleRule)}, Off: b.Off}}
	case KindHeading:
		return []Unit{headingUnit(b)}
	case KindCode:
		return codeUnits(b)
	case KindQuote:
		return quoteUnits(b)
	case KindList:
		return listUnits(b)
	}
	body := strings.TrimSuffix(b.SourceText, "\n")
	joined := strings.ReplaceAll(body, "\n", " ")
	return []Unit{{Segs: parseInline(joined, b.Off, StylePlain), Off: b.Off}}
}

func headingUnit(b Block) Unit {
	text := strings.TrimSuffix(b.SourceText, "\n")
	ml := b.Level + 1 // hashes plus the following whitespace character
	segs := []Segment{seg(text[:ml], b.Off, StyleMarker)}
	segs = append(segs, parseInline(text[ml:], b.Off+ml, StyleHeading)...)
	return Unit{Segs: segs, Off: b.Off}
}

// codeUnits renders every line, fences included, verbatim. Hiding the fences
// would leave source spans with no terminal position.
func codeUnits(b Block) []Unit {
	body := strings.TrimSuffix(b.SourceText, "\n")
	var units []Unit
	off := b.Off
	for _, ln := range strings.Split(body, "\n") {
		u := Unit{Off: off}
		if ln != "" {
			u.Segs = []Segment{seg(ln, off, StyleCode)}
		}
		units = append(units, u)
		off += len([]rune(ln)) + 1
	}
	return units
}

func quoteUnits(b Block) []Unit {
	body := strings.TrimSuffix(b.SourceText, "\n")
	var units []Unit
	off := b.Off
	for _, ln := range strings.Split(body, "\n") {
		units = append(units, quoteLineUnit(ln, off))
		off += len([]rune(ln)) + 1
	}
	return units
}

func quoteLineUnit(ln string, off int) Unit {
	if !strings.HasPrefix(ln, ">") {
		// Absorbed continuation line, no marker.
		return Unit{Segs: parseInline(ln, off, StylePlain), Off: off}
	}
	ml := 1
	if len(ln) > 1 && ln[1] == ' ' {
		ml = 2
	}
	segs := []Segment{seg(ln[:ml], off, StyleMarker)}
	segs = append(segs, parseInline(ln[ml:], off+ml, StylePlain)...)
	return Unit{Segs: segs, Off: off, Indent: ml}
}

func listUnits(b Block) []Unit {
	units := make([]Unit, 0, len(b.Items))
	for _, it := range b.Items {
		body := strings.TrimSuffix(it.Text, "\n")
		joined := strings.ReplaceAll(body, "\n", " ")
		ml := itemMarkerLen(joined)
		segs := []Segment{seg(joined[:ml], it.Off, StyleMarker)}
		segs = append(segs, parseInline(joined[ml:], it.Off+ml, StylePlain)...)
		units = append(units, Unit{Segs: segs, Off: it.Off, Indent: ml})
	}
	return units
}

// itemMarkerLen is the width of the item's marker: the bullet or digit run,
// the dot for ordered items, and one whitespace character.
func itemMarkerLen(s string) int {
	if isUListMarker(s) {
		return 2
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n + 2
}

// parseInline scans text once, left to right, trying bold, italic, code and
// link in that order at each position. First match wins; no nesting. A styled
// segment's offset points at the first character after the opening
// delimiter; unmatched delimiters stay literal plain text.
func parseInline(text string, base int, style Style) []Segment {
	rs := []rune(text)
	var segs []Segment
	plain := -1
	flush := func(end int) {
		if plain >= 0 && end > plain {
			segs = append(segs, seg(string(rs[plain:end]), base+plain, style))
		}
		plain = -1
	}
	for i := 0; i < len(rs); {
		m, ok := matchInline(rs, i)
		if !ok {
			if plain < 0 {
				plain = i
			}
			i++
			continue
		}
		flush(i)
		segs = append(segs, seg(string(rs[m.start:m.end]), base+m.start, m.style))
		i = m.next
	}
	flush(len(rs))
	return segs
}

type inlineMatch struct {
	start, end int // rune indexes of the displayed content
	next       int // resume index past the closing delimiter
	style      Style
}

// matchInline requires non-empty content for every form; degenerate spans
// like ** ** with nothing inside fall through to literal text.
func matchInline(rs []rune, i int) (inlineMatch, bool) {
	switch rs[i] {
	case '*':
		if i+1 < len(rs) && rs[i+1] == '*' {
			if end := indexPair(rs, i+2); end > i+2 {
				return inlineMatch{i + 2, end, end + 2, StyleBold}, true
			}
		}
		if end := indexRune(rs, i+1, '*'); end > i+1 {
			return inlineMatch{i + 1, end, end + 1, StyleItalic}, true
		}
	case '`':
		if end := indexRune(rs, i+1, '`'); end > i+1 {
			return inlineMatch{i + 1, end, end + 1, StyleCode}, true
		}
	case '[':
		cb := indexRune(rs, i+1, ']')
		if cb > i+1 && cb+1 < len(rs) && rs[cb+1] == '(' {
			if cp := indexRune(rs, cb+2, ')'); cp >= cb+2 {
				return inlineMatch{i + 1, cb, cp + 1, StyleLink}, true
			}
		}
	}
	return inlineMatch{}, false
}

func indexRune(rs []rune, from int, r rune) int {
	for j := from; j < len(rs); j++ {
		if rs[j] == r {
			return j
		}
	}
	return -1
}

func indexPair(rs []rune, from int) int {
	for j := from; j+1 < len(rs); j++ {
		if rs[j] == '*' && rs[j+1] == '*' {
			return j
		}
	}
	return -1
}
