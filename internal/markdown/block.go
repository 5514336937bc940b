package markdown

import "strings"

// lineKind classifies a raw source line for block-boundary decisions.
type lineKind uint8

const (
	lineText lineKind = iota
	lineBlank
	lineHeading
	lineRule
	lineFence
	lineQuote
	lineUList
	lineOList
)

type srcLine struct {
	text string // without the trailing newline
	off  int    // rune offset of the first character
	nl   bool   // a newline follows in the source
	kind lineKind
}

func (l srcLine) raw() string {
	if l.nl {
		return l.text + "\n"
	}
	return l.text
}

// Parse splits content into blocks. Blocks never overlap, cover the whole
// input, and carry the rune offset of their first character; concatenating
// SourceText in order reproduces content exactly. Classification is ordered:
// blank, heading, rule, fence, quote, unordered list, ordered list,
// paragraph. Malformed markup falls through to paragraph text. Empty input
// yields no blocks.
func Parse(content string) []Block {
	lines := scanLines(content)
	var blocks []Block
	for i := 0; i < len(lines); {
		ln := lines[i]
		switch ln.kind {
		case lineBlank:
			blocks = append(blocks, Block{Kind: KindBlank, SourceText: ln.raw(), Off: ln.off})
			i++
		case lineHeading:
			blocks = append(blocks, Block{
				Kind:       KindHeading,
				SourceText: ln.raw(),
				Off:        ln.off,
				Level:      headingLevel(ln.text),
			})
			i++
		case lineRule:
			blocks = append(blocks, Block{Kind: KindRule, SourceText: ln.raw(), Off: ln.off})
			i++
		case lineFence:
			// Consume to the closing fence, or to the end of the document
			// when the fence is never closed.
			j := i + 1
			for j < len(lines) && lines[j].kind != lineFence {
				j++
			}
			if j < len(lines) {
				j++
			}
			blocks = append(blocks, Block{Kind: KindCode, SourceText: joinRaw(lines[i:j]), Off: ln.off})
			i = j
		case lineQuote:
			// Quote lines plus plain continuation lines.
			j := i + 1
			for j < len(lines) && (lines[j].kind == lineQuote || lines[j].kind == lineText) {
				j++
			}
			blocks = append(blocks, Block{Kind: KindQuote, SourceText: joinRaw(lines[i:j]), Off: ln.off})
			i = j
		case lineUList, lineOList:
			j, items := scanItems(lines, i, ln.kind)
			blocks = append(blocks, Block{
				Kind:       KindList,
				SourceText: joinRaw(lines[i:j]),
				Off:        ln.off,
				Ordered:    ln.kind == lineOList,
				Items:      items,
			})
			i = j
		default:
			j := i + 1
			for j < len(lines) && lines[j].kind == lineText {
				j++
			}
			blocks = append(blocks, Block{Kind: KindParagraph, SourceText: joinRaw(lines[i:j]), Off: ln.off})
			i = j
		}
	}
	return blocks
}

// scanItems consumes a run of same-flavor list items starting at i. A marker
// line opens a new item; plain lines are absorbed into the current one. A
// marker of the other flavor ends the block.
func scanItems(lines []srcLine, i int, kind lineKind) (int, []Item) {
	var items []Item
	j := i
	for j < len(lines) && lines[j].kind == kind {
		start := j
		j++
		for j < len(lines) && lines[j].kind == lineText {
			j++
		}
		items = append(items, Item{Text: joinRaw(lines[start:j]), Off: lines[start].off})
	}
	return j, items
}

func scanLines(content string) []srcLine {
	if content == "" {
		return nil
	}
	parts := strings.Split(content, "\n")
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		parts = parts[:len(parts)-1]
	}
	lines := make([]srcLine, len(parts))
	off := 0
	for i, p := range parts {
		nl := trailing || i < len(parts)-1
		lines[i] = srcLine{text: p, off: off, nl: nl, kind: classifyLine(p)}
		off += len([]rune(p))
		if nl {
			off++
		}
	}
	return lines
}

func joinRaw(lines []srcLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.raw())
	}
	return b.String()
}

func classifyLine(s string) lineKind {
	trimmed := strings.TrimSpace(s)
	switch {
	case trimmed == "":
		return lineBlank
	case headingLevel(s) > 0:
		return lineHeading
	case isRule(trimmed):
		return lineRule
	case strings.HasPrefix(s, "```"):
		return lineFence
	case strings.HasPrefix(s, ">"):
		return lineQuote
	case isUListMarker(s):
		return lineUList
	case isOListMarker(s):
		return lineOList
	}
	return lineText
}

// headingLevel returns 1-4 for a heading line, 0 otherwise. Five or more
// hashes, or a hash run with no following whitespace, is plain text.
func headingLevel(s string) int {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n < 1 || n > 4 || n >= len(s) {
		return 0
	}
	if s[n] != ' ' && s[n] != '\t' {
		return 0
	}
	return n
}

func isRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for _, r := range trimmed {
		if r != '-' && r != '*' && r != '_' {
			return false
		}
	}
	return true
}

func isUListMarker(s string) bool {
	if len(s) < 2 {
		return false
	}
	if s[0] != '-' && s[0] != '*' && s[0] != '+' {
		return false
	}
	return s[1] == ' ' || s[1] == '\t'
}

func isOListMarker(s string) bool {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n+1 >= len(s) || s[n] != '.' {
		return false
	}
	return s[n+1] == ' ' || s[n+1] == '\t'
}
