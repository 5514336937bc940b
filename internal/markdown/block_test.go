package markdown

import (
	"strings"
	"testing"
)

func kinds(blocks []Block) []BlockKind {
	out := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []BlockKind
	}{
		{"paragraph", "hello world", []BlockKind{KindParagraph}},
		{"heading", "# title", []BlockKind{KindHeading}},
		{"rule", "---", []BlockKind{KindRule}},
		{"rule mixed", "-*_-*_", []BlockKind{KindRule}},
		{"fence", "```\ncode\n```", []BlockKind{KindCode}},
		{"quote", "> hi", []BlockKind{KindQuote}},
		{"ulist", "- one", []BlockKind{KindList}},
		{"olist", "1. one", []BlockKind{KindList}},
		{"blank run", "a\n\n\nb", []BlockKind{KindParagraph, KindBlank, KindBlank, KindParagraph}},
		{"rule beats list", "---\n- x", []BlockKind{KindRule, KindList}},
		{"five hashes", "##### deep", []BlockKind{KindParagraph}},
		{"hash no space", "#tag", []BlockKind{KindParagraph}},
		{"short rule", "--", []BlockKind{KindParagraph}},
		{"heading stops paragraph", "text\n# h", []BlockKind{KindParagraph, KindHeading}},
		{"quote absorbs text", "> a\nplain tail", []BlockKind{KindQuote}},
		{"quote stops at heading", "> a\n# h", []BlockKind{KindQuote, KindHeading}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Parse(tt.in))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("block %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSpanCoverage(t *testing.T) {
	docs := []string{
		"",
		"single line",
		"trailing newline\n",
		"# Title\n\npara one\npara two\n\n- item a\n- item b\n  cont\n\n> quoted\n> more\n\n```go\nx := 1\n```\n---\n",
		"```\nnever closed\nstill code",
		"\n\n\n",
		"1. first\n2. second\n- switch flavor\n",
		"über — ünïcode\nsecond línea\n",
	}
	for _, doc := range docs {
		blocks := Parse(doc)
		var b strings.Builder
		for _, bl := range blocks {
			b.WriteString(bl.SourceText)
		}
		if b.String() != doc {
			t.Errorf("concatenation mismatch for %q: got %q", doc, b.String())
		}
		off := 0
		for i, bl := range blocks {
			if bl.Off != off {
				t.Errorf("doc %q block %d: offset %d, want %d", doc, i, bl.Off, off)
			}
			off += len([]rune(bl.SourceText))
		}
		if off != len([]rune(doc)) {
			t.Errorf("doc %q: covered %d runes, want %d", doc, off, len([]rune(doc)))
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("expected no blocks, got %d", len(got))
	}
}

func TestParseHeadingLevels(t *testing.T) {
	for lvl := 1; lvl <= 4; lvl++ {
		in := strings.Repeat("#", lvl) + " x"
		blocks := Parse(in)
		if len(blocks) != 1 || blocks[0].Kind != KindHeading {
			t.Fatalf("%q: expected one heading", in)
		}
		if blocks[0].Level != lvl {
			t.Errorf("%q: level %d, want %d", in, blocks[0].Level, lvl)
		}
	}
}

func TestParseUnterminatedFence(t *testing.T) {
	blocks := Parse("```\na\nb")
	if len(blocks) != 1 || blocks[0].Kind != KindCode {
		t.Fatalf("expected a single code block, got %v", kinds(blocks))
	}
	if blocks[0].SourceText != "```\na\nb" {
		t.Errorf("code block text %q", blocks[0].SourceText)
	}
}

func TestParseListItems(t *testing.T) {
	blocks := Parse("- aa\n- bb\n  cc\n- dd\n")
	if len(blocks) != 1 {
		t.Fatalf("expected one list block, got %v", kinds(blocks))
	}
	items := blocks[0].Items
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	wantText := []string{"- aa\n", "- bb\n  cc\n", "- dd\n"}
	wantOff := []int{0, 5, 15}
	for i := range items {
		if items[i].Text != wantText[i] {
			t.Errorf("item %d text %q, want %q", i, items[i].Text, wantText[i])
		}
		if items[i].Off != wantOff[i] {
			t.Errorf("item %d offset %d, want %d", i, items[i].Off, wantOff[i])
		}
	}
}

func TestParseListFlavorSwitch(t *testing.T) {
	blocks := Parse("- a\n1. b\n")
	if len(blocks) != 2 {
		t.Fatalf("expected two blocks, got %v", kinds(blocks))
	}
	if blocks[0].Ordered || !blocks[1].Ordered {
		t.Errorf("flavors: got %v/%v", blocks[0].Ordered, blocks[1].Ordered)
	}
}
