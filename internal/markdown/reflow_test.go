package markdown

import "testing"

func plainUnit(text string, off int) Unit {
	return Unit{Segs: []Segment{seg(text, off, StylePlain)}, Off: off}
}

func TestWrapBreaksAtSpace(t *testing.T) {
	lines := Wrap(plainUnit("aaaa bbbb cccc", 0), 9)
	if len(lines) != 2 {
		t.Fatalf("expected two rows, got %+v", lines)
	}
	if got := lines[0].Text(); got != "aaaa bbbb" {
		t.Errorf("row 0 text %q", got)
	}
	if got := lines[1].Text(); got != "cccc" {
		t.Errorf("row 1 text %q", got)
	}
	// The break space at offset 9 belongs to neither row.
	if lines[0].Off != 0 || lines[0].Len != 9 {
		t.Errorf("row 0 span %d+%d, want 0+9", lines[0].Off, lines[0].Len)
	}
	if lines[1].Off != 10 || lines[1].Len != 4 {
		t.Errorf("row 1 span %d+%d, want 10+4", lines[1].Off, lines[1].Len)
	}
}

func TestWrapMidWindowSpace(t *testing.T) {
	lines := Wrap(plainUnit("aa bbbb", 0), 4)
	if len(lines) != 2 {
		t.Fatalf("expected two rows, got %+v", lines)
	}
	if lines[0].Text() != "aa" || lines[1].Text() != "bbbb" {
		t.Errorf("rows %q / %q", lines[0].Text(), lines[1].Text())
	}
	if lines[1].Off != 3 {
		t.Errorf("row 1 offset %d, want 3", lines[1].Off)
	}
}

func TestWrapHardBreak(t *testing.T) {
	lines := Wrap(plainUnit("abcdefgh", 5), 3)
	want := []struct {
		text string
		off  int
	}{{"abc", 5}, {"def", 8}, {"gh", 11}}
	if len(lines) != len(want) {
		t.Fatalf("expected %d rows, got %+v", len(want), lines)
	}
	for i, w := range want {
		if lines[i].Text() != w.text || lines[i].Off != w.off {
			t.Errorf("row %d: %q at %d, want %q at %d", i, lines[i].Text(), lines[i].Off, w.text, w.off)
		}
	}
}

func TestWrapEmptyUnit(t *testing.T) {
	lines := Wrap(Unit{Off: 7}, 10)
	if len(lines) != 1 || !lines[0].Blank || lines[0].Off != 7 {
		t.Fatalf("expected one blank row at offset 7, got %+v", lines)
	}
}

func TestWrapContinuationIndent(t *testing.T) {
	u := Unit{
		Segs:   []Segment{seg("- ", 0, StyleMarker), seg("aaa bbb ccc", 2, StylePlain)},
		Off:    0,
		Indent: 2,
	}
	lines := Wrap(u, 7)
	if len(lines) != 3 {
		t.Fatalf("expected three rows, got %+v", lines)
	}
	if lines[0].Indent != 0 || lines[0].Text() != "- aaa" {
		t.Errorf("row 0: indent %d text %q", lines[0].Indent, lines[0].Text())
	}
	// Continuation rows wrap at width-indent columns.
	for i := 1; i < 3; i++ {
		if lines[i].Indent != 2 {
			t.Errorf("row %d indent %d, want 2", i, lines[i].Indent)
		}
	}
	if lines[1].Text() != "bbb" || lines[2].Text() != "ccc" {
		t.Errorf("continuation rows %q / %q", lines[1].Text(), lines[2].Text())
	}
}

func TestWrapSplitsSegments(t *testing.T) {
	// "aaa" then bold "bbbcc" with a two-rune delimiter gap in the source.
	u := Unit{Segs: []Segment{
		seg("aaa", 0, StylePlain),
		seg("bbbcc", 5, StyleBold),
	}, Off: 0}
	lines := Wrap(u, 4)
	if len(lines) != 2 {
		t.Fatalf("expected two rows, got %+v", lines)
	}
	if lines[0].Text() != "aaab" || lines[1].Text() != "bbcc" {
		t.Fatalf("rows %q / %q", lines[0].Text(), lines[1].Text())
	}
	r0, r1 := lines[0].Segs, lines[1].Segs
	if len(r0) != 2 || r0[1].Text != "b" || r0[1].Off != 5 || r0[1].Style != StyleBold {
		t.Errorf("row 0 segments %+v", r0)
	}
	if len(r1) != 1 || r1[0].Text != "bbcc" || r1[0].Off != 6 || r1[0].Style != StyleBold {
		t.Errorf("row 1 segments %+v", r1)
	}
	if lines[1].Off != 6 || lines[1].Len != 4 {
		t.Errorf("row 1 span %d+%d, want 6+4", lines[1].Off, lines[1].Len)
	}
}

// TestWrapIdempotence re-wraps each produced row at the same width and
// expects it back unchanged.
func TestWrapIdempotence(t *testing.T) {
	inputs := []string{
		"aaaa bbbb cccc",
		"a b c d e f g h i j k",
		"looooooooongword tail",
		"x",
		"spaced   out   words here",
	}
	for _, in := range inputs {
		for _, width := range []int{3, 5, 9, 12, 80} {
			for _, ln := range Wrap(plainUnit(in, 0), width) {
				again := Wrap(Unit{Segs: ln.Segs, Off: ln.Off}, width)
				if len(again) != 1 {
					t.Fatalf("%q width %d: row %q re-wrapped into %d rows", in, width, ln.Text(), len(again))
				}
				if again[0].Text() != ln.Text() || again[0].Off != ln.Off {
					t.Errorf("%q width %d: re-wrap changed row %q -> %q", in, width, ln.Text(), again[0].Text())
				}
			}
		}
	}
}
