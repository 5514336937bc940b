package markdown

import "testing"

func concatSegs(segs []Segment) string {
	out := ""
	for _, s := range segs {
		out += s.Text
	}
	return out
}

func TestOverlaySplitsSegment(t *testing.T) {
	segs := []Segment{seg("abcdef", 0, StylePlain)}
	got := ApplyOverlay(segs, []Span{{Start: 0, End: 4}}, OverlayDelete)
	if len(got) != 2 {
		t.Fatalf("expected two parts, got %+v", got)
	}
	if got[0].Text != "abcd" || got[0].Off != 0 || got[0].Overlay != OverlayDelete {
		t.Errorf("inside part %+v", got[0])
	}
	if got[1].Text != "ef" || got[1].Off != 4 || got[1].Overlay != OverlayNone {
		t.Errorf("outside part %+v", got[1])
	}
	for _, s := range got {
		if s.Style != StylePlain {
			t.Errorf("base style clobbered: %+v", s)
		}
	}
}

func TestOverlayMiddleSplit(t *testing.T) {
	segs := []Segment{seg("abcdef", 10, StyleBold)}
	got := ApplyOverlay(segs, []Span{{Start: 12, End: 14}}, OverlaySelect)
	want := []struct {
		text string
		off  int
		ov   Overlay
	}{{"ab", 10, OverlayNone}, {"cd", 12, OverlaySelect}, {"ef", 14, OverlayNone}}
	if len(got) != len(want) {
		t.Fatalf("expected three parts, got %+v", got)
	}
	for i, w := range want {
		if got[i].Text != w.text || got[i].Off != w.off || got[i].Overlay != w.ov {
			t.Errorf("part %d: %+v, want %+v", i, got[i], w)
		}
		if got[i].Style != StyleBold {
			t.Errorf("part %d lost style: %+v", i, got[i])
		}
	}
}

func TestOverlaySpanAcrossSegments(t *testing.T) {
	segs := []Segment{
		seg("aaa", 0, StylePlain),
		seg("bbb", 5, StyleBold),
	}
	got := ApplyOverlay(segs, []Span{{Start: 2, End: 6}}, OverlayAdd)
	if concatSegs(got) != "aaabbb" {
		t.Fatalf("text changed: %q", concatSegs(got))
	}
	var marked []string
	for _, s := range got {
		if s.Overlay == OverlayAdd {
			marked = append(marked, s.Text)
		}
	}
	if len(marked) != 2 || marked[0] != "a" || marked[1] != "b" {
		t.Errorf("marked parts %v, want [a b]", marked)
	}
}

func TestOverlayEmptyAndOutside(t *testing.T) {
	segs := []Segment{seg("abc", 0, StylePlain)}
	tests := [][]Span{
		nil,
		{},
		{{Start: 2, End: 2}},
		{{Start: 10, End: 20}},
	}
	for _, spans := range tests {
		got := ApplyOverlay(segs, spans, OverlaySelect)
		if len(got) != 1 || got[0] != segs[0] {
			t.Errorf("spans %+v: segments changed: %+v", spans, got)
		}
	}
}

func TestOverlayPreservesContent(t *testing.T) {
	doc := "# t\n\nsome **bold** and *it* text to split\n"
	var lines []Line
	for _, b := range Parse(doc) {
		for _, u := range b.Units() {
			lines = append(lines, Wrap(u, 12)...)
		}
	}
	spans := []Span{{Start: 1, End: 3}, {Start: 7, End: 19}, {Start: 25, End: 26}}
	before := make([]string, len(lines))
	for i, ln := range lines {
		before[i] = ln.Text()
	}
	after := OverlayLines(lines, spans, OverlayAdd)
	for i, ln := range after {
		if ln.Text() != before[i] {
			t.Errorf("row %d text changed: %q -> %q", i, before[i], ln.Text())
		}
		for _, s := range ln.Segs {
			if len([]rune(s.Text)) != s.Len {
				t.Errorf("row %d segment %+v: length skew", i, s)
			}
		}
	}
}

func TestSelectionOverridesDiff(t *testing.T) {
	segs := []Segment{seg("abcdef", 0, StylePlain)}
	segs = ApplyOverlay(segs, []Span{{Start: 0, End: 6}}, OverlayAdd)
	segs = ApplyOverlay(segs, []Span{{Start: 2, End: 4}}, OverlaySelect)
	want := []Overlay{OverlayAdd, OverlaySelect, OverlayAdd}
	if len(segs) != 3 {
		t.Fatalf("expected three parts, got %+v", segs)
	}
	for i, s := range segs {
		if s.Overlay != want[i] {
			t.Errorf("part %d overlay %v, want %v", i, s.Overlay, want[i])
		}
	}
}

func TestOverlayMultipleSpansOneSegment(t *testing.T) {
	segs := []Segment{seg("abcdefgh", 0, StylePlain)}
	got := ApplyOverlay(segs, []Span{{Start: 6, End: 7}, {Start: 1, End: 3}}, OverlayDelete)
	// Spans arrive unsorted; output parts stay in offset order.
	want := []struct {
		text string
		ov   Overlay
	}{{"a", OverlayNone}, {"bc", OverlayDelete}, {"def", OverlayNone}, {"g", OverlayDelete}, {"h", OverlayNone}}
	if len(got) != len(want) {
		t.Fatalf("parts %+v", got)
	}
	for i, w := range want {
		if got[i].Text != w.text || got[i].Overlay != w.ov {
			t.Errorf("part %d: %+v, want %+v", i, got[i], w)
		}
	}
}
