package markdown

import "sort"

// ApplyOverlay splits segments at span boundaries and marks the parts inside
// any span with the overlay, overwriting whatever overlay they carried.
// Spans are [start,end) source offsets; degenerate spans and empty parts are
// dropped. Concatenated text, offsets and total length are preserved, so the
// pass is safe to run repeatedly (diffs first, then selection).
func ApplyOverlay(segs []Segment, spans []Span, ov Overlay) []Segment {
	spans = normalizeSpans(spans)
	if len(spans) == 0 {
		return segs
	}
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		out = append(out, splitSegment(s, spans, ov)...)
	}
	return out
}

// OverlayLines runs ApplyOverlay across every row's segments.
func OverlayLines(lines []Line, spans []Span, ov Overlay) []Line {
	spans = normalizeSpans(spans)
	if len(spans) == 0 {
		return lines
	}
	out := make([]Line, len(lines))
	for i, ln := range lines {
		out[i] = ln
		out[i].Segs = ApplyOverlay(ln.Segs, spans, ov)
	}
	return out
}

func splitSegment(s Segment, spans []Span, ov Overlay) []Segment {
	segStart, segEnd := s.Off, s.Off+s.Len
	rs := []rune(s.Text)
	parts := make([]Segment, 0, 1)
	emit := func(from, to int, inside bool) {
		if to <= from {
			return
		}
		p := s
		p.Text = string(rs[from-segStart : to-segStart])
		p.Off = from
		p.Len = to - from
		if inside {
			p.Overlay = ov
		}
		parts = append(parts, p)
	}
	cur := segStart
	for _, sp := range spans {
		if sp.Start >= segEnd {
			break
		}
		from, to := max(sp.Start, cur), min(sp.End, segEnd)
		if from >= to {
			continue
		}
		emit(cur, from, false)
		emit(from, to, true)
		cur = to
	}
	emit(cur, segEnd, false)
	return parts
}

// normalizeSpans drops empty spans and sorts the rest by start offset.
func normalizeSpans(spans []Span) []Span {
	out := spans[:0:0]
	for _, sp := range spans {
		if !sp.Empty() {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
