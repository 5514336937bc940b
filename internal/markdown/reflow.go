package markdown

// Wrap reflows one logical unit into physical rows of at most width columns.
// Wrapping is greedy over the unit's concatenated text: break at the last
// space at or before the width boundary, hard-break mid-word when a single
// word overflows the row. A space consumed by a break is dropped from both
// rows and its offset is attributed to neither. Continuation rows carry the
// unit's indent and wrap at width-indent columns. An empty unit yields a
// single blank row anchored at the unit's offset.
func Wrap(u Unit, width int) []Line {
	if width < 1 {
		width = 1
	}
	full := unitRunes(u)
	if len(full) == 0 {
		return []Line{{Off: u.Off, Blank: true}}
	}

	type cut struct{ start, end int }
	var cuts []cut
	start := 0
	for start < len(full) {
		avail := width
		if len(cuts) > 0 {
			avail = width - u.Indent
		}
		if avail < 1 {
			avail = 1
		}
		if len(full)-start <= avail {
			cuts = append(cuts, cut{start, len(full)})
			break
		}
		limit := start + avail
		switch {
		case full[limit] == ' ':
			cuts = append(cuts, cut{start, limit})
			start = limit + 1
		default:
			if p := lastSpace(full, start, limit); p > start {
				cuts = append(cuts, cut{start, p})
				start = p + 1
			} else {
				cuts = append(cuts, cut{start, limit})
				start = limit
			}
		}
	}

	lines := make([]Line, 0, len(cuts))
	for ci, c := range cuts {
		ln := Line{}
		if ci > 0 {
			ln.Indent = u.Indent
		}
		pos := 0
		for _, s := range u.Segs {
			n := len([]rune(s.Text))
			segStart, segEnd := pos, pos+n
			pos = segEnd
			from, to := max(segStart, c.start), min(segEnd, c.end)
			if from >= to {
				continue
			}
			rs := []rune(s.Text)
			sub := Segment{
				Text:    string(rs[from-segStart : to-segStart]),
				Off:     s.Off + (from - segStart),
				Len:     to - from,
				Style:   s.Style,
				Overlay: s.Overlay,
			}
			ln.Segs = append(ln.Segs, sub)
		}
		first, last := ln.Segs[0], ln.Segs[len(ln.Segs)-1]
		ln.Off = first.Off
		ln.Len = last.Off + last.Len - first.Off
		lines = append(lines, ln)
	}
	return lines
}

func unitRunes(u Unit) []rune {
	n := 0
	for _, s := range u.Segs {
		n += len(s.Text)
	}
	rs := make([]rune, 0, n)
	for _, s := range u.Segs {
		rs = append(rs, []rune(s.Text)...)
	}
	return rs
}

func lastSpace(rs []rune, start, limit int) int {
	for j := limit - 1; j > start; j-- {
		if rs[j] == ' ' {
			return j
		}
	}
	return -1
}
