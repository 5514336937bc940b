// Package canvas turns markup source into terminal rows and maintains the
// row/column to source-offset map that pointer selection resolves against.
// Rendering is a pure function of its inputs; every content, width, overlay
// or scroll change re-renders from scratch.
package canvas

import (
	"easel/internal/markdown"
)

// Render produces the visible terminal rows for content wrapped at width.
// Diff overlays are applied first, then the selection overlay on top. Line
// numbers are assigned over the full render before the scroll window drops
// the first scroll rows and height (when positive) caps the rest. Empty
// content still renders a single blank row.
func Render(content string, diffs []markdown.Diff, sel markdown.Span, width, scroll, height int) []markdown.Line {
	var lines []markdown.Line
	for _, b := range markdown.Parse(content) {
		for _, u := range b.Units() {
			lines = append(lines, markdown.Wrap(u, width)...)
		}
	}
	if len(lines) == 0 {
		lines = []markdown.Line{{Blank: true}}
	}

	var adds, dels []markdown.Span
	for _, d := range diffs {
		sp := markdown.Span{Start: d.Start, End: d.End}
		if d.Type == markdown.DiffDelete {
			dels = append(dels, sp)
			continue
		}
		adds = append(adds, sp)
	}
	lines = markdown.OverlayLines(lines, adds, markdown.OverlayAdd)
	lines = markdown.OverlayLines(lines, dels, markdown.OverlayDelete)
	if !sel.Empty() {
		lines = markdown.OverlayLines(lines, []markdown.Span{sel}, markdown.OverlaySelect)
	}

	for i := range lines {
		lines[i].Num = i + 1
	}
	return window(lines, scroll, height)
}

// RowCount reports how many rows content occupies at width, for scroll
// clamping without building overlays.
func RowCount(content string, width int) int {
	n := 0
	for _, b := range markdown.Parse(content) {
		for _, u := range b.Units() {
			n += len(markdown.Wrap(u, width))
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

func window(lines []markdown.Line, scroll, height int) []markdown.Line {
	if scroll < 0 {
		scroll = 0
	}
	if scroll > len(lines) {
		scroll = len(lines)
	}
	lines = lines[scroll:]
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return lines
}
