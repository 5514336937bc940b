package transport

import (
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"

	"easel/internal/markdown"
)

// ComputeDiffs derives change highlights for an update: spans of the new
// content that differ from the old one, as rune offsets. Insertions and
// replacements become add ranges; pure deletions leave nothing behind in the
// new text and are dropped. Callers that want delete strikethroughs send
// explicit ranges with the diffs op instead.
func ComputeDiffs(oldText, newText string) []markdown.Diff {
	edits := udiff.Strings(oldText, newText)
	if len(edits) == 0 {
		return nil
	}
	var out []markdown.Diff
	delta := 0
	for _, e := range edits {
		newStart := e.Start + delta
		newEnd := newStart + len(e.New)
		delta += len(e.New) - (e.End - e.Start)
		if e.New == "" {
			continue
		}
		out = append(out, markdown.Diff{
			Start: runeOffset(newText, newStart),
			End:   runeOffset(newText, newEnd),
			Type:  markdown.DiffAdd,
		})
	}
	return out
}

// runeOffset converts a byte offset into s to a rune offset.
func runeOffset(s string, b int) int {
	if b < 0 {
		return 0
	}
	if b > len(s) {
		b = len(s)
	}
	return utf8.RuneCountInString(s[:b])
}
