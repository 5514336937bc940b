// Package widget produces canvas markup for small built-in displays: a
// kanban board, a month calendar, and a live command monitor. Widgets only
// format content; rendering and selection stay in the canvas.
package widget

import "strings"

// heading writes a level-n heading line.
func heading(b *strings.Builder, level int, text string) {
	b.WriteString(strings.Repeat("#", level))
	b.WriteByte(' ')
	b.WriteString(text)
	b.WriteString("\n\n")
}
