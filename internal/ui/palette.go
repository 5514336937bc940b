package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

// paletteCmd is one action reachable from the Ctrl+P command palette.
type paletteCmd struct {
	Name string
	Desc string
}

var paletteCmds = []paletteCmd{
	{Name: "open pane", Desc: "Open the current document in a tmux pane"},
	{Name: "reload", Desc: "Reload the current document from disk"},
	{Name: "rescan", Desc: "Rescan the directory for documents"},
	{Name: "clear selection", Desc: "Drop the active selection"},
	{Name: "top", Desc: "Scroll the preview to the first row"},
	{Name: "bottom", Desc: "Scroll the preview to the last row"},
	{Name: "settings", Desc: "Edit easel settings"},
	{Name: "quit", Desc: "Leave the dashboard"},
}

type paletteSource []paletteCmd

func (s paletteSource) String(i int) string { return s[i].Name }
func (s paletteSource) Len() int            { return len(s) }

// filterPalette ranks commands against the query. An empty query lists
// everything in declaration order.
func filterPalette(query string) []paletteCmd {
	q := strings.TrimSpace(query)
	if q == "" {
		return paletteCmds
	}
	matches := fuzzy.FindFrom(q, paletteSource(paletteCmds))
	out := make([]paletteCmd, 0, len(matches))
	for _, mt := range matches {
		out = append(out, paletteCmds[mt.Index])
	}
	return out
}

func (m *model) refreshPalette() {
	m.palFiltered = filterPalette(m.ti.Value())
	if m.palIndex >= len(m.palFiltered) {
		m.palIndex = 0
	}
}

// renderPaletteTop draws the command palette overlay at the very top.
// It includes an input echo line and the filtered commands list.
func renderPaletteTop(width int, value string, cmds []paletteCmd, sel int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	nameWidth := 16
	border := BorderStyle()
	fillBG := FillBG()
	text := lipgloss.NewStyle().Foreground(Vitesse.Text)
	// styles
	prompt := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render("›")
	hl := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render

	var b strings.Builder
	// top border
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	// input line (trim to inner)
	in := fmt.Sprintf(" %s %s", prompt, text.Render(value))
	if xansi.StringWidth(in) > inner {
		in = xansi.Truncate(in, inner, "")
	}
	b.WriteString(border.Render("│"))
	b.WriteString(fillBG.Width(inner).Render(in))
	b.WriteString(border.Render("│\n"))

	// items (limit)
	maxItems := 10
	if len(cmds) > maxItems {
		cmds = cmds[:maxItems]
		if sel >= maxItems {
			sel = maxItems - 1
		}
	}
	if len(cmds) == 0 {
		line := "  no matches"
		b.WriteString(border.Render("│"))
		b.WriteString(fillBG.Width(inner).Render(line))
		b.WriteString(border.Render("│\n"))
		b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
		b.WriteString("  ↑/↓ select · Enter run · Esc close\n")
		return b.String()
	}
	for i, c := range cmds {
		line := fmt.Sprintf("  %-*s  %s", nameWidth, c.Name, dim(c.Desc))
		if xansi.StringWidth(line) > inner {
			line = xansi.Truncate(line, inner, "")
		}
		if i == sel {
			line = hl(line)
		}
		b.WriteString(border.Render("│"))
		b.WriteString(fillBG.Width(inner).Render(line))
		b.WriteString(border.Render("│\n"))
	}
	// bottom border and hint
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	b.WriteString("  ↑/↓ select · Enter run · Esc close\n")
	return b.String()
}
