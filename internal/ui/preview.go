package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"easel/internal/canvas"
)

// zone identifiers for mouse hit testing
const (
	zoneDocs    = "easel.docs"
	zonePreview = "easel.preview"
)

// Rows of chrome above the first canvas row inside the preview box: top
// border, header line, divider. Keep in sync with renderPreviewPane.
const previewChrome = 3

var (
	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Vitesse.Border).
			Background(Vitesse.Bg).
			Padding(0, 0)
	paneStyleFocus = paneStyle.BorderForeground(Vitesse.Primary)
)

// Layout: one title line on top, status bar at the bottom, two bordered
// panes in between. The document list keeps a fixed-ish width; the preview
// takes the rest.

func (m model) paneHeight() int {
	h := m.height - 2
	if h < 6 {
		h = 6
	}
	return h
}

func (m model) listWidth() int {
	w := 30
	if third := m.width / 3; third < w {
		w = third
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	w := m.width - m.listWidth()
	if w < 24 {
		w = 24
	}
	return w
}

func (m model) previewInner() int { return m.previewWidth() - 2 }

func (m model) canvasRows() int {
	h := m.paneHeight() - previewChrome - 1 // chrome above, bottom border below
	if h < 1 {
		h = 1
	}
	return h
}

// docRowAt maps a docs-zone y offset to a table row index. Accounts for the
// pane top border (1) + table header (1) + header divider (1).
func docRowAt(zy int) int { return zy - 3 }

// refreshPreview re-renders the canvas window and rebuilds the position map
// the selection controller resolves against. Call after any change to
// content, size, scroll or selection.
func (m *model) refreshPreview() {
	if m.width == 0 || m.path == "" {
		m.previewRows = nil
		return
	}
	w := m.previewInner()
	h := m.canvasRows()
	m.rows = canvas.RowCount(m.content, w)
	if max := m.rows - h; m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	lines := canvas.Render(m.content, nil, m.ctl.Span(), w, m.scroll, h)
	m.ctl.SetMap(canvas.BuildPositionMap(lines, 1, w))
	m.ctl.SetOrigin(0, 0, 0)
	m.previewRows = canvas.Paint(lines, w, m.styles)
}

func (m *model) setScroll(n int) {
	m.scroll = n
	m.refreshPreview()
}

func (m model) renderDocsPane() string {
	box := paneStyle
	if m.focus == focusDocs {
		box = paneStyleFocus
	}
	inner := m.listWidth() - 2
	return box.Width(inner).Height(m.paneHeight() - 2).Render(m.docTable.View())
}

func (m model) renderPreviewPane() string {
	box := paneStyle
	if m.focus == focusPreview {
		box = paneStyleFocus
	}
	inner := m.previewInner()

	name := m.path
	if name == "" {
		name = "(no document)"
	} else {
		name = relName(m.cwd, m.path)
	}
	pos := ""
	if m.rows > 0 && m.path != "" {
		first := m.scroll + 1
		last := m.scroll + len(m.previewRows)
		pos = fmt.Sprintf(" %d-%d/%d ", first, last, m.rows)
	}
	header := previewHeader(inner, name, pos)
	divider := lipgloss.NewStyle().Foreground(Vitesse.Border).Render(strings.Repeat("─", inner))

	body := strings.Join(m.previewRows, "\n")
	if m.path == "" {
		body = lipgloss.NewStyle().Foreground(Vitesse.Muted).Render("  select a document, or drop .md files into this directory")
	}
	content := lipgloss.JoinVertical(lipgloss.Left, header, divider, body)
	return box.Width(inner).Height(m.paneHeight() - 2).Render(content)
}

// previewHeader lays the clipped document name left and the window position
// right on one styled line.
func previewHeader(inner int, name, pos string) string {
	hs := lipgloss.NewStyle().Foreground(Vitesse.Text).Background(Vitesse.BgSoft).Bold(true)
	ps := lipgloss.NewStyle().Foreground(Vitesse.Secondary).Background(Vitesse.BgSoft)
	pw := xansi.StringWidth(pos)
	clipW := inner - pw - 2
	if clipW < 1 {
		clipW = 1
	}
	n := " " + name + " "
	if xansi.StringWidth(n) > clipW {
		n = xansi.Truncate(n, clipW, "…")
	}
	gap := inner - xansi.StringWidth(n) - pw
	if gap < 0 {
		gap = 0
	}
	return hs.Render(n) + ps.Render(strings.Repeat(" ", gap)+pos)
}

func relName(base, path string) string {
	if base != "" && strings.HasPrefix(path, base+"/") {
		return path[len(base)+1:]
	}
	return path
}

// renderStatusBarStyled renders the chip-style status bar: a key chip on the
// left, colored nuggets right-aligned, trimmed from the outside in when the
// bar overflows.
func renderStatusBarStyled(width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}

	statusBarStyle := StatusBarBase()
	keyStyle := ChipKeyStyle().Inherit(statusBarStyle).MarginRight(1)

	nugget := lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Padding(0, 1)

	nuggetBG := []lipgloss.Color{
		Vitesse.Primary,
		Vitesse.Blue,
		Vitesse.Yellow,
		Vitesse.Magenta,
	}

	centerStyle := lipgloss.NewStyle().Inherit(statusBarStyle)

	leftItems := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			leftItems = append(leftItems, keyStyle.Render(s))
			continue
		}
		leftItems = append(leftItems, centerStyle.Render(s))
	}
	leftStr := strings.Join(leftItems, "")

	rightItems := make([]string, 0, len(rightParts))
	for i, s := range rightParts {
		bg := nuggetBG[i%len(nuggetBG)]
		rightItems = append(rightItems, nugget.Background(bg).Render(s))
	}
	rightStr := strings.Join(rightItems, "")

	lw := xansi.StringWidth(leftStr)
	rw := xansi.StringWidth(rightStr)
	inner := w

	rebuild := func(parts []string) (string, int) {
		s := strings.Join(parts, "")
		return s, xansi.StringWidth(s)
	}

	for lw+rw > inner && len(leftItems) > 1 {
		leftItems = leftItems[:len(leftItems)-1]
		leftStr, lw = rebuild(leftItems)
	}
	for lw+rw > inner && len(rightItems) > 0 {
		rightItems = rightItems[:len(rightItems)-1]
		rightStr, rw = rebuild(rightItems)
	}

	centerWidth := inner - lw - rw
	if centerWidth < 0 {
		centerWidth = 0
	}
	center := centerStyle.Width(centerWidth).Render("")

	bar := leftStr + center + rightStr
	return statusBarStyle.Width(w).Render(bar)
}
