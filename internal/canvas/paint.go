package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"easel/internal/markdown"
)

// Styles maps markup styles and overlays to terminal renderings. Overlay
// styles carry backgrounds and inherit the base segment style, so diff and
// selection highlights keep the underlying markup colors.
type Styles struct {
	Plain   lipgloss.Style
	Bold    lipgloss.Style
	Italic  lipgloss.Style
	Code    lipgloss.Style
	Link    lipgloss.Style
	Heading lipgloss.Style
	Marker  lipgloss.Style
	Rule    lipgloss.Style

	Add    lipgloss.Style
	Delete lipgloss.Style
	Select lipgloss.Style
}

// DefaultStyles is the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Plain:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Italic:  lipgloss.NewStyle().Italic(true),
		Code:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e6cc77")),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6394bf")).Underline(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375")).Bold(true),
		Marker:  lipgloss.NewStyle().Foreground(lipgloss.Color("#758575")),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("#758575")),
		Add:     lipgloss.NewStyle().Background(lipgloss.Color("#1e3a2f")),
		Delete:  lipgloss.NewStyle().Background(lipgloss.Color("#3a1e1e")).Strikethrough(true),
		Select:  lipgloss.NewStyle().Background(lipgloss.Color("#2d4a66")),
	}
}

// Paint renders rows to ANSI strings padded to width display columns.
func Paint(lines []markdown.Line, width int, st Styles) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = PaintLine(ln, width, st)
	}
	return out
}

// PaintLine renders one row: indent padding, styled segments, right padding.
func PaintLine(ln markdown.Line, width int, st Styles) string {
	var b strings.Builder
	if ln.Indent > 0 {
		b.WriteString(strings.Repeat(" ", ln.Indent))
	}
	for _, s := range ln.Segs {
		b.WriteString(st.paintSegment(s))
	}
	row := b.String()
	if w := xansi.StringWidth(row); width > w {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

func (st Styles) paintSegment(s markdown.Segment) string {
	base := st.base(s.Style)
	switch s.Overlay {
	case markdown.OverlayAdd:
		return st.Add.Inherit(base).Render(s.Text)
	case markdown.OverlayDelete:
		return st.Delete.Inherit(base).Render(s.Text)
	case markdown.OverlaySelect:
		return st.Select.Inherit(base).Render(s.Text)
	}
	return base.Render(s.Text)
}

func (st Styles) base(s markdown.Style) lipgloss.Style {
	switch s {
	case markdown.StyleBold:
		return st.Bold
	case markdown.StyleItalic:
		return st.Italic
	case markdown.StyleCode:
		return st.Code
	case markdown.StyleLink:
		return st.Link
	case markdown.StyleHeading:
		return st.Heading
	case markdown.StyleMarker:
		return st.Marker
	case markdown.StyleRule:
		return st.Rule
	}
	return st.Plain
}
