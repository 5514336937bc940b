package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	appver "easel/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 {
		return "loading…"
	}

	b := &strings.Builder{}
	if m.paletteOpen {
		b.WriteString(renderPaletteTop(m.width, m.ti.View(), m.palFiltered, m.palIndex))
	}
	b.WriteString(m.renderTitleLine())
	b.WriteString("\n")

	left := zone.Mark(zoneDocs, m.renderDocsPane())
	right := zone.Mark(zonePreview, m.renderPreviewPane())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBarLine())

	return zone.Scan(b.String())
}

func (m model) renderTitleLine() string {
	title := AccentBold().Render(" easel ")
	hint := lipgloss.NewStyle().Foreground(Vitesse.Muted).
		Render("tab focus · enter open · o pane · ctrl+p commands · q quit")
	return title + " " + hint
}

// renderStatusBarLine builds the status bar string: selection or notice on
// the left, version / clock / git chips on the right.
func (m model) renderStatusBarLine() string {
	leftParts := []string{"easel"}
	switch {
	case m.notice != "":
		leftParts = append(leftParts, m.notice)
	case m.relay.last != nil && !m.ctl.State().Empty():
		ev := m.relay.last
		leftParts = append(leftParts, fmt.Sprintf("%s L%d:%d–L%d:%d · %d chars",
			IconSelect(), ev.StartLine, ev.StartCol, ev.EndLine, ev.EndCol, ev.End-ev.Start))
	case m.path != "":
		leftParts = append(leftParts, relName(m.cwd, m.path))
	}

	rightParts := []string{"v" + appver.AppVersion}
	if !m.now.IsZero() {
		rightParts = append(rightParts, IconClock()+" "+m.now.Format("15:04:05"))
	}
	if m.git.InRepo {
		if m.git.Branch != "" {
			rightParts = append(rightParts, IconBranch()+" "+m.git.Branch)
		}
		if m.git.ShortSHA != "" {
			sha := m.git.ShortSHA
			if m.git.Dirty {
				sha += "*"
			}
			rightParts = append(rightParts, IconCommit()+" "+sha)
		}
	}
	return renderStatusBarStyled(m.width, leftParts, rightParts)
}
