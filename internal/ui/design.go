package ui

import (
	"github.com/charmbracelet/lipgloss"

	"easel/internal/canvas"
)

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Magenta lipgloss.Color // #d9739f
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	// Text colors
	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590

	// Surfaces
	Bg     lipgloss.Color // #181818
	BgSoft lipgloss.Color // #292929
	Border lipgloss.Color // #252525

	// Canvas overlay surfaces
	AddBg    lipgloss.Color // #1e3a2f
	DeleteBg lipgloss.Color // #3a1e1e
	SelectBg lipgloss.Color // #2d4a66

	// Text on accent backgrounds (e.g., buttons/chips)
	OnAccent lipgloss.Color // #222

	// Status bar colors
	BarFG lipgloss.AdaptiveColor // light/dark
	BarBG lipgloss.AdaptiveColor // light/dark
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#252525"),

	AddBg:    lipgloss.Color("#1e3a2f"),
	DeleteBg: lipgloss.Color("#3a1e1e"),
	SelectBg: lipgloss.Color("#2d4a66"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// Convenience style helpers

// BorderStyle returns a style with the standard border color.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Border)
}

// FillBG returns a style with the base background color.
func FillBG() lipgloss.Style {
	return lipgloss.NewStyle().Background(Vitesse.Bg)
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// ChipKeyStyle returns a style for the left-most highlighted chip in the status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// themeCanvasStyles maps the theme onto the canvas palette so the preview
// pane and the pane viewer agree on how markup and overlays look.
func themeCanvasStyles() canvas.Styles {
	return canvas.Styles{
		Plain:   lipgloss.NewStyle().Foreground(Vitesse.Text),
		Bold:    lipgloss.NewStyle().Foreground(Vitesse.Text).Bold(true),
		Italic:  lipgloss.NewStyle().Foreground(Vitesse.Text).Italic(true),
		Code:    lipgloss.NewStyle().Foreground(Vitesse.Yellow),
		Link:    lipgloss.NewStyle().Foreground(Vitesse.Blue).Underline(true),
		Heading: AccentBold(),
		Marker:  lipgloss.NewStyle().Foreground(Vitesse.Secondary),
		Rule:    lipgloss.NewStyle().Foreground(Vitesse.Border),

		Add:    lipgloss.NewStyle().Background(Vitesse.AddBg),
		Delete: lipgloss.NewStyle().Background(Vitesse.DeleteBg).Strikethrough(true),
		Select: lipgloss.NewStyle().Background(Vitesse.SelectBg),
	}
}
