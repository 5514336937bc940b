// Package settings provides the interactive editor for settings.yaml.
package settings

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"easel/internal/config"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Run launches the settings form and saves on submit.
func Run() error {
	cur, _ := config.LoadSettings()

	session := cur.Session
	percent := strconv.Itoa(cur.SplitPercent)
	vertical := cur.Vertical
	httpAddr := cur.HTTPAddr
	accent := cur.Accent

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Saved to settings.yaml in the easel config dir"),
			huh.NewInput().
				Title("tmux session").
				Description("empty targets the current session").
				Value(&session),
			huh.NewInput().
				Title("Split percent").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 || n > 90 {
						return errors.New("want a number between 1 and 90")
					}
					return nil
				}).
				Value(&percent),
			huh.NewConfirm().
				Title("Split below").
				Affirmative("below").
				Negative("beside").
				Value(&vertical),
			huh.NewInput().
				Title("HTTP address").
				Value(&httpAddr),
			huh.NewInput().
				Title("Accent color").
				Validate(func(s string) error {
					if !hexColor.MatchString(strings.TrimSpace(s)) {
						return errors.New("want #rrggbb")
					}
					return nil
				}).
				Value(&accent),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	n, _ := strconv.Atoi(strings.TrimSpace(percent))
	out := config.Settings{
		Session:      strings.TrimSpace(session),
		SplitPercent: n,
		Vertical:     vertical,
		HTTPAddr:     strings.TrimSpace(httpAddr),
		Accent:       strings.TrimSpace(accent),
	}
	if err := config.SaveSettings(out); err != nil {
		return err
	}
	fmt.Println("\n✓ settings saved")
	return nil
}
