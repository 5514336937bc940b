package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"easel/internal/ui"
)

// Start runs the dashboard TUI. The program owns the alt screen, so any text
// selected with the mouse during the session vanishes with it; to keep
// selections usable in pipelines, the last one is printed to stdout after
// the program exits.
func Start() error {
	// Global bubblezone manager backs the dashboard's mouse hit zones.
	zone.NewGlobal()
	final, err := tea.NewProgram(ui.InitialModel(), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return err
	}
	if text := ui.SelectedText(final); text != "" {
		fmt.Println(text)
	}
	return nil
}
