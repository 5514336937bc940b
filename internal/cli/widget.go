package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"easel/internal/config"
	"easel/internal/mux"
	"easel/internal/widget"
)

var (
	widgetPrint bool
	widgetPane  string

	calYear   int
	calMonth  int
	calEvents string

	monWidth  int
	monHeight int
)

func init() {
	rootCmd.AddCommand(widgetCmd)
	widgetCmd.PersistentFlags().BoolVar(&widgetPrint, "print", false, "print markup to stdout instead of opening a pane")
	widgetCmd.PersistentFlags().StringVarP(&widgetPane, "pane", "p", "", "show in an existing pane")

	widgetCmd.AddCommand(kanbanCmd)

	widgetCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().IntVar(&calYear, "year", 0, "year (default: current)")
	calendarCmd.Flags().IntVar(&calMonth, "month", 0, "month 1-12 (default: current)")
	calendarCmd.Flags().StringVar(&calEvents, "events", "", "YAML file mapping day to label")

	widgetCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVar(&monWidth, "width", 0, "virtual terminal width")
	monitorCmd.Flags().IntVar(&monHeight, "height", 0, "virtual terminal height")
}

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Render built-in widgets into panes",
}

var kanbanCmd = &cobra.Command{
	Use:   "kanban <board.yaml>",
	Short: "Render a kanban board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var board widget.Kanban
		if err := yaml.Unmarshal(b, &board); err != nil {
			return fmt.Errorf("parse board: %w", err)
		}
		title := board.Title
		if title == "" {
			title = "kanban"
		}
		return deliverMarkup(cmd, board.Markup(), title)
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Render a month calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		c := widget.Calendar{Year: calYear, Month: time.Month(calMonth)}
		if c.Year == 0 {
			c.Year = now.Year()
		}
		if c.Month == 0 {
			c.Month = now.Month()
		}
		if c.Month < time.January || c.Month > time.December {
			return errors.New("month must be 1-12")
		}
		if calEvents != "" {
			b, err := os.ReadFile(calEvents)
			if err != nil {
				return err
			}
			if err := yaml.Unmarshal(b, &c.Events); err != nil {
				return fmt.Errorf("parse events: %w", err)
			}
		}
		return deliverMarkup(cmd, c.Markup(), fmt.Sprintf("%s %d", c.Month, c.Year))
	},
}

var monitorCmd = &cobra.Command{
	Use:   "monitor -- <command> [args...]",
	Short: "Snapshot a command's terminal screen",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := widget.Monitor{
			Command: args[0],
			Args:    args[1:],
			Width:   monWidth,
			Height:  monHeight,
		}
		markup, err := m.Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		return deliverMarkup(cmd, markup, args[0])
	},
}

// deliverMarkup routes widget output: stdout, an existing pane, or a fresh
// one.
func deliverMarkup(cmd *cobra.Command, markup, title string) error {
	if widgetPrint {
		fmt.Print(markup)
		return nil
	}
	if widgetPane != "" {
		return showInPane(cmd, widgetPane, markup, title)
	}
	ctl, err := controller()
	if err != nil {
		return err
	}
	reg, err := registry()
	if err != nil {
		return err
	}
	if err := ctl.EnsureSession(cmd.Context()); err != nil {
		return err
	}
	s, _ := config.LoadSettings()
	entry, err := ctl.SpawnViewer(cmd.Context(), reg, mux.SpawnOptions{
		Title:    title,
		Vertical: s.Vertical,
		Percent:  s.SplitPercent,
		Content:  markup,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n", entry.PaneID, entry.Socket)
	return nil
}
