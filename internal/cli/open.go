package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"easel/internal/config"
	"easel/internal/mux"
	"easel/internal/transport"
)

var (
	openWatch    bool
	openPane     string
	openTitle    string
	openVertical bool
	openPercent  int
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVarP(&openWatch, "watch", "w", false, "follow the file on disk")
	openCmd.Flags().StringVarP(&openPane, "pane", "p", "", "show in an existing pane instead of spawning one")
	openCmd.Flags().StringVarP(&openTitle, "title", "t", "", "pane title (default: file name)")
	openCmd.Flags().BoolVar(&openVertical, "vertical", false, "split below instead of beside")
	openCmd.Flags().IntVar(&openPercent, "percent", 0, "pane size in percent")
}

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Render a markdown file in a tmux pane",
	Long: "Opens a viewer pane showing the file. With --watch the pane follows\n" +
		"the file on disk; with --pane the document goes to an existing viewer.\n" +
		"Pass - to read the document from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		var content, title string
		switch {
		case path == "-":
			if openWatch {
				return errors.New("--watch needs a file path")
			}
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			content, title = string(b), "stdin"
		default:
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			path = abs
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			content, title = string(b), filepath.Base(path)
		}
		if openTitle != "" {
			title = openTitle
		}

		if openPane != "" {
			return showInPane(cmd, openPane, content, title)
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
		opts := mux.SpawnOptions{
			Title:    title,
			Vertical: openVertical || s.Vertical,
			Percent:  openPercent,
		}
		if opts.Percent == 0 {
			opts.Percent = s.SplitPercent
		}
		if openWatch {
			opts.File = path
		} else {
			opts.Content = content
		}
		entry, err := ctl.SpawnViewer(cmd.Context(), reg, opts)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", entry.PaneID, entry.Socket)
		return nil
	},
}

// showInPane pushes a document to an already-running viewer.
func showInPane(cmd *cobra.Command, key, content, title string) error {
	reg, err := registry()
	if err != nil {
		return err
	}
	entry, ok, err := reg.Find(key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no pane %q (try `easel panes`)", key)
	}
	cl, err := transport.Dial(cmd.Context(), entry.Socket)
	if err != nil {
		return fmt.Errorf("pane %s unreachable: %w", entry.PaneID, err)
	}
	defer cl.Close()
	return cl.Show(content, title)
}
