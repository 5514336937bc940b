package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"easel/internal/viewer"
)

var (
	paneSocket string
	paneFile   string
	paneTitle  string
)

func init() {
	rootCmd.AddCommand(paneCmd)
	paneCmd.Flags().StringVar(&paneSocket, "socket", "", "control socket to listen on")
	paneCmd.Flags().StringVar(&paneFile, "file", "", "file to render and follow")
	paneCmd.Flags().StringVar(&paneTitle, "title", "", "status line title")
}

// paneCmd is what spawned tmux panes run; users never call it directly.
var paneCmd = &cobra.Command{
	Use:    "pane",
	Short:  "Run the pane viewer (internal)",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		err := viewer.Run(ctx, viewer.Options{
			Socket: paneSocket,
			File:   paneFile,
			Title:  paneTitle,
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
