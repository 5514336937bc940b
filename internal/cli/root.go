package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"easel/internal/app"
	"easel/internal/system"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "easel",
	Short: "easel – markdown panes for the terminal",
	Long: "easel renders markdown into tmux panes with live updates, diff\n" +
		"highlighting, and offset-accurate mouse selection. Run without a\n" +
		"subcommand to open the dashboard.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		system.SetVerbose(rootVerbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
