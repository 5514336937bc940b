package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(killCmd)
}

var killCmd = &cobra.Command{
	Use:   "kill <pane>",
	Short: "Close a viewer pane",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := controller()
		if err != nil {
			return err
		}
		reg, err := registry()
		if err != nil {
			return err
		}
		entry, err := ctl.ClosePane(cmd.Context(), reg, args[0])
		if err != nil {
			return err
		}
		fmt.Println("closed", entry.PaneID)
		return nil
	},
}
