package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"easel/internal/transport"
)

var panesJSON bool

func init() {
	rootCmd.AddCommand(panesCmd)
	panesCmd.Flags().BoolVar(&panesJSON, "json", false, "output JSON")
}

var panesCmd = &cobra.Command{
	Use:   "panes",
	Short: "List viewer panes",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}
		// Drop entries whose viewer no longer answers.
		entries, err := reg.Prune(func(paneID string) bool {
			e, ok, ferr := reg.Find(paneID)
			if ferr != nil || !ok {
				return false
			}
			cl, derr := transport.Dial(cmd.Context(), e.Socket)
			if derr != nil {
				return false
			}
			defer cl.Close()
			return cl.Ping(cmd.Context()) == nil
		})
		if err != nil {
			return err
		}
		if panesJSON {
			b, merr := json.MarshalIndent(entries, "", "  ")
			if merr != nil {
				return merr
			}
			fmt.Println(string(b))
			return nil
		}
		if len(entries) == 0 {
			fmt.Println("no panes")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PANE\tTITLE\tSOCKET\tCREATED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.PaneID, e.Title, e.Socket, e.Created.Local().Format("15:04:05"))
		}
		return w.Flush()
	},
}
