package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"easel/internal/transport"
)

var (
	sendFile    string
	sendText    string
	sendStdin   bool
	sendReplace bool
	sendTitle   string
)

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sendFile, "file", "f", "", "send the contents of a file")
	sendCmd.Flags().StringVar(&sendText, "text", "", "send a literal string")
	sendCmd.Flags().BoolVar(&sendStdin, "stdin", false, "send stdin")
	sendCmd.Flags().BoolVar(&sendReplace, "replace", false, "replace the document instead of updating with diff highlights")
	sendCmd.Flags().StringVarP(&sendTitle, "title", "t", "", "retitle the pane (with --replace)")
}

var sendCmd = &cobra.Command{
	Use:   "send <pane>",
	Short: "Push new content to a viewer pane",
	Long: "Sends a document to a running pane, addressed by pane id or title.\n" +
		"By default the viewer diffs it against what it is showing and\n" +
		"highlights the additions; --replace swaps the document cold.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := sendContent()
		if err != nil {
			return err
		}
		reg, err := registry()
		if err != nil {
			return err
		}
		entry, ok, err := reg.Find(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no pane %q (try `easel panes`)", args[0])
		}
		cl, err := transport.Dial(cmd.Context(), entry.Socket)
		if err != nil {
			return fmt.Errorf("pane %s unreachable: %w", entry.PaneID, err)
		}
		defer cl.Close()
		if sendReplace {
			return cl.Show(content, sendTitle)
		}
		return cl.Update(content)
	},
}

func sendContent() (string, error) {
	set := 0
	for _, on := range []bool{sendFile != "", sendText != "", sendStdin} {
		if on {
			set++
		}
	}
	if set != 1 {
		return "", errors.New("need exactly one of --file, --text, --stdin")
	}
	switch {
	case sendFile != "":
		b, err := os.ReadFile(sendFile)
		return string(b), err
	case sendStdin:
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	default:
		return sendText, nil
	}
}
