package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the protocol and usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		wrap := 100
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 && w < wrap {
			wrap = w
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(usageDoc)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

const usageDoc = `# easel

easel renders markdown into tmux panes. Each pane keeps an exact mapping
from displayed characters back to source offsets, so mouse selections in
the pane come back as precise document ranges.

## Quick start

` + "```" + `sh
easel open README.md          # render a file in a new pane
easel open README.md --watch  # and follow it on disk
easel send %3 --text "# hi"   # update a pane, highlighting what changed
easel panes                   # list live panes
easel kill %3                 # close one
` + "```" + `

## Markup

Headings (# to ####), **bold**, *italic*, ` + "`code`" + `, [links](url),
quotes, fenced code blocks, and lists. Everything else renders as plain
paragraphs. Link URLs are kept in the source mapping but not displayed.

## Control socket

Every pane listens on a Unix socket (see ` + "`easel panes`" + `) speaking
newline-delimited JSON. One request per line:

` + "```" + `json
{"op":"show","content":"# hello","title":"greeting","seq":1}
{"op":"update","content":"# hello world","seq":2}
{"op":"scroll","delta":5,"seq":3}
{"op":"select","enable":false,"seq":4}
{"op":"close","seq":5}
` + "```" + `

The pane acks every request and pushes ` + "`selection`" + ` events as the
mouse drags:

` + "```" + `json
{"event":"selection","selection":{"text":"hello","startOffset":2,
 "endOffset":7,"startLine":1,"endLine":1,"startColumn":3,"endColumn":7}}
` + "```" + `

Offsets are rune indices into the source document; the range is
half-open. Run ` + "`easel schema`" + ` for the full envelopes.

## HTTP

` + "`easel serve`" + ` exposes the same operations over HTTP for editors
that prefer REST: GET /api/panes, POST /api/open, POST
/api/panes/:id/update, DELETE /api/panes/:id.
`
