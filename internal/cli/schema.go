package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"easel/internal/transport"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:       "schema [request|event]",
	Short:     "Print the JSON Schema of the socket protocol",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"request", "event"},
	RunE: func(cmd *cobra.Command, args []string) error {
		which := "request"
		if len(args) == 1 {
			which = args[0]
		}
		sch := transport.RequestSchema()
		if which == "event" {
			sch = transport.EventSchema()
		}
		b, err := transport.MarshalSchema(sch)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
