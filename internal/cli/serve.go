package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"easel/internal/config"
	"easel/internal/webapi"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "address to bind (host:port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pane control HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := controller()
		if err != nil {
			return err
		}
		reg, err := registry()
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" {
			s, _ := config.LoadSettings()
			addr = s.HTTPAddr
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		srv := &webapi.Server{Addr: addr, Mux: ctl, Registry: reg}
		return srv.Start(ctx)
	},
}
