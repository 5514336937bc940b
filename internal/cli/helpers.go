package cli

import (
	"errors"
	"fmt"

	"easel/internal/config"
	"easel/internal/mux"
)

// controller builds the tmux controller from settings, checking tmux is
// actually reachable.
func controller() (mux.Controller, error) {
	if !mux.Available() {
		return mux.Controller{}, errors.New("tmux not found on PATH")
	}
	s, err := config.LoadSettings()
	if err != nil {
		return mux.Controller{}, err
	}
	return mux.New(s.Session, config.SocketDir()), nil
}

// registry opens the pane registry under the config dir.
func registry() (mux.Registry, error) {
	p, err := config.RegistryPath()
	if err != nil {
		return mux.Registry{}, fmt.Errorf("pane registry: %w", err)
	}
	return mux.Registry{Path: p}, nil
}
