package mux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"easel/internal/transport"
)

// ErrNoPane reports a pane key that matches no registry entry.
var ErrNoPane = errors.New("no such pane")

// SpawnOptions describe a viewer pane to open.
type SpawnOptions struct {
	Title    string
	Vertical bool
	Percent  int
	Content  string // initial document to push
	File     string // additionally render and follow this file
}

// SpawnViewer splits off a pane running `easel pane`, records it in the
// registry, waits for its control socket, and pushes the initial document.
func (c Controller) SpawnViewer(ctx context.Context, reg Registry, opts SpawnOptions) (Entry, error) {
	exe, err := os.Executable()
	if err != nil {
		return Entry{}, fmt.Errorf("mux: resolve binary: %w", err)
	}
	socket := c.SocketPath()
	if err := os.MkdirAll(filepath.Dir(socket), 0o755); err != nil {
		return Entry{}, err
	}

	command := []string{exe, "pane", "--socket", socket}
	if opts.File != "" {
		command = append(command, "--file", opts.File)
	}
	if opts.Title != "" {
		command = append(command, "--title", opts.Title)
	}

	id, err := c.SplitPane(ctx, SplitOptions{
		Vertical: opts.Vertical,
		Percent:  opts.Percent,
		Title:    opts.Title,
		Command:  command,
	})
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{PaneID: id, Socket: socket, Title: opts.Title, Created: time.Now().UTC()}
	if err := reg.Add(entry); err != nil {
		return entry, err
	}

	cl, err := waitDial(ctx, socket, 3*time.Second)
	if err != nil {
		return entry, fmt.Errorf("mux: pane %s never came up: %w", id, err)
	}
	defer cl.Close()
	if opts.Content != "" {
		if err := cl.Show(opts.Content, opts.Title); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

// ClosePane tells the viewer to exit, kills the tmux pane, and drops the
// registry entry. The viewer or pane may already be gone; only registry
// failures are fatal.
func (c Controller) ClosePane(ctx context.Context, reg Registry, key string) (Entry, error) {
	entry, ok, err := reg.Find(key)
	if err != nil {
		return Entry{}, err
	}
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNoPane, key)
	}
	if cl, derr := transport.Dial(ctx, entry.Socket); derr == nil {
		cctx, cancel := context.WithTimeout(ctx, time.Second)
		_, _ = cl.Call(cctx, transport.Request{Op: transport.OpClose})
		cancel()
		cl.Close()
	}
	_ = c.KillPane(ctx, entry.PaneID)
	_ = os.Remove(entry.Socket)
	if err := reg.Remove(entry.PaneID); err != nil {
		return entry, err
	}
	return entry, nil
}

// waitDial polls the socket until the viewer listens.
func waitDial(ctx context.Context, socket string, timeout time.Duration) (*transport.Client, error) {
	deadline := time.Now().Add(timeout)
	for {
		cl, err := transport.Dial(ctx, socket)
		if err == nil {
			return cl, nil
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}
