// Package mux drives tmux: spawning viewer panes, addressing them by pane
// id, and tearing them down. Every call threads through a Controller value,
// so session and socket placement never live in package globals.
package mux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const cmdTimeout = 2 * time.Second

// Controller addresses one tmux server. Session is the target session name,
// empty for the client's current one. SocketDir is where spawned panes put
// their control sockets.
type Controller struct {
	Session   string
	SocketDir string

	// run is swapped out by tests; nil means real tmux.
	run func(ctx context.Context, args ...string) (string, error)
}

// New returns a controller with sockets under the user runtime directory.
func New(session, socketDir string) Controller {
	return Controller{Session: session, SocketDir: socketDir}
}

// WithRunner returns a copy whose tmux invocations go through run instead
// of the tmux binary.
func (c Controller) WithRunner(run func(ctx context.Context, args ...string) (string, error)) Controller {
	c.run = run
	return c
}

// Pane describes one tmux pane.
type Pane struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Active bool   `json:"active"`
}

// Available reports whether tmux exists on PATH.
func Available() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// InSession reports whether the process runs inside a tmux client.
func InSession() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

func (c Controller) exec(ctx context.Context, args ...string) (string, error) {
	if c.run != nil {
		return c.run(ctx, args...)
	}
	cctx, cancel := context.WithTimeout(ctx, cmdTimeout)
	defer cancel()
	cmd := exec.CommandContext(cctx, "tmux", args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if cctx.Err() == context.DeadlineExceeded {
		return "", cctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("tmux %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// EnsureSession creates the controller's session when it does not exist.
// With no session configured this is a no-op.
func (c Controller) EnsureSession(ctx context.Context) error {
	if c.Session == "" {
		return nil
	}
	if _, err := c.exec(ctx, "has-session", "-t", c.Session); err == nil {
		return nil
	}
	_, err := c.exec(ctx, "new-session", "-d", "-s", c.Session)
	return err
}

// SplitOptions control how a pane is opened.
type SplitOptions struct {
	Vertical bool
	Percent  int
	Title    string
	Command  []string
}

// SplitPane opens a new pane running opts.Command and returns its pane id.
// The new pane is not focused.
func (c Controller) SplitPane(ctx context.Context, opts SplitOptions) (string, error) {
	args := splitArgs(c.Session, opts)
	id, err := c.exec(ctx, args...)
	if err != nil {
		return "", err
	}
	if opts.Title != "" {
		if _, terr := c.exec(ctx, "select-pane", "-t", id, "-T", opts.Title); terr != nil {
			return id, nil
		}
	}
	return id, nil
}

// splitArgs builds the split-window invocation.
func splitArgs(session string, opts SplitOptions) []string {
	args := []string{"split-window", "-d", "-P", "-F", "#{pane_id}"}
	if opts.Vertical {
		args = append(args, "-v")
	} else {
		args = append(args, "-h")
	}
	if opts.Percent > 0 {
		args = append(args, "-p", strconv.Itoa(opts.Percent))
	}
	if session != "" {
		args = append(args, "-t", session+":")
	}
	args = append(args, opts.Command...)
	return args
}

// KillPane removes a pane.
func (c Controller) KillPane(ctx context.Context, id string) error {
	_, err := c.exec(ctx, "kill-pane", "-t", id)
	return err
}

const paneFormat = "#{pane_id}\t#{pane_title}\t#{pane_width}\t#{pane_height}\t#{pane_active}"

// ListPanes returns the panes of the controller's session, or of all
// sessions when none is configured.
func (c Controller) ListPanes(ctx context.Context) ([]Pane, error) {
	args := []string{"list-panes", "-F", paneFormat}
	if c.Session != "" {
		args = append(args, "-s", "-t", c.Session)
	} else {
		args = append(args, "-a")
	}
	out, err := c.exec(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parsePanes(out), nil
}

func parsePanes(out string) []Pane {
	var panes []Pane
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 5 {
			continue
		}
		w, _ := strconv.Atoi(f[2])
		h, _ := strconv.Atoi(f[3])
		panes = append(panes, Pane{
			ID:     f[0],
			Title:  f[1],
			Width:  w,
			Height: h,
			Active: f[4] == "1",
		})
	}
	return panes
}

// PaneSize reports a pane's current dimensions.
func (c Controller) PaneSize(ctx context.Context, id string) (int, int, error) {
	out, err := c.exec(ctx, "display-message", "-p", "-t", id, "#{pane_width} #{pane_height}")
	if err != nil {
		return 0, 0, err
	}
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("mux: unexpected size %q", out)
	}
	w, werr := strconv.Atoi(parts[0])
	h, herr := strconv.Atoi(parts[1])
	if werr != nil || herr != nil {
		return 0, 0, fmt.Errorf("mux: unexpected size %q", out)
	}
	return w, h, nil
}

// SelectLayout rebalances the session's panes.
func (c Controller) SelectLayout(ctx context.Context, layout string) error {
	args := []string{"select-layout"}
	if c.Session != "" {
		args = append(args, "-t", c.Session)
	}
	args = append(args, layout)
	_, err := c.exec(ctx, args...)
	return err
}

var socketSeq atomic.Int64

// SocketPath returns where a freshly spawned pane should listen. The name
// embeds pid, timestamp, and a counter so concurrent spawns never collide.
func (c Controller) SocketPath() string {
	dir := c.SocketDir
	if dir == "" {
		dir = os.TempDir()
	}
	name := fmt.Sprintf("easel-%d-%d-%d.sock", os.Getpid(), time.Now().UnixNano(), socketSeq.Add(1))
	return filepath.Join(dir, name)
}
