package widget

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/vt"
	"github.com/charmbracelet/x/xpty"
)

// Monitor runs a command under a pseudo-terminal and snapshots its final
// screen. The command sees a real tty, so spinners, tables, and colored
// output lay out as they would interactively.
type Monitor struct {
	Command string
	Args    []string
	Width   int
	Height  int
}

func (m Monitor) title() string {
	return strings.Join(append([]string{m.Command}, m.Args...), " ")
}

// Snapshot runs the command until it exits or ctx is done, feeding its
// output through a terminal emulator, and returns the screen as fenced
// canvas markup.
func (m Monitor) Snapshot(ctx context.Context) (string, error) {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	pty, err := xpty.NewPty(w, h)
	if err != nil {
		return "", fmt.Errorf("widget: open pty: %w", err)
	}
	defer pty.Close()

	cmd := exec.Command(m.Command, m.Args...)
	if err := pty.Start(cmd); err != nil {
		return "", fmt.Errorf("widget: start %s: %w", m.Command, err)
	}

	emu := vt.NewEmulator(w, h)
	var mu sync.Mutex
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		buf := make([]byte, 4096)
		for {
			n, rerr := pty.Read(buf)
			if n > 0 {
				mu.Lock()
				_, _ = emu.Write(buf[:n])
				mu.Unlock()
			}
			if rerr != nil {
				return
			}
		}
	}()

	// Exit status does not matter for a snapshot; the screen is the result.
	_ = xpty.WaitProcess(ctx, cmd)
	_ = pty.Close()
	select {
	case <-readDone:
	case <-time.After(200 * time.Millisecond):
	}

	mu.Lock()
	screen := emu.Render()
	mu.Unlock()
	return ScreenMarkup(m.title(), screen), nil
}

// ScreenMarkup wraps an emulator screen in a fenced block under a heading.
// ANSI styling is stripped; the canvas applies its own.
func ScreenMarkup(title, screen string) string {
	screen = strings.ReplaceAll(screen, "\r\n", "\n")
	lines := strings.Split(screen, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(xansi.Strip(ln), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	var b strings.Builder
	if strings.TrimSpace(title) != "" {
		heading(&b, 1, title)
	}
	b.WriteString("```\n")
	for _, ln := range lines {
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	b.WriteString("```\n")
	return b.String()
}
