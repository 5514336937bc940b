// Package viewer implements the process a spawned tmux pane runs: it owns
// the pane's tty, renders canvas markup into it, and reports pointer
// selections back over the control socket. One goroutine owns all state; tty
// bytes, transport requests, resize signals, and file-watch ticks are
// funneled into a single select loop, so renders and pointer resolution
// never interleave.
package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	fsnotify "github.com/fsnotify/fsnotify"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"easel/internal/canvas"
	"easel/internal/config"
	"easel/internal/markdown"
	"easel/internal/pointer"
	"easel/internal/selection"
	"easel/internal/system"
	"easel/internal/transport"
)

// Options configure a viewer. Socket listens for control requests; File
// renders a document and follows it on disk. At least one must be set, and
// both together give a watched file that still accepts control ops.
type Options struct {
	Socket string
	File   string
	Title  string
}

type request struct {
	req  transport.Request
	conn *transport.Conn
}

type viewer struct {
	out    io.Writer
	size   func() (int, int)
	styles canvas.Styles
	status lipgloss.Style

	content  string
	title    string
	diffs    []markdown.Diff
	scroll   int
	width    int
	height   int
	selectOn bool
	note     string

	lines []markdown.Line
	dec   pointer.Decoder
	ctl   *selection.Controller
	srv   *transport.Server
}

// Run drives the viewer until the context ends, the controller sends close,
// or the user interrupts. The terminal is restored on every path out.
func Run(ctx context.Context, opts Options) error {
	if opts.Socket == "" && opts.File == "" {
		return errors.New("viewer: need a socket or a file")
	}
	in, out := os.Stdin, os.Stdout
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("viewer: stdin is not a terminal")
	}
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("viewer: raw mode: %w", err)
	}
	defer term.Restore(fd, prev)

	styles := canvas.DefaultStyles()
	if s, serr := config.LoadSettings(); serr == nil && s.Accent != "" {
		styles.Heading = styles.Heading.Foreground(lipgloss.Color(s.Accent))
	}
	v := &viewer{
		out: out,
		size: func() (int, int) {
			w, h, gerr := term.GetSize(int(out.Fd()))
			if gerr != nil {
				return 0, 0
			}
			return w, h
		},
		styles:   styles,
		status:   lipgloss.NewStyle().Faint(true),
		title:    opts.Title,
		selectOn: true,
	}
	v.measure()
	v.ctl = selection.New(func(ev selection.Event) {
		v.note = fmt.Sprintf("%d:%d-%d:%d", ev.StartLine, ev.StartCol, ev.EndLine, ev.EndCol)
		if v.srv != nil {
			v.srv.Broadcast(transport.Event{Event: transport.EventSelection, Title: v.title, Selection: &ev})
		}
	})

	io.WriteString(out, escEnter)
	defer io.WriteString(out, escLeave)

	reqCh := make(chan request, 8)
	if opts.Socket != "" {
		srv, serr := transport.Serve(opts.Socket, func(r transport.Request, c *transport.Conn) {
			reqCh <- request{req: r, conn: c}
		})
		if serr != nil {
			return serr
		}
		v.srv = srv
		defer srv.Close()
		srv.Broadcast(transport.Event{Event: transport.EventReady, Title: v.title})
	}

	var watchCh chan struct{}
	if opts.File != "" {
		content, rerr := os.ReadFile(opts.File)
		if rerr != nil {
			return rerr
		}
		if v.title == "" {
			v.title = filepath.Base(opts.File)
		}
		v.setContent(string(content))
		wch, werr := watchFile(ctx, opts.File)
		if werr != nil {
			system.Logger.Warn("watch disabled", "err", werr)
		} else {
			watchCh = wch
		}
	}

	ttyCh := make(chan []byte, 8)
	go func() {
		for {
			buf := make([]byte, 512)
			n, rerr := in.Read(buf)
			if n > 0 {
				select {
				case ttyCh <- buf[:n]:
				case <-ctx.Done():
					return
				}
			}
			if rerr != nil {
				close(ttyCh)
				return
			}
		}
	}()

	sizeCh := make(chan os.Signal, 1)
	signal.Notify(sizeCh, syscall.SIGWINCH)
	defer signal.Stop(sizeCh)

	v.refresh()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-ttyCh:
			if !ok {
				return nil
			}
			// ^C never occurs inside a well-formed report; quit on it.
			if bytes.IndexByte(p, 0x03) >= 0 {
				return nil
			}
			changed := false
			for _, ev := range v.dec.Feed(p) {
				if v.handlePointer(ev) {
					changed = true
				}
			}
			if changed {
				v.refresh()
			}
		case env := <-reqCh:
			if v.handleRequest(env) {
				return nil
			}
		case <-sizeCh:
			v.measure()
			v.refresh()
		case <-watchCh:
			content, rerr := os.ReadFile(opts.File)
			if rerr != nil {
				v.note = rerr.Error()
			} else {
				v.update(string(content), nil)
			}
			v.refresh()
		}
	}
}

func (v *viewer) measure() {
	w, h := 0, 0
	if v.size != nil {
		w, h = v.size()
	}
	if w < 1 || h < 2 {
		w, h = 80, 24
	}
	v.width, v.height = w, h
}

// contentRows is the pane height minus the status line.
func (v *viewer) contentRows() int { return v.height - 1 }

// setContent installs a fresh document, dropping diffs, scroll, selection.
func (v *viewer) setContent(content string) {
	v.content = content
	v.diffs = nil
	v.scroll = 0
	v.ctl.SetContent(content)
}

// update replaces the document in place: explicit diffs win, otherwise they
// are computed against the previous content. Scroll is clamped, selection
// dropped.
func (v *viewer) update(content string, diffs []markdown.Diff) {
	if len(diffs) == 0 {
		diffs = transport.ComputeDiffs(v.content, content)
	}
	v.content = content
	v.diffs = diffs
	v.ctl.SetContent(content)
	v.clampScroll()
}

func (v *viewer) clampScroll() {
	max := canvas.RowCount(v.content, v.width) - v.contentRows()
	if max < 0 {
		max = 0
	}
	if v.scroll > max {
		v.scroll = max
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

func (v *viewer) handlePointer(ev pointer.Event) bool {
	if ev.Wheel() {
		delta := 3
		if ev.Button == pointer.ButtonWheelUp {
			delta = -delta
		}
		before := v.scroll
		v.scroll += delta
		v.clampScroll()
		if v.scroll != before {
			// The map no longer matches the screen; rebuild before the
			// next pointer event lands.
			return true
		}
		return false
	}
	if !v.selectOn {
		return false
	}
	return v.ctl.Handle(ev)
}

// handleRequest applies one transport op and acks it. Returns true when the
// viewer should exit.
func (v *viewer) handleRequest(env request) bool {
	r := env.req
	ack := func(event string) {
		if env.conn != nil {
			_ = env.conn.Send(transport.Event{Event: event, Seq: r.Seq, Title: v.title})
		}
	}
	switch r.Op {
	case transport.OpPing:
		ack(transport.EventPong)
		return false
	case transport.OpShow:
		if r.Title != "" {
			v.title = r.Title
		}
		v.setContent(r.Content)
	case transport.OpUpdate:
		v.update(r.Content, r.Diffs)
	case transport.OpDiffs:
		v.diffs = r.Diffs
	case transport.OpSelect:
		v.selectOn = r.Enable
		if !r.Enable {
			v.ctl.Clear()
		}
	case transport.OpScroll:
		v.scroll += r.Delta
		v.clampScroll()
	case transport.OpClose:
		ack(transport.EventClosed)
		return true
	default:
		if env.conn != nil {
			_ = env.conn.Send(transport.Event{
				Event:   transport.EventError,
				Seq:     r.Seq,
				Message: fmt.Sprintf("unknown op %q", r.Op),
			})
		}
		return false
	}
	ack(transport.EventReady)
	v.refresh()
	return false
}

// refresh recomputes the window, rebinds the position map, and repaints.
func (v *viewer) refresh() {
	rows := v.contentRows()
	v.lines = canvas.Render(v.content, v.diffs, v.ctl.Span(), v.width, v.scroll, rows)
	v.ctl.SetMap(canvas.BuildPositionMap(v.lines, 1, v.width))
	v.ctl.SetOrigin(0, 0, 0)

	var b strings.Builder
	b.WriteString(escSyncBegin)
	b.WriteString(escHome)
	painted := canvas.Paint(v.lines, v.width, v.styles)
	for i := 0; i < rows; i++ {
		b.WriteString(escClearLine)
		if i < len(painted) {
			b.WriteString(painted[i])
		}
		b.WriteString("\r\n")
	}
	b.WriteString(cursorTo(v.height))
	b.WriteString(escClearLine)
	b.WriteString(v.status.Render(v.statusLine()))
	b.WriteString(escSyncEnd)
	io.WriteString(v.out, b.String())
}

func (v *viewer) statusLine() string {
	parts := []string{v.title}
	if v.title == "" {
		parts = []string{"easel"}
	}
	total := canvas.RowCount(v.content, v.width)
	parts = append(parts, fmt.Sprintf("%d/%d", v.scroll+1, total))
	if v.note != "" {
		parts = append(parts, v.note)
	}
	if !v.selectOn {
		parts = append(parts, "select off")
	}
	s := strings.Join(parts, "  ")
	// Pane titles can carry wide runes; trim by display width so the
	// status row never wraps.
	if runewidth.StringWidth(s) > v.width {
		s = runewidth.Truncate(s, v.width, "")
	}
	return s
}

// watchFile forwards change notifications for one file, coalescing bursts
// the way editors save (rename + chmod + write) into single ticks.
func watchFile(ctx context.Context, path string) (chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	name := filepath.Base(path)
	ch := make(chan struct{}, 1)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				time.Sleep(120 * time.Millisecond)
			drain:
				for {
					select {
					case <-w.Events:
					default:
						break drain
					}
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch, nil
}
