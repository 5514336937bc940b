package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
)

// Client is the sending side of a pane connection, used by the CLI, the
// multiplexer controller and the HTTP API. Replies are matched to requests
// by seq; unsolicited events are delivered on Events.
type Client struct {
	conn net.Conn

	wmu sync.Mutex
	enc *json.Encoder

	seq     atomic.Int64
	mu      sync.Mutex
	pending map[int64]chan Event
	closed  bool

	events chan Event
	done   chan struct{}
}

// Dial connects to the pane socket at path.
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", path, err)
	}
	c := &Client{
		conn:    conn,
		enc:     json.NewEncoder(conn),
		pending: make(map[int64]chan Event),
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Events delivers notifications that are not replies, such as selection
// changes. The channel closes when the connection drops.
func (c *Client) Events() <-chan Event { return c.events }

// Done closes when the connection is gone.
func (c *Client) Done() <-chan struct{} { return c.done }

// Send writes a fire-and-forget request.
func (c *Client) Send(req Request) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.mu.Unlock()
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.enc.Encode(req)
}

// Call sends a request stamped with a fresh seq and waits for the matching
// reply or ctx cancellation.
func (c *Client) Call(ctx context.Context, req Request) (Event, error) {
	req.Seq = c.seq.Add(1)
	ch := make(chan Event, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Event{}, ErrClosed
	}
	c.pending[req.Seq] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, req.Seq)
		c.mu.Unlock()
	}()

	if err := c.Send(req); err != nil {
		return Event{}, err
	}
	select {
	case ev := <-ch:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case <-c.done:
		return Event{}, ErrClosed
	}
}

// Ping round-trips a liveness probe.
func (c *Client) Ping(ctx context.Context) error {
	ev, err := c.Call(ctx, Request{Op: OpPing})
	if err != nil {
		return err
	}
	if ev.Event != EventPong {
		return fmt.Errorf("transport: unexpected reply %q", ev.Event)
	}
	return nil
}

// Show replaces the pane content.
func (c *Client) Show(content, title string) error {
	return c.Send(Request{Op: OpShow, Content: content, Title: title})
}

// Update replaces the content; the pane derives change highlights itself.
func (c *Client) Update(content string) error {
	return c.Send(Request{Op: OpUpdate, Content: content})
}

func (c *Client) readLoop() {
	sc := bufio.NewScanner(c.conn)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		if ev.Seq != 0 {
			c.mu.Lock()
			ch := c.pending[ev.Seq]
			c.mu.Unlock()
			if ch != nil {
				ch <- ev
				continue
			}
		}
		select {
		case c.events <- ev:
		default:
			// A slow consumer drops notifications rather than stalling
			// the reader.
		}
	}
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	close(c.done)
	close(c.events)
	_ = c.conn.Close()
}

// Close tears the connection down.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()
	return c.conn.Close()
}
