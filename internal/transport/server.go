package transport

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"easel/internal/system"
)

// ErrClosed is returned by operations on a closed server or client.
var ErrClosed = errors.New("transport: closed")

// maxLine bounds a single envelope; content travels inline, so this is
// generous.
const maxLine = 8 << 20

// Server accepts connections on a Unix socket and feeds decoded requests to
// its handler. The handler runs on the connection's reader goroutine; hosts
// with their own event loop forward the request and return. Event writes are
// serialized per connection.
type Server struct {
	ln      net.Listener
	handler func(Request, *Conn)

	mu     sync.Mutex
	conns  map[*Conn]struct{}
	closed bool
}

// Serve listens on path and starts accepting. A stale socket file from a
// dead process is removed first.
func Serve(path string, handler func(Request, *Conn)) (*Server, error) {
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("transport: listen %s: %w", path, err)
	}
	s := &Server{ln: ln, handler: handler, conns: make(map[*Conn]struct{})}
	go s.acceptLoop()
	return s, nil
}

// Addr returns the socket path.
func (s *Server) Addr() string { return s.ln.Addr().String() }

func (s *Server) acceptLoop() {
	for {
		c, err := s.ln.Accept()
		if err != nil {
			return
		}
		conn := &Conn{c: c, enc: json.NewEncoder(c)}
		if !s.track(conn) {
			_ = c.Close()
			return
		}
		go s.readLoop(conn)
	}
}

func (s *Server) track(conn *Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) drop(conn *Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.c.Close()
}

func (s *Server) readLoop(conn *Conn) {
	defer s.drop(conn)
	sc := bufio.NewScanner(conn.c)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			// A malformed line poisons one request, not the connection.
			_ = conn.Send(Event{Event: EventError, Message: "bad request: " + err.Error()})
			continue
		}
		s.handler(req, conn)
	}
	if err := sc.Err(); err != nil {
		system.Logger.Debug("transport read", "err", err)
	}
}

// Broadcast sends an event to every connected client.
func (s *Server) Broadcast(ev Event) {
	s.mu.Lock()
	conns := make([]*Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()
	for _, c := range conns {
		if err := c.Send(ev); err != nil {
			system.Logger.Debug("transport broadcast", "err", err)
		}
	}
}

// Close shuts the listener, disconnects clients and removes the socket
// file. It is idempotent.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conns := make([]*Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.conns = map[*Conn]struct{}{}
	s.mu.Unlock()

	path := s.ln.Addr().String()
	err := s.ln.Close()
	for _, c := range conns {
		_ = c.c.Close()
	}
	_ = os.Remove(path)
	return err
}

// Conn is one connected client. Send marshals the event as a single
// newline-terminated JSON line; concurrent sends are serialized.
type Conn struct {
	c   net.Conn
	mu  sync.Mutex
	enc *json.Encoder
}

// Send writes one event line.
func (c *Conn) Send(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enc.Encode(ev)
}
