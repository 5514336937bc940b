// Package transport carries the pane control protocol: one JSON envelope
// per line over a Unix domain socket. Requests flow from clients to the
// pane's viewer; events flow back, either as replies carrying the request
// seq or as unsolicited notifications (selection changes, pane close).
package transport

import (
	"easel/internal/markdown"
	"easel/internal/selection"
)

// Request ops.
const (
	OpShow   = "show"   // replace content (and title) and clear overlays
	OpUpdate = "update" // replace content, deriving add highlights from the old one
	OpDiffs  = "diffs"  // set explicit diff overlays on the current content
	OpSelect = "select" // enable or disable pointer selection
	OpScroll = "scroll" // scroll by delta rows
	OpClose  = "close"  // tear the pane down
	OpPing   = "ping"   // liveness probe
)

// Request is one inbound envelope. Fields beyond Op are op-specific.
type Request struct {
	Op      string          `json:"op"`
	Seq     int64           `json:"seq,omitempty"`
	Title   string          `json:"title,omitempty"`
	Content string          `json:"content,omitempty"`
	Diffs   []markdown.Diff `json:"diffs,omitempty"`
	Enable  bool            `json:"enable,omitempty"`
	Delta   int             `json:"delta,omitempty"`
}

// Event names.
const (
	EventReady     = "ready"
	EventPong      = "pong"
	EventSelection = "selection"
	EventClosed    = "closed"
	EventError     = "error"
)

// Event is one outbound envelope. Seq echoes the request for replies and is
// zero on notifications.
type Event struct {
	Event     string           `json:"event"`
	Seq       int64            `json:"seq,omitempty"`
	Message   string           `json:"message,omitempty"`
	Title     string           `json:"title,omitempty"`
	Selection *selection.Event `json:"selection,omitempty"`
}
