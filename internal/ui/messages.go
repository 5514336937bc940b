package ui

import (
	"time"

	"easel/internal/mux"
	"easel/internal/system"
)

// Bubble Tea messages
type docsMsg struct {
	docs []docEntry
}

type docLoadedMsg struct {
	path    string
	content string
	err     error
}

// a watched file changed on disk
type docChangedMsg struct {
	path string
}

// generic notifications and quit
type noticeMsg string
type quitMsg struct{}

// periodic tick for status bar time
type tickMsg time.Time

// git info updates
type gitInfoMsg struct{ info system.GitInfo }

// a tmux pane was spawned (or failed to)
type paneOpenedMsg struct {
	entry mux.Entry
	err   error
}

// external settings editor finished
type settingsDoneMsg struct{ err error }
