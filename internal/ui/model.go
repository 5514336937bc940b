package ui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"easel/internal/canvas"
	"easel/internal/selection"
	"easel/internal/system"
)

type focusArea int

const (
	focusDocs focusArea = iota
	focusPreview
)

// docEntry is one markup document found in the working directory.
type docEntry struct {
	name string
	path string
}

// selectionRelay captures controller callbacks so Update can read the last
// selection event after feeding pointer input. The model is copied by value
// on every update; the relay pointer is shared across copies.
type selectionRelay struct {
	last *selection.Event
}

// Model for the dashboard TUI
type model struct {
	cwd    string
	width  int
	height int

	docs     []docEntry
	docTable table.Model
	focus    focusArea

	// preview state
	path        string
	content     string
	scroll      int
	rows        int // total canvas rows at the current width
	previewRows []string
	styles      canvas.Styles
	ctl         *selection.Controller
	relay       *selectionRelay
	dragging    bool

	watcher *fsnotify.Watcher

	// command palette
	paletteOpen bool
	ti          textinput.Model
	palFiltered []paletteCmd
	palIndex    int

	notice       string
	now          time.Time
	git          system.GitInfo
	lastGitCheck time.Time
	quitting     bool
}

func initialModel() model {
	wd, _ := os.Getwd()
	m := model{
		cwd:    wd,
		styles: themeCanvasStyles(),
	}
	m.relay = &selectionRelay{}
	relay := m.relay
	m.ctl = selection.New(func(ev selection.Event) { relay.last = &ev })

	dt := table.New(
		table.WithColumns([]table.Column{{Title: IconDoc() + " Documents", Width: 26}}),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Vitesse.Border).
		BorderBottom(true).
		Bold(false).
		Padding(0, 0).
		Foreground(Vitesse.Secondary).
		Background(Vitesse.Bg)
	ts.Cell = ts.Cell.
		Padding(0, 0).
		Foreground(Vitesse.Text).
		Background(Vitesse.Bg)
	ts.Selected = ts.Selected.
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Bold(false)
	dt.SetStyles(ts)
	m.docTable = dt

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	ti.Blur() // palette opens via Ctrl+P
	m.ti = ti
	m.palFiltered = paletteCmds

	// Watch the working directory so edits show up without a manual reload.
	// A failed watcher just means no live reload.
	if w, err := fsnotify.NewWatcher(); err == nil {
		if werr := w.Add(wd); werr == nil {
			m.watcher = w
		} else {
			_ = w.Close()
		}
	}
	return m
}

// public constructor for app
func InitialModel() tea.Model { return initialModel() }

// SelectedText returns the text captured by the most recent mouse selection
// in the preview, or "" when the session ended without one. The selection
// lives on the alt screen, so the caller prints it after teardown.
func SelectedText(m tea.Model) string {
	dm, ok := m.(model)
	if !ok || dm.relay == nil || dm.relay.last == nil {
		return ""
	}
	return dm.relay.last.Text
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadDocsCmd(m.cwd), tickCmd(), gitInfoCmd(m.cwd)}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}
