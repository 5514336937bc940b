package ui

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"easel/internal/pointer"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.docTable.SetHeight(m.paneHeight() - 4)
		m.docTable.SetColumns([]table.Column{{Title: IconDoc() + " Documents", Width: m.listWidth() - 2}})
		tiw := msg.Width - 8
		if tiw < 10 {
			tiw = 10
		}
		m.ti.Width = tiw
		m.refreshPreview()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case docsMsg:
		m.docs = msg.docs
		rows := make([]table.Row, len(msg.docs))
		for i, d := range msg.docs {
			rows[i] = table.Row{d.name}
		}
		m.docTable.SetRows(rows)
		if cur := m.docTable.Cursor(); cur >= len(msg.docs) && len(msg.docs) > 0 {
			m.docTable.SetCursor(len(msg.docs) - 1)
		}
		if m.path == "" && len(msg.docs) > 0 {
			return m, loadDocCmd(msg.docs[0].path)
		}
		return m, nil

	case docLoadedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("open %s: %v", msg.path, msg.err)
			return m, nil
		}
		reopened := msg.path == m.path
		m.path = msg.path
		m.content = msg.content
		m.ctl.SetContent(msg.content)
		m.relay.last = nil
		if !reopened {
			m.scroll = 0
		}
		m.notice = ""
		m.refreshPreview()
		return m, nil

	case docChangedMsg:
		cmds := []tea.Cmd{loadDocsCmd(m.cwd)}
		if msg.path == m.path {
			cmds = append(cmds, loadDocCmd(m.path))
		}
		if m.watcher != nil {
			cmds = append(cmds, watchCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		m.now = time.Time(msg)
		// Throttle git checks to every 10 seconds
		var cmd tea.Cmd
		if m.lastGitCheck.IsZero() || time.Since(m.lastGitCheck) >= 10*time.Second {
			m.lastGitCheck = time.Now()
			cmd = gitInfoCmd(m.cwd)
		}
		if cmd != nil {
			return m, tea.Batch(tickCmd(), cmd)
		}
		return m, tickCmd()

	case gitInfoMsg:
		m.git = msg.info
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case paneOpenedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("open pane: %v", msg.err)
			return m, nil
		}
		m.notice = fmt.Sprintf("opened pane %s", msg.entry.PaneID)
		return m, nil

	case settingsDoneMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("settings: %v", msg.err)
		} else {
			m.notice = "settings saved"
		}
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit, even when the palette is open
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.paletteOpen {
		return m.handlePaletteKey(msg)
	}
	switch msg.String() {
	case "ctrl+p", "cmd+p":
		m.paletteOpen = true
		m.ti.SetValue("")
		m.palIndex = 0
		m.refreshPalette()
		return m, m.ti.Focus()
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		if m.focus == focusDocs {
			m.focus = focusPreview
		} else {
			m.focus = focusDocs
		}
		return m, nil
	case "ctrl+h":
		m.focus = focusDocs
		return m, nil
	case "ctrl+l":
		m.focus = focusPreview
		return m, nil
	case "esc":
		if !m.ctl.State().Empty() {
			m.ctl.Clear()
			m.relay.last = nil
			m.refreshPreview()
		}
		return m, nil
	case "o":
		if m.path != "" {
			return m, openPaneCmd(m.path, relName(m.cwd, m.path))
		}
		return m, nil
	case "r":
		if m.path != "" {
			return m, loadDocCmd(m.path)
		}
		return m, nil
	}

	if m.focus == focusDocs {
		if msg.Type == tea.KeyEnter {
			if cur := m.docTable.Cursor(); cur >= 0 && cur < len(m.docs) {
				return m, loadDocCmd(m.docs[cur].path)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.docTable, cmd = m.docTable.Update(msg)
		return m, cmd
	}

	// preview focused: scrolling
	switch msg.String() {
	case "down", "j":
		m.setScroll(m.scroll + 1)
	case "up", "k":
		m.setScroll(m.scroll - 1)
	case "pgdown", "ctrl+d":
		m.setScroll(m.scroll + m.canvasRows())
	case "pgup", "ctrl+u":
		m.setScroll(m.scroll - m.canvasRows())
	case "g", "home":
		m.setScroll(0)
	case "G", "end":
		m.setScroll(m.rows)
	}
	return m, nil
}

func (m model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.paletteOpen = false
		m.ti.Blur()
		m.ti.SetValue("")
		return m, nil
	case "up":
		if len(m.palFiltered) > 0 {
			m.palIndex--
			if m.palIndex < 0 {
				m.palIndex = len(m.palFiltered) - 1
			}
		}
		return m, nil
	case "down":
		if len(m.palFiltered) > 0 {
			m.palIndex++
			if m.palIndex >= len(m.palFiltered) {
				m.palIndex = 0
			}
		}
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		if len(m.palFiltered) == 0 {
			return m, nil
		}
		name := m.palFiltered[m.palIndex].Name
		m.paletteOpen = false
		m.ti.Blur()
		m.ti.SetValue("")
		return m.runPaletteCmd(name)
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.refreshPalette()
	return m, cmd
}

func (m model) runPaletteCmd(name string) (tea.Model, tea.Cmd) {
	switch name {
	case "open pane":
		if m.path == "" {
			m.notice = "no document selected"
			return m, nil
		}
		return m, openPaneCmd(m.path, relName(m.cwd, m.path))
	case "reload":
		if m.path == "" {
			return m, nil
		}
		return m, loadDocCmd(m.path)
	case "rescan":
		return m, loadDocsCmd(m.cwd)
	case "clear selection":
		m.ctl.Clear()
		m.relay.last = nil
		m.refreshPreview()
		return m, nil
	case "top":
		m.setScroll(0)
		return m, nil
	case "bottom":
		m.setScroll(m.rows)
		return m, nil
	case "settings":
		exe, err := os.Executable()
		if err != nil {
			m.notice = fmt.Sprintf("settings: %v", err)
			return m, nil
		}
		return m, tea.ExecProcess(exec.Command(exe, "settings"), func(err error) tea.Msg {
			return settingsDoneMsg{err: err}
		})
	case "quit":
		return m, func() tea.Msg { return quitMsg{} }
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// wheel scrolls whichever pane it hovers
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		step := 3
		if msg.Button == tea.MouseButtonWheelUp {
			step = -3
		}
		switch {
		case zone.Get(zonePreview).InBounds(msg):
			m.setScroll(m.scroll + step)
		case zone.Get(zoneDocs).InBounds(msg):
			if step > 0 {
				m.docTable.MoveDown(1)
			} else {
				m.docTable.MoveUp(1)
			}
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if z := zone.Get(zonePreview); z.InBounds(msg) {
			m.focus = focusPreview
			zx, zy := z.Pos(msg)
			m.dragging = true
			if m.ctl.Handle(previewEvent(zx, zy, pointer.ActionPress)) {
				m.refreshPreview()
			}
			return m, nil
		}
		if zone.Get(zoneDocs).InBounds(msg) {
			m.focus = focusDocs
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		zx, zy := zone.Get(zonePreview).Pos(msg)
		if m.ctl.Handle(previewEvent(zx, zy, pointer.ActionMotion)) {
			m.refreshPreview()
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			zx, zy := zone.Get(zonePreview).Pos(msg)
			if m.ctl.Handle(previewEvent(zx, zy, pointer.ActionRelease)) {
				m.refreshPreview()
			}
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if z := zone.Get(zoneDocs); z.InBounds(msg) {
			m.focus = focusDocs
			_, zy := z.Pos(msg)
			row := docRowAt(zy)
			if row < 0 || len(m.docs) == 0 {
				return m, nil
			}
			if row >= len(m.docs) {
				row = len(m.docs) - 1
			}
			if row != m.docTable.Cursor() {
				m.docTable.SetCursor(row)
				return m, nil
			}
			// clicking the already-selected row opens it
			return m, loadDocCmd(m.docs[row].path)
		}
	}
	return m, nil
}

// previewEvent translates preview-zone coordinates into a canvas pointer
// event: the zone spans the whole box, so the first canvas cell sits one
// column right of the border and previewChrome rows down.
func previewEvent(zx, zy int, act pointer.Action) pointer.Event {
	return pointer.Event{
		X:      zx,
		Y:      zy - previewChrome + 1,
		Button: pointer.ButtonLeft,
		Action: act,
	}
}
