package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"easel/internal/config"
	"easel/internal/mux"
	"easel/internal/system"
)

// Commands
func loadDocsCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return noticeMsg(fmt.Sprintf("read %s: %v", dir, err))
		}
		var docs []docEntry
		for _, e := range entries {
			if e.IsDir() || !isMarkupName(e.Name()) {
				continue
			}
			docs = append(docs, docEntry{name: e.Name(), path: filepath.Join(dir, e.Name())})
		}
		sort.Slice(docs, func(i, j int) bool { return docs[i].name < docs[j].name })
		return docsMsg{docs: docs}
	}
}

func isMarkupName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func loadDocCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return docLoadedMsg{path: path, content: string(data), err: err}
	}
}

// periodic tick command
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// git info command
func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		gi, _ := system.GetGitInfo(ctx, dir)
		return gitInfoMsg{info: gi}
	}
}

// watchCmd blocks on the directory watcher until a markup file changes,
// coalescing the bursts editors produce on save. The caller re-arms it after
// every message.
func watchCmd(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !isMarkupName(ev.Name) {
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
				return docChangedMsg{path: ev.Name}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// openPaneCmd spawns a tmux pane viewing path. The pane watches the file
// itself, so it stays current without the dashboard forwarding updates.
func openPaneCmd(path, title string) tea.Cmd {
	return func() tea.Msg {
		if !mux.Available() {
			return paneOpenedMsg{err: fmt.Errorf("tmux not found in PATH")}
		}
		st, err := config.LoadSettings()
		if err != nil {
			return paneOpenedMsg{err: err}
		}
		regPath, err := config.RegistryPath()
		if err != nil {
			return paneOpenedMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		c := mux.New(st.Session, config.SocketDir())
		if err := c.EnsureSession(ctx); err != nil {
			return paneOpenedMsg{err: err}
		}
		entry, err := c.SpawnViewer(ctx, mux.Registry{Path: regPath}, mux.SpawnOptions{
			Title:    title,
			Vertical: st.Vertical,
			Percent:  st.SplitPercent,
			File:     path,
		})
		return paneOpenedMsg{entry: entry, err: err}
	}
}
