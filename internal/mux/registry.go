package mux

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry records one spawned pane so later CLI invocations can reach its
// socket.
type Entry struct {
	PaneID  string    `json:"paneId"`
	Socket  string    `json:"socket"`
	Title   string    `json:"title,omitempty"`
	Created time.Time `json:"created"`
}

// Registry is a JSON file of pane entries, keyed by pane id.
type Registry struct {
	Path string
}

// Load reads all entries. A missing file yields an empty registry without
// error.
func (r Registry) Load() ([]Entry, error) {
	b, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Created.Before(entries[j].Created) })
	return entries, nil
}

func (r Registry) save(entries []Entry) error {
	if strings.TrimSpace(r.Path) == "" {
		return errors.New("mux: empty registry path")
	}
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.Path, b, 0o644)
}

// Add inserts or replaces the entry for its pane id.
func (r Registry) Add(e Entry) error {
	entries, err := r.Load()
	if err != nil {
		return err
	}
	out := entries[:0]
	for _, cur := range entries {
		if cur.PaneID != e.PaneID {
			out = append(out, cur)
		}
	}
	out = append(out, e)
	return r.save(out)
}

// Remove drops the entry for a pane id; removing an unknown id is not an
// error.
func (r Registry) Remove(paneID string) error {
	entries, err := r.Load()
	if err != nil {
		return err
	}
	out := entries[:0]
	for _, cur := range entries {
		if cur.PaneID != paneID {
			out = append(out, cur)
		}
	}
	return r.save(out)
}

// Find matches an entry by pane id first, then by exact title.
func (r Registry) Find(key string) (Entry, bool, error) {
	entries, err := r.Load()
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if e.PaneID == key {
			return e, true, nil
		}
	}
	for _, e := range entries {
		if e.Title == key {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// Prune keeps only entries whose pane is still alive and returns the kept
// set.
func (r Registry) Prune(alive func(paneID string) bool) ([]Entry, error) {
	entries, err := r.Load()
	if err != nil {
		return nil, err
	}
	kept := entries[:0]
	for _, e := range entries {
		if alive(e.PaneID) {
			kept = append(kept, e)
			continue
		}
		_ = os.Remove(e.Socket)
	}
	if err := r.save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}
