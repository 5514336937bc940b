package mux

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		opts SplitOptions
		want []string
	}{
		{
			name: "defaults",
			opts: SplitOptions{},
			want: []string{"split-window", "-d", "-P", "-F", "#{pane_id}", "-h", "-t", "work:"},
		},
		{
			name: "vertical with percent",
			opts: SplitOptions{Vertical: true, Percent: 30},
			want: []string{"split-window", "-d", "-P", "-F", "#{pane_id}", "-v", "-p", "30", "-t", "work:"},
		},
		{
			name: "command",
			opts: SplitOptions{Command: []string{"easel", "pane", "--socket", "/tmp/e.sock"}},
			want: []string{"split-window", "-d", "-P", "-F", "#{pane_id}", "-h", "-t", "work:", "easel", "pane", "--socket", "/tmp/e.sock"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitArgs("work", tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitArgs(%+v) = %v, want %v", tt.opts, got, tt.want)
			}
		})
	}
}

func TestSplitPaneUsesRunner(t *testing.T) {
	var calls [][]string
	c := New("work", "")
	c.run = func(ctx context.Context, args ...string) (string, error) {
		calls = append(calls, args)
		if args[0] == "split-window" {
			return "%7", nil
		}
		return "", nil
	}

	id, err := c.SplitPane(context.Background(), SplitOptions{Title: "notes"})
	if err != nil {
		t.Fatalf("SplitPane: %v", err)
	}
	if id != "%7" {
		t.Errorf("pane id = %q, want %%7", id)
	}
	if len(calls) != 2 {
		t.Fatalf("expected split-window then select-pane, got %d calls: %v", len(calls), calls)
	}
	want := []string{"select-pane", "-t", "%7", "-T", "notes"}
	if !reflect.DeepEqual(calls[1], want) {
		t.Errorf("second call = %v, want %v", calls[1], want)
	}
}

func TestParsePanes(t *testing.T) {
	out := strings.Join([]string{
		"%0\tshell\t120\t30\t1",
		"%3\tnotes\t60\t30\t0",
		"",
	}, "\n")
	panes := parsePanes(out)
	want := []Pane{
		{ID: "%0", Title: "shell", Width: 120, Height: 30, Active: true},
		{ID: "%3", Title: "notes", Width: 60, Height: 30, Active: false},
	}
	if !reflect.DeepEqual(panes, want) {
		t.Errorf("parsePanes = %+v, want %+v", panes, want)
	}
}

func TestParsePanesSkipsMalformed(t *testing.T) {
	panes := parsePanes("garbage line\n%1\tok\t80\t24\t0\n")
	if len(panes) != 1 || panes[0].ID != "%1" {
		t.Errorf("parsePanes = %+v, want single %%1 entry", panes)
	}
}

func TestSocketPathUnique(t *testing.T) {
	c := New("work", t.TempDir())
	a := c.SocketPath()
	b := c.SocketPath()
	if a == b {
		t.Errorf("SocketPath returned %q twice", a)
	}
	if filepath.Dir(a) != c.SocketDir {
		t.Errorf("socket %q not under %q", a, c.SocketDir)
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	r := Registry{Path: filepath.Join(t.TempDir(), "panes.json")}

	entries, err := r.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("missing file should load empty, got %+v", entries)
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := r.Add(Entry{PaneID: "%1", Socket: "/tmp/a.sock", Title: "alpha", Created: now}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(Entry{PaneID: "%2", Socket: "/tmp/b.sock", Title: "beta", Created: now.Add(time.Second)}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err = r.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 || entries[0].PaneID != "%1" || entries[1].PaneID != "%2" {
		t.Fatalf("Load = %+v, want %%1 then %%2", entries)
	}

	e, ok, err := r.Find("beta")
	if err != nil || !ok {
		t.Fatalf("Find(beta) = %v, %v, %v", e, ok, err)
	}
	if e.Socket != "/tmp/b.sock" {
		t.Errorf("Find(beta).Socket = %q", e.Socket)
	}

	if err := r.Remove("%1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := r.Find("%1"); ok {
		t.Error("entry %1 still present after Remove")
	}
}

func TestRegistryAddReplaces(t *testing.T) {
	r := Registry{Path: filepath.Join(t.TempDir(), "panes.json")}
	if err := r.Add(Entry{PaneID: "%1", Socket: "/tmp/old.sock"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(Entry{PaneID: "%1", Socket: "/tmp/new.sock"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	entries, err := r.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 || entries[0].Socket != "/tmp/new.sock" {
		t.Errorf("entries = %+v, want single replaced entry", entries)
	}
}

func TestRegistryPrune(t *testing.T) {
	r := Registry{Path: filepath.Join(t.TempDir(), "panes.json")}
	for _, e := range []Entry{
		{PaneID: "%1", Socket: filepath.Join(t.TempDir(), "a.sock")},
		{PaneID: "%2", Socket: filepath.Join(t.TempDir(), "b.sock")},
	} {
		if err := r.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	kept, err := r.Prune(func(id string) bool { return id == "%2" })
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if len(kept) != 1 || kept[0].PaneID != "%2" {
		t.Errorf("kept = %+v, want only %%2", kept)
	}
	entries, _ := r.Load()
	if len(entries) != 1 {
		t.Errorf("registry after prune = %+v", entries)
	}
}
