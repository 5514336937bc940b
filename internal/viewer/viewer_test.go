package viewer

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"easel/internal/canvas"
	"easel/internal/markdown"
	"easel/internal/pointer"
	"easel/internal/selection"
	"easel/internal/transport"
)

func newTestViewer(w, h int) *viewer {
	v := &viewer{
		out:      io.Discard,
		size:     func() (int, int) { return w, h },
		styles:   canvas.DefaultStyles(),
		status:   lipgloss.NewStyle(),
		selectOn: true,
	}
	v.ctl = selection.New(nil)
	v.measure()
	return v
}

func req(r transport.Request) request { return request{req: r} }

func TestShowResetsState(t *testing.T) {
	v := newTestViewer(20, 10)
	v.setContent("old")
	v.scroll = 5
	v.diffs = []markdown.Diff{{Start: 0, End: 1, Type: markdown.DiffAdd}}

	if quit := v.handleRequest(req(transport.Request{Op: transport.OpShow, Content: "# Fresh", Title: "doc"})); quit {
		t.Fatal("show should not quit")
	}
	if v.content != "# Fresh" || v.title != "doc" {
		t.Errorf("content/title = %q/%q", v.content, v.title)
	}
	if v.scroll != 0 || v.diffs != nil {
		t.Errorf("show should reset scroll and diffs, got %d %v", v.scroll, v.diffs)
	}
}

func TestUpdateComputesDiffs(t *testing.T) {
	v := newTestViewer(20, 10)
	v.setContent("hello world")

	v.handleRequest(req(transport.Request{Op: transport.OpUpdate, Content: "hello brave world"}))
	if len(v.diffs) == 0 {
		t.Fatal("update without explicit diffs should compute them")
	}
	for _, d := range v.diffs {
		if d.Type != markdown.DiffAdd {
			t.Errorf("computed diff type = %v", d.Type)
		}
		if d.Start < 0 || d.End > len([]rune(v.content)) || d.Start >= d.End {
			t.Errorf("diff out of range: %+v", d)
		}
	}
}

func TestUpdateKeepsExplicitDiffs(t *testing.T) {
	v := newTestViewer(20, 10)
	v.setContent("abc")
	want := []markdown.Diff{{Start: 1, End: 2, Type: markdown.DiffDelete}}
	v.handleRequest(req(transport.Request{Op: transport.OpUpdate, Content: "abc", Diffs: want}))
	if len(v.diffs) != 1 || v.diffs[0] != want[0] {
		t.Errorf("diffs = %+v, want %+v", v.diffs, want)
	}
}

func TestScrollClamps(t *testing.T) {
	v := newTestViewer(10, 5)
	v.setContent(strings.Repeat("line\n\n", 20))

	v.handleRequest(req(transport.Request{Op: transport.OpScroll, Delta: 999}))
	max := canvas.RowCount(v.content, v.width) - v.contentRows()
	if v.scroll != max {
		t.Errorf("scroll = %d, want clamp to %d", v.scroll, max)
	}
	v.handleRequest(req(transport.Request{Op: transport.OpScroll, Delta: -999}))
	if v.scroll != 0 {
		t.Errorf("scroll = %d, want 0", v.scroll)
	}
}

func TestWheelScrolls(t *testing.T) {
	v := newTestViewer(10, 5)
	v.setContent(strings.Repeat("line\n\n", 20))
	v.refresh()

	down := pointer.Event{Button: pointer.ButtonWheelDown, Action: pointer.ActionPress, X: 1, Y: 1}
	if !v.handlePointer(down) {
		t.Fatal("wheel at top should change scroll")
	}
	if v.scroll != 3 {
		t.Errorf("scroll = %d, want 3", v.scroll)
	}
	up := pointer.Event{Button: pointer.ButtonWheelUp, Action: pointer.ActionPress, X: 1, Y: 1}
	v.handlePointer(up)
	if v.scroll != 0 {
		t.Errorf("scroll = %d, want 0", v.scroll)
	}
	if v.handlePointer(up) {
		t.Error("wheel already at top should report no change")
	}
}

func TestSelectToggleClearsSelection(t *testing.T) {
	v := newTestViewer(20, 10)
	v.setContent("hello world")
	v.refresh()

	press := pointer.Event{Button: pointer.ButtonLeft, Action: pointer.ActionPress, X: 1, Y: 1}
	v.handlePointer(press)
	if !v.ctl.State().Selecting {
		t.Fatal("press should start selecting")
	}

	v.handleRequest(req(transport.Request{Op: transport.OpSelect, Enable: false}))
	if v.ctl.State().Selecting {
		t.Error("disabling selection should clear the controller")
	}
	if v.handlePointer(press) {
		t.Error("pointer presses should be ignored while selection is off")
	}
}

func TestCloseQuits(t *testing.T) {
	v := newTestViewer(20, 10)
	if !v.handleRequest(req(transport.Request{Op: transport.OpClose})) {
		t.Error("close op should quit")
	}
	if v.handleRequest(req(transport.Request{Op: transport.OpPing})) {
		t.Error("ping should not quit")
	}
}

func TestStatusLine(t *testing.T) {
	v := newTestViewer(40, 10)
	v.title = "notes.md"
	v.setContent("# a\n\nbody")
	v.selectOn = false

	s := v.statusLine()
	if !strings.Contains(s, "notes.md") || !strings.Contains(s, "select off") {
		t.Errorf("status = %q", s)
	}

	v.width = 5
	if got := v.statusLine(); len([]rune(got)) > 5 {
		t.Errorf("status not truncated: %q", got)
	}
}
