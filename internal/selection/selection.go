// Package selection turns pointer events into a normalized source-offset
// range over a rendered canvas. A Controller is the single writer of its
// selection state; hosts feed it events from one goroutine (the viewer's
// event loop, the dashboard's update loop) and read the state back when
// rendering.
package selection

import (
	"sort"

	"easel/internal/canvas"
	"easel/internal/markdown"
	"easel/internal/pointer"
)

// State is the live selection. Anchor is where the press landed, Focus
// follows the drag; Start and End are the normalized half-open range,
// recomputed on every update so Start <= End regardless of drag direction.
type State struct {
	Selecting bool
	Anchor    int
	Focus     int
	Start     int
	End       int
}

// Empty reports whether the state selects no characters.
func (s State) Empty() bool { return s.End <= s.Start }

// Event is a selection notification. Lines and columns are 1-based source
// document positions of the first and last selected characters.
type Event struct {
	Text      string `json:"text"`
	Start     int    `json:"startOffset"`
	End       int    `json:"endOffset"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	StartCol  int    `json:"startColumn"`
	EndCol    int    `json:"endColumn"`
}

type phase uint8

const (
	phaseIdle phase = iota
	phasePressed
	phaseDragging
)

// Controller resolves pointer positions through a position map and tracks
// the press/drag/release lifecycle. It is not safe for concurrent use.
type Controller struct {
	doc    []rune
	starts []int // rune offsets of line starts
	pm     canvas.PositionMap

	originX int // columns left of the content region
	originY int // rows above the content region
	scroll  int // rows scrolled off above the window

	phase    phase
	st       State
	onChange func(Event)
}

// New returns a controller; onChange may be nil.
func New(onChange func(Event)) *Controller {
	return &Controller{onChange: onChange}
}

// SetContent installs the source document the selection addresses. Any
// in-flight selection is dropped: offsets into the old text are meaningless.
func (c *Controller) SetContent(doc string) {
	c.doc = []rune(doc)
	c.starts = lineStarts(c.doc)
	c.Clear()
}

// SetMap installs the position map of the current render.
func (c *Controller) SetMap(pm canvas.PositionMap) { c.pm = pm }

// SetOrigin places the content region: pointer coordinates are shifted left
// by originX and up by originY, then down by scroll, before resolution.
func (c *Controller) SetOrigin(originX, originY, scroll int) {
	c.originX = originX
	c.originY = originY
	c.scroll = scroll
}

// State returns the current selection state.
func (c *Controller) State() State { return c.st }

// Span returns the normalized range for overlay rendering.
func (c *Controller) Span() markdown.Span {
	return markdown.Span{Start: c.st.Start, End: c.st.End}
}

// Clear resets the controller to idle with no selection.
func (c *Controller) Clear() {
	c.phase = phaseIdle
	c.st = State{}
}

// Handle consumes one pointer event and reports whether the visible
// selection state changed. Press anchors, motion drags the focus, release
// freezes. A press that misses every displayed character is ignored. A
// press-release with no drag keeps nothing selected and emits nothing.
func (c *Controller) Handle(ev pointer.Event) bool {
	switch {
	case ev.Button == pointer.ButtonLeft && ev.Action == pointer.ActionPress:
		return c.press(ev)
	case ev.Action == pointer.ActionMotion && c.phase != phaseIdle:
		return c.drag(ev)
	case ev.Button == pointer.ButtonLeft && ev.Action == pointer.ActionRelease:
		return c.release()
	case ev.Action == pointer.ActionRelease && c.phase != phaseIdle:
		return c.release()
	}
	return false
}

func (c *Controller) press(ev pointer.Event) bool {
	off, ok := c.resolve(ev)
	if !ok {
		return false
	}
	had := !c.st.Empty()
	c.phase = phasePressed
	c.st = State{Selecting: true, Anchor: off, Focus: off, Start: off, End: off}
	return had
}

func (c *Controller) drag(ev pointer.Event) bool {
	off, ok := c.resolve(ev)
	if !ok {
		return false
	}
	c.phase = phaseDragging
	if off == c.st.Focus {
		return false
	}
	c.st.Focus = off
	start, end := normalize(c.st.Anchor, off)
	if start == c.st.Start && end == c.st.End {
		return false
	}
	c.st.Start, c.st.End = start, end
	if !c.st.Empty() {
		c.emit()
	}
	return true
}

func (c *Controller) release() bool {
	if c.phase == phaseIdle {
		return false
	}
	dragged := c.phase == phaseDragging
	c.phase = phaseIdle
	c.st.Selecting = false
	if !dragged || c.st.Empty() {
		c.st = State{}
		return true
	}
	c.emit()
	return true
}

func (c *Controller) emit() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.event())
}

// event builds the notification for the current normalized range.
func (c *Controller) event() Event {
	start, end := c.st.Start, c.st.End
	start = clamp(start, 0, len(c.doc))
	end = clamp(end, start, len(c.doc))
	ev := Event{
		Text:  string(c.doc[start:end]),
		Start: start,
		End:   end,
	}
	ev.StartLine, ev.StartCol = c.lineCol(start)
	last := end
	if last > start {
		last--
	}
	ev.EndLine, ev.EndCol = c.lineCol(last)
	return ev
}

// resolve adjusts pointer coordinates into map space and finds the nearest
// displayed character.
func (c *Controller) resolve(ev pointer.Event) (int, bool) {
	row := ev.Y - c.originY + c.scroll
	col := ev.X - c.originX
	return c.pm.Resolve(row, col)
}

// lineCol converts an offset to 1-based source line and column.
func (c *Controller) lineCol(off int) (int, int) {
	if len(c.starts) == 0 {
		return 1, 1
	}
	off = clamp(off, 0, len(c.doc))
	i := sort.Search(len(c.starts), func(i int) bool { return c.starts[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, off - c.starts[i] + 1
}

func lineStarts(doc []rune) []int {
	starts := []int{0}
	for i, r := range doc {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func normalize(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
