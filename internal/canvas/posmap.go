package canvas

import (
	"sort"

	"easel/internal/markdown"
)

// Cell maps one displayed character to its source offset. Row and Col are
// 1-based terminal coordinates.
type Cell struct {
	Row int
	Col int
	Off int
}

// PositionMap holds the cells of a rendered window in row-major order.
// Within a row, columns strictly increase and offsets never decrease.
type PositionMap []Cell

// BuildPositionMap emits one cell per displayed character, walking rows top
// to bottom starting at startRow. Indent padding and blank rows contribute
// nothing. The column counter wraps onto a fresh row before it would pass
// width, so the map stays well-formed even if a row overshoots the target.
func BuildPositionMap(lines []markdown.Line, startRow, width int) PositionMap {
	var pm PositionMap
	row := startRow
	for _, ln := range lines {
		col := 1 + ln.Indent
		for _, s := range ln.Segs {
			for i := range []rune(s.Text) {
				if width > 0 && col > width {
					row++
					col = 1
				}
				pm = append(pm, Cell{Row: row, Col: col, Off: s.Off + i})
				col++
			}
		}
		row++
	}
	return pm
}

// Resolve maps a terminal position to the offset of the nearest displayed
// character: an exact hit, else the nearest column on the same row, else the
// nearest populated row, taking that row's smallest offset when the pointer
// sits above it and its largest when below. Equidistant rows prefer the
// earlier one. ok is false only when the map is empty.
func (m PositionMap) Resolve(row, col int) (int, bool) {
	if len(m) == 0 {
		return 0, false
	}
	lo := sort.Search(len(m), func(i int) bool { return m[i].Row >= row })
	hi := sort.Search(len(m), func(i int) bool { return m[i].Row > row })
	if lo < hi {
		return resolveInRow(m[lo:hi], col), true
	}

	// The row has no cells. lo-1 is the last cell of the nearest populated
	// row above, which is also that row's largest offset; lo is the first
	// cell of the nearest row below, its smallest.
	above := lo - 1
	below := lo
	switch {
	case above < 0:
		return m[below].Off, true
	case below >= len(m):
		return m[above].Off, true
	}
	da := row - m[above].Row
	db := m[below].Row - row
	if da <= db {
		return m[above].Off, true
	}
	return m[below].Off, true
}

func resolveInRow(cells []Cell, col int) int {
	i := sort.Search(len(cells), func(i int) bool { return cells[i].Col >= col })
	switch {
	case i < len(cells) && cells[i].Col == col:
		return cells[i].Off
	case i == 0:
		return cells[0].Off
	case i == len(cells):
		return cells[len(cells)-1].Off
	}
	left, right := cells[i-1], cells[i]
	if col-left.Col <= right.Col-col {
		return left.Off
	}
	return right.Off
}

// CellAt reports the cell at an exact position.
func (m PositionMap) CellAt(row, col int) (Cell, bool) {
	lo := sort.Search(len(m), func(i int) bool { return m[i].Row >= row })
	hi := sort.Search(len(m), func(i int) bool { return m[i].Row > row })
	cells := m[lo:hi]
	i := sort.Search(len(cells), func(i int) bool { return cells[i].Col >= col })
	if i < len(cells) && cells[i].Col == col {
		return cells[i], true
	}
	return Cell{}, false
}
