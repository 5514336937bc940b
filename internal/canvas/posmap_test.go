package canvas

import (
	"testing"

	"easel/internal/markdown"
)

func mapFor(t *testing.T, content string, width int) PositionMap {
	t.Helper()
	lines := Render(content, nil, markdown.Span{}, width, 0, 0)
	return BuildPositionMap(lines, 1, width)
}

func TestBuildPositionMapBasics(t *testing.T) {
	pm := mapFor(t, "# Hi", 20)
	want := []Cell{{1, 1, 0}, {1, 2, 1}, {1, 3, 2}, {1, 4, 3}}
	if len(pm) != len(want) {
		t.Fatalf("got %d cells: %+v", len(pm), pm)
	}
	for i, w := range want {
		if pm[i] != w {
			t.Errorf("cell %d: %+v, want %+v", i, pm[i], w)
		}
	}
}

func TestBuildPositionMapSkipsBlankRows(t *testing.T) {
	pm := mapFor(t, "# Hi\n\nWorld", 20)
	// Rows: 1 heading, 2 blank, 3 paragraph. The blank row holds no cells
	// but still advances the row counter.
	for _, c := range pm {
		if c.Row == 2 {
			t.Fatalf("blank row has a cell: %+v", c)
		}
	}
	first, last := pm[0], pm[len(pm)-1]
	if first.Row != 1 || first.Off != 0 {
		t.Errorf("first cell %+v", first)
	}
	if last.Row != 3 || last.Col != 5 || last.Off != 10 {
		t.Errorf("last cell %+v", last)
	}
}

func TestBuildPositionMapIndent(t *testing.T) {
	ln := markdown.Line{
		Segs:   []markdown.Segment{{Text: "ab", Off: 9, Len: 2}},
		Indent: 3,
	}
	pm := BuildPositionMap([]markdown.Line{ln}, 4, 20)
	if len(pm) != 2 {
		t.Fatalf("got %d cells", len(pm))
	}
	// Padding columns carry no cells; the first character sits at 1+indent.
	if pm[0] != (Cell{Row: 4, Col: 4, Off: 9}) {
		t.Errorf("first cell %+v", pm[0])
	}
}

func TestBuildPositionMapDefensiveWrap(t *testing.T) {
	ln := markdown.Line{Segs: []markdown.Segment{{Text: "abcde", Off: 0, Len: 5}}}
	pm := BuildPositionMap([]markdown.Line{ln}, 1, 3)
	want := []Cell{{1, 1, 0}, {1, 2, 1}, {1, 3, 2}, {2, 1, 3}, {2, 2, 4}}
	for i, w := range want {
		if pm[i] != w {
			t.Errorf("cell %d: %+v, want %+v", i, pm[i], w)
		}
	}
}

// TestPositionMapBijection checks the per-row contract over a wrapped
// document: strictly increasing columns, one cell per displayed character,
// and offsets that resolve back to the same cell.
func TestPositionMapBijection(t *testing.T) {
	content := "# Title\n\nlong paragraph that wraps a few times over\n\n- item one here\n- second item\n\n> quoted line\n"
	width := 12
	lines := Render(content, nil, markdown.Span{}, width, 0, 0)
	pm := BuildPositionMap(lines, 1, width)

	chars := 0
	for _, ln := range lines {
		chars += len([]rune(ln.Text()))
	}
	if len(pm) != chars {
		t.Fatalf("%d cells for %d displayed characters", len(pm), chars)
	}

	byRow := map[int]int{}
	lastCol := map[int]int{}
	for _, c := range pm {
		if c.Col <= lastCol[c.Row] {
			t.Fatalf("columns not increasing on row %d: %+v", c.Row, c)
		}
		lastCol[c.Row] = c.Col
		byRow[c.Row]++
		if got, ok := pm.CellAt(c.Row, c.Col); !ok || got != c {
			t.Fatalf("CellAt(%d,%d) = %+v, %v", c.Row, c.Col, got, ok)
		}
	}
	for row, n := range byRow {
		idx := row - 1
		if idx < 0 || idx >= len(lines) {
			t.Fatalf("cell row %d outside rendered window", row)
		}
		if rowChars := len([]rune(lines[idx].Text())); rowChars != n {
			t.Errorf("row %d: %d cells for %d characters", row, n, rowChars)
		}
	}
}

func TestResolveRules(t *testing.T) {
	pm := mapFor(t, "# Hi\n\nWorld", 20)
	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"exact", 1, 3, 2},
		{"exact last", 3, 5, 10},
		{"right of row clamps", 1, 99, 3},
		{"left of row clamps", 3, 0, 6},
		{"blank row ties to earlier", 2, 4, 3},
		{"above all", 0, 2, 0},
		{"below all", 9, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pm.Resolve(tt.row, tt.col)
			if !ok {
				t.Fatal("no offset resolved")
			}
			if got != tt.want {
				t.Errorf("Resolve(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestResolveColumnGap(t *testing.T) {
	// Gapped rows only appear in defensive maps; the nearer column wins.
	pm := PositionMap{{Row: 1, Col: 2, Off: 5}, {Row: 1, Col: 8, Off: 6}}
	if got, _ := pm.Resolve(1, 4); got != 5 {
		t.Errorf("Resolve(1,4) = %d, want 5", got)
	}
	if got, _ := pm.Resolve(1, 7); got != 6 {
		t.Errorf("Resolve(1,7) = %d, want 6", got)
	}
}

func TestResolveEmptyMap(t *testing.T) {
	var pm PositionMap
	if _, ok := pm.Resolve(1, 1); ok {
		t.Fatal("empty map resolved an offset")
	}
}
