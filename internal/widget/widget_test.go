package widget

import (
	"strings"
	"testing"
	"time"
)

func TestKanbanMarkup(t *testing.T) {
	k := Kanban{
		Title: "Sprint 12",
		Columns: []Column{
			{Title: "Todo", Cards: []string{"wire scroll", "docs pass"}},
			{Title: "Done", Cards: []string{"parser"}},
		},
	}
	got := k.Markup()
	want := strings.Join([]string{
		"# Sprint 12",
		"",
		"## Todo",
		"",
		"- wire scroll",
		"- docs pass",
		"",
		"## Done",
		"",
		"- parser",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Markup =\n%q\nwant\n%q", got, want)
	}
}

func TestKanbanEmptyColumn(t *testing.T) {
	k := Kanban{Columns: []Column{{Title: "Inbox"}}}
	got := k.Markup()
	if !strings.Contains(got, "*empty*") {
		t.Errorf("empty column should render placeholder, got %q", got)
	}
	if strings.Contains(got, "# \n") {
		t.Errorf("missing board title should not emit an empty heading: %q", got)
	}
}

func TestCalendarMarkup(t *testing.T) {
	c := Calendar{
		Year:   2026,
		Month:  time.August,
		Events: map[int]string{21: "review", 3: "kickoff"},
	}
	got := c.Markup()

	if !strings.HasPrefix(got, "# August 2026\n\n```\n") {
		t.Fatalf("unexpected header: %q", got)
	}
	// August 1 2026 is a Saturday: five empty day cells lead the first row.
	firstWeek := "Mo Tu We Th Fr Sa Su\n" + strings.Repeat(" ", 16) + "1  2\n"
	if !strings.Contains(got, firstWeek) {
		t.Errorf("first week misaligned:\n%s", got)
	}
	if !strings.Contains(got, " 3*") {
		t.Errorf("event day 3 should carry a marker:\n%s", got)
	}
	if !strings.Contains(got, "21*") {
		t.Errorf("event day 21 should carry a marker:\n%s", got)
	}
	// The 31st is a Monday, alone on the final row.
	if !strings.Contains(got, "24 25 26 27 28 29 30\n31\n```") {
		t.Errorf("last weeks wrong:\n%s", got)
	}

	// Event list is sorted by day.
	i3 := strings.Index(got, "- **3** kickoff")
	i21 := strings.Index(got, "- **21** review")
	if i3 < 0 || i21 < 0 || i3 > i21 {
		t.Errorf("event list wrong or unsorted:\n%s", got)
	}
}

func TestCalendarFebruaryLeap(t *testing.T) {
	c := Calendar{Year: 2024, Month: time.February}
	got := c.Markup()
	if !strings.Contains(got, "29\n```") {
		t.Errorf("leap february should end on 29:\n%s", got)
	}
}

func TestScreenMarkup(t *testing.T) {
	screen := "\x1b[1mNAME\x1b[0m   CPU \r\nserver  42% \r\n\r\n\r\n"
	got := ScreenMarkup("top -b", screen)
	want := strings.Join([]string{
		"# top -b",
		"",
		"```",
		"NAME   CPU",
		"server  42%",
		"```",
		"",
	}, "\n")
	if got != want {
		t.Errorf("ScreenMarkup =\n%q\nwant\n%q", got, want)
	}
}

func TestScreenMarkupNoTitle(t *testing.T) {
	got := ScreenMarkup("", "hi")
	if strings.Contains(got, "#") {
		t.Errorf("no heading expected: %q", got)
	}
	if !strings.HasPrefix(got, "```\nhi\n```\n") {
		t.Errorf("unexpected fence: %q", got)
	}
}
