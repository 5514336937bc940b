package widget

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Calendar is a month grid with optional per-day labels.
type Calendar struct {
	Year   int            `yaml:"year" json:"year"`
	Month  time.Month     `yaml:"month" json:"month"`
	Events map[int]string `yaml:"events" json:"events"`
}

// Markup renders the month as a fenced grid followed by the event list.
// Weeks start on Monday.
func (c Calendar) Markup() string {
	var b strings.Builder
	heading(&b, 1, fmt.Sprintf("%s %d", c.Month, c.Year))

	first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) + 6) % 7
	days := time.Date(c.Year, c.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	b.WriteString("```\n")
	b.WriteString("Mo Tu We Th Fr Sa Su\n")
	col := 0
	for ; col < lead; col++ {
		b.WriteString("   ")
	}
	for day := 1; day <= days; day++ {
		b.WriteString(fmt.Sprintf("%2d", day))
		if _, ok := c.Events[day]; ok {
			b.WriteByte('*')
		} else {
			b.WriteByte(' ')
		}
		col++
		if col == 7 {
			trimTrailingSpace(&b)
			b.WriteByte('\n')
			col = 0
		}
	}
	if col != 0 {
		trimTrailingSpace(&b)
		b.WriteByte('\n')
	}
	b.WriteString("```\n")

	if len(c.Events) > 0 {
		b.WriteByte('\n')
		days := make([]int, 0, len(c.Events))
		for d := range c.Events {
			days = append(days, d)
		}
		sort.Ints(days)
		for _, d := range days {
			fmt.Fprintf(&b, "- **%d** %s\n", d, c.Events[d])
		}
	}
	return b.String()
}

// trimTrailingSpace drops one trailing blank so grid rows end on the digit
// or the event marker.
func trimTrailingSpace(b *strings.Builder) {
	s := b.String()
	if strings.HasSuffix(s, " ") {
		b.Reset()
		b.WriteString(s[:len(s)-1])
	}
}
