package widget

import "strings"

// Column is one lane of a kanban board.
type Column struct {
	Title string   `yaml:"title" json:"title"`
	Cards []string `yaml:"cards" json:"cards"`
}

// Kanban is a board of columns rendered as headed card lists.
type Kanban struct {
	Title   string   `yaml:"title" json:"title"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// Markup renders the board as canvas markup.
func (k Kanban) Markup() string {
	var b strings.Builder
	if strings.TrimSpace(k.Title) != "" {
		heading(&b, 1, k.Title)
	}
	for i, col := range k.Columns {
		title := col.Title
		if strings.TrimSpace(title) == "" {
			title = "Untitled"
		}
		heading(&b, 2, title)
		if len(col.Cards) == 0 {
			b.WriteString("*empty*\n")
		}
		for _, card := range col.Cards {
			b.WriteString("- ")
			b.WriteString(card)
			b.WriteByte('\n')
		}
		if i < len(k.Columns)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
