package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todofilter/internal/widget"
)

// DeleteColumn is where the delete glyph starts inside a row line.
const DeleteColumn = 2

// Header summarizes the list: shown, hidden and total counts.
func Header(shown, total int) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("shown"), shown,
		t.Pending.Render("hidden"), total-shown,
		t.Accent.Render("total"), total,
	)
}

// RowLine draws one displayed row. maxWidth <= 0 disables truncation.
func RowLine(r widget.Row, selected bool, maxWidth int) string {
	t := Current()
	prefix := "  "
	if selected {
		prefix = t.Selected.Render(t.SymCursor) + " "
	}
	text := r.Text
	if maxWidth > 0 {
		room := maxWidth - DeleteColumn - ansi.StringWidth(t.SymDelete) - 1
		if room < 1 {
			room = 1
		}
		text = ansi.Truncate(text, room, "…")
	}
	if selected {
		text = t.Selected.Render(text)
	}
	return prefix + t.Error.Render(t.SymDelete) + " " + text
}

// RowLines draws the displayed rows; hidden ones are skipped.
func RowLines(rows []widget.Row, cursor, maxWidth int) []string {
	shown := widget.Displayed(rows)
	if len(shown) == 0 {
		msg := "no items"
		if len(rows) > 0 {
			msg = "no matches"
		}
		return []string{Current().Muted.Render(msg)}
	}
	out := make([]string, 0, len(shown))
	for i, r := range shown {
		out = append(out, RowLine(r, i == cursor, maxWidth))
	}
	return out
}
