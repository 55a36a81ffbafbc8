package widget

import "github.com/idilsaglam/todofilter/internal/model"

// Row is the view of one item.
type Row struct {
	Item   Element
	Delete Element
	Text   string
	Hidden bool
}

// Render maps items to rows. It keeps hidden rows so the presentation can
// decide how to toggle them.
func Render(items []model.Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{
			Item:   Element{Role: RoleItem, ItemID: it.ID},
			Delete: Element{Role: RoleDelete, ItemID: it.ID},
			Text:   it.Text,
			Hidden: !it.Visible,
		})
	}
	return rows
}

// Displayed drops hidden rows.
func Displayed(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

func (w *ListWidget) Rows() []Row { return Render(w.items) }

// ElementAt returns the delete element of the pos-th displayed row (1-based).
// Positions outside the displayed rows resolve to the container.
func (w *ListWidget) ElementAt(pos int) Element {
	shown := Displayed(w.Rows())
	if pos < 1 || pos > len(shown) {
		return Container
	}
	return shown[pos-1].Delete
}
