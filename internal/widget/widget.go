// Package widget holds the list state behind the to-do page: an ordered
// sequence of items, the active search term, and the three operations the
// page drives through events (add, delete, filter).
package widget

import (
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/todofilter/internal/model"
)

// ListWidget owns the items and the current search term.
// It is driven from a single event loop and is not safe for concurrent use.
type ListWidget struct {
	items  []model.Item
	term   string
	logger *log.Logger
	newID  func() string
}

// Option configures a ListWidget.
type Option func(*ListWidget)

// WithLogger routes widget logs to l.
func WithLogger(l *log.Logger) Option {
	return func(w *ListWidget) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithIDFunc replaces the uuid generator used for item identities.
func WithIDFunc(fn func() string) Option {
	return func(w *ListWidget) {
		if fn != nil {
			w.newID = fn
		}
	}
}

func New(opts ...Option) *ListWidget {
	w := &ListWidget{
		logger: log.New(io.Discard),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add trims raw and appends it as a visible item.
// Empty input after trimming is ignored and reported as false.
func (w *ListWidget) Add(raw string) (model.Item, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		w.logger.Debug("add ignored", "reason", "empty")
		return model.Item{}, false
	}
	it := model.Item{ID: w.newID(), Text: text, Visible: true}
	w.items = append(w.items, it)
	w.logger.Debug("added", "text", text, "len", len(w.items))
	return it, true
}

// Delete removes the item with the given identity.
func (w *ListWidget) Delete(id string) bool {
	for i := range w.items {
		if w.items[i].ID == id {
			return w.DeleteAt(i)
		}
	}
	w.logger.Debug("delete ignored", "id", id)
	return false
}

// DeleteAt removes the item at 0-based position i.
func (w *ListWidget) DeleteAt(i int) bool {
	if i < 0 || i >= len(w.items) {
		return false
	}
	text := w.items[i].Text
	w.items = append(w.items[:i], w.items[i+1:]...)
	w.logger.Debug("deleted", "text", text, "len", len(w.items))
	return true
}

// Filter marks every item visible iff its lowercased text contains term.
// The term is expected to be normalized already (see NormalizeTerm).
func (w *ListWidget) Filter(term string) {
	w.term = term
	shown := 0
	for i := range w.items {
		v := strings.Contains(strings.ToLower(w.items[i].Text), term)
		w.items[i].Visible = v
		if v {
			shown++
		}
	}
	w.logger.Debug("filtered", "term", term, "shown", shown, "total", len(w.items))
}

// NormalizeTerm prepares raw search field input for Filter.
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Items returns a copy of the sequence in order.
func (w *ListWidget) Items() []model.Item {
	out := make([]model.Item, len(w.items))
	copy(out, w.items)
	return out
}

func (w *ListWidget) Len() int     { return len(w.items) }
func (w *ListWidget) Term() string { return w.term }

// VisibleCount is the number of items currently displayed.
func (w *ListWidget) VisibleCount() int {
	n := 0
	for _, it := range w.items {
		if it.Visible {
			n++
		}
	}
	return n
}

// Closest returns the text of the item nearest to term by edit distance.
// Only used as a hint; matching stays substring based.
func (w *ListWidget) Closest(term string) (string, bool) {
	if term == "" || len(w.items) == 0 {
		return "", false
	}
	best, bestDist := "", -1
	for _, it := range w.items {
		d := levenshtein.ComputeDistance(term, strings.ToLower(it.Text))
		if bestDist < 0 || d < bestDist {
			best, bestDist = it.Text, d
		}
	}
	return best, true
}
