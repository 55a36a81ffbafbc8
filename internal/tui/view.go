package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todofilter/internal/ui"
	"github.com/idilsaglam/todofilter/internal/widget"
)

func (m Model) View() string {
	t := ui.Current()
	shown, total := m.w.VisibleCount(), m.w.Len()

	maxWidth := 0
	if m.width > 0 {
		maxWidth = m.width - 2*ui.PanelInset
	}

	lines := []string{
		ui.Header(shown, total),
		t.Muted.Render(ui.MatchBar(shown, total, 28)),
		"",
		m.label("Add   ", focusAdd) + m.add.View(),
		m.label("Search", focusSearch) + m.search.View(),
		"",
	}

	rows := ui.RowLines(m.w.Rows(), m.cursorForView(), maxWidth)
	if h := m.listHeight(); h > 0 && len(widget.Displayed(m.w.Rows())) > 0 {
		start := min(m.offset, len(rows))
		end := min(start+h, len(rows))
		rows = rows[start:end]
	}
	lines = append(lines, rows...)

	lines = append(lines, "", m.status(), m.help.ShortHelpView(m.helpKeys()))
	if maxWidth > 0 {
		for i, ln := range lines {
			lines[i] = ansi.Truncate(ln, maxWidth, "")
		}
	}
	return ui.PanelString(lines)
}

func (m Model) label(name string, f focus) string {
	t := ui.Current()
	if m.focus == f {
		return t.Accent.Render(name) + " "
	}
	return t.Muted.Render(name) + " "
}

// The cursor is only drawn while the list has focus.
func (m Model) cursorForView() int {
	if m.focus != focusList {
		return -1
	}
	return m.cursor
}

func (m Model) status() string {
	t := ui.Current()
	term := m.w.Term()
	if term == "" || m.w.VisibleCount() > 0 {
		return ""
	}
	if closest, ok := m.w.Closest(term); ok {
		return t.Hint.Render(fmt.Sprintf("no match for %q, closest: %q", term, closest))
	}
	return ""
}

func (m Model) helpKeys() []key.Binding {
	k := m.keys
	switch m.focus {
	case focusAdd:
		return []key.Binding{k.Submit, k.Next, k.Leave, k.ForceQuit}
	case focusSearch:
		return []key.Binding{k.Next, k.Leave, k.ForceQuit}
	default:
		return []key.Binding{k.Up, k.Down, k.Delete, k.Add, k.Search, k.Quit}
	}
}
