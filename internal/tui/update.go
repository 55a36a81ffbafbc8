package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todofilter/internal/ui"
	"github.com/idilsaglam/todofilter/internal/widget"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clamp()
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		target := m.hitTest(msg.X, msg.Y)
		switch target.Role {
		case widget.RoleForm:
			return m.setFocus(focusAdd)
		case widget.RoleSearch:
			return m.setFocus(focusSearch)
		}
		m.dispatch(widget.Event{Type: widget.EventClick, Target: target})
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Next) {
			return m.setFocus((m.focus + 1) % 3)
		}
		if key.Matches(msg, m.keys.Prev) {
			return m.setFocus((m.focus + 2) % 3)
		}
		switch m.focus {
		case focusAdd:
			return m.updateAdd(msg)
		case focusSearch:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	// blink and other input messages
	var cmd tea.Cmd
	switch m.focus {
	case focusAdd:
		m.add, cmd = m.add.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		res := m.dispatch(widget.Event{
			Type:   widget.EventSubmit,
			Target: widget.Element{Role: widget.RoleForm},
			Value:  m.add.Value(),
		})
		if res.ClearInput {
			m.add.Reset()
		}
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		return m.setFocus(focusList)
	}
	var cmd tea.Cmd
	m.add, cmd = m.add.Update(msg)
	return m, cmd
}

// Every key the search field handles is followed by a key release, so
// the filter runs on each change.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leave) {
		return m.setFocus(focusList)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.dispatch(widget.Event{
		Type:   widget.EventKeyUp,
		Target: widget.Element{Role: widget.RoleSearch},
		Value:  m.search.Value(),
	})
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clamp()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clamp()
	case key.Matches(msg, m.keys.Delete):
		shown := widget.Displayed(m.w.Rows())
		if m.cursor >= 0 && m.cursor < len(shown) {
			m.dispatch(widget.Event{Type: widget.EventClick, Target: shown[m.cursor].Delete})
		}
	case key.Matches(msg, m.keys.Add):
		return m.setFocus(focusAdd)
	case key.Matches(msg, m.keys.Search):
		return m.setFocus(focusSearch)
	}
	return m, nil
}

// dispatch hands ev to the widget's single listener and keeps the cursor valid.
func (m *Model) dispatch(ev widget.Event) widget.Result {
	res := m.w.Handle(ev)
	if res.Changed {
		m.clamp()
	}
	return res
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.add.Blur()
	m.search.Blur()
	var cmd tea.Cmd
	switch f {
	case focusAdd:
		cmd = m.add.Focus()
	case focusSearch:
		cmd = m.search.Focus()
	}
	m.logger.Debug("focus", "field", f)
	return m, cmd
}

// listHeight is how many rows fit on screen; 0 means no limit.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - chrome - rowsTop - footer
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) clamp() {
	n := m.w.VisibleCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if last := n - h; m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// hitTest resolves a screen cell to the element drawn there. Only the
// delete glyph of a row maps to a row element the widget acts on.
func (m Model) hitTest(x, y int) widget.Element {
	line := y - 1 // panel top border
	switch line {
	case lineAdd:
		return widget.Element{Role: widget.RoleForm}
	case lineSearch:
		return widget.Element{Role: widget.RoleSearch}
	}
	i := line - rowsTop
	shown := widget.Displayed(m.w.Rows())
	if i < 0 || (m.listHeight() > 0 && i >= m.listHeight()) {
		return widget.Container
	}
	i += m.offset
	if i >= len(shown) {
		return widget.Container
	}
	col := x - ui.PanelInset
	glyph := ansi.StringWidth(ui.Current().SymDelete)
	switch {
	case col >= ui.DeleteColumn && col < ui.DeleteColumn+glyph:
		return shown[i].Delete
	case col > ui.DeleteColumn+glyph:
		return widget.Element{Role: widget.RoleText, ItemID: shown[i].Item.ItemID}
	default:
		return shown[i].Item
	}
}
