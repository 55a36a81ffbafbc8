// Package tui is the interactive page: an add form, a search field and the
// list container, all feeding events to a single widget listener.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todofilter/internal/widget"
)

type focus int

const (
	focusAdd focus = iota
	focusSearch
	focusList
)

func (f focus) String() string {
	switch f {
	case focusSearch:
		return "search"
	case focusList:
		return "list"
	default:
		return "add"
	}
}

// Layout of the content lines inside the panel.
const (
	lineAdd    = 3
	lineSearch = 4
	rowsTop    = 6
	footer     = 3 // blank, status, help
	chrome     = 2 // panel top and bottom border
)

type keyMap struct {
	Next, Prev      key.Binding
	Up, Down        key.Binding
	Delete          key.Binding
	Add, Search     key.Binding
	Submit, Leave   key.Binding
	Quit, ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add item")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Options tune the page.
type Options struct {
	Seed              []string
	Mouse             bool
	CharLimit         int
	AddPlaceholder    string
	SearchPlaceholder string
	Logger            *log.Logger
}

// Model implements tea.Model on top of a ListWidget.
type Model struct {
	w      *widget.ListWidget
	add    textinput.Model
	search textinput.Model
	focus  focus
	keys   keyMap
	help   help.Model
	logger *log.Logger

	cursor int // index into displayed rows
	offset int // first displayed row on screen

	width, height int
}

// New builds the page around w and feeds the seed items through the add form.
func New(w *widget.ListWidget, opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		w:      w,
		keys:   defaultKeys(),
		help:   help.New(),
		logger: logger,
	}

	m.add = textinput.New()
	m.add.Prompt = "> "
	m.add.Placeholder = opt.AddPlaceholder
	m.add.CharLimit = opt.CharLimit

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = opt.SearchPlaceholder
	m.search.CharLimit = opt.CharLimit

	for _, s := range opt.Seed {
		w.Handle(widget.Event{Type: widget.EventSubmit, Target: widget.Element{Role: widget.RoleForm}, Value: s})
	}
	if len(opt.Seed) > 0 {
		logger.Info("seeded", "requested", len(opt.Seed), "items", w.Len())
	}

	m.add.Focus()
	return m
}

// Run starts the page and blocks until the user quits.
func Run(w *widget.ListWidget, opt Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(w, opt), popts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Widget exposes the list the page drives.
func (m Model) Widget() *widget.ListWidget { return m.w }
