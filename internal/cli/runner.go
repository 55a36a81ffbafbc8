package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todofilter/internal/config"
	"github.com/idilsaglam/todofilter/internal/logging"
	"github.com/idilsaglam/todofilter/internal/script"
	"github.com/idilsaglam/todofilter/internal/tui"
	"github.com/idilsaglam/todofilter/internal/ui"
	"github.com/idilsaglam/todofilter/internal/widget"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Options tune output behavior from root flags.
type Options struct {
	Group      bool   // print displayed and hidden rows in separate sections
	ConfigPath string // overrides TODO_CONFIG
	Theme      string // overrides ui.theme
	NoColor    bool
	ForceColor bool

	Out, Err io.Writer
}

// env is what every subcommand runs with.
type env struct {
	opt    Options
	cfg    config.Config
	logger *logging.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0
	case "version":
		fmt.Fprintln(opt.Out, "todo", Version)
		return 0
	}

	e, code := setup(opt)
	if code != 0 {
		return code
	}
	defer e.logger.Close()

	switch cmd {
	case "run":
		return e.doRun(a)

	case "filter":
		if len(a) == 0 {
			ui.Ffail(opt.Err, "usage: todo filter <term> <item...>")
			return 2
		}
		return e.doFilter(a[0], a[1:])

	case "replay":
		if len(a) != 1 {
			ui.Ffail(opt.Err, "usage: todo replay <script.json>")
			return 2
		}
		return e.doReplay(a[0])
	}

	ui.Ffail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func setup(opt Options) (*env, int) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		ui.Ffail(opt.Err, "config: "+err.Error())
		return nil, 1
	}
	if opt.Theme != "" {
		cfg.UI.Theme = opt.Theme
	}
	switch {
	case opt.NoColor:
		cfg.UI.Color = config.ColorNever
	case opt.ForceColor:
		cfg.UI.Color = config.ColorAlways
	}
	ui.SetColorForcing(cfg.UI.Color == config.ColorAlways, cfg.UI.Color == config.ColorNever)
	ui.SetTheme(cfg.UI.Theme)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		ui.Ffail(opt.Err, "log: "+err.Error())
		return nil, 1
	}
	logger.Debug("config loaded", "theme", ui.ThemeName(), "color", cfg.UI.Color)
	return &env{opt: opt, cfg: cfg, logger: logger}, 0
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a searchable to-do list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  run [item...]            Open the interactive list, optionally with items
  filter <term> <item...>  Print the items that contain term
  replay <script.json>     Replay recorded events and print the result
  version                  Print the version

Flags:
  -config <path>   Config file (default $TODO_CONFIG or <user config dir>/todo/config.toml)
  -theme <name>    classic, neon or mono
  -color           Force colors
  -no-color        Disable colors
  -group           Show hidden items in their own section

Examples:
  todo run "Walk dog" "Read book"
  todo filter dog "Walk dog" "Read book"
  todo replay session.json
`)
}

// -------------- subcommand impls ----------------

func (e *env) doRun(seed []string) int {
	w := widget.New(widget.WithLogger(e.logger.Logger))
	err := tui.Run(w, tui.Options{
		Seed:              seed,
		Mouse:             e.cfg.UI.Mouse,
		CharLimit:         e.cfg.UI.CharLimit,
		AddPlaceholder:    e.cfg.UI.AddPlaceholder,
		SearchPlaceholder: e.cfg.UI.SearchPlaceholder,
		Logger:            e.logger.Logger,
	})
	if err != nil {
		e.logger.Error("tui failed", "err", err)
		ui.Ffail(e.opt.Err, "tui: "+err.Error())
		return 1
	}
	e.logger.Info("session closed", "items", w.Len())
	return 0
}

func (e *env) doFilter(term string, items []string) int {
	w := widget.New(widget.WithLogger(e.logger.Logger))
	for _, it := range items {
		w.Handle(widget.Event{Type: widget.EventSubmit, Target: widget.Element{Role: widget.RoleForm}, Value: it})
	}
	w.Handle(widget.Event{Type: widget.EventKeyUp, Target: widget.Element{Role: widget.RoleSearch}, Value: term})
	e.print(w)
	return 0
}

func (e *env) doReplay(path string) int {
	steps, err := script.Load(path)
	if err != nil {
		e.logger.Error("load script", "path", path, "err", err)
		ui.Ffail(e.opt.Err, "replay: "+err.Error())
		return 1
	}
	w := widget.New(widget.WithLogger(e.logger.Logger))
	changed := script.Replay(w, steps)
	e.logger.Info("replayed", "path", path, "steps", len(steps), "changed", changed)
	e.print(w)
	return 0
}

// -------------- rendering helpers --------------

func (e *env) print(w *widget.ListWidget) {
	t := ui.Current()
	shown, total := w.VisibleCount(), w.Len()

	var lines []string
	lines = append(lines, ui.Header(shown, total))
	lines = append(lines, t.Muted.Render(ui.MatchBar(shown, total, 28)))
	if term := w.Term(); term != "" {
		lines = append(lines, t.Muted.Render(fmt.Sprintf("search: %q", term)))
	}
	lines = append(lines, "")

	rows := w.Rows()
	if e.opt.Group {
		lines = append(lines, groupLines(rows)...)
	} else {
		lines = append(lines, flatLines(rows)...)
	}
	if shown == 0 && total > 0 {
		if closest, ok := w.Closest(w.Term()); ok {
			lines = append(lines, "", t.Hint.Render(fmt.Sprintf("closest: %q", closest)))
		}
	}
	ui.Fpanel(e.opt.Out, lines)
}

func flatLines(rows []widget.Row) []string {
	return ui.RowLines(rows, -1, 80)
}

func groupLines(rows []widget.Row) []string {
	t := ui.Current()
	var hidden []string
	for _, r := range rows {
		if r.Hidden {
			hidden = append(hidden, "  "+t.Muted.Render(r.Text))
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Shown"))
	lines = append(lines, flatLines(rows)...)
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Hidden"))
	if len(hidden) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, hidden...)
	}
	return lines
}
