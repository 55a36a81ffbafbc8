package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Hint                                lipgloss.Style

	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string

	SymDelete, SymCursor, SymFail string
	BarFull, BarEmpty                    string
}

var (
	current     Theme
	currentName = "classic"
)

func init() { SetTheme(currentName) }

func SetTheme(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	s := renderer.NewStyle
	fg := func(c string) lipgloss.Style { return s().Foreground(lipgloss.Color(c)) }
	switch name {
	case "neon":
		current = Theme{
			Title: fg("13").Bold(true), Muted: fg("8"), Accent: fg("14"),
			Success: fg("10"), Error: fg("9").Bold(true), Pending: fg("11"),
			Selected: fg("14").Bold(true), Hint: s().Faint(true),
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDelete: "✖", SymCursor: "▸", SymFail: "✖",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		plain := s()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: s().Reverse(true), Hint: plain,
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDelete: "x", SymCursor: ">", SymFail: "error:",
			BarFull: "#", BarEmpty: ".",
		}
	default: // classic
		name = "classic"
		current = Theme{
			Title: s().Bold(true), Muted: s().Faint(true), Accent: fg("12"),
			Success: fg("42"), Error: fg("9").Bold(true), Pending: fg("214"),
			Selected: s().Bold(true).Reverse(true), Hint: s().Faint(true),
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDelete: "✖", SymCursor: ">", SymFail: "✖",
			BarFull: "█", BarEmpty: "░",
		}
	}
	currentName = name
}

// Expose what renderers need
func Current() Theme { return current }

func ThemeName() string { return currentName }
