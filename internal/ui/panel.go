package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PanelInset is the number of columns between a panel's outer edge and its content.
const PanelInset = 2

// MatchBar renders how many items the current search shows.
func MatchBar(shown, total, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	filled := width
	if total > 0 {
		filled = int(float64(shown) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d shown", bar, shown, total)
}

// PanelString frames lines in a box using the current theme.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	border := func(s string) string { return t.Muted.Render(s) }

	var b strings.Builder
	b.WriteString(border(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR))
	for _, ln := range lines {
		b.WriteString("\n" + border(t.V) + " " + pad(ln) + " " + border(t.V))
	}
	b.WriteString("\n" + border(t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR))
	return b.String()
}

func Fpanel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}
