package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var renderer = lipgloss.NewRenderer(os.Stdout)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		renderer.SetColorProfile(termenv.Ascii)
	case force:
		renderer.SetColorProfile(termenv.ANSI256)
	}
	SetTheme(currentName)
}

func Ffail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}
