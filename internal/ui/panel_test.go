package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todofilter/internal/widget"
)

func useMono(t *testing.T) {
	t.Helper()
	SetColorForcing(false, true)
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
}

func TestPanelStringPadsToWidestLine(t *testing.T) {
	useMono(t)
	got := ansi.Strip(PanelString([]string{"ab", "abcd"}))
	want := strings.Join([]string{
		"+------+",
		"| ab   |",
		"| abcd |",
		"+------+",
	}, "\n")
	require.Equal(t, want, got)
}

func TestFpanelWritesTrailingNewline(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer
	Fpanel(&buf, []string{"x"})
	require.True(t, strings.HasSuffix(ansi.Strip(buf.String()), "+\n"))
}

func TestMatchBar(t *testing.T) {
	useMono(t)
	require.Equal(t, "#####..... 1/2 shown", MatchBar(1, 2, 10))
	require.Equal(t, "##### 0/0 shown", MatchBar(0, 0, 1))
	require.Equal(t, "..... 0/3 shown", MatchBar(0, 3, 5))
}

func TestRowLinesSkipHidden(t *testing.T) {
	useMono(t)
	rows := []widget.Row{
		{Text: "Walk dog"},
		{Text: "Read book", Hidden: true},
		{Text: "Feed dog"},
	}
	lines := RowLines(rows, 1, 0)
	require.Len(t, lines, 2)
	require.Equal(t, "  x Walk dog", ansi.Strip(lines[0]))
	require.Equal(t, "> x Feed dog", ansi.Strip(lines[1]))
}

func TestRowLinesEmptyStates(t *testing.T) {
	useMono(t)
	require.Equal(t, []string{"no items"}, RowLines(nil, 0, 0))
	require.Equal(t, []string{"no matches"}, RowLines([]widget.Row{{Text: "a", Hidden: true}}, 0, 0))
}

func TestRowLineTruncates(t *testing.T) {
	useMono(t)
	line := ansi.Strip(RowLine(widget.Row{Text: "a very long todo entry"}, false, 12))
	require.Equal(t, 12, ansi.StringWidth(line))
	require.True(t, strings.HasSuffix(line, "…"))
}

func TestThemeFallsBackToClassic(t *testing.T) {
	SetTheme("unknown")
	require.Equal(t, "classic", ThemeName())
	require.Equal(t, "✖", Current().SymDelete)
}
