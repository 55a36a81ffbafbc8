package widget

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todofilter/internal/model"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestWidget(texts ...string) *ListWidget {
	w := New(WithIDFunc(seqIDs()))
	for _, s := range texts {
		w.Add(s)
	}
	return w
}

func texts(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestAddTrimsAndRejectsBlank(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		created bool
	}{
		{"Buy milk", "Buy milk", true},
		{"  padded  ", "padded", true},
		{"\tTab\n", "Tab", true},
		{"", "", false},
		{"   ", "", false},
		{"\n\t ", "", false},
		{" a b ", "a b", true},
	}
	for _, tc := range cases {
		w := newTestWidget()
		it, ok := w.Add(tc.in)
		require.Equal(t, tc.created, ok, "Add(%q)", tc.in)
		if !tc.created {
			require.Equal(t, 0, w.Len(), "Add(%q)", tc.in)
			continue
		}
		require.Equal(t, 1, w.Len())
		require.Equal(t, tc.want, it.Text)
		require.Equal(t, tc.want, w.Items()[0].Text)
	}
}

func TestAddAppendsVisible(t *testing.T) {
	w := newTestWidget("first")
	before := w.Len()

	it, ok := w.Add("Buy milk")
	require.True(t, ok)
	require.Equal(t, before+1, w.Len())
	require.True(t, it.Visible)

	items := w.Items()
	require.Equal(t, "Buy milk", items[len(items)-1].Text)
	require.True(t, items[len(items)-1].Visible)
}

func TestAddKeepsDuplicates(t *testing.T) {
	w := newTestWidget("x", "x")
	require.Equal(t, []string{"x", "x"}, texts(w.Items()))
	items := w.Items()
	require.NotEqual(t, items[0].ID, items[1].ID)
}

func TestDeleteRemovesOnlyThatItem(t *testing.T) {
	w := newTestWidget("a", "b", "c", "d")
	target := w.Items()[2]

	require.True(t, w.Delete(target.ID))
	require.Equal(t, 3, w.Len())
	if diff := cmp.Diff([]string{"a", "b", "d"}, texts(w.Items())); diff != "" {
		t.Fatalf("order after delete (-want +got):\n%s", diff)
	}

	require.False(t, w.Delete(target.ID), "second delete of same item")
	require.Equal(t, 3, w.Len())
}

func TestDeleteAtBounds(t *testing.T) {
	w := newTestWidget("a", "b")
	require.False(t, w.DeleteAt(-1))
	require.False(t, w.DeleteAt(2))
	require.True(t, w.DeleteAt(0))
	require.Equal(t, []string{"b"}, texts(w.Items()))
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	w := newTestWidget("Walk DOG", "Read book", "hotdog stand", "Dogma")
	terms := []string{"dog", "o", "book", "zzz", "walk d", "", "g s"}
	for _, term := range terms {
		w.Filter(term)
		for _, it := range w.Items() {
			want := strings.Contains(strings.ToLower(it.Text), term)
			require.Equal(t, want, it.Visible, "term %q item %q", term, it.Text)
		}
		require.Equal(t, term, w.Term())
	}
}

func TestFilterEmptyShowsAll(t *testing.T) {
	w := newTestWidget("a", "b", "c")
	w.Filter("zzz")
	require.Equal(t, 0, w.VisibleCount())

	w.Filter("")
	require.Equal(t, 3, w.VisibleCount())
	for _, it := range w.Items() {
		require.True(t, it.Visible)
	}
}

func TestFilterIdempotent(t *testing.T) {
	w := newTestWidget("alpha", "beta", "gamma")
	w.Filter("a")
	once := w.Items()
	w.Filter("a")
	if diff := cmp.Diff(once, w.Items()); diff != "" {
		t.Fatalf("second filter changed state (-once +twice):\n%s", diff)
	}
}

func TestFilterDoesNotReorder(t *testing.T) {
	w := newTestWidget("c", "b", "a")
	w.Filter("b")
	require.Equal(t, []string{"c", "b", "a"}, texts(w.Items()))
}

func TestNormalizeTerm(t *testing.T) {
	require.Equal(t, "dog", NormalizeTerm("  DoG "))
	require.Equal(t, "", NormalizeTerm("   "))
}

func TestScenarioWalkDogReadBook(t *testing.T) {
	w := newTestWidget()
	w.Add("Walk dog")
	w.Add("Read book")

	w.Filter("dog")
	items := w.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Walk dog", items[0].Text)
	require.True(t, items[0].Visible)
	require.Equal(t, "Read book", items[1].Text)
	require.False(t, items[1].Visible)

	w.Filter("")
	for _, it := range w.Items() {
		require.True(t, it.Visible)
	}

	require.True(t, w.Delete(w.Items()[0].ID))
	require.Equal(t, []string{"Read book"}, texts(w.Items()))
}

func TestItemsReturnsCopy(t *testing.T) {
	w := newTestWidget("a")
	items := w.Items()
	items[0].Text = "mutated"
	require.Equal(t, "a", w.Items()[0].Text)
}

func TestClosest(t *testing.T) {
	w := newTestWidget("Walk dog", "Read book")
	got, ok := w.Closest("raed book")
	require.True(t, ok)
	require.Equal(t, "Read book", got)

	_, ok = w.Closest("")
	require.False(t, ok)
	_, ok = newTestWidget().Closest("x")
	require.False(t, ok)
}
