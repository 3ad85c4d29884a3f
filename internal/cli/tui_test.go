package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

func browseModel(t *testing.T, n int) StackListModel {
	t.Helper()
	s := stack.New([]dims.Dimension{{Name: "trial"}})
	for i := 0; i < n; i++ {
		c, err := view.NewCurve([]float64{0, 1}, []float64{0, float64(i)}, view.Axes{Label: "a", XLabel: "x", YLabel: "y"})
		if err != nil {
			t.Fatalf("NewCurve: %v", err)
		}
		if err := s.Insert(dims.Key{i}, c); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return NewStackListModel("sweep", s)
}

func TestStackListModelNavigation(t *testing.T) {
	m := browseModel(t, 3)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(StackListModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(StackListModel)
	if m.Cursor != 0 {
		t.Fatalf("Cursor = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(StackListModel)
	if m.Cursor != 0 {
		t.Fatalf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestStackListModelQuit(t *testing.T) {
	m := browseModel(t, 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q must quit")
	}
}

func TestStackListModelView(t *testing.T) {
	m := browseModel(t, 2)
	out := m.View()
	if !strings.Contains(out, "sweep") {
		t.Error("view should render the dataset title")
	}
	if !strings.Contains(out, "Curve") {
		t.Error("view should render entry kinds")
	}
}
