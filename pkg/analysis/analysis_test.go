package analysis

import (
	"errors"
	"testing"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

func testStack(t *testing.T) *stack.Stack {
	t.Helper()
	s := stack.New([]dims.Dimension{{Name: "trial"}})
	c, err := view.NewCurve([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 4}, view.Axes{Label: "resp", XLabel: "x", YLabel: "y"})
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	if err := s.Insert(dims.Key{1}, c); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return s
}

func TestApplyKeysPreserved(t *testing.T) {
	s := testStack(t)
	out, err := Apply(s, func(_ dims.Key, v view.View) (view.View, error) {
		c := v.(*view.Curve)
		scaled := make([]view.Point, len(c.Points))
		for i, p := range c.Points {
			scaled[i] = view.Point{X: p.X, Y: 2 * p.Y}
		}
		return &view.Curve{Meta: c.Meta, Points: scaled}, nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Len() != s.Len() {
		t.Fatalf("Len = %d, want %d", out.Len(), s.Len())
	}
	v, ok := out.Get(dims.Key{1})
	if !ok {
		t.Fatal("result lost the input key")
	}
	if got := v.(*view.Curve).At(0).Y; got != 2 {
		t.Fatalf("Y = %g, want 2", got)
	}
	// Input untouched.
	orig, _ := s.Get(dims.Key{1})
	if got := orig.(*view.Curve).At(0).Y; got != 1 {
		t.Fatalf("input mutated: Y = %g", got)
	}
}

func TestApplyAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := Apply(testStack(t), func(dims.Key, view.View) (view.View, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestDescribeCurve(t *testing.T) {
	ts, err := Describe(testStack(t))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if ts.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ts.Len())
	}
	v, _ := ts.Get(dims.Key{1})
	tbl := v.(*view.Table)

	want := map[string]float64{"mean": 2.5, "median": 2.5, "min": 1, "max": 4}
	for heading, expect := range want {
		got, ok := tbl.Value(heading)
		if !ok {
			t.Fatalf("missing heading %q", heading)
		}
		if got.(float64) != expect {
			t.Fatalf("%s = %v, want %g", heading, got, expect)
		}
	}
	if _, ok := tbl.Value("stddev"); !ok {
		t.Fatal("missing heading \"stddev\"")
	}
	if got := tbl.Axes().Label; got != "resp" {
		t.Fatalf("Label = %q, want \"resp\"", got)
	}
}

func TestDescribeHistogram(t *testing.T) {
	s := stack.New([]dims.Dimension{{Name: "trial"}})
	h, err := view.NewHistogram([]float64{2, 4, 6}, []float64{0, 1, 2, 3}, view.Axes{XLabel: "bin", YLabel: "count"})
	if err != nil {
		t.Fatalf("NewHistogram: %v", err)
	}
	if err := s.Insert(dims.Key{1}, h); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	ts, err := Describe(s)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	v, _ := ts.Get(dims.Key{1})
	mean, _ := v.(*view.Table).Value("mean")
	if mean.(float64) != 4 {
		t.Fatalf("mean = %v, want 4", mean)
	}
}

func TestDescribeOverlayPoolsMembers(t *testing.T) {
	s := stack.New([]dims.Dimension{{Name: "trial"}})
	a, _ := view.NewCurve([]float64{0, 1}, []float64{1, 1}, view.Axes{XLabel: "x", YLabel: "y"})
	b, _ := view.NewCurve([]float64{0, 1}, []float64{3, 3}, view.Axes{XLabel: "x", YLabel: "y"})
	if err := s.Insert(dims.Key{1}, a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(dims.Key{1}, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	ts, err := Describe(s)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	v, _ := ts.Get(dims.Key{1})
	mean, _ := v.(*view.Table).Value("mean")
	if mean.(float64) != 2 {
		t.Fatalf("mean = %v, want 2", mean)
	}
}

func TestDescribeRejectsTables(t *testing.T) {
	s := stack.New([]dims.Dimension{{Name: "trial"}})
	tbl, err := view.NewTable([]string{"mean"}, []any{1.0}, view.Axes{})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if err := s.Insert(dims.Key{1}, tbl); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := Describe(s); err == nil {
		t.Fatal("Describe of a table stack must fail")
	}
}
