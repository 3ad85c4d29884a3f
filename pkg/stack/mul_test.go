package stack

import (
	"errors"
	"testing"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

func TestMulViewStack(t *testing.T) {
	s := New(testDims())
	_ = s.Insert(dims.Key{0.0, 1}, newCurve(t, "a", []float64{0, 1}, []float64{0, 1}))
	_ = s.Insert(dims.Key{1.0, 1}, newCurve(t, "b", []float64{0, 1}, []float64{2, 3}))

	ref := newCurve(t, "ref", []float64{0, 1}, []float64{5, 5})
	out, err := MulViewStack(ref, s)
	if err != nil {
		t.Fatalf("MulViewStack: %v", err)
	}

	if out.Len() != s.Len() {
		t.Fatalf("len = %d, want %d", out.Len(), s.Len())
	}
	for _, it := range out.Items() {
		o, ok := it.View.(*view.Overlay)
		if !ok || o.Len() != 2 {
			t.Fatalf("entry at %v is not a 2-member overlay", it.Key)
		}
		if o.At(0).Axes().Label != "ref" {
			t.Errorf("leaf operand should come first, got %q", o.At(0).Axes().Label)
		}
	}
	// Operand unmodified.
	if s.Type() != view.KindCurve {
		t.Error("MulViewStack mutated its stack operand")
	}
}

func TestMulEqualDimensions(t *testing.T) {
	a := New(testDims())
	b := New(testDims())
	_ = a.Insert(dims.Key{0.0, 1}, newCurve(t, "a0", []float64{0, 1}, []float64{0, 1}))
	_ = a.Insert(dims.Key{1.0, 1}, newCurve(t, "a1", []float64{0, 1}, []float64{1, 2}))
	_ = b.Insert(dims.Key{1.0, 1}, newCurve(t, "b1", []float64{0, 1}, []float64{5, 6}))
	_ = b.Insert(dims.Key{2.0, 1}, newCurve(t, "b2", []float64{0, 1}, []float64{7, 8}))

	out, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	// Union of keys, sorted.
	keys := out.Keys()
	if len(keys) != 3 {
		t.Fatalf("key count = %d, want 3", len(keys))
	}
	want := []dims.Key{{0.0, 1}, {1.0, 1}, {2.0, 1}}
	for i, k := range keys {
		if dims.Compare(k, want[i]) != 0 {
			t.Errorf("key %d = %v, want %v", i, k, want[i])
		}
	}

	// Shared key overlays both entries; one-sided keys pair with the
	// other side's empty element.
	v, _ := out.Get(dims.Key{1.0, 1})
	if o := v.(*view.Overlay); o.Len() != 2 ||
		o.At(0).Axes().Label != "a1" || o.At(1).Axes().Label != "b1" {
		t.Errorf("shared key overlay wrong: %d members", v.(*view.Overlay).Len())
	}
	v, _ = out.Get(dims.Key{0.0, 1})
	o := v.(*view.Overlay)
	if o.Len() != 2 {
		t.Fatalf("one-sided key members = %d, want 2 (with empty element)", o.Len())
	}
	if c := o.At(1).(*view.Curve); c.Len() != 0 {
		t.Errorf("missing side should contribute an empty curve, got %d points", c.Len())
	}
}

func TestMulEmptyElementLims(t *testing.T) {
	// The empty element's zero limits participate in the fold: a stack
	// whose curves live in [10, 20] gains a 0 bound at one-sided keys.
	a := New(testDims())
	b := New(testDims())
	_ = a.Insert(dims.Key{0.0, 1}, newCurve(t, "a", []float64{10, 20}, []float64{10, 20}))
	_ = b.Insert(dims.Key{1.0, 1}, newCurve(t, "b", []float64{10, 20}, []float64{10, 20}))

	out, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if got := out.XLim(); got != (view.Lim{Min: 0, Max: 20}) {
		t.Errorf("XLim = %+v, want {0 20} (empty element included)", got)
	}
}

func TestMulSubsetDimensions(t *testing.T) {
	full := New(testDims()) // time, trial
	sub := New([]dims.Dimension{{Name: "trial"}})
	_ = full.Insert(dims.Key{0.0, 1}, newCurve(t, "f01", []float64{0, 1}, []float64{0, 1}))
	_ = full.Insert(dims.Key{0.0, 2}, newCurve(t, "f02", []float64{0, 1}, []float64{1, 2}))
	_ = sub.Insert(dims.Key{1}, newCurve(t, "s1", []float64{0, 1}, []float64{9, 9}))

	out, err := Mul(full, sub)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if got := out.DimensionNames(); len(got) != 2 {
		t.Fatalf("result dims = %v, want superset", got)
	}

	// trial=1 keys pair with the subset entry, trial=2 with its empty.
	v, _ := out.Get(dims.Key{0.0, 1})
	if o := v.(*view.Overlay); o.At(1).Axes().Label != "s1" {
		t.Errorf("subset entry not matched by projection")
	}
	v, _ = out.Get(dims.Key{0.0, 2})
	if c := v.(*view.Overlay).At(1).(*view.Curve); c.Len() != 0 {
		t.Errorf("unmatched projection should pair with empty element")
	}
}

func TestMulDisjointDimensions(t *testing.T) {
	a := New([]dims.Dimension{{Name: "time"}})
	b := New([]dims.Dimension{{Name: "phase"}})
	_ = a.Insert(dims.Key{0.0}, newCurve(t, "a", []float64{0}, []float64{0}))
	_ = b.Insert(dims.Key{0.0}, newCurve(t, "b", []float64{0}, []float64{0}))

	if _, err := Mul(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("disjoint dims: got %v, want ErrDimensionMismatch", err)
	}
}

func TestCompose(t *testing.T) {
	s := New(testDims())
	_ = s.Insert(dims.Key{0.0, 1}, newCurve(t, "a", []float64{0}, []float64{0}))
	leaf := newCurve(t, "b", []float64{0}, []float64{1})

	if got, err := Compose(leaf, leaf); err != nil || got.(view.View).Kind() != view.KindOverlay {
		t.Errorf("Compose(view, view) = %T, %v", got, err)
	}
	if got, err := Compose(leaf, s); err != nil || got.(*Stack).Len() != 1 {
		t.Errorf("Compose(view, stack) failed: %v", err)
	}
	if got, err := Compose(s, leaf); err != nil || got.(*Stack).Len() != 1 {
		t.Errorf("Compose(stack, view) failed: %v", err)
	}
	if got, err := Compose(s, s); err != nil || got.(*Stack).Len() != 1 {
		t.Errorf("Compose(stack, stack) failed: %v", err)
	}
	if _, err := Compose(leaf, 42); !errors.Is(err, view.ErrCannotOverlay) {
		t.Errorf("Compose(view, int): got %v, want ErrCannotOverlay", err)
	}
}
