package stack_test

import (
	"fmt"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

func ExampleStack_Insert() {
	s := stack.New([]dims.Dimension{{Name: "time"}})

	c1, _ := view.NewCurve([]float64{0, 1}, []float64{0, 1}, view.Axes{Label: "signal", XLabel: "x", YLabel: "y"})
	c2, _ := view.NewCurve([]float64{0, 1}, []float64{1, 0}, view.Axes{Label: "baseline", XLabel: "x", YLabel: "y"})

	_ = s.Insert(dims.Key{1.0}, c1)
	_ = s.Insert(dims.Key{1.0}, c2) // same key: merges into an overlay

	v, _ := s.Get(dims.Key{1.0})
	fmt.Println(s.Len(), v.Kind())
	// Output: 1 Overlay
}

func ExampleMul() {
	d := []dims.Dimension{{Name: "trial"}}

	a := stack.New(d)
	b := stack.New(d)
	c, _ := view.NewCurve([]float64{0, 1}, []float64{0, 1}, view.Axes{XLabel: "x", YLabel: "y"})
	_ = a.Insert(dims.Key{1}, c)
	_ = a.Insert(dims.Key{2}, c)
	_ = b.Insert(dims.Key{2}, c)
	_ = b.Insert(dims.Key{3}, c)

	m, _ := stack.Mul(a, b)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		fmt.Println(k, v.(*view.Overlay).Len())
	}
	// Output:
	// [1] 2
	// [2] 2
	// [3] 2
}

func ExampleStack_Sample() {
	s := stack.New([]dims.Dimension{{Name: "time"}, {Name: "trial"}})
	for _, time := range []float64{0, 1, 2} {
		for _, trial := range []int{1, 2} {
			c, _ := view.NewCurve(
				[]float64{0, 1},
				[]float64{time * float64(trial), time * float64(trial)},
				view.Axes{XLabel: "x", YLabel: "y"})
			_ = s.Insert(dims.Key{time, trial}, c)
		}
	}

	outs, _ := s.Sample([]any{0.0}, stack.SampleOptions{Axis: "time", GroupBy: []string{"trial"}})
	o, _ := outs[0].Get(dims.Key{})
	overlay := o.(*view.Overlay)
	for i := 0; i < overlay.Len(); i++ {
		c := overlay.At(i).(*view.Curve)
		fmt.Printf("trial %s:", c.Meta.Label)
		for j := 0; j < c.Len(); j++ {
			fmt.Printf(" (%g, %g)", c.At(j).X, c.At(j).Y)
		}
		fmt.Println()
	}
	// Output:
	// trial 1: (0, 0) (1, 1) (2, 2)
	// trial 2: (0, 0) (1, 2) (2, 4)
}
