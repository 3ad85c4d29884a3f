package view

import (
	"fmt"
	"math"
)

// binTolerance is the relative tolerance used when checking that bin
// centers are uniformly spaced.
const binTolerance = 1e-9

// Histogram holds binned values. Edges always has one more element
// than Values after construction.
type Histogram struct {
	Meta   Axes
	Values []float64
	Edges  []float64
}

// NewHistogram builds a histogram from values and bin boundaries.
//
// When len(edges) == len(values)+1, edges are taken as-is. When
// len(edges) == len(values), they are treated as bin centers and
// converted to left/right edges by subtracting/adding half the uniform
// bin width; non-uniform center spacing is ErrNonUniformBins. Any
// other edge count is ErrBinCount.
func NewHistogram(values, edges []float64, meta Axes) (*Histogram, error) {
	switch len(edges) {
	case len(values) + 1:
		// Already edges.
	case len(values):
		converted, err := centersToEdges(edges)
		if err != nil {
			return nil, err
		}
		edges = converted
	default:
		return nil, fmt.Errorf("%w: %d values, %d edges", ErrBinCount, len(values), len(edges))
	}
	return &Histogram{Meta: meta, Values: append([]float64(nil), values...), Edges: edges}, nil
}

func centersToEdges(centers []float64) ([]float64, error) {
	if len(centers) == 0 {
		return []float64{}, fmt.Errorf("%w: no centers", ErrBinCount)
	}
	if len(centers) == 1 {
		return []float64{centers[0] - 0.5, centers[0] + 0.5}, nil
	}
	width := centers[1] - centers[0]
	for i := 1; i < len(centers)-1; i++ {
		step := centers[i+1] - centers[i]
		if math.Abs(step-width) > binTolerance*math.Max(math.Abs(step), math.Abs(width)) {
			return nil, fmt.Errorf("%w: spacing %g then %g", ErrNonUniformBins, width, step)
		}
	}
	edges := make([]float64, len(centers)+1)
	for i, c := range centers {
		edges[i] = c - width/2
	}
	edges[len(centers)] = centers[len(centers)-1] + width/2
	return edges, nil
}

// Kind reports KindHistogram.
func (h *Histogram) Kind() Kind { return KindHistogram }

// Axes returns the histogram's labeling metadata.
func (h *Histogram) Axes() *Axes { return &h.Meta }

// XLim reports the span of the bin edges.
func (h *Histogram) XLim() Lim {
	if len(h.Edges) == 0 {
		return Lim{}
	}
	return Lim{Min: h.Edges[0], Max: h.Edges[len(h.Edges)-1]}
}

// YLim reports the span of the bin values.
func (h *Histogram) YLim() Lim {
	if len(h.Values) == 0 {
		return Lim{}
	}
	l := Lim{Min: h.Values[0], Max: h.Values[0]}
	for _, v := range h.Values[1:] {
		l = FindMinMax(l, Lim{Min: v, Max: v})
	}
	return l
}

// Empty returns a zero-content histogram.
func (h *Histogram) Empty() View { return &Histogram{} }

// Sample extracts the value of the bin containing the x probe. Probes
// outside the edge span are ErrOutOfRange. The rightmost edge is
// inclusive.
func (h *Histogram) Sample(probe any) (float64, error) {
	x, ok := toFloat(probe)
	if !ok {
		return 0, fmt.Errorf("%w: histogram probe must be numeric, got %T", ErrBadProbe, probe)
	}
	for i := range h.Values {
		if x >= h.Edges[i] && (x < h.Edges[i+1] || (i == len(h.Values)-1 && x == h.Edges[i+1])) {
			return h.Values[i], nil
		}
	}
	return 0, fmt.Errorf("%w: %g outside histogram edges", ErrOutOfRange, x)
}
