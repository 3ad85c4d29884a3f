package view

import (
	"fmt"
	"math"
)

// Point is one (x, y) sample of a curve.
type Point struct {
	X, Y float64
}

// Curve is an ordered sequence of (x, y) points. A cyclic curve carries
// the periodicity with which it wraps.
type Curve struct {
	Meta   Axes
	Points []Point

	// CyclicRange is the period of a cyclic curve, nil otherwise.
	CyclicRange *float64
}

// NewCurve builds a curve from parallel x and y sequences.
func NewCurve(xs, ys []float64, meta Axes) (*Curve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return &Curve{Meta: meta, Points: points}, nil
}

// Kind reports KindCurve.
func (c *Curve) Kind() Kind { return KindCurve }

// Axes returns the curve's labeling metadata.
func (c *Curve) Axes() *Axes { return &c.Meta }

// Len reports the number of points.
func (c *Curve) Len() int { return len(c.Points) }

// At returns the i-th point in order.
func (c *Curve) At(i int) Point { return c.Points[i] }

// XLim reports the x span of the points. Empty curves report (0, 0).
func (c *Curve) XLim() Lim { return c.lim(func(p Point) float64 { return p.X }) }

// YLim reports the y span of the points. Empty curves report (0, 0).
func (c *Curve) YLim() Lim { return c.lim(func(p Point) float64 { return p.Y }) }

func (c *Curve) lim(coord func(Point) float64) Lim {
	if len(c.Points) == 0 {
		return Lim{}
	}
	l := Lim{Min: coord(c.Points[0]), Max: coord(c.Points[0])}
	for _, p := range c.Points[1:] {
		l = FindMinMax(l, Lim{Min: coord(p), Max: coord(p)})
	}
	return l
}

// Empty returns a zero-content curve.
func (c *Curve) Empty() View { return &Curve{} }

// Sample extracts the y value at the given x coordinate. The probe
// must be numeric; the nearest stored x wins, with exact matches
// preferred. Sampling an empty curve is an error.
func (c *Curve) Sample(probe any) (float64, error) {
	x, ok := toFloat(probe)
	if !ok {
		return 0, fmt.Errorf("%w: curve probe must be numeric, got %T", ErrBadProbe, probe)
	}
	if len(c.Points) == 0 {
		return 0, fmt.Errorf("%w: empty curve", ErrOutOfRange)
	}
	best := c.Points[0]
	bestDist := math.Abs(best.X - x)
	for _, p := range c.Points[1:] {
		if d := math.Abs(p.X - x); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best.Y, nil
}
