package view

import (
	"fmt"
)

// Overlay is an ordered list of views rendered on one set of axes.
// All non-annotation members share x- and y-labels; the overlay's
// limits are the element-wise min/max across members, seeded by the
// first member's limits.
type Overlay struct {
	Meta   Axes
	layers []View

	// seeded reports whether the overlay has adopted labels from a
	// labeled non-annotation member yet.
	seeded bool
}

// NewOverlay builds an overlay from the given members in order.
func NewOverlay(members ...View) (*Overlay, error) {
	o := &Overlay{}
	for _, m := range members {
		if err := o.Add(m); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Add appends a member. The first labeled non-annotation member seeds
// the overlay's x- and y-labels; later labeled members must match them
// or Add fails with ErrLabelMismatch, leaving the overlay unmodified.
// Annotations and unlabeled members (empty-element placeholders) are
// exempt from the label check but unlabeled members still contribute
// their limits.
func (o *Overlay) Add(v View) error {
	if v == nil {
		return fmt.Errorf("%w: nil view", ErrCannotOverlay)
	}
	if nested, ok := v.(*Overlay); ok {
		// Flatten: overlay members contribute their layers in order.
		for _, m := range nested.layers {
			if err := o.Add(m); err != nil {
				return err
			}
		}
		return nil
	}
	if meta := v.Axes(); v.Kind() != KindAnnotation && (meta.XLabel != "" || meta.YLabel != "") {
		if !o.seeded {
			o.Meta.XLabel = meta.XLabel
			o.Meta.YLabel = meta.YLabel
			if o.Meta.Label == "" {
				o.Meta.Label = meta.Label
			}
			o.seeded = true
		} else if meta.XLabel != o.Meta.XLabel || meta.YLabel != o.Meta.YLabel {
			return fmt.Errorf("%w: have (%q, %q), adding (%q, %q)",
				ErrLabelMismatch, o.Meta.XLabel, o.Meta.YLabel, meta.XLabel, meta.YLabel)
		}
	}
	o.layers = append(o.layers, v)
	return nil
}

// Kind reports KindOverlay.
func (o *Overlay) Kind() Kind { return KindOverlay }

// Axes returns the overlay's labeling metadata.
func (o *Overlay) Axes() *Axes { return &o.Meta }

// Len reports the number of members.
func (o *Overlay) Len() int { return len(o.layers) }

// At returns the i-th member in order.
func (o *Overlay) At(i int) View { return o.layers[i] }

// Layers returns a copy of the member list in order.
func (o *Overlay) Layers() []View { return append([]View(nil), o.layers...) }

// XLim folds the x-limits of all non-annotation members, seeded by the
// first. Empty overlays report (0, 0).
func (o *Overlay) XLim() Lim { return o.lim(View.XLim) }

// YLim folds the y-limits of all non-annotation members, seeded by the
// first. Empty overlays report (0, 0).
func (o *Overlay) YLim() Lim { return o.lim(View.YLim) }

func (o *Overlay) lim(get func(View) Lim) Lim {
	var l Lim
	found := false
	for _, m := range o.layers {
		if m.Kind() == KindAnnotation {
			continue
		}
		if !found {
			l = get(m)
			found = true
			continue
		}
		l = FindMinMax(l, get(m))
	}
	return l
}

// LBRT reports the overlay's combined bounding box.
func (o *Overlay) LBRT() LBRT { return MakeLBRT(o.XLim(), o.YLim()) }

// CyclicRange reports the cyclic period of the first member that
// carries one, nil otherwise.
func (o *Overlay) CyclicRange() *float64 {
	for _, m := range o.layers {
		if c, ok := m.(*Curve); ok && c.CyclicRange != nil {
			return c.CyclicRange
		}
	}
	return nil
}

// Empty returns a zero-content overlay.
func (o *Overlay) Empty() View { return &Overlay{} }
