package stack

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

var (
	// ErrContentType is returned by [Stack.Insert] when a value's kind
	// conflicts with the stack's content kind, fixed by the first
	// insertion.
	ErrContentType = errors.New("value kind conflicts with the stack's content kind")

	// ErrNilView is returned by [Stack.Insert] for a nil value.
	ErrNilView = errors.New("cannot insert a nil view")

	// ErrDimensionMismatch is returned by [Mul] when neither stack's
	// dimension-name set contains the other's.
	ErrDimensionMismatch = errors.New("one set of keys needs to be a strict subset of the other")

	// ErrAxisRequired is returned by [Stack.Sample] when no axis was
	// given for a stack with more than one dimension.
	ErrAxisRequired = errors.New("axis must be supplied for a multi-dimensional stack")

	// ErrAxisGrouped is returned by [Stack.Sample] when the sampling
	// axis is also listed in the group-by dimensions.
	ErrAxisGrouped = errors.New("axis dimension cannot also be grouped")

	// ErrAxisNotNumeric is returned by [Stack.Sample] when an axis
	// value cannot serve as a curve x coordinate.
	ErrAxisNotNumeric = errors.New("axis values must be numeric to sample")

	// ErrNotSampleable is returned by [Stack.Sample] when a stored view
	// does not support scalar extraction.
	ErrNotSampleable = errors.New("view does not support sampling")

	// ErrRaggedOverlay is returned by [Stack.Split] when overlay
	// entries disagree on member count.
	ErrRaggedOverlay = errors.New("overlay entries have differing member counts")

	// ErrHeadingSet is returned by [TableStack.HeadingTypes] when two
	// tables disagree on the set of headings.
	ErrHeadingSet = errors.New("tables disagree on the set of headings")

	// ErrTableMerge is returned by [TableStack.Insert] when the key is
	// already present; a merged entry would be an overlay, not a table.
	ErrTableMerge = errors.New("tables cannot merge into overlays")

	// ErrHeadingNotSampleable is returned by [TableStack.Sample] for a
	// heading whose tracked scalar type is not numeric.
	ErrHeadingNotSampleable = errors.New("heading is not consistently numeric across tables")
)

// DefaultTitleFormat is the title template applied when no other is
// configured: the item's label and kind on one line, then the key's
// dimension/value pairs.
const DefaultTitleFormat = "{label} {type}\n{dims}"

// Option configures a stack at creation.
type Option func(*Stack)

// WithTitle sets the title template. The placeholders {label}, {type},
// and {dims} expand to the item's label, the item's kind, and the
// rendered dimension/value pairs of the key.
func WithTitle(format string) Option {
	return func(s *Stack) { s.titleFormat = format }
}

// WithStyle sets the shared style tag propagated to every inserted
// item.
func WithStyle(tag string) Option {
	return func(s *Stack) { s.style = tag }
}

// Item is one key/value entry of a stack.
type Item struct {
	Key  dims.Key
	View view.View
}

// Stack is an ordered, homogeneous mapping from keys to views. The
// zero value is not usable; use [New]. Stacks are not safe for
// concurrent use.
type Stack struct {
	dimensions  []dims.Dimension
	titleFormat string
	style       string

	// kind is the content kind fixed by the first insertion.
	kind    view.Kind
	kindSet bool

	keys    []dims.Key           // insertion order
	entries map[string]view.View // canonical key → value
}

// New creates an empty stack over the given dimension list. The
// dimension list and options are fixed for the stack's lifetime.
func New(dimensions []dims.Dimension, opts ...Option) *Stack {
	s := &Stack{
		dimensions:  slices.Clone(dimensions),
		titleFormat: DefaultTitleFormat,
		entries:     make(map[string]view.View),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert adds v under key, or composes it into the existing entry via
// the overlay operator when the key is already present. It validates
// key arity and content-kind homogeneity, propagates the stack's style
// tag, and assigns a freshly rendered title to the item (and to every
// overlay member). Failed insertions leave the stack unmodified.
func (s *Stack) Insert(key dims.Key, v view.View) error {
	return s.add(key, v, true)
}

// Put adds v under key, replacing any existing entry instead of
// composing. All other insertion invariants apply.
func (s *Stack) Put(key dims.Key, v view.View) error {
	return s.add(key, v, false)
}

func (s *Stack) add(key dims.Key, v view.View, merge bool) error {
	if v == nil {
		return ErrNilView
	}
	if err := key.Validate(s.dimensions); err != nil {
		return err
	}
	if s.kindSet && v.Kind() != s.kind {
		return fmt.Errorf("%w: stack holds %s, got %s", ErrContentType, s.kind, v.Kind())
	}

	canon := key.Canonical()
	if old, exists := s.entries[canon]; exists && merge {
		merged, err := view.Mul(old, v)
		if err != nil {
			return err
		}
		s.decorate(key, merged)
		s.entries[canon] = merged
		s.setKind(v)
		return nil
	}

	s.decorate(key, v)
	if _, exists := s.entries[canon]; !exists {
		s.keys = append(s.keys, key.Clone())
	}
	s.entries[canon] = v
	s.setKind(v)
	return nil
}

func (s *Stack) setKind(v view.View) {
	if !s.kindSet {
		s.kind = v.Kind()
		s.kindSet = true
	}
}

// decorate applies style propagation and title assignment to v.
func (s *Stack) decorate(key dims.Key, v view.View) {
	if s.style != "" {
		v.Axes().Style = s.style
		if o, ok := v.(*view.Overlay); ok {
			for _, m := range o.Layers() {
				m.Axes().Style = s.style
			}
		}
	}
	title := s.renderTitle(key, v)
	v.Axes().Title = title
	if o, ok := v.(*view.Overlay); ok {
		for _, m := range o.Layers() {
			m.Axes().Title = title
		}
	}
}

func (s *Stack) renderTitle(key dims.Key, v view.View) string {
	r := strings.NewReplacer(
		"{label}", v.Axes().Label,
		"{type}", v.Kind().String(),
		"{dims}", dims.PrettyPairs(s.dimensions, key, 2),
	)
	return strings.TrimSpace(r.Replace(s.titleFormat))
}

// Get returns the entry stored under the exact key.
func (s *Stack) Get(key dims.Key) (view.View, bool) {
	v, ok := s.entries[key.Canonical()]
	return v, ok
}

// Contains reports whether the exact key is present.
func (s *Stack) Contains(key dims.Key) bool {
	_, ok := s.entries[key.Canonical()]
	return ok
}

// GetOrEmpty returns the entry under key, or the stack's empty element
// when the key is absent.
func (s *Stack) GetOrEmpty(key dims.Key) view.View {
	if v, ok := s.Get(key); ok {
		return v
	}
	return s.EmptyElement()
}

// EmptyElement returns a zero-content placeholder of the stack's
// derived content type, used to fill missing keys during composition.
func (s *Stack) EmptyElement() view.View {
	if len(s.keys) > 0 {
		return s.entries[s.keys[0].Canonical()].Empty()
	}
	if s.kindSet {
		switch s.kind {
		case view.KindCurve:
			return &view.Curve{}
		case view.KindHistogram:
			return &view.Histogram{}
		case view.KindTable:
			return (&view.Table{}).Empty()
		case view.KindAnnotation:
			return &view.Annotation{}
		}
	}
	return &view.Overlay{}
}

// Len reports the number of entries.
func (s *Stack) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order.
func (s *Stack) Keys() []dims.Key {
	out := make([]dims.Key, len(s.keys))
	for i, k := range s.keys {
		out[i] = k.Clone()
	}
	return out
}

// SortedKeys returns the keys in component-wise sorted order.
func (s *Stack) SortedKeys() []dims.Key {
	out := s.Keys()
	slices.SortStableFunc(out, dims.Compare)
	return out
}

// Items returns the entries in insertion order.
func (s *Stack) Items() []Item {
	out := make([]Item, len(s.keys))
	for i, k := range s.keys {
		out[i] = Item{Key: k.Clone(), View: s.entries[k.Canonical()]}
	}
	return out
}

// First returns the first entry in insertion order, or nil for an
// empty stack.
func (s *Stack) First() view.View {
	if len(s.keys) == 0 {
		return nil
	}
	return s.entries[s.keys[0].Canonical()]
}

// Dimensions returns a copy of the stack's dimension list.
func (s *Stack) Dimensions() []dims.Dimension { return slices.Clone(s.dimensions) }

// DimensionNames returns the dimension names in order.
func (s *Stack) DimensionNames() []string { return dims.Names(s.dimensions) }

// Style returns the stack's shared style tag.
func (s *Stack) Style() string { return s.style }

// TitleFormat returns the stack's title template.
func (s *Stack) TitleFormat() string { return s.titleFormat }

// Type reports the stack's derived content kind: the kind of the first
// stored entry, which may be KindOverlay after insert-or-merge. An
// empty stack reports the kind fixed by its configuration, defaulting
// to KindOverlay.
func (s *Stack) Type() view.Kind {
	if first := s.First(); first != nil {
		return first.Kind()
	}
	if s.kindSet {
		return s.kind
	}
	return view.KindOverlay
}

// XLim folds the x-limits of every entry, seeded by the first in
// insertion order. Empty stacks report (0, 0).
func (s *Stack) XLim() view.Lim { return s.lim(view.View.XLim) }

// YLim folds the y-limits of every entry, seeded by the first in
// insertion order. Empty stacks report (0, 0).
func (s *Stack) YLim() view.Lim { return s.lim(view.View.YLim) }

func (s *Stack) lim(get func(view.View) view.Lim) view.Lim {
	var l view.Lim
	for i, k := range s.keys {
		v := s.entries[k.Canonical()]
		if i == 0 {
			l = get(v)
			continue
		}
		l = view.FindMinMax(l, get(v))
	}
	return l
}

// LBRT reports the stack's combined (left, bottom, right, top)
// bounding box.
func (s *Stack) LBRT() view.LBRT { return view.MakeLBRT(s.XLim(), s.YLim()) }

// clone returns a stack with the same configuration. withEntries
// copies the key list and shares the stored views.
func (s *Stack) clone(withEntries bool) *Stack {
	out := New(s.dimensions, WithTitle(s.titleFormat), WithStyle(s.style))
	out.kind = s.kind
	out.kindSet = s.kindSet
	if withEntries {
		for _, k := range s.keys {
			out.keys = append(out.keys, k.Clone())
			out.entries[k.Canonical()] = s.entries[k.Canonical()]
		}
	}
	return out
}

// rawSet stores v under key without decoration or merging, preserving
// the view's existing title and style. Used when regrouping existing,
// already-decorated members.
func (s *Stack) rawSet(key dims.Key, v view.View) {
	canon := key.Canonical()
	if _, exists := s.entries[canon]; !exists {
		s.keys = append(s.keys, key.Clone())
	}
	s.entries[canon] = v
	s.setKind(v)
}
