package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

// Errors returned while loading and building manifests.
var (
	// ErrNoDimensions is returned for manifests without a single
	// [[dimension]] block.
	ErrNoDimensions = errors.New("manifest declares no dimensions")
	// ErrMixedContent is returned by BuildTableStack when the manifest
	// holds curve or histogram blocks.
	ErrMixedContent = errors.New("table manifests cannot hold curves or histograms")
	// ErrNoEntries is returned for manifests without any data block.
	ErrNoEntries = errors.New("manifest holds no entries")
)

// Manifest is a parsed dataset file, ready to be built into a stack.
type Manifest struct {
	Title      string
	Style      string
	Dimensions []dims.Dimension
	Curves     []CurveSpec
	Histograms []HistogramSpec
	Tables     []TableSpec

	path string
}

// CurveSpec is one [[curve]] block.
type CurveSpec struct {
	Key    dims.Key
	Label  string
	XLabel string
	YLabel string
	X      []float64
	Y      []float64
}

// HistogramSpec is one [[histogram]] block. Edges may hold either bin
// boundaries (one more than values) or uniform bin centers (as many as
// values); both forms are accepted the way the histogram constructor
// accepts them.
type HistogramSpec struct {
	Key    dims.Key
	Label  string
	XLabel string
	YLabel string
	Values []float64
	Edges  []float64
}

// TableSpec is one [[table]] block.
type TableSpec struct {
	Key      dims.Key
	Label    string
	Headings []string
	Values   []any
}

// Path reports the file the manifest was loaded from.
func (m *Manifest) Path() string { return m.path }

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := file.manifest()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.path = path
	return m, nil
}

func (f *manifestFile) manifest() (*Manifest, error) {
	if len(f.Dimension) == 0 {
		return nil, ErrNoDimensions
	}
	m := &Manifest{Title: f.Title, Style: f.Style}
	for _, d := range f.Dimension {
		dim := dims.Dimension{Name: d.Name, Cyclic: d.Cyclic}
		if d.Name == "" {
			return nil, fmt.Errorf("dimension %d: empty name", len(m.Dimensions))
		}
		switch len(d.Range) {
		case 0:
		case 2:
			r := [2]float64{d.Range[0], d.Range[1]}
			dim.Range = &r
		default:
			return nil, fmt.Errorf("dimension %q: range needs exactly two bounds, got %d", d.Name, len(d.Range))
		}
		m.Dimensions = append(m.Dimensions, dim)
	}

	arity := len(m.Dimensions)
	for i, c := range f.Curve {
		if len(c.Key) != arity {
			return nil, fmt.Errorf("curve %d: %w: key %v against dimensions %v",
				i, dims.ErrArity, c.Key, dims.Names(m.Dimensions))
		}
		m.Curves = append(m.Curves, CurveSpec{
			Key: dims.Key(c.Key), Label: c.Label, XLabel: c.XLabel, YLabel: c.YLabel,
			X: c.X, Y: c.Y,
		})
	}
	for i, h := range f.Histogram {
		if len(h.Key) != arity {
			return nil, fmt.Errorf("histogram %d: %w: key %v against dimensions %v",
				i, dims.ErrArity, h.Key, dims.Names(m.Dimensions))
		}
		spec := HistogramSpec{
			Key: dims.Key(h.Key), Label: h.Label, XLabel: h.XLabel, YLabel: h.YLabel,
			Values: h.Values, Edges: h.Edges,
		}
		if len(spec.Edges) == 0 {
			spec.Edges = h.Centers
		}
		m.Histograms = append(m.Histograms, spec)
	}
	for i, t := range f.Table {
		if len(t.Key) != arity {
			return nil, fmt.Errorf("table %d: %w: key %v against dimensions %v",
				i, dims.ErrArity, t.Key, dims.Names(m.Dimensions))
		}
		m.Tables = append(m.Tables, TableSpec{
			Key: dims.Key(t.Key), Label: t.Label,
			Headings: t.Row.Headings, Values: t.Row.Values,
		})
	}

	if len(m.Curves)+len(m.Histograms)+len(m.Tables) == 0 {
		return nil, ErrNoEntries
	}
	return m, nil
}

// Build assembles the manifest's entries into a stack. Entries sharing
// a key merge into overlays through the stack's insertion rules; the
// manifest's style tag propagates to every entry. A manifest mixing
// content kinds fails with [stack.ErrContentType].
func (m *Manifest) Build() (*stack.Stack, error) {
	opts := m.stackOptions()
	s := stack.New(m.Dimensions, opts...)
	for i, c := range m.Curves {
		v, err := view.NewCurve(c.X, c.Y, view.Axes{Label: c.Label, XLabel: c.XLabel, YLabel: c.YLabel})
		if err != nil {
			return nil, fmt.Errorf("%s: curve %d: %w", m.path, i, err)
		}
		if err := s.Insert(c.Key, v); err != nil {
			return nil, fmt.Errorf("%s: curve %d: %w", m.path, i, err)
		}
	}
	for i, h := range m.Histograms {
		v, err := view.NewHistogram(h.Values, h.Edges, view.Axes{Label: h.Label, XLabel: h.XLabel, YLabel: h.YLabel})
		if err != nil {
			return nil, fmt.Errorf("%s: histogram %d: %w", m.path, i, err)
		}
		if err := s.Insert(h.Key, v); err != nil {
			return nil, fmt.Errorf("%s: histogram %d: %w", m.path, i, err)
		}
	}
	for i, t := range m.Tables {
		v, err := view.NewTable(t.Headings, t.Values, view.Axes{Label: t.Label})
		if err != nil {
			return nil, fmt.Errorf("%s: table %d: %w", m.path, i, err)
		}
		if err := s.Insert(t.Key, v); err != nil {
			return nil, fmt.Errorf("%s: table %d: %w", m.path, i, err)
		}
	}
	return s, nil
}

// BuildTableStack assembles a table-only manifest into a TableStack.
func (m *Manifest) BuildTableStack() (*stack.TableStack, error) {
	if len(m.Curves) > 0 || len(m.Histograms) > 0 {
		return nil, fmt.Errorf("%s: %w", m.path, ErrMixedContent)
	}
	ts := stack.NewTableStack(m.Dimensions, m.stackOptions()...)
	for i, t := range m.Tables {
		v, err := view.NewTable(t.Headings, t.Values, view.Axes{Label: t.Label})
		if err != nil {
			return nil, fmt.Errorf("%s: table %d: %w", m.path, i, err)
		}
		if err := ts.Insert(t.Key, v); err != nil {
			return nil, fmt.Errorf("%s: table %d: %w", m.path, i, err)
		}
	}
	return ts, nil
}

func (m *Manifest) stackOptions() []stack.Option {
	var opts []stack.Option
	if m.Style != "" {
		opts = append(opts, stack.WithStyle(m.Style))
	}
	return opts
}

type manifestFile struct {
	Title string `toml:"title"`
	Style string `toml:"style"`

	Dimension []struct {
		Name   string    `toml:"name"`
		Cyclic bool      `toml:"cyclic"`
		Range  []float64 `toml:"range"`
	} `toml:"dimension"`

	Curve []struct {
		Key    []any     `toml:"key"`
		Label  string    `toml:"label"`
		XLabel string    `toml:"xlabel"`
		YLabel string    `toml:"ylabel"`
		X      []float64 `toml:"x"`
		Y      []float64 `toml:"y"`
	} `toml:"curve"`

	Histogram []struct {
		Key     []any     `toml:"key"`
		Label   string    `toml:"label"`
		XLabel  string    `toml:"xlabel"`
		YLabel  string    `toml:"ylabel"`
		Values  []float64 `toml:"values"`
		Edges   []float64 `toml:"edges"`
		Centers []float64 `toml:"centers"`
	} `toml:"histogram"`

	Table []struct {
		Key   []any  `toml:"key"`
		Label string `toml:"label"`
		Row   struct {
			Headings []string `toml:"headings"`
			Values   []any    `toml:"values"`
		} `toml:"row"`
	} `toml:"table"`
}
