package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

func newTable(t *testing.T, headings []string, values []any) *view.Table {
	t.Helper()
	tbl, err := view.NewTable(headings, values, view.Axes{Label: "summary"})
	require.NoError(t, err)
	return tbl
}

func TestTableStackKindLocked(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	err := ts.Insert(dims.Key{0}, newCurve(t, "a", []float64{0}, []float64{0}))
	assert.ErrorIs(t, err, ErrContentType, "content kind is fixed before the first insert")

	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t, []string{"mean"}, []any{1.0})))
	assert.Equal(t, view.KindTable, ts.Type())
}

func TestTableStackInsertRejectsMerge(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t, []string{"mean"}, []any{1.0})))

	err := ts.Insert(dims.Key{0}, newTable(t, []string{"mean"}, []any{2.0}))
	assert.ErrorIs(t, err, ErrTableMerge, "occupied keys fail instead of composing")
	assert.Equal(t, 1, ts.Len())

	v, ok := ts.Get(dims.Key{0})
	require.True(t, ok)
	tbl, ok := v.(*view.Table)
	require.True(t, ok, "stored entry stays a table")
	got, _ := tbl.Value("mean")
	assert.Equal(t, 1.0, got, "failed insert leaves the original entry")

	// Put still replaces explicitly.
	require.NoError(t, ts.Put(dims.Key{0}, newTable(t, []string{"mean"}, []any{2.0})))
	v, _ = ts.Get(dims.Key{0})
	got, _ = v.(*view.Table).Value("mean")
	assert.Equal(t, 2.0, got)
}

func TestHeadingTypes(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t,
		[]string{"mean", "label"}, []any{1.5, "run-a"})))
	require.NoError(t, ts.Insert(dims.Key{1}, newTable(t,
		[]string{"mean", "label"}, []any{2.5, "run-b"})))

	types, err := ts.HeadingTypes()
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, types["mean"])
	assert.Equal(t, TypeString, types["label"])
}

func TestHeadingTypesSoftDegrade(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t,
		[]string{"mean"}, []any{1.5})))
	require.NoError(t, ts.Insert(dims.Key{1}, newTable(t,
		[]string{"mean"}, []any{"n/a"})))

	// Type disagreement is tolerated at insert time and surfaces as
	// TypeUnknown, never as an error.
	types, err := ts.HeadingTypes()
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, types["mean"])

	_, err = ts.Sample([]string{"mean"}, SampleOptions{})
	assert.ErrorIs(t, err, ErrHeadingNotSampleable)
}

func TestHeadingTypesHardFail(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t,
		[]string{"mean"}, []any{1.5})))
	require.NoError(t, ts.Insert(dims.Key{1}, newTable(t,
		[]string{"median"}, []any{2.0})))

	// Unlike a type mismatch, a heading-set mismatch is an error.
	_, err := ts.HeadingTypes()
	assert.ErrorIs(t, err, ErrHeadingSet)

	_, err = ts.Sample([]string{"mean"}, SampleOptions{})
	assert.ErrorIs(t, err, ErrHeadingSet)
}

func TestHeadingTypesOrderInsensitive(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t,
		[]string{"mean", "max"}, []any{1.0, 2.0})))
	require.NoError(t, ts.Insert(dims.Key{1}, newTable(t,
		[]string{"max", "mean"}, []any{4.0, 3.0})))

	// Heading comparison is set semantics: ordering differences are fine.
	types, err := ts.HeadingTypes()
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, types["mean"])
	assert.Equal(t, TypeNumber, types["max"])
}

func TestTableStackSample(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	for i, mean := range []float64{1.0, 4.0, 9.0} {
		require.NoError(t, ts.Insert(dims.Key{i}, newTable(t,
			[]string{"mean", "label"}, []any{mean, "x"})))
	}

	outs, err := ts.Sample([]string{"mean"}, SampleOptions{})
	require.NoError(t, err)
	require.Len(t, outs, 1)

	c, ok := outs[0].First().(*view.Curve)
	require.True(t, ok)
	require.Equal(t, 3, c.Len())
	for i, want := range []float64{1, 4, 9} {
		assert.Equal(t, float64(i), c.At(i).X)
		assert.Equal(t, want, c.At(i).Y)
	}
	assert.Equal(t, "Epoch", c.Meta.XLabel)
	assert.Equal(t, "mean", c.Meta.YLabel, "the probed heading labels the y axis")
}

func TestTableStackSampleRejectsHeadings(t *testing.T) {
	ts := NewTableStack([]dims.Dimension{{Name: "epoch"}})
	require.NoError(t, ts.Insert(dims.Key{0}, newTable(t,
		[]string{"mean", "label"}, []any{1.0, "x"})))

	_, err := ts.Sample([]string{"label"}, SampleOptions{})
	assert.ErrorIs(t, err, ErrHeadingNotSampleable)

	_, err = ts.Sample([]string{"missing"}, SampleOptions{})
	assert.ErrorIs(t, err, view.ErrUnknownHeading)
}
