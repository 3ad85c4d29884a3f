package dims

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrArity is returned when a key's length does not match the
	// dimension count it is checked against.
	ErrArity = errors.New("key length does not match dimension count")

	// ErrUnknownDimension is returned when a dimension name is not part
	// of a dimension list.
	ErrUnknownDimension = errors.New("unknown dimension")
)

// Dimension describes one axis of indexing. Dimensions are immutable
// once attached to a container; equality is by Name.
type Dimension struct {
	Name string // Axis name (e.g. "time", "trial")

	// Range is the optional (low, high) span of the axis. Required for
	// cyclic dimensions, advisory otherwise.
	Range *[2]float64

	// Cyclic marks an axis that wraps around at the end of Range
	// (e.g. orientation in degrees).
	Cyclic bool

	// Format renders a value of this dimension for titles and legends.
	// When nil, FormatValue falls back to default scalar formatting.
	Format func(v any) string
}

// FormatValue renders v using the dimension's Format hook, or default
// scalar formatting when no hook is set. Floats are rendered in the
// shortest form that round-trips ("1.5", not "1.500000").
func FormatValue(d Dimension, v any) string {
	if d.Format != nil {
		return d.Format(v)
	}
	return formatScalar(v)
}

func formatScalar(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

// Names extracts the Name of each dimension, in order.
func Names(dimensions []Dimension) []string {
	names := make([]string, len(dimensions))
	for i, d := range dimensions {
		names[i] = d.Name
	}
	return names
}

// Index returns the position of the named dimension, or
// ErrUnknownDimension if it is not in the list.
func Index(dimensions []Dimension, name string) (int, error) {
	for i, d := range dimensions {
		if d.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// Key is an ordered vector of scalar values, one per dimension of the
// owning container, in dimension-list order. Components are float64,
// int, or string.
type Key []any

// Validate checks that the key has one component per dimension.
func (k Key) Validate(dimensions []Dimension) error {
	if len(k) != len(dimensions) {
		return fmt.Errorf("%w: got %d values for %d dimensions", ErrArity, len(k), len(dimensions))
	}
	return nil
}

// Clone returns an independent copy of the key.
func (k Key) Clone() Key {
	out := make(Key, len(k))
	copy(out, k)
	return out
}

// Compare orders two keys component-wise. Numeric components compare by
// value (int against float64 is fine), strings lexicographically, and
// any number sorts before any string. Shorter keys sort before longer
// ones when all shared components are equal.
func Compare(a, b Key) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := compareScalar(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareScalar(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	switch {
	case aNum && bNum:
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// toFloat converts numeric scalars to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// ToFloat converts a numeric scalar (float64, float32, int, int64) to
// float64, reporting whether the conversion applied.
func ToFloat(v any) (float64, bool) { return toFloat(v) }

// Canonical renders the key as a stable string usable as a map key.
// Components are type-tagged so that the int 1 and the string "1" do
// not collide.
func (k Key) Canonical() string {
	var sb strings.Builder
	for i, v := range k {
		if i > 0 {
			sb.WriteByte('|')
		}
		if f, ok := toFloat(v); ok {
			sb.WriteString("n:")
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			continue
		}
		sb.WriteString("s:")
		sb.WriteString(fmt.Sprint(v))
	}
	return sb.String()
}

// PrettyPairs renders the key as "Name: value" pairs in dimension
// order, grouped perLine pairs per line (two when perLine <= 0). Pairs
// on a line are joined with ", ". The rendering is deterministic and is
// what stacks embed in generated item titles.
func PrettyPairs(dimensions []Dimension, key Key, perLine int) string {
	if perLine <= 0 {
		perLine = 2
	}
	var lines []string
	var line []string
	for i, d := range dimensions {
		if i >= len(key) {
			break
		}
		line = append(line, d.Name+": "+FormatValue(d, key[i]))
		if len(line) == perLine {
			lines = append(lines, strings.Join(line, ", "))
			line = nil
		}
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, ", "))
	}
	return strings.Join(lines, "\n")
}
