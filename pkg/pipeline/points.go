package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/vec"
)

// ParsePoints expands a point spec into sample points. Two forms are
// accepted:
//
//	"lo:hi:n"  n evenly spaced points from lo to hi inclusive;
//	           ":n" may be omitted, defaulting to DefaultPointCount
//	"a,b,c"    explicit scalars (a single scalar is the one-element case)
func ParsePoints(spec string) ([]float64, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty point spec")
	}
	if strings.Contains(spec, ":") {
		return parseRange(spec)
	}

	parts := strings.Split(spec, ",")
	points := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad point %q in %q", p, spec)
		}
		points = append(points, f)
	}
	return points, nil
}

func parseRange(spec string) ([]float64, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("range spec %q needs lo:hi or lo:hi:n", spec)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad lower bound in %q", spec)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad upper bound in %q", spec)
	}
	n := DefaultPointCount
	if len(parts) == 3 {
		n, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad point count in %q", spec)
		}
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	return vec.Linspace(lo, hi, n), nil
}
