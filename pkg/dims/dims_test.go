package dims

import (
	"fmt"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{name: "Equal", a: Key{1, "a"}, b: Key{1, "a"}, want: 0},
		{name: "NumericLess", a: Key{1, 0}, b: Key{2, 0}, want: -1},
		{name: "NumericGreater", a: Key{3.5}, b: Key{2.0}, want: 1},
		{name: "IntVsFloatEqual", a: Key{1}, b: Key{1.0}, want: 0},
		{name: "IntVsFloatLess", a: Key{1}, b: Key{1.5}, want: -1},
		{name: "StringOrder", a: Key{"alpha"}, b: Key{"beta"}, want: -1},
		{name: "NumberBeforeString", a: Key{0}, b: Key{"0"}, want: -1},
		{name: "SecondComponentDecides", a: Key{1, 2}, b: Key{1, 3}, want: -1},
		{name: "ShorterFirst", a: Key{1}, b: Key{1, 0}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	a := Key{1, "x"}
	b := Key{1.0, "x"}
	if a.Canonical() != b.Canonical() {
		t.Errorf("int and float of same value should share canonical form: %q vs %q",
			a.Canonical(), b.Canonical())
	}

	c := Key{1}
	d := Key{"1"}
	if c.Canonical() == d.Canonical() {
		t.Errorf("number 1 and string \"1\" must not collide: both %q", c.Canonical())
	}
}

func TestValidate(t *testing.T) {
	dimensions := []Dimension{{Name: "time"}, {Name: "trial"}}

	if err := (Key{1.0, 2}).Validate(dimensions); err != nil {
		t.Errorf("matching arity: unexpected error %v", err)
	}
	if err := (Key{1.0}).Validate(dimensions); err == nil {
		t.Error("short key: expected ErrArity, got nil")
	}
}

func TestFormatValue(t *testing.T) {
	plain := Dimension{Name: "time"}
	if got := FormatValue(plain, 1.5); got != "1.5" {
		t.Errorf("FormatValue(1.5) = %q, want 1.5", got)
	}
	if got := FormatValue(plain, 2.0); got != "2" {
		t.Errorf("FormatValue(2.0) = %q, want 2", got)
	}

	custom := Dimension{Name: "phase", Format: func(v any) string { return fmt.Sprintf("%05.1f", v) }}
	if got := FormatValue(custom, 7.25); got != "007.2" {
		t.Errorf("custom format = %q, want 007.2", got)
	}
}

func TestPrettyPairs(t *testing.T) {
	dimensions := []Dimension{{Name: "time"}, {Name: "trial"}, {Name: "phase"}}
	key := Key{0.5, 3, "up"}

	got := PrettyPairs(dimensions, key, 0)
	want := "time: 0.5, trial: 3\nphase: up"
	if got != want {
		t.Errorf("PrettyPairs = %q, want %q", got, want)
	}

	got = PrettyPairs(dimensions, key, 3)
	want = "time: 0.5, trial: 3, phase: up"
	if got != want {
		t.Errorf("PrettyPairs perLine=3 = %q, want %q", got, want)
	}
}

func TestIndex(t *testing.T) {
	dimensions := []Dimension{{Name: "time"}, {Name: "trial"}}

	i, err := Index(dimensions, "trial")
	if err != nil || i != 1 {
		t.Errorf("Index(trial) = %d, %v; want 1, nil", i, err)
	}
	if _, err := Index(dimensions, "phase"); err == nil {
		t.Error("Index(phase): expected ErrUnknownDimension, got nil")
	}
}
