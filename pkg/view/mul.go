package view

// Mul implements the overlay operator for view operands. Two leaves
// become a two-member overlay; overlay operands contribute their member
// lists in order, so the result is always flat. Operands are not
// modified. The result carries the left operand's style.
//
// Label conflicts between labeled members fail with ErrLabelMismatch
// before any state is built up.
func Mul(a, b View) (View, error) {
	if a == nil || b == nil {
		return nil, ErrCannotOverlay
	}
	out, err := NewOverlay(a, b)
	if err != nil {
		return nil, err
	}
	out.Meta.Style = a.Axes().Style
	return out, nil
}
