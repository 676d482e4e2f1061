package alternating

import "iter"

// Alternating interleaves two sources turn by turn, draining the longer
// side's remainder one item per turn.
//
// Turns keep alternating forever: once one side is exhausted it contributes
// "no item" on each of its turns while the survivor keeps being returned on
// its own turns. Exhaustion is therefore not sticky; a call returning no item
// may be followed by a call that does. Callers that need sticky exhaustion
// should use [AlternatingAll] or [AlternatingNoRemainder].
type Alternating[E any] struct {
	left     Source[E]
	right    Source[E]
	leftNext bool
}

// NewAlternating returns an adapter over left and right with left due first.
// The adapter takes sole ownership of both sources.
func NewAlternating[E any](left, right Source[E]) *Alternating[E] {
	return &Alternating[E]{
		left:     left,
		right:    right,
		leftNext: true,
	}
}

// Next returns the due side's next item, whatever it is. An exhausted side's
// "no item" result is passed through as-is rather than skipped.
func (a *Alternating[E]) Next() (E, bool) {
	if a.leftNext {
		a.leftNext = false
		return a.left.Next()
	}
	a.leftNext = true
	return a.right.Next()
}

// SizeHint combines both sides' estimates into bounds on the number of items
// remaining.
//
// The longest run of calls without two consecutive items from the same side
// and without an empty turn is twice the length of the shorter side, plus one
// more if the longer side is due before the shorter side recurs.
func (a *Alternating[E]) SizeHint() (lower int, upper int, bounded bool) {
	leftLow, leftUp, leftBounded := a.left.SizeHint()
	rightLow, rightUp, rightBounded := a.right.SizeHint()
	lastLeft := !a.leftNext

	lower = saturatingHint(minAndBonus(leftLow, rightLow, lastLeft))
	switch {
	case leftBounded && rightBounded:
		upper, bounded = checkedHint(minAndBonus(leftUp, rightUp, lastLeft))
	case leftBounded:
		// The unbounded right side never runs out, so only the left
		// bound limits the output.
		upper, bounded = checkedHint(leftUp, lastLeft)
	case rightBounded:
		upper, bounded = checkedHint(rightUp, !lastLeft)
	}
	return lower, upper, bounded
}

// All returns a lazy view of the remaining items. The empty turns that Next
// exposes after one side's exhaustion are collapsed; the view ends once both
// sides are exhausted.
func (a *Alternating[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := a.Next()
			if !ok {
				// One empty turn may just be an exhausted side's
				// slot. Two in a row means both sides are done.
				if v, ok = a.Next(); !ok {
					return
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}
