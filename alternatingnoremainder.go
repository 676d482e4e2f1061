package alternating

import "iter"

// strictState tracks which side an AlternatingNoRemainder pulls next.
type strictState uint8

const (
	strictLeft  strictState = iota // left due next
	strictRight                    // right due next
	strictDone                     // a side was exhausted, remainder discarded
)

// AlternatingNoRemainder interleaves two sources turn by turn and stops the
// instant either side is exhausted, discarding the other side's remainder.
//
// Because the output stops at the first exhaustion, the order of the sources
// matters: with sides of length 2 and 3 the adapter emits 4 items when the
// shorter side is on the left, and 5 when it is on the right.
//
// The adapter is fused: after it reports exhaustion once, every subsequent
// call reports exhaustion, even if the other side still has items.
type AlternatingNoRemainder[E any] struct {
	left  Source[E]
	right Source[E]
	state strictState
}

// NewAlternatingNoRemainder returns an adapter over left and right with left
// due first. The adapter takes sole ownership of both sources.
func NewAlternatingNoRemainder[E any](left, right Source[E]) *AlternatingNoRemainder[E] {
	return &AlternatingNoRemainder[E]{
		left:  left,
		right: right,
		state: strictLeft,
	}
}

// Next returns the due side's next item. When the due side is exhausted the
// other side is not consulted; the adapter terminates on the spot.
func (a *AlternatingNoRemainder[E]) Next() (E, bool) {
	switch a.state {
	case strictLeft:
		if v, ok := a.left.Next(); ok {
			a.state = strictRight
			return v, true
		}
	case strictRight:
		if v, ok := a.right.Next(); ok {
			a.state = strictLeft
			return v, true
		}
	}
	a.state = strictDone
	var zero E
	return zero, false
}

// SizeHint combines both sides' estimates into bounds on the number of items
// remaining, using the same doubling arithmetic as [Alternating.SizeHint]:
// the strict alternation pattern before termination is identical, only the
// post-exhaustion behavior differs. Once terminated, the hint is an exact
// zero.
func (a *AlternatingNoRemainder[E]) SizeHint() (lower int, upper int, bounded bool) {
	if a.state == strictDone {
		return 0, 0, true
	}
	leftLow, leftUp, leftBounded := a.left.SizeHint()
	rightLow, rightUp, rightBounded := a.right.SizeHint()
	lastLeft := a.state == strictRight

	lower = saturatingHint(minAndBonus(leftLow, rightLow, lastLeft))
	switch {
	case leftBounded && rightBounded:
		upper, bounded = checkedHint(minAndBonus(leftUp, rightUp, lastLeft))
	case leftBounded:
		upper, bounded = checkedHint(leftUp, lastLeft)
	case rightBounded:
		upper, bounded = checkedHint(rightUp, !lastLeft)
	}
	return lower, upper, bounded
}

// All returns a lazy view of the remaining items.
func (a *AlternatingNoRemainder[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := a.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
