package alternating

import "iter"

// allState tracks which side an AlternatingAll pulls next. It is the single
// source of truth for the adapter's turn and drain status.
type allState uint8

const (
	stateLeft       allState = iota // left due next
	stateRight                      // right due next
	stateDrainLeft                  // right exhausted, drain left
	stateDrainRight                 // left exhausted, drain right
	stateDone                       // both exhausted
)

// AlternatingAll interleaves two sources turn by turn and, once one side is
// exhausted, emits the survivor's entire remainder in one uninterrupted run.
//
// The adapter is fused: after it reports exhaustion once, every subsequent
// call reports exhaustion, regardless of how the underlying sources behave.
type AlternatingAll[E any] struct {
	left  Source[E]
	right Source[E]
	state allState
}

// NewAlternatingAll returns an adapter over left and right with left due
// first. The adapter takes sole ownership of both sources.
func NewAlternatingAll[E any](left, right Source[E]) *AlternatingAll[E] {
	return &AlternatingAll[E]{
		left:  left,
		right: right,
		state: stateLeft,
	}
}

// Next returns the next item, or reports exhaustion once both sources are
// drained.
func (a *AlternatingAll[E]) Next() (E, bool) {
	switch a.state {
	case stateLeft:
		if v, ok := a.left.Next(); ok {
			a.state = stateRight
			return v, true
		}
		a.state = stateDrainRight
	case stateRight:
		if v, ok := a.right.Next(); ok {
			a.state = stateLeft
			return v, true
		}
		a.state = stateDrainLeft
	case stateDone:
		var zero E
		return zero, false
	}

	var survivor Source[E]
	if a.state == stateDrainLeft {
		survivor = a.left
	} else {
		survivor = a.right
	}
	v, ok := survivor.Next()
	if !ok {
		a.state = stateDone
	}
	return v, ok
}

// SizeHint combines both sides' estimates: the lower bounds add with
// saturation, and the upper bound is the sum of both upper bounds when both
// are known and representable.
func (a *AlternatingAll[E]) SizeHint() (lower int, upper int, bounded bool) {
	leftLow, leftUp, leftBounded := a.left.SizeHint()
	rightLow, rightUp, rightBounded := a.right.SizeHint()

	lower = saturatingAdd(leftLow, rightLow)
	if leftBounded && rightBounded {
		upper, bounded = checkedAdd(leftUp, rightUp)
	}
	return lower, upper, bounded
}

// All returns a lazy view of the remaining items.
func (a *AlternatingAll[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := a.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
