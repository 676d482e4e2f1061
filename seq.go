package alternating

import "iter"

// pullSource adapts an iter.Pull next function into a Source with an unknown
// length.
type pullSource[E any] struct {
	next func() (E, bool)
}

func (p pullSource[E]) Next() (E, bool) { return p.next() }

func (p pullSource[E]) SizeHint() (int, int, bool) { return 0, 0, false }

// Alternate interleaves two sequences turn by turn, left first, draining the
// longer side's remainder one item per turn. It is the iter.Seq form of
// [NewAlternating]; the empty turns the adapter exposes after one side's
// exhaustion are collapsed in the view.
func Alternate[E any](left, right iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		leftNext, leftStop := iter.Pull(left)
		defer leftStop()
		rightNext, rightStop := iter.Pull(right)
		defer rightStop()

		a := NewAlternating[E](pullSource[E]{leftNext}, pullSource[E]{rightNext})
		a.All()(yield)
	}
}

// AlternateAll interleaves two sequences turn by turn, left first, and emits
// the survivor's entire remainder in one run once the other side is
// exhausted. It is the iter.Seq form of [NewAlternatingAll].
func AlternateAll[E any](left, right iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		leftNext, leftStop := iter.Pull(left)
		defer leftStop()
		rightNext, rightStop := iter.Pull(right)
		defer rightStop()

		a := NewAlternatingAll[E](pullSource[E]{leftNext}, pullSource[E]{rightNext})
		a.All()(yield)
	}
}

// AlternateNoRemainder interleaves two sequences turn by turn, left first,
// and stops at the first exhaustion of either side, discarding the other
// side's remainder. It is the iter.Seq form of [NewAlternatingNoRemainder].
func AlternateNoRemainder[E any](left, right iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		leftNext, leftStop := iter.Pull(left)
		defer leftStop()
		rightNext, rightStop := iter.Pull(right)
		defer rightStop()

		a := NewAlternatingNoRemainder[E](pullSource[E]{leftNext}, pullSource[E]{rightNext})
		a.All()(yield)
	}
}
