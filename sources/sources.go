package sources

import (
	"iter"
	"math"

	"github.com/google/btree"
)

// SliceSource yields the elements of a slice in order. Its size hint is the
// exact remaining count.
type SliceSource[E any] struct {
	items []E
	pos   int
}

// Slice returns a source over items. The slice is not copied; callers may
// share the same backing slice between multiple sources for read-only
// iteration.
func Slice[E any](items []E) *SliceSource[E] {
	return &SliceSource[E]{items: items}
}

func (s *SliceSource[E]) Next() (E, bool) {
	if s.pos >= len(s.items) {
		var zero E
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

func (s *SliceSource[E]) SizeHint() (int, int, bool) {
	n := len(s.items) - s.pos
	return n, n, true
}

// FuncSource adapts a plain pull function into a source of unknown length.
type FuncSource[E any] struct {
	next func() (E, bool)
}

// Func returns a source that pulls items from next. The function is expected
// to keep reporting exhaustion once it has done so.
func Func[E any](next func() (E, bool)) *FuncSource[E] {
	return &FuncSource[E]{next: next}
}

func (f *FuncSource[E]) Next() (E, bool) { return f.next() }

func (f *FuncSource[E]) SizeHint() (int, int, bool) { return 0, 0, false }

// RepeatSource yields the same value forever.
type RepeatSource[E any] struct {
	value E
}

// Repeat returns an infinite source of value. Its size hint reports the
// largest representable lower bound and no upper bound.
func Repeat[E any](value E) *RepeatSource[E] {
	return &RepeatSource[E]{value: value}
}

func (r *RepeatSource[E]) Next() (E, bool) { return r.value, true }

func (r *RepeatSource[E]) SizeHint() (int, int, bool) { return math.MaxInt, 0, false }

// SeqSource pull-converts an iter.Seq into a source of unknown length.
type SeqSource[E any] struct {
	next func() (E, bool)
	stop func()
}

// Seq returns a source over seq. The conversion holds a coroutine open until
// seq is exhausted; call Stop when abandoning the source early.
func Seq[E any](seq iter.Seq[E]) *SeqSource[E] {
	next, stop := iter.Pull(seq)
	return &SeqSource[E]{next: next, stop: stop}
}

func (s *SeqSource[E]) Next() (E, bool) { return s.next() }

func (s *SeqSource[E]) SizeHint() (int, int, bool) { return 0, 0, false }

// Stop releases the underlying sequence. Further calls to Next report
// exhaustion.
func (s *SeqSource[E]) Stop() { s.stop() }

// BTreeSource yields the items of a btree.BTreeG in ascending order. Its size
// hint is the exact remaining count, assuming the tree is not mutated while
// the source is live.
type BTreeSource[E any] struct {
	next func() (E, bool)
	stop func()
	left int
}

// BTree returns a source over the ascending order of tree. Mutating the tree
// while the source is live is the caller's responsibility to avoid; call Stop
// when abandoning the source early.
func BTree[E any](tree *btree.BTreeG[E]) *BTreeSource[E] {
	next, stop := iter.Pull(func(yield func(E) bool) {
		tree.Ascend(func(item E) bool {
			return yield(item)
		})
	})
	return &BTreeSource[E]{
		next: next,
		stop: stop,
		left: tree.Len(),
	}
}

func (b *BTreeSource[E]) Next() (E, bool) {
	v, ok := b.next()
	if ok {
		b.left--
	}
	return v, ok
}

func (b *BTreeSource[E]) SizeHint() (int, int, bool) { return b.left, b.left, true }

// Stop releases the underlying tree iteration. Further calls to Next report
// exhaustion.
func (b *BTreeSource[E]) Stop() {
	b.stop()
	b.left = 0
}
