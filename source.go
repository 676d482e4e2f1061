package alternating

// Source is a pull-based producer of items. It may be finite, in which case
// Next eventually reports exhaustion, or infinite, in which case it never
// does.
//
// Unless a Source documents otherwise, exhaustion is not required to be
// sticky; adapters in this package never rely on pulling a source again after
// observing exhaustion, except where a variant's drain policy explicitly
// keeps pulling the surviving side.
type Source[E any] interface {
	// Next returns the next item, or the zero value and false when no item
	// is available.
	Next() (E, bool)

	// SizeHint returns a lower bound on the number of remaining items and,
	// when bounded is true, an upper bound. Implementations must never
	// return a negative bound; sources of unknown or unlimited length
	// report bounded == false.
	SizeHint() (lower int, upper int, bounded bool)
}
