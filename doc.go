// Package alternating implements adapters that interleave two pull-based
// sequences into one, with three policies for handling sources of unequal
// length.
//
// Each adapter wraps a left and a right [Source] and emits their items in
// strictly alternating positional order, left first. The three variants differ
// only in what happens once one side runs out:
//
//   - [Alternating] keeps taking turns forever; the exhausted side simply
//     contributes "no item" on its turns, so the survivor is emitted on every
//     other call. Exhaustion is not sticky.
//   - [AlternatingAll] emits the survivor's entire remainder in one
//     uninterrupted run, then reports exhaustion forever.
//   - [AlternatingNoRemainder] stops the instant either side is exhausted,
//     discarding the other side's remainder, and reports exhaustion forever.
//
// Key features:
//   - Generic implementation supporting any item type
//   - Lazy, pull-driven; neither input is materialized
//   - Works with finite and infinite sources
//   - Overflow-safe size hints combining both inputs' estimates
//   - iter.Seq views and wrappers for range-over-func composition
//
// Basic usage:
//
//	left := sources.Slice([]int{1, 2})
//	right := sources.Slice([]int{3, 4, 5})
//
//	it := alternating.NewAlternatingAll(left, right)
//	for {
//	    v, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v) // 1 3 2 4 5
//	}
//
// Or over plain iter.Seq values:
//
//	for v := range alternating.AlternateAll(slices.Values(a), slices.Values(b)) {
//	    fmt.Println(v)
//	}
//
// Adapters are not safe for concurrent use; each instance exclusively owns its
// two sources and must be driven from a single goroutine.
package alternating
