// Package sources provides ready-made implementations of the
// alternating.Source interface over common in-memory containers and
// sequence shapes.
//
// Key features:
//   - Slices with exact remaining-count size hints
//   - Plain pull functions and iter.Seq sequences
//   - Infinite repetition of a single value
//   - Ascending iteration over a google/btree ordered collection
//
// Basic usage:
//
//	left := sources.Slice([]string{"a", "b"})
//	right := sources.Repeat("-")
//
//	it := alternating.NewAlternatingNoRemainder[string](left, right)
//	for v := range it.All() {
//	    fmt.Print(v) // a-b-
//	}
//
// Sources that convert a push-style sequence (Seq, BTree) hold a coroutine
// open until the sequence is exhausted; call Stop when abandoning one early.
package sources
