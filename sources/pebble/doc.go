// Package pebble adapts a cockroachdb/pebble range scan into an
// alternating.Source, so two scans can be interleaved without loading either
// into memory.
//
// Basic usage:
//
//	warm, _ := db.NewIter(&cockroachpebble.IterOptions{
//	    LowerBound: []byte("warm/"),
//	    UpperBound: []byte("warm0"),
//	})
//	cold, _ := db.NewIter(&cockroachpebble.IterOptions{
//	    LowerBound: []byte("cold/"),
//	    UpperBound: []byte("cold0"),
//	})
//
//	left := pebble.Scan(warm)
//	right := pebble.Scan(cold)
//	defer left.Close()
//	defer right.Close()
//
//	it := alternating.NewAlternatingAll[pebble.KV](left, right)
//	for kv := range it.All() {
//	    process(kv.Key, kv.Value)
//	}
//
// Each source owns its iterator for the duration of the scan; check Err and
// Close once done.
package pebble
