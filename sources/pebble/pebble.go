package pebble

import (
	"github.com/cockroachdb/pebble"
)

// KV is one key/value pair produced by a scan.
type KV struct {
	Key   []byte
	Value []byte
}

// ScanSource yields the key/value pairs of an open pebble iterator in key
// order. Its size hint is unknown; pebble does not expose range counts.
type ScanSource struct {
	it      *pebble.Iterator
	started bool
}

// Scan returns a source over it. The source drives the iterator exclusively;
// do not reposition it while the source is live.
func Scan(it *pebble.Iterator) *ScanSource {
	return &ScanSource{it: it}
}

// Next returns the next pair in the scan. Key and value bytes are copied, as
// pebble reuses its buffers between steps.
func (s *ScanSource) Next() (KV, bool) {
	var valid bool
	if !s.started {
		s.started = true
		valid = s.it.First()
	} else {
		valid = s.it.Next()
	}
	if !valid {
		return KV{}, false
	}

	kv := KV{
		Key:   append([]byte(nil), s.it.Key()...),
		Value: append([]byte(nil), s.it.Value()...),
	}
	return kv, true
}

func (s *ScanSource) SizeHint() (int, int, bool) { return 0, 0, false }

// Err returns any error the scan encountered. A scan that hit an error
// reports exhaustion from Next; callers distinguish the two cases here.
func (s *ScanSource) Err() error {
	return s.it.Error()
}

// Close releases the underlying iterator.
func (s *ScanSource) Close() error {
	return s.it.Close()
}
