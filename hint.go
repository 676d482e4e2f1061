package alternating

import "math"

// minAndBonus combines the per-source bounds of two strictly alternating
// sources. m is the smaller of the two bounds. bonus reports whether the
// longer side gets one extra turn before the shorter side would recur:
// equal bounds never grant a bonus, otherwise the bonus goes to the longer
// side exactly when it is due before the shorter one. lastLeft reports
// whether the previously produced item came from the left source.
func minAndBonus(left, right int, lastLeft bool) (m int, bonus bool) {
	switch {
	case left < right:
		return left, lastLeft
	case left > right:
		return right, !lastLeft
	default:
		return left, false
	}
}

// saturatingHint returns 2*m plus the bonus, clamped to math.MaxInt.
func saturatingHint(m int, bonus bool) int {
	if m > math.MaxInt/2 {
		return math.MaxInt
	}
	// m*2 is at most math.MaxInt-1 here, so the bonus cannot overflow.
	v := m * 2
	if bonus {
		v++
	}
	return v
}

// checkedHint returns 2*m plus the bonus, or false when the result would not
// be representable.
func checkedHint(m int, bonus bool) (int, bool) {
	if m > math.MaxInt/2 {
		return 0, false
	}
	v := m * 2
	if bonus {
		v++
	}
	return v, true
}

// saturatingAdd returns a+b, clamped to math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// checkedAdd returns a+b, or false when the sum would not be representable.
func checkedAdd(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}
