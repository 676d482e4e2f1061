package alternating_test

import (
	"math"
	"testing"

	"github.com/davidvella/alternating"
	"github.com/davidvella/alternating/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultAttempts = 10

// pull records the outcome of a single Next call.
type pull struct {
	v  int
	ok bool
}

func item(v int) pull { return pull{v: v, ok: true} }

func miss() pull { return pull{} }

// intSource is the subset of alternating.Source the tests drive directly.
type intSource = alternating.Source[int]

// hintSource reports fixed size hints and never runs out. It stands in for
// sources whose bounds are interesting but whose items are not.
type hintSource struct {
	lower   int
	upper   int
	bounded bool
}

func (h hintSource) Next() (int, bool) { return 0, true }

func (h hintSource) SizeHint() (int, int, bool) { return h.lower, h.upper, h.bounded }

// expectPulls drives src through want call by call.
func expectPulls(t *testing.T, src intSource, want []pull) {
	t.Helper()
	for i, w := range want {
		v, ok := src.Next()
		require.Equal(t, w.ok, ok, "call %d", i)
		if w.ok {
			assert.Equal(t, w.v, v, "call %d", i)
		}
	}
}

// noMore asserts that src keeps reporting exhaustion.
func noMore(t *testing.T, src intSource, attempts int) {
	t.Helper()
	for i := 0; i < attempts; i++ {
		v, ok := src.Next()
		require.False(t, ok, "expected no item, got %v at call %d", v, i)
	}
}

// countUntilMiss pulls src until the first exhaustion signal and returns the
// number of items seen, the realized count a bounded upper hint must match.
func countUntilMiss(src intSource) int {
	n := 0
	for {
		if _, ok := src.Next(); !ok {
			return n
		}
		n++
	}
}

// assertHint checks a combined size hint against the expected bounds.
func assertHint(t *testing.T, src intSource, lower, upper int, bounded bool) {
	t.Helper()
	gotLower, gotUpper, gotBounded := src.SizeHint()
	assert.Equal(t, lower, gotLower, "lower bound")
	require.Equal(t, bounded, gotBounded, "bounded")
	if bounded {
		assert.Equal(t, upper, gotUpper, "upper bound")
	}
}

func TestAlternating(t *testing.T) {
	tests := []struct {
		name  string
		left  []int
		right []int
		want  []pull
	}{
		{
			name:  "same lengths",
			left:  []int{1, 2},
			right: []int{3, 4},
			want:  []pull{item(1), item(3), item(2), item(4), miss()},
		},
		{
			name:  "right one longer",
			left:  []int{1, 2},
			right: []int{3, 4, 5},
			want:  []pull{item(1), item(3), item(2), item(4), miss(), item(5), miss()},
		},
		{
			name:  "right two longer",
			left:  []int{1, 2},
			right: []int{3, 4, 5, 6},
			want:  []pull{item(1), item(3), item(2), item(4), miss(), item(5), miss(), item(6), miss()},
		},
		{
			name:  "both empty",
			left:  nil,
			right: nil,
			want:  []pull{miss()},
		},
		{
			name:  "right empty drains left every other call",
			left:  []int{1, 2, 3},
			right: nil,
			want:  []pull{item(1), miss(), item(2), miss(), item(3)},
		},
		{
			name:  "left empty",
			left:  nil,
			right: []int{1, 2},
			want:  []pull{miss(), item(1), miss(), item(2), miss()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := alternating.NewAlternating[int](sources.Slice(tt.left), sources.Slice(tt.right))
			expectPulls(t, it, tt.want)
			noMore(t, it, defaultAttempts)
		})
	}
}

func TestAlternating_SharedBacking(t *testing.T) {
	a := []int{1, 2, 3}

	it := alternating.NewAlternating[int](sources.Slice(a), sources.Slice(a))

	expectPulls(t, it, []pull{
		item(1), item(1), item(2), item(2), item(3), item(3), miss(),
	})
	noMore(t, it, defaultAttempts)
}

func TestAlternating_All(t *testing.T) {
	it := alternating.NewAlternating[int](
		sources.Slice([]int{1, 2}),
		sources.Slice([]int{3, 4, 5, 6}),
	)

	var got []int
	for v := range it.All() {
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 3, 2, 4, 5, 6}, got)
}

func TestAlternating_SizeHint(t *testing.T) {
	tests := []struct {
		name        string
		left        intSource
		right       intSource
		wantLower   int
		wantUpper   int
		wantBounded bool
	}{
		{
			name:        "both bounded",
			left:        sources.Slice([]int{1, 2, 3}),
			right:       sources.Slice([]int{4, 5}),
			wantLower:   5,
			wantUpper:   5,
			wantBounded: true,
		},
		{
			name:        "unbounded right",
			left:        sources.Slice([]int{1, 2, 3}),
			right:       sources.Repeat(0),
			wantLower:   6,
			wantUpper:   6,
			wantBounded: true,
		},
		{
			name:        "unbounded left",
			left:        sources.Repeat(0),
			right:       sources.Slice([]int{1, 2, 3}),
			wantLower:   7,
			wantUpper:   7,
			wantBounded: true,
		},
		{
			name:        "both unbounded",
			left:        sources.Repeat(0),
			right:       sources.Repeat(0),
			wantLower:   math.MaxInt,
			wantBounded: false,
		},
		{
			name:        "bounds exceed max",
			left:        hintSource{lower: math.MaxInt, upper: math.MaxInt, bounded: true},
			right:       hintSource{lower: math.MaxInt, upper: math.MaxInt, bounded: true},
			wantLower:   math.MaxInt,
			wantBounded: false,
		},
		{
			name:        "left just below half max",
			left:        hintSource{lower: math.MaxInt / 2, upper: math.MaxInt / 2, bounded: true},
			right:       hintSource{lower: math.MaxInt/2 + 1, upper: math.MaxInt/2 + 1, bounded: true},
			wantLower:   math.MaxInt - 1,
			wantUpper:   math.MaxInt - 1,
			wantBounded: true,
		},
		{
			name:        "right just below half max",
			left:        hintSource{lower: math.MaxInt/2 + 1, upper: math.MaxInt/2 + 1, bounded: true},
			right:       hintSource{lower: math.MaxInt / 2, upper: math.MaxInt / 2, bounded: true},
			wantLower:   math.MaxInt,
			wantUpper:   math.MaxInt,
			wantBounded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := alternating.NewAlternating[int](tt.left, tt.right)
			assertHint(t, it, tt.wantLower, tt.wantUpper, tt.wantBounded)
		})
	}
}

func TestAlternating_SizeHintMatchesCount(t *testing.T) {
	tests := []struct {
		name  string
		left  intSource
		right intSource
	}{
		{name: "longer left", left: sources.Slice([]int{1, 2, 3}), right: sources.Slice([]int{4, 5})},
		{name: "longer right", left: sources.Slice([]int{1, 2}), right: sources.Slice([]int{3, 4, 5, 6})},
		{name: "equal", left: sources.Slice([]int{1, 2}), right: sources.Slice([]int{3, 4})},
		{name: "unbounded right", left: sources.Slice([]int{1, 2, 3}), right: sources.Repeat(0)},
		{name: "unbounded left", left: sources.Repeat(0), right: sources.Slice([]int{1, 2, 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := alternating.NewAlternating[int](tt.left, tt.right)
			_, upper, bounded := it.SizeHint()
			require.True(t, bounded)
			assert.Equal(t, upper, countUntilMiss(it))
		})
	}
}
