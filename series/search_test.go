package series

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eseries/errs"
)

// TestAscending verifies the ascending walk starts at the first member >= value
func TestAscending(t *testing.T) {
	require.Equal(t, []float64{33, 39, 47, 56}, take(testE12.Ascending(31), 4))

	// An exact member is included as the first element.
	require.Equal(t, []float64{33, 39}, take(testE12.Ascending(33), 2))
}

// TestAscendingDecadeCrossing verifies the walk wraps into the next decade
func TestAscendingDecadeCrossing(t *testing.T) {
	require.Equal(t, []float64{68, 82, 100, 120}, take(testE12.Ascending(68), 4))

	// Crossing from below one into the base decade.
	require.Equal(t, []float64{1.0, 1.2}, take(testE12.Ascending(0.95), 2))
}

// TestDescending verifies the descending walk starts at the last member <= value
func TestDescending(t *testing.T) {
	require.Equal(t, []float64{27, 22, 18, 15}, take(testE12.Descending(31), 4))

	// An exact member is included as the first element.
	require.Equal(t, []float64{27, 22}, take(testE12.Descending(27), 2))
}

// TestDescendingDecadeCrossing verifies the walk wraps into the previous decade
func TestDescendingDecadeCrossing(t *testing.T) {
	require.Equal(t, []float64{10, 8.2, 6.8, 5.6}, take(testE12.Descending(10), 4))
	require.Equal(t, []float64{0.82, 0.68}, take(testE12.Descending(0.95), 2))
}

// TestDescendingAtPowerOfTen verifies exact powers of ten resolve to the boundary member.
// math.Log10(1000) rounds below 3, so this exercises the decade normalization.
func TestDescendingAtPowerOfTen(t *testing.T) {
	require.Equal(t, []float64{1000, 820, 680}, take(testE12.Descending(1000), 3))
	require.Equal(t, []float64{100, 82}, take(testE12.Descending(100), 2))
	require.Equal(t, []float64{0.1, 0.082}, take(testE12.Descending(0.1), 2))
}

// TestIteratorsRestartable verifies each call starts an independent cursor
func TestIteratorsRestartable(t *testing.T) {
	seq := testE12.Ascending(31)
	require.Equal(t, take(seq, 3), take(seq, 3))

	desc := testE12.Descending(31)
	require.Equal(t, take(desc, 3), take(desc, 3))
}

// TestFindGreaterOrEqual verifies inclusive upward search
func TestFindGreaterOrEqual(t *testing.T) {
	require.Equal(t, 33.0, testE12.FindGreaterOrEqual(31))
	require.Equal(t, 33.0, testE12.FindGreaterOrEqual(33))
	require.Equal(t, 100.0, testE12.FindGreaterOrEqual(83))
	require.Equal(t, 0.0047, testE12.FindGreaterOrEqual(0.004))
}

// TestFindGreater verifies strict upward search skips an exact match
func TestFindGreater(t *testing.T) {
	require.Equal(t, 33.0, testE12.FindGreater(31))
	require.Equal(t, 39.0, testE12.FindGreater(33))
	require.Equal(t, 100.0, testE12.FindGreater(82))
}

// TestFindLessOrEqual verifies inclusive downward search
func TestFindLessOrEqual(t *testing.T) {
	require.Equal(t, 27.0, testE12.FindLessOrEqual(31))
	require.Equal(t, 33.0, testE12.FindLessOrEqual(33))
	require.Equal(t, 82.0, testE12.FindLessOrEqual(99))
	require.Equal(t, 1000.0, testE12.FindLessOrEqual(1000))
}

// TestFindLess verifies strict downward search skips an exact match
func TestFindLess(t *testing.T) {
	require.Equal(t, 27.0, testE12.FindLess(31))
	require.Equal(t, 27.0, testE12.FindLess(33))
	require.Equal(t, 8.2, testE12.FindLess(10))
}

// TestFindDirectionalProperties verifies le <= v <= ge and lt < v < gt for sampled values
func TestFindDirectionalProperties(t *testing.T) {
	values := []float64{0.00123, 0.031, 0.5, 1.7, 31, 47.1, 999, 1001, 123456, 3.14159e7}
	for _, s := range []*Series{testE12, testE24, testE48} {
		for _, v := range values {
			le := s.FindLessOrEqual(v)
			ge := s.FindGreaterOrEqual(v)
			require.LessOrEqual(t, le, v, "series %s value %v", s, v)
			require.GreaterOrEqual(t, ge, v, "series %s value %v", s, v)

			lt := s.FindLess(v)
			gt := s.FindGreater(v)
			require.Less(t, lt, v, "series %s value %v", s, v)
			require.Greater(t, gt, v, "series %s value %v", s, v)
		}
	}
}

// TestFindRoundTripsExactMembers verifies decade consistency: a mantissa placed
// at any decade is returned unchanged by both inclusive searches
func TestFindRoundTripsExactMembers(t *testing.T) {
	for _, s := range []*Series{testE12, testE24, testE48} {
		for _, m := range s.Mantissas() {
			for k := -4; k <= 4; k++ {
				v := placeAtDecade(float64(m), k)
				require.Equal(t, v, s.FindGreaterOrEqual(v), "series %s mantissa %d decade %d", s, m, k)
				require.Equal(t, v, s.FindLessOrEqual(v), "series %s mantissa %d decade %d", s, m, k)
			}
		}
	}
}

// TestFindNearest verifies nearest selection by relative error
func TestFindNearest(t *testing.T) {
	require.Equal(t, 33.0, testE12.FindNearest(31))
	require.Equal(t, 27.0, testE12.FindNearest(29))
	require.Equal(t, 4.7, testE12.FindNearest(4.7))
	require.Equal(t, 1000.0, testE12.FindNearest(1000))
	require.Equal(t, 0.0047, testE12.FindNearest(0.0048))
}

// TestFindNearestTiePrefersLower verifies the documented tie-break.
// For the table {10, 30} the value 20 has relative error 0.5 on both sides.
func TestFindNearestTiePrefersLower(t *testing.T) {
	tie := MustNew("tie", 0.1, []int{10, 30})
	require.Equal(t, 10.0, tie.FindNearest(20))
}

// TestFindNearestIdempotent verifies nearest of a nearest result is itself
func TestFindNearestIdempotent(t *testing.T) {
	values := []float64{0.004, 0.31, 2.9, 31, 456, 8200, 1.3e5}
	for _, s := range []*Series{testE12, testE24, testE48} {
		for _, v := range values {
			nearest := s.FindNearest(v)
			require.Equal(t, nearest, s.FindNearest(nearest), "series %s value %v", s, v)
		}
	}
}

// TestFindNearestFew verifies candidate construction for each count
func TestFindNearestFew(t *testing.T) {
	got, err := testE12.FindNearestFew(31, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{27}, got)

	got, err = testE12.FindNearestFew(31, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{22, 27}, got)

	got, err = testE12.FindNearestFew(31, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{22, 27, 33}, got)
}

// TestFindNearestFewExactMatch verifies the count-3 guarantee around a member
func TestFindNearestFewExactMatch(t *testing.T) {
	got, err := testE12.FindNearestFew(100, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{82, 100, 120}, got)

	// One candidate below, the member itself, one candidate above.
	require.Less(t, got[0], 100.0)
	require.Equal(t, 100.0, got[1])
	require.Greater(t, got[2], 100.0)
}

// TestFindNearestFewAcrossDecade verifies candidates spanning a boundary
func TestFindNearestFewAcrossDecade(t *testing.T) {
	got, err := testE12.FindNearestFew(10, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{8.2, 10, 12}, got)
}

// TestFindNearestFewInvalidCount verifies counts outside 1..3 are rejected
func TestFindNearestFewInvalidCount(t *testing.T) {
	for _, count := range []int{-1, 0, 4, 10} {
		_, err := testE12.FindNearestFew(31, count)
		require.ErrorIs(t, err, errs.ErrInvalidCount)
	}
}

// TestRange verifies the two-decade enumeration scenario
func TestRange(t *testing.T) {
	want := []float64{33, 39, 47, 56, 68, 82, 100, 120, 150, 180, 220, 270, 330, 390, 470, 560, 680}
	require.Equal(t, want, collect(testE12.Range(31, 680, true)))
}

// TestRangeExclusiveStop verifies the stop member is dropped when not included
func TestRangeExclusiveStop(t *testing.T) {
	want := []float64{33, 39, 47, 56, 68, 82, 100, 120, 150, 180, 220, 270, 330, 390, 470, 560}
	require.Equal(t, want, collect(testE12.Range(31, 680, false)))
}

// TestRangeBounds verifies every yielded value lies within the bounds in order
func TestRangeBounds(t *testing.T) {
	got := collect(testE48.Range(0.5, 50, true))
	require.NotEmpty(t, got)
	for i, v := range got {
		require.GreaterOrEqual(t, v, 0.5)
		require.LessOrEqual(t, v, 50.0)
		if i > 0 {
			require.Greater(t, v, got[i-1])
		}
	}
}

// TestRangeDegenerate verifies empty sequences for inverted and point ranges
func TestRangeDegenerate(t *testing.T) {
	// Inverted bounds yield nothing rather than failing.
	require.Empty(t, collect(testE12.Range(100, 31, true)))

	// A point range yields the member only when the stop is inclusive.
	require.Equal(t, []float64{100}, collect(testE12.Range(100, 100, true)))
	require.Empty(t, collect(testE12.Range(100, 100, false)))

	// A point range on a non-member yields nothing either way.
	require.Empty(t, collect(testE12.Range(31, 31, true)))
}

// TestRangeEarlyBreak verifies the consumer can stop the walk at any point
func TestRangeEarlyBreak(t *testing.T) {
	var got []float64
	for v := range testE12.Range(31, 680, true) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []float64{33, 39}, got)
}

// take returns the first n values of seq.
func take(seq iter.Seq[float64], n int) []float64 {
	out := make([]float64, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}

	return out
}

// collect drains a finite sequence.
func collect(seq iter.Seq[float64]) []float64 {
	var out []float64
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// placeAtDecade shifts m by k decades the same way the engine scales values,
// dividing by a positive power of ten for negative k.
func placeAtDecade(m float64, k int) float64 {
	if k < 0 {
		return m / math.Pow10(-k)
	}

	return m * math.Pow10(k)
}
