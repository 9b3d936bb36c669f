package series

import (
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/arloliu/eseries/errs"
)

// Ascending returns an infinite sequence of series values in increasing order,
// starting at the smallest value greater than or equal to value.
//
// The sequence never terminates on its own; callers break out of the loop or
// bound it themselves. Each call returns an independent cursor, so the same
// sequence can be ranged over multiple times.
//
// The value must be positive.
//
// Example:
//
//	for v := range e12.Ascending(31) {
//		fmt.Println(v) // 33, 39, 47, 56, ...
//	}
func (s *Series) Ascending(value float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		e := s.decade(value)
		index := sort.Search(len(s.mantissas), func(i int) bool {
			return scale(float64(s.mantissas[i]), e) >= value
		})

		for {
			if index == len(s.mantissas) {
				index = 0
				e++
			}

			if !yield(scale(float64(s.mantissas[index]), e)) {
				return
			}

			index++
		}
	}
}

// Descending returns an infinite sequence of series values in decreasing
// order, starting at the largest value less than or equal to value.
//
// The sequence never terminates on its own; callers break out of the loop or
// bound it themselves. Each call returns an independent cursor.
//
// The value must be positive.
func (s *Series) Descending(value float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		e := s.decade(value)
		index := sort.Search(len(s.mantissas), func(i int) bool {
			return scale(float64(s.mantissas[i]), e) > value
		}) - 1

		for {
			if index < 0 {
				index = len(s.mantissas) - 1
				e--
			}

			if !yield(scale(float64(s.mantissas[index]), e)) {
				return
			}

			index--
		}
	}
}

// FindGreaterOrEqual returns the smallest series value greater than or equal
// to value.
func (s *Series) FindGreaterOrEqual(value float64) float64 {
	return first(s.Ascending(value))
}

// FindGreater returns the smallest series value strictly greater than value.
func (s *Series) FindGreater(value float64) float64 {
	return firstNot(s.Ascending(value), value)
}

// FindLessOrEqual returns the largest series value less than or equal to
// value.
func (s *Series) FindLessOrEqual(value float64) float64 {
	return first(s.Descending(value))
}

// FindLess returns the largest series value strictly less than value.
func (s *Series) FindLess(value float64) float64 {
	return firstNot(s.Descending(value), value)
}

// FindNearest returns the series value closest to value by relative error.
// When the neighbors above and below are equally close, the lower one wins.
func (s *Series) FindNearest(value float64) float64 {
	up := s.FindGreaterOrEqual(value)
	down := s.FindLessOrEqual(value)

	if math.Abs(up/value-1) < math.Abs(down/value-1) {
		return up
	}

	return down
}

// FindNearestFew returns count candidate values around value, in increasing
// order. The anchor candidate is the largest series value less than or equal
// to value; count 2 adds its lower neighbor and count 3 additionally adds the
// first series value above the anchor.
//
// Parameters:
//   - value: the positive target value
//   - count: the number of candidates, which must be 1, 2 or 3
//
// Returns:
//   - []float64: the candidates in increasing order
//   - error: errs.ErrInvalidCount if count is outside 1..3
func (s *Series) FindNearestFew(value float64, count int) ([]float64, error) {
	if count < 1 || count > 3 {
		return nil, fmt.Errorf("%w: %d is not 1, 2 or 3", errs.ErrInvalidCount, count)
	}

	next, stop := iter.Pull(s.Descending(value))
	defer stop()

	anchor, _ := next()
	lower, _ := next()

	switch count {
	case 1:
		return []float64{anchor}, nil
	case 2:
		return []float64{lower, anchor}, nil
	default:
		bigger := firstNot(s.Ascending(value), anchor)

		return []float64{lower, anchor, bigger}, nil
	}
}

// Range returns the series values between start and stop in increasing order.
// The start bound is always inclusive; includeStop controls whether a value
// equal to stop is yielded. A start above stop produces an empty sequence.
func (s *Series) Range(start, stop float64, includeStop bool) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range s.Ascending(start) {
			if v > stop || (!includeStop && v == stop) {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// decade returns the exponent e such that value falls in the mantissa window
// [10^baseExponent, 10^(baseExponent+1)) once divided by 10^e.
//
// math.Log10 is not correctly rounded at powers of ten, e.g.
// math.Log10(1000) == 2.9999999999999996, so the initial estimate is checked
// against the window and corrected. The loop is bounded: the estimate is off
// by at most one, and a value within rounding distance of a window edge may
// see both corrections once before the walks resolve it via wraparound.
func (s *Series) decade(value float64) int {
	e := int(math.Floor(math.Log10(value))) - s.baseExponent
	lo := math.Pow10(s.baseExponent)
	hi := math.Pow10(s.baseExponent + 1)

	for range 2 {
		switch p := scale(value, -e); {
		case p >= hi:
			e++
		case p < lo:
			e--
		default:
			return e
		}
	}

	return e
}

// scale returns x shifted by e decades. Negative shifts divide by a positive
// power of ten rather than multiplying by a fractional one, which keeps the
// result correctly rounded for the table's integer mantissas.
func scale(x float64, e int) float64 {
	if e < 0 {
		return x / math.Pow10(-e)
	}

	return x * math.Pow10(e)
}

// first returns the leading element of seq.
func first(seq iter.Seq[float64]) float64 {
	for v := range seq {
		return v
	}

	return math.NaN()
}

// firstNot returns the leading element of seq that differs from excluded.
func firstNot(seq iter.Seq[float64], excluded float64) float64 {
	for v := range seq {
		if v != excluded {
			return v
		}
	}

	return math.NaN()
}
