package series

import (
	"fmt"
	"slices"

	"github.com/arloliu/eseries/errs"
)

// Series represents one preferred-number series: an ordered table of
// mantissas covering a single decade, together with the power-of-ten
// exponent the table is naturally expressed at.
//
// A Series is immutable once constructed. All methods are safe for
// concurrent use; search and iteration keep their cursor state on the
// caller's side, never on the Series.
type Series struct {
	name         string
	tolerance    float64
	baseExponent int
	mantissas    []int
}

var _ fmt.Stringer = (*Series)(nil)

// New creates a Series from a name, a tolerance and one decade's worth of
// mantissas.
//
// The base exponent is derived from the first mantissa: a table starting
// with a two-digit entry (10, 12, ...) is expressed at exponent 1, a
// three-digit table (100, 102, ...) at exponent 2, and so on. Every mantissa
// must lie in the decade implied by the first entry.
//
// Parameters:
//   - name: Unique label for the series, such as "E24"
//   - tolerance: Fractional tolerance in (0, 1), such as 0.05 for 5%
//   - mantissas: Strictly increasing positive integers spanning one decade
//
// Returns:
//   - *Series: The constructed series.
//   - error: An error wrapping errs.ErrInvalidSeriesName,
//     errs.ErrInvalidTolerance, errs.ErrEmptyMantissas,
//     errs.ErrUnsortedMantissas or errs.ErrMantissaOutOfDecade.
//
// Example:
//
//	e12, err := series.New("E12", 0.1, []int{10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(e12.FindNearest(31)) // 33
func New(name string, tolerance float64, mantissas []int) (*Series, error) {
	if name == "" {
		return nil, errs.ErrInvalidSeriesName
	}
	if tolerance <= 0 || tolerance >= 1 {
		return nil, fmt.Errorf("%w: %v is not in (0, 1)", errs.ErrInvalidTolerance, tolerance)
	}
	if len(mantissas) == 0 {
		return nil, errs.ErrEmptyMantissas
	}

	base := digits(mantissas[0]) - 1
	lo := ipow10(base)
	hi := lo * 10
	for i, m := range mantissas {
		if i > 0 && m <= mantissas[i-1] {
			return nil, fmt.Errorf("%w: %d follows %d", errs.ErrUnsortedMantissas, m, mantissas[i-1])
		}
		if m < lo || m >= hi {
			return nil, fmt.Errorf("%w: %d is outside [%d, %d)", errs.ErrMantissaOutOfDecade, m, lo, hi)
		}
	}

	return &Series{
		name:         name,
		tolerance:    tolerance,
		baseExponent: base,
		mantissas:    slices.Clone(mantissas),
	}, nil
}

// MustNew is like New but panics when the definition is invalid. It backs
// the standard series definitions in the root package.
func MustNew(name string, tolerance float64, mantissas []int) *Series {
	s, err := New(name, tolerance, mantissas)
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns the series label, such as "E24".
func (s *Series) Name() string {
	return s.name
}

// String implements fmt.Stringer and returns the series name.
func (s *Series) String() string {
	return s.name
}

// Tolerance returns the fractional tolerance of the series, such as 0.05
// for a 5% series.
func (s *Series) Tolerance() float64 {
	return s.tolerance
}

// BaseExponent returns the power-of-ten exponent the mantissa table is
// expressed at.
func (s *Series) BaseExponent() int {
	return s.baseExponent
}

// Mantissas returns a copy of the mantissa table.
func (s *Series) Mantissas() []int {
	return slices.Clone(s.mantissas)
}

// Len returns the number of mantissas in the table, which is the number of
// series members per decade.
func (s *Series) Len() int {
	return len(s.mantissas)
}

// LowerToleranceLimit returns the lower tolerance limit for a nominal value.
// The value need not be a member of the series.
func (s *Series) LowerToleranceLimit(value float64) float64 {
	return value - value*s.tolerance
}

// UpperToleranceLimit returns the upper tolerance limit for a nominal value.
// The value need not be a member of the series.
func (s *Series) UpperToleranceLimit(value float64) float64 {
	return value + value*s.tolerance
}

// ToleranceLimits returns the lower and upper tolerance limits for a nominal
// value based on the series tolerance.
//
// Example:
//
//	lower, upper := e12.ToleranceLimits(330) // 297, 363 for the 10% series
func (s *Series) ToleranceLimits(value float64) (lower, upper float64) {
	return s.LowerToleranceLimit(value), s.UpperToleranceLimit(value)
}

// digits returns the number of decimal digits of n. Values below 10,
// including zero and negatives, count as one digit; New rejects them through
// the decade containment check.
func digits(n int) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}

	return count
}

// ipow10 returns 10^n for small non-negative n.
func ipow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}

	return p
}
