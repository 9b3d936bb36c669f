// Package eseries provides fast lookups of preferred component values in the
// IEC 60063 E-series (E3 through E192) used for resistors, capacitors,
// inductors and zener diodes.
//
// Each series steps through a decade in roughly constant relative steps, so
// the same mantissa table serves every magnitude: E12 contains 4.7 exactly as
// it contains 47Ω, 4.7kΩ and 47nF. Lookups scale a query into the table's
// decade, binary-search the table, and walk across decade boundaries when a
// sequence runs past either end.
//
// # Core Features
//
//   - The seven standard series (E3-E192) as ready-made immutable values
//   - Directional lookups: greater-or-equal, greater, less-or-equal, less
//   - Nearest-value lookup by relative error, with one-to-three candidates
//   - Lazy ascending, descending and bounded range sequences (iter.Seq)
//   - Tolerance band arithmetic for any series value
//   - Hash-based series identification (64-bit xxHash64)
//   - Engineering-notation rendering and parsing in the eng subpackage
//
// # Basic Usage
//
// Snapping a computed value to the nearest standard part:
//
//	import "github.com/arloliu/eseries"
//
//	// A divider calculation asks for 31kΩ; E12 stocks 33kΩ.
//	value, _ := eseries.FindNearest(eseries.E12, 31000)
//	fmt.Println(value) // 33000
//
//	// Candidates on both sides for a second pass.
//	few, _ := eseries.FindNearestFew(eseries.E12, 31000, 3)
//	fmt.Println(few) // [27000 33000 39000]
//
// Enumerating the standard values inside a window:
//
//	values, _ := eseries.Range(eseries.E12, 31, 680)
//	for v := range values {
//	    fmt.Println(v) // 33, 39, 47, ..., 560, 680
//	}
//
// Looking a series up dynamically:
//
//	s, err := eseries.FromName("E24")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lower, upper, _ := eseries.ToleranceLimits(s, 330)
//
// # Package Structure
//
// This package provides validated top-level wrappers around the series
// package, simplifying the most common use cases; every function here checks
// its inputs and reports failures with sentinel errors from the errs
// package. For custom tables or validation-free lookups on hot paths, use
// the series package directly.
package eseries

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/eseries/errs"
	"github.com/arloliu/eseries/internal/hash"
	"github.com/arloliu/eseries/series"
)

// MinValue is the smallest query value the checked lookup functions accept.
// Values at least this large keep every decade computation inside the
// normal float64 range, clear of the denormal tail where relative-error
// arithmetic degrades.
const MinValue = 1e-200

// The seven standard series defined by IEC 60063. Two-digit series carry
// their catalog mantissas in [10, 100), three-digit series in [100, 1000);
// the decade-scaling search makes the magnitude irrelevant.
var (
	E3  = series.MustNew("E3", 0.4, []int{10, 22, 47})
	E6  = series.MustNew("E6", 0.2, []int{10, 15, 22, 33, 47, 68})
	E12 = series.MustNew("E12", 0.1, []int{10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82})
	E24 = series.MustNew("E24", 0.05, []int{
		10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30,
		33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91,
	})
	E48 = series.MustNew("E48", 0.02, []int{
		100, 105, 110, 115, 121, 127, 133, 140, 147, 154, 162, 169,
		178, 187, 196, 205, 215, 226, 237, 249, 261, 274, 287, 301,
		316, 332, 348, 365, 383, 402, 422, 442, 464, 487, 511, 536,
		562, 590, 619, 649, 681, 715, 750, 787, 825, 866, 909, 953,
	})
	E96 = series.MustNew("E96", 0.01, []int{
		100, 102, 105, 107, 110, 113, 115, 118, 121, 124, 127, 130,
		133, 137, 140, 143, 147, 150, 154, 158, 162, 165, 169, 174,
		178, 182, 187, 191, 196, 200, 205, 210, 215, 221, 226, 232,
		237, 243, 249, 255, 261, 267, 274, 280, 287, 294, 301, 309,
		316, 324, 332, 340, 348, 357, 365, 374, 383, 392, 402, 412,
		422, 432, 442, 453, 464, 475, 487, 499, 511, 523, 536, 549,
		562, 576, 590, 604, 619, 634, 649, 665, 681, 698, 715, 732,
		750, 768, 787, 806, 825, 845, 866, 887, 909, 931, 953, 976,
	})
	E192 = series.MustNew("E192", 0.005, []int{
		100, 101, 102, 104, 105, 106, 107, 109, 110, 111, 113, 114,
		115, 117, 118, 120, 121, 123, 124, 126, 127, 129, 130, 132,
		133, 135, 137, 138, 140, 142, 143, 145, 147, 149, 150, 152,
		154, 156, 158, 160, 162, 164, 165, 167, 169, 172, 174, 176,
		178, 180, 182, 184, 187, 189, 191, 193, 196, 198, 200, 203,
		205, 208, 210, 213, 215, 218, 221, 223, 226, 229, 232, 234,
		237, 240, 243, 246, 249, 252, 255, 258, 261, 264, 267, 271,
		274, 277, 280, 284, 287, 291, 294, 298, 301, 305, 309, 312,
		316, 320, 324, 328, 332, 336, 340, 344, 348, 352, 357, 361,
		365, 370, 374, 379, 383, 388, 392, 397, 402, 407, 412, 417,
		422, 427, 432, 437, 442, 448, 453, 459, 464, 470, 475, 481,
		487, 493, 499, 505, 511, 517, 523, 530, 536, 542, 549, 556,
		562, 569, 576, 583, 590, 597, 604, 612, 619, 626, 634, 642,
		649, 657, 665, 673, 681, 690, 698, 706, 715, 723, 732, 741,
		750, 759, 768, 777, 787, 796, 806, 816, 825, 835, 845, 856,
		866, 876, 887, 898, 909, 920, 931, 942, 953, 965, 976, 988,
	})
)

// standard lists the registered series widest tolerance first. Lookup maps
// are built from it once at startup and never mutated afterward.
var standard = []*series.Series{E3, E6, E12, E24, E48, E96, E192}

var (
	byName = make(map[string]*series.Series, len(standard))
	byID   = make(map[uint64]*series.Series, len(standard))
)

func init() {
	for _, s := range standard {
		if _, ok := byName[s.Name()]; ok {
			panic(fmt.Sprintf("eseries: duplicate series name %q", s.Name()))
		}

		id := hash.ID(s.Name())
		if dup, ok := byID[id]; ok {
			panic(fmt.Sprintf("eseries: series ID collision between %q and %q", dup.Name(), s.Name()))
		}

		byName[s.Name()] = s
		byID[id] = s
	}
}

// FromName returns the standard series with the given name.
//
// Parameters:
//   - name: the series name, case-sensitive, for example "E24"
//
// Returns:
//   - *series.Series: the named series
//   - error: errs.ErrUnknownSeries listing the supported names when no
//     series matches
//
// Example:
//
//	s, err := eseries.FromName("E24")
//	if err != nil {
//	    log.Fatal(err)
//	}
func FromName(name string) (*series.Series, error) {
	s, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported series: %s)",
			errs.ErrUnknownSeries, name, strings.Join(Names(), ", "))
	}

	return s, nil
}

// FromTolerance returns the standard series whose tolerance matches exactly,
// for example 0.1 for E12 or 0.01 for E96.
//
// Returns:
//   - *series.Series: the matching series
//   - error: errs.ErrUnknownTolerance listing the supported tolerances when
//     none matches
func FromTolerance(tolerance float64) (*series.Series, error) {
	for _, s := range standard {
		if s.Tolerance() == tolerance {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %v (supported tolerances: %s)",
		errs.ErrUnknownTolerance, tolerance, toleranceList())
}

// toleranceList renders the registered tolerances for error messages.
func toleranceList() string {
	parts := make([]string, len(standard))
	for i, s := range standard {
		parts[i] = strconv.FormatFloat(s.Tolerance(), 'g', -1, 64)
	}

	return strings.Join(parts, ", ")
}

// FromID returns the standard series whose xxHash64 name ID matches id.
// IDs come from SeriesID and stay stable across processes and versions.
//
// Returns:
//   - *series.Series: the matching series
//   - error: errs.ErrUnknownSeries when no registered series has the ID
func FromID(id uint64) (*series.Series, error) {
	s, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: no series with ID 0x%016x", errs.ErrUnknownSeries, id)
	}

	return s, nil
}

// All returns the standard series, widest tolerance first. The returned
// slice is a fresh copy; callers may reorder or truncate it freely.
func All() []*series.Series {
	return slices.Clone(standard)
}

// Names returns the names of the standard series, in the same order as All.
func Names() []string {
	names := make([]string, len(standard))
	for i, s := range standard {
		names[i] = s.Name()
	}

	return names
}

// FindGreaterOrEqual returns the smallest value in the series that is
// greater than or equal to value.
//
// Parameters:
//   - s: the series to search, typically one of the package-level series
//   - value: the positive query value
//
// Returns:
//   - float64: the found series value
//   - error: errs.ErrUnknownSeries for a nil series, errs.ErrNonFiniteValue
//     for NaN or infinities, errs.ErrValueOutOfRange below MinValue
//
// Example:
//
//	v, err := eseries.FindGreaterOrEqual(eseries.E12, 31)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // 33
func FindGreaterOrEqual(s *series.Series, value float64) (float64, error) {
	if err := validate(s, value); err != nil {
		return 0, err
	}

	return s.FindGreaterOrEqual(value), nil
}

// FindGreater returns the smallest value in the series strictly greater
// than value. Validation matches FindGreaterOrEqual.
func FindGreater(s *series.Series, value float64) (float64, error) {
	if err := validate(s, value); err != nil {
		return 0, err
	}

	return s.FindGreater(value), nil
}

// FindLessOrEqual returns the largest value in the series less than or
// equal to value. Validation matches FindGreaterOrEqual.
func FindLessOrEqual(s *series.Series, value float64) (float64, error) {
	if err := validate(s, value); err != nil {
		return 0, err
	}

	return s.FindLessOrEqual(value), nil
}

// FindLess returns the largest value in the series strictly less than
// value. Validation matches FindGreaterOrEqual.
func FindLess(s *series.Series, value float64) (float64, error) {
	if err := validate(s, value); err != nil {
		return 0, err
	}

	return s.FindLess(value), nil
}

// FindNearest returns the series value closest to value by relative error.
// When the neighbors above and below are equally close, the lower one wins.
// Validation matches FindGreaterOrEqual.
//
// Example:
//
//	v, _ := eseries.FindNearest(eseries.E12, 31) // 33
//	v, _ = eseries.FindNearest(eseries.E12, 29)  // 27
func FindNearest(s *series.Series, value float64) (float64, error) {
	if err := validate(s, value); err != nil {
		return 0, err
	}

	return s.FindNearest(value), nil
}

// FindNearestFew returns one, two or three candidate values around value,
// in increasing order. Three candidates always cover both sides of value.
//
// Parameters:
//   - s: the series to search
//   - value: the positive query value
//   - count: the number of candidates, 1 to 3
//
// Returns:
//   - []float64: the candidates in increasing order
//   - error: the validation errors of FindGreaterOrEqual, plus
//     errs.ErrInvalidCount when count is outside 1..3
//
// Example:
//
//	few, err := eseries.FindNearestFew(eseries.E12, 100, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(few) // [82 100 120]
func FindNearestFew(s *series.Series, value float64, count int) ([]float64, error) {
	if err := validate(s, value); err != nil {
		return nil, err
	}

	return s.FindNearestFew(value, count)
}

// Range returns the series values from start to stop inclusive, in
// increasing order, as a lazy sequence.
//
// Parameters:
//   - s: the series to enumerate
//   - start: the inclusive lower bound
//   - stop: the inclusive upper bound; start == stop is allowed
//
// Returns:
//   - iter.Seq[float64]: the values within the bounds
//   - error: the validation errors of FindGreaterOrEqual applied to both
//     bounds, plus errs.ErrInvalidRange when start is above stop
//
// Example:
//
//	values, err := eseries.Range(eseries.E12, 31, 680)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for v := range values {
//	    fmt.Println(v) // 33, 39, ..., 680
//	}
func Range(s *series.Series, start, stop float64) (iter.Seq[float64], error) {
	if err := validateRange(s, start, stop); err != nil {
		return nil, err
	}

	return s.Range(start, stop, true), nil
}

// OpenRange returns the series values from start inclusive to stop
// exclusive, in increasing order. Validation matches Range.
func OpenRange(s *series.Series, start, stop float64) (iter.Seq[float64], error) {
	if err := validateRange(s, start, stop); err != nil {
		return nil, err
	}

	return s.Range(start, stop, false), nil
}

// ToleranceLimits returns the band the series guarantees for a nominal
// value, lower and upper bound in that order.
//
// Example:
//
//	lower, upper, _ := eseries.ToleranceLimits(eseries.E12, 330)
//	fmt.Println(lower, upper) // 297 363
func ToleranceLimits(s *series.Series, value float64) (lower, upper float64, err error) {
	if s == nil {
		return 0, 0, fmt.Errorf("%w: nil series", errs.ErrUnknownSeries)
	}

	lower, upper = s.ToleranceLimits(value)

	return lower, upper, nil
}

// LowerToleranceLimit returns the lower bound of the series' tolerance band
// around a nominal value.
func LowerToleranceLimit(s *series.Series, value float64) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil series", errs.ErrUnknownSeries)
	}

	return s.LowerToleranceLimit(value), nil
}

// UpperToleranceLimit returns the upper bound of the series' tolerance band
// around a nominal value.
func UpperToleranceLimit(s *series.Series, value float64) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil series", errs.ErrUnknownSeries)
	}

	return s.UpperToleranceLimit(value), nil
}

// validate screens the series handle and query value for the checked
// lookup functions.
func validate(s *series.Series, value float64) error {
	if s == nil {
		return fmt.Errorf("%w: nil series", errs.ErrUnknownSeries)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", errs.ErrNonFiniteValue, value)
	}

	if value < MinValue {
		return fmt.Errorf("%w: %v is below the minimum %v", errs.ErrValueOutOfRange, value, MinValue)
	}

	return nil
}

// validateRange screens both bounds of Range and OpenRange.
func validateRange(s *series.Series, start, stop float64) error {
	if err := validate(s, start); err != nil {
		return err
	}

	if err := validate(s, stop); err != nil {
		return err
	}

	if start > stop {
		return fmt.Errorf("%w: start %v is above stop %v", errs.ErrInvalidRange, start, stop)
	}

	return nil
}

// SeriesID returns the 64-bit xxHash64 ID of a series name.
//
// The hash is deterministic and stable, so IDs computed here match IDs
// stored elsewhere or computed by other processes. Registered names map
// back to their series through FromID.
//
// Use this function to:
//   - Key series handles in compact numeric tables
//   - Reference a series in binary formats without embedding the name
//
// Example:
//
//	id := eseries.SeriesID("E12")
//	s, _ := eseries.FromID(id)
func SeriesID(name string) uint64 {
	return hash.ID(name)
}
