package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eseries/errs"
)

var (
	testE12 = MustNew("E12", 0.1, []int{10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82})
	testE24 = MustNew("E24", 0.05, []int{
		10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30,
		33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91,
	})
	testE48 = MustNew("E48", 0.02, []int{
		100, 105, 110, 115, 121, 127, 133, 140, 147, 154, 162, 169,
		178, 187, 196, 205, 215, 226, 237, 249, 261, 274, 287, 301,
		316, 332, 348, 365, 383, 402, 422, 442, 464, 487, 511, 536,
		562, 590, 619, 649, 681, 715, 750, 787, 825, 866, 909, 953,
	})
)

// TestNew verifies a valid definition constructs with derived base exponent
func TestNew(t *testing.T) {
	s, err := New("E3", 0.4, []int{10, 22, 47})
	require.NoError(t, err)
	require.Equal(t, "E3", s.Name())
	require.Equal(t, 0.4, s.Tolerance())
	require.Equal(t, 1, s.BaseExponent())
	require.Equal(t, []int{10, 22, 47}, s.Mantissas())
	require.Equal(t, 3, s.Len())
}

// TestNewBaseExponent verifies the base exponent follows the table's digit count
func TestNewBaseExponent(t *testing.T) {
	tests := []struct {
		name      string
		mantissas []int
		exponent  int
	}{
		{"single digit", []int{1, 2, 5}, 0},
		{"two digits", []int{10, 22, 47}, 1},
		{"three digits", []int{100, 316}, 2},
		{"four digits", []int{1000, 2200, 4700}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("custom", 0.1, tt.mantissas)
			require.NoError(t, err)
			require.Equal(t, tt.exponent, s.BaseExponent())
		})
	}
}

// TestNewRejectsInvalidDefinitions verifies each construction error
func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		tolerance float64
		mantissas []int
		wantErr   error
	}{
		{"empty name", "", 0.1, []int{10, 22}, errs.ErrInvalidSeriesName},
		{"zero tolerance", "X", 0, []int{10, 22}, errs.ErrInvalidTolerance},
		{"negative tolerance", "X", -0.1, []int{10, 22}, errs.ErrInvalidTolerance},
		{"tolerance of one", "X", 1, []int{10, 22}, errs.ErrInvalidTolerance},
		{"empty table", "X", 0.1, nil, errs.ErrEmptyMantissas},
		{"descending table", "X", 0.1, []int{22, 10}, errs.ErrUnsortedMantissas},
		{"duplicate entry", "X", 0.1, []int{10, 22, 22, 47}, errs.ErrUnsortedMantissas},
		{"decade overflow", "X", 0.1, []int{10, 22, 100}, errs.ErrMantissaOutOfDecade},
		{"zero mantissa", "X", 0.1, []int{0, 5}, errs.ErrMantissaOutOfDecade},
		{"negative mantissa", "X", 0.1, []int{-10, 22}, errs.ErrMantissaOutOfDecade},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.label, tt.tolerance, tt.mantissas)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestMustNew verifies MustNew panics on an invalid definition
func TestMustNew(t *testing.T) {
	require.NotPanics(t, func() {
		MustNew("E3", 0.4, []int{10, 22, 47})
	})
	require.Panics(t, func() {
		MustNew("", 0.4, []int{10, 22, 47})
	})
}

// TestMantissasIsolated verifies the table cannot be mutated from outside
func TestMantissasIsolated(t *testing.T) {
	input := []int{10, 22, 47}
	s, err := New("E3", 0.4, input)
	require.NoError(t, err)

	// Mutating the input slice after construction must not change the series.
	input[0] = 99
	require.Equal(t, []int{10, 22, 47}, s.Mantissas())

	// Mutating a returned copy must not change the series either.
	got := s.Mantissas()
	got[1] = 99
	require.Equal(t, []int{10, 22, 47}, s.Mantissas())
}

// TestString verifies the Stringer implementation returns the name
func TestString(t *testing.T) {
	require.Equal(t, "E12", testE12.String())
}

// TestToleranceLimits verifies the band arithmetic around a nominal value
func TestToleranceLimits(t *testing.T) {
	lower, upper := testE12.ToleranceLimits(330)
	require.Equal(t, 297.0, lower)
	require.Equal(t, 363.0, upper)
	require.Equal(t, lower, testE12.LowerToleranceLimit(330))
	require.Equal(t, upper, testE12.UpperToleranceLimit(330))
}

// TestToleranceLimitsProperties verifies ordering and width for sampled values
func TestToleranceLimitsProperties(t *testing.T) {
	values := []float64{0.0047, 0.33, 1, 31, 330, 4700, 1.5e6}
	for _, s := range []*Series{testE12, testE24, testE48} {
		for _, v := range values {
			lower, upper := s.ToleranceLimits(v)
			require.Less(t, lower, v)
			require.Greater(t, upper, v)
			require.InEpsilon(t, 2*v*s.Tolerance(), upper-lower, 1e-12)
		}
	}
}
