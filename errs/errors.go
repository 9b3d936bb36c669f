// Package errs defines the sentinel errors returned by the eseries library.
//
// All errors returned by this module wrap one of these sentinels, so callers
// can classify failures with errors.Is regardless of the contextual detail
// added at the call site.
package errs

import "errors"

// Series construction errors.
var (
	// ErrInvalidSeriesName is returned when a series is constructed with an
	// empty name.
	ErrInvalidSeriesName = errors.New("invalid series name")

	// ErrInvalidTolerance is returned when a series tolerance is not a
	// fraction in the open interval (0, 1).
	ErrInvalidTolerance = errors.New("tolerance out of range")

	// ErrEmptyMantissas is returned when a series is constructed with an
	// empty mantissa table.
	ErrEmptyMantissas = errors.New("empty mantissa table")

	// ErrUnsortedMantissas is returned when a mantissa table is not strictly
	// increasing.
	ErrUnsortedMantissas = errors.New("mantissas not strictly increasing")

	// ErrMantissaOutOfDecade is returned when a mantissa lies outside the
	// decade implied by the first table entry.
	ErrMantissaOutOfDecade = errors.New("mantissa outside base decade")
)

// Registry lookup errors.
var (
	// ErrUnknownSeries is returned when no registered series matches the
	// requested name or ID.
	ErrUnknownSeries = errors.New("unknown series")

	// ErrUnknownTolerance is returned when no registered series carries the
	// requested tolerance.
	ErrUnknownTolerance = errors.New("unknown series tolerance")
)

// Query validation errors.
var (
	// ErrInvalidCount is returned when a nearest-few count is not 1, 2 or 3.
	ErrInvalidCount = errors.New("invalid candidate count")

	// ErrNonFiniteValue is returned when a query value or range bound is NaN
	// or infinite.
	ErrNonFiniteValue = errors.New("value is not finite")

	// ErrValueOutOfRange is returned when a query value or range bound is
	// below the minimum supported magnitude.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidRange is returned when a range start bound exceeds its stop
	// bound.
	ErrInvalidRange = errors.New("invalid range bounds")
)

// Engineering notation errors.
var (
	// ErrMalformedNumber is returned when a string cannot be parsed as an
	// engineering-notation value.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrUnknownPrefix is returned when a string carries an unrecognized SI
	// prefix.
	ErrUnknownPrefix = errors.New("unknown SI prefix")
)
