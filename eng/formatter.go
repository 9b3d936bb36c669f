package eng

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/eseries/errs"
	"github.com/arloliu/eseries/internal/options"
)

const (
	// defaultDigits is the number of significant digits Format keeps when no
	// WithDigits option is given.
	defaultDigits = 3

	// maxDigits caps WithDigits at the precision a float64 can carry.
	maxDigits = 15
)

// Formatter renders and parses component values in engineering notation,
// scaling the number into [1, 1000) and attaching the matching SI prefix.
//
// The zero value is not usable; construct instances with New.
type Formatter struct {
	digits    int
	separator string
	unit      string
	ascii     bool
}

// Option represents a functional option for configuring the Formatter.
// This is a type alias for the generic Option interface specialized for Formatter.
type Option = options.Option[*Formatter]

// New creates a Formatter with the given options applied on top of the
// defaults: three significant digits, no separator, no unit, Unicode output.
//
// Returns:
//   - *Formatter: the configured formatter
//   - error: the first option validation failure, if any
//
// Example:
//
//	f, err := eng.New(eng.WithDigits(4), eng.WithUnit("Ω"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Format(4700)) // 4.7kΩ
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{digits: defaultDigits}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// setDigits sets the significant digit count.
func (f *Formatter) setDigits(n int) error {
	if n < 1 || n > maxDigits {
		return fmt.Errorf("invalid digits: %d (valid range: 1 to %d)", n, maxDigits)
	}

	f.digits = n

	return nil
}

// WithDigits sets the number of significant digits Format keeps, from 1 to 15.
func WithDigits(n int) Option {
	return options.New(func(f *Formatter) error {
		return f.setDigits(n)
	})
}

// WithSeparator sets the string placed between the number and the prefix,
// for example a space or a thin space.
func WithSeparator(sep string) Option {
	return options.NoError(func(f *Formatter) {
		f.separator = sep
	})
}

// WithUnit sets the unit symbol appended after the prefix, for example "Ω"
// or "F".
func WithUnit(unit string) Option {
	return options.NoError(func(f *Formatter) {
		f.unit = unit
	})
}

// WithASCII makes Format render the micro prefix as "u" instead of the
// Unicode micro sign.
func WithASCII(ascii bool) Option {
	return options.NoError(func(f *Formatter) {
		f.ascii = ascii
	})
}

// Format renders v in engineering notation.
//
// The value is scaled into [1, 1000) against a power-of-one-thousand
// exponent, rounded to the configured significant digits, and joined with
// the SI prefix for that exponent. Values beyond the prefix range keep the
// outermost prefix and grow or shrink the number instead. Zero renders as
// "0" and non-finite values fall through to strconv.
//
// Example:
//
//	f, _ := eng.New()
//	f.Format(4700)    // "4.7k"
//	f.Format(999.5)   // "1k"
//	f.Format(3.3e-7)  // "330n"
func (f *Formatter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	if v == 0 {
		return f.assemble(false, "0", None)
	}

	neg := math.Signbit(v)
	a := math.Abs(v)

	e3 := engExponent(a)
	if e3 > int(Yotta) {
		e3 = int(Yotta)
	} else if e3 < int(Yocto) {
		e3 = int(Yocto)
	}

	mant := shift(a, e3)
	s := f.round(mant)

	// Rounding can carry the mantissa up to the next prefix, e.g. 999.5
	// becoming 1000.
	if r, _ := strconv.ParseFloat(s, 64); r >= 1000 && e3 < int(Yotta) {
		e3++
		s = f.round(shift(a, e3))
	}

	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}

	return f.assemble(neg, s, Prefix(e3))
}

// round renders mant with the configured number of significant digits.
func (f *Formatter) round(mant float64) string {
	intDigits := 1
	for x := mant; x >= 10; x /= 10 {
		intDigits++
	}
	for x := mant; x < 1; x *= 10 {
		intDigits--
	}

	decimals := f.digits - intDigits
	if decimals < 0 {
		decimals = 0
	}

	return strconv.FormatFloat(mant, 'f', decimals, 64)
}

// assemble joins sign, number, separator, prefix symbol and unit.
func (f *Formatter) assemble(neg bool, number string, p Prefix) string {
	symbol := p.String()
	if f.ascii && p == Micro {
		symbol = "u"
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(number)
	if symbol != "" || f.unit != "" {
		b.WriteString(f.separator)
	}
	b.WriteString(symbol)
	b.WriteString(f.unit)

	return b.String()
}

// Parse converts a string in engineering notation back to a float64,
// stripping the formatter's unit suffix first when one is configured.
//
// Returns:
//   - float64: the parsed value
//   - error: errs.ErrMalformedNumber if the number part does not parse,
//     errs.ErrUnknownPrefix if the trailing rune is not an SI prefix
func (f *Formatter) Parse(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if f.unit != "" {
		t = strings.TrimSpace(strings.TrimSuffix(t, f.unit))
	}

	if t == "" {
		return 0, fmt.Errorf("%w: %q", errs.ErrMalformedNumber, s)
	}

	// A plain number, possibly in scientific notation, needs no prefix
	// handling.
	if value, err := strconv.ParseFloat(t, 64); err == nil {
		return value, nil
	}

	r, size := utf8.DecodeLastRuneInString(t)
	number := strings.TrimSpace(t[:len(t)-size])

	if p, ok := prefixFromSymbol(r); ok {
		value, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errs.ErrMalformedNumber, s)
		}

		return shift(value, -int(p)), nil
	}

	if _, err := strconv.ParseFloat(number, 64); err == nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownPrefix, string(r))
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrMalformedNumber, s)
}

// engExponent returns the power-of-one-thousand exponent that scales a into
// [1, 1000). math.Log10 is not exact at powers of ten, so the estimate is
// checked against the window and corrected.
func engExponent(a float64) int {
	dec := int(math.Floor(math.Log10(a)))
	e3 := dec / 3
	if dec < 0 && dec%3 != 0 {
		e3--
	}

	for range 2 {
		switch m := shift(a, e3); {
		case m >= 1000:
			e3++
		case m < 1:
			e3--
		default:
			return e3
		}
	}

	return e3
}

// shift returns x scaled down by 10^(3*e3). Negative shifts multiply by a
// positive power of ten rather than dividing by a fractional one, keeping
// the result correctly rounded.
func shift(x float64, e3 int) float64 {
	if e3 < 0 {
		return x * math.Pow10(-3*e3)
	}

	return x / math.Pow10(3*e3)
}
