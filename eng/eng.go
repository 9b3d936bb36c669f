package eng

// defaultFormatter backs the package-level Format and Parse.
var defaultFormatter = &Formatter{digits: defaultDigits}

// Format renders v in engineering notation with the default settings:
// three significant digits, no separator, no unit, Unicode micro sign.
//
// Example:
//
//	eng.Format(4700)   // "4.7k"
//	eng.Format(3.3e-7) // "330n"
func Format(v float64) string {
	return defaultFormatter.Format(v)
}

// Parse converts a string in engineering notation to a float64 using the
// default settings. See Formatter.Parse for the accepted forms and errors.
//
// Example:
//
//	v, err := eng.Parse("4.7k") // 4700
func Parse(s string) (float64, error) {
	return defaultFormatter.Parse(s)
}
