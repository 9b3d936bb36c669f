// Package eng renders and parses component values in engineering notation,
// the form electronics catalogs print: a number in [1, 1000) followed by an
// SI prefix, such as "4.7k" or "330n".
//
// # Formatting
//
// The package-level Format covers the common case:
//
//	eng.Format(4700)   // "4.7k"
//	eng.Format(0.0022) // "2.2m"
//
// A Formatter customizes significant digits, the separator between number
// and prefix, a unit symbol, and ASCII-only output:
//
//	f, err := eng.New(eng.WithDigits(4), eng.WithUnit("Ω"), eng.WithSeparator(" "))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f.Format(4700) // "4.7 kΩ"
//
// # Parsing
//
// Parse reverses the rendering, accepting plain numbers, scientific
// notation, and a trailing SI prefix. The micro prefix is accepted as "u",
// the micro sign and the Greek mu:
//
//	eng.Parse("4.7k") // 4700
//	eng.Parse("1µ")   // 1e-6
//
// Parsing failures carry errs.ErrMalformedNumber or errs.ErrUnknownPrefix.
//
// # Thread Safety
//
// A Formatter is immutable after New and safe for concurrent use.
package eng
