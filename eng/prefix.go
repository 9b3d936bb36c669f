package eng

// Prefix is an SI magnitude prefix. Each step is a power of one thousand,
// from Yocto (10^-24) up to Yotta (10^24).
type Prefix int8

const (
	Yocto Prefix = -8 // y, 10^-24
	Zepto Prefix = -7 // z, 10^-21
	Atto  Prefix = -6 // a, 10^-18
	Femto Prefix = -5 // f, 10^-15
	Pico  Prefix = -4 // p, 10^-12
	Nano  Prefix = -3 // n, 10^-9
	Micro Prefix = -2 // µ, 10^-6
	Milli Prefix = -1 // m, 10^-3
	None  Prefix = 0  // no prefix
	Kilo  Prefix = 1  // k, 10^3
	Mega  Prefix = 2  // M, 10^6
	Giga  Prefix = 3  // G, 10^9
	Tera  Prefix = 4  // T, 10^12
	Peta  Prefix = 5  // P, 10^15
	Exa   Prefix = 6  // E, 10^18
	Zetta Prefix = 7  // Z, 10^21
	Yotta Prefix = 8  // Y, 10^24
)

var symbols = [...]string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// String returns the SI symbol, e.g. "k" for Kilo. Micro renders as the
// Unicode micro sign; Formatter substitutes "u" in ASCII mode.
func (p Prefix) String() string {
	if p < Yocto || p > Yotta {
		return "Unknown"
	}

	return symbols[p-Yocto]
}

// Exponent returns the decimal exponent the prefix stands for, e.g. 3 for
// Kilo and -6 for Micro.
func (p Prefix) Exponent() int {
	return 3 * int(p)
}

// prefixFromSymbol maps a symbol rune to its Prefix. Micro is accepted as
// "u", U+00B5 MICRO SIGN and U+03BC GREEK SMALL LETTER MU.
func prefixFromSymbol(r rune) (Prefix, bool) {
	switch r {
	case 'y':
		return Yocto, true
	case 'z':
		return Zepto, true
	case 'a':
		return Atto, true
	case 'f':
		return Femto, true
	case 'p':
		return Pico, true
	case 'n':
		return Nano, true
	case 'u', 'µ', 'μ':
		return Micro, true
	case 'm':
		return Milli, true
	case 'k':
		return Kilo, true
	case 'M':
		return Mega, true
	case 'G':
		return Giga, true
	case 'T':
		return Tera, true
	case 'P':
		return Peta, true
	case 'E':
		return Exa, true
	case 'Z':
		return Zetta, true
	case 'Y':
		return Yotta, true
	default:
		return None, false
	}
}
