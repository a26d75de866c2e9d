package decimal

import (
	"strconv"
	"strings"
)

// String formats v using the separator and digit count of f.
//
// Negative exponents smaller in magnitude than the format's digit count are
// written as a fraction ("0.005"). Any other nonzero exponent is written as
// a " E" suffix ("12 E3", "1 E-40").
func String(v Value, f Format) string {
	switch {
	case v.NaN:
		return "NaN"
	case v.Infinity:
		return "Infinity"
	case v.IsZero():
		return "0"
	}

	digits := v.Digits
	exponent := v.Exponent

	sb := &strings.Builder{}

	if v.Negative {
		sb.WriteByte('-')
	}

	if exponent < 0 && -exponent < f.Digits {
		places := -exponent

		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}

		sb.WriteString(digits[:len(digits)-places])
		sb.WriteByte(f.separator())
		sb.WriteString(digits[len(digits)-places:])

		return sb.String()
	}

	sb.WriteString(digits)

	if exponent != 0 {
		sb.WriteString(" E")
		sb.WriteString(strconv.Itoa(exponent))
	}

	return sb.String()
}
