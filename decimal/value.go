package decimal

// Value is a decimal number: (-1)^Negative * Digits * 10^Exponent.
//
// Digits holds ASCII decimal digits, most significant first, without
// leading zeros. Zero is "0". When NaN or Infinity is set Digits and
// Exponent are ignored.
type Value struct {
	Negative bool
	NaN      bool
	Infinity bool

	// Signaling is set when a decoded NaN was a signalling NaN. It is not
	// carried into text and encoding always produces a quiet NaN.
	Signaling bool

	Digits   string
	Exponent int
}

// NaN returns a quiet NaN.
func NaN() Value {
	return Value{NaN: true}
}

// Infinity returns positive or negative infinity.
func Infinity(negative bool) Value {
	return Value{Negative: negative, Infinity: true}
}

// Zero returns zero with the given exponent.
func Zero(exponent int) Value {
	return Value{Digits: "0", Exponent: exponent}
}

// IsSpecial reports whether v is NaN or an infinity.
func (v Value) IsSpecial() bool {
	return v.NaN || v.Infinity
}

// IsZero reports whether v is a (possibly signed) zero.
func (v Value) IsZero() bool {
	if v.IsSpecial() {
		return false
	}

	for i := 0; i < len(v.Digits); i++ {
		if v.Digits[i] != '0' {
			return false
		}
	}

	return true
}

// Format returns the text form of v using f.
func (v Value) Format(f Format) string {
	return String(v, f)
}

// String returns the text form of v using Decimal128.
func (v Value) String() string {
	return String(v, Decimal128)
}
