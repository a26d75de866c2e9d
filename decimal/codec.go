package decimal

import (
	"github.com/calebcase/dpd/declet"
)

// Combination field patterns.
const (
	combinationSpecial  uint64 = 0b1111
	combinationAlt      uint64 = 0b11
	combinationNaN      uint64 = 0b11111
	combinationInfinity uint64 = 0b11110
)

// FromBits64 decodes a decimal64 pattern.
func FromBits64(bits uint64) Value {
	v, _ := Decode(Bits128{Lo: bits}, Decimal64)

	return v
}

// ToBits64 encodes v as a decimal64 pattern.
func ToBits64(v Value) (uint64, error) {
	b, err := Encode(v, Decimal64)
	if err != nil {
		return 0, err
	}

	return b.Lo, nil
}

// FromBits128 decodes a decimal128 pattern.
func FromBits128(bits Bits128) Value {
	v, _ := Decode(bits, Decimal128)

	return v
}

// ToBits128 encodes v as a decimal128 pattern.
func ToBits128(v Value) (Bits128, error) {
	return Encode(v, Decimal128)
}

// Decode decodes the pattern b laid out per f. Decimal64 patterns occupy
// the low half of b.
func Decode(b Bits128, f Format) (v Value, err error) {
	l, err := f.layout()
	if err != nil {
		return v, err
	}

	v.Negative = b.field(l.sign, 1) == 1

	combination := b.field(l.combination, 5)

	if combination>>1 == combinationSpecial {
		if combination&1 == 1 {
			v.NaN = true
			v.Signaling = b.field(l.combination-1, 1) == 1
		} else {
			v.Infinity = true
		}

		return v, nil
	}

	var high uint64
	var lead uint8

	if combination>>3 == combinationAlt {
		high = combination >> 1 & 0b11
		lead = 8 | uint8(combination&1)
	} else {
		high = combination >> 3
		lead = uint8(combination & 0b111)
	}

	biased := high<<l.width | b.field(l.continuation, l.width)
	v.Exponent = int(biased) - f.MinExp

	digits := make([]byte, 0, f.Digits)
	digits = declet.AppendDigit(digits, lead)

	for i := l.declets - 1; i >= 0; i-- {
		code := b.field(uint(i)*10, 10)
		digits = declet.AppendDigits(digits, uint16(code))
	}

	if len(digits) == 0 {
		v.Digits = "0"
	} else {
		v.Digits = string(digits)
	}

	return v, nil
}

// Encode encodes v laid out per f. Decimal64 patterns occupy the low half
// of the result.
func Encode(v Value, f Format) (b Bits128, err error) {
	l, err := f.layout()
	if err != nil {
		return b, err
	}

	if v.Negative {
		b = b.setField(l.sign, 1, 1)
	}

	switch {
	case v.NaN:
		return b.setField(l.combination, 5, combinationNaN), nil
	case v.Infinity:
		return b.setField(l.combination, 5, combinationInfinity), nil
	}

	if v.Exponent < -f.MinExp || v.Exponent > f.MaxExp {
		return Bits128{}, RangeError.New(
			"exponent out of range: exponent=%d min=%d max=%d",
			v.Exponent,
			-f.MinExp,
			f.MaxExp,
		)
	}

	digits, err := coefficient(v.Digits)
	if err != nil {
		return Bits128{}, err
	}

	if len(digits) > f.Digits {
		return Bits128{}, RangeError.New(
			"coefficient too long: digits=%d max=%d",
			len(digits),
			f.Digits,
		)
	}

	// Consume the coefficient from its least significant end, three digits
	// per declet. Positions before the start of the string are zero.
	pos := len(digits)
	digit := func() uint8 {
		pos--
		if pos < 0 {
			return 0
		}

		return digits[pos] - '0'
	}

	for i := 0; i < l.declets; i++ {
		d2 := digit()
		d1 := digit()
		d0 := digit()

		b = b.setField(uint(i)*10, 10, uint64(declet.Encode(d0, d1, d2)))
	}

	lead := uint64(digit())

	biased := uint64(v.Exponent + f.MinExp)
	high := biased >> l.width

	var combination uint64
	if lead >= 8 {
		combination = combinationAlt<<3 | high<<1 | lead&1
	} else {
		combination = high<<3 | lead
	}

	b = b.setField(l.combination, 5, combination)
	b = b.setField(l.continuation, l.width, biased)

	return b, nil
}

// coefficient validates digits and strips its leading zeros. The result is
// empty for zero.
func coefficient(digits string) (string, error) {
	if digits == "" {
		return "", Error.New("empty coefficient")
	}

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return "", Error.New("invalid coefficient digit: %q at offset %d", c, i)
		}
	}

	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
	}

	return digits, nil
}
