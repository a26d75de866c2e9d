// Package integer provides a signed 128 bit integer and its conversion to
// and from decimal text.
//
// Conversions use the double dabble algorithm on a register made of a 40
// digit packed BCD scratch area followed by the 128 bit binary value:
//
//  | bcd[0] ... bcd[19] || hi (64 bits) | lo (64 bits) |
//  |--------------------||-------------|--------------|
//  | 2 digits per byte  || binary value               |
//  |--------------------||-------------|--------------|
//
// Formatting shifts the binary value left into the BCD area, adding 3 to
// every digit of 5 or more before each shift. Parsing runs the inverse:
// the digits are loaded into the BCD area and shifted right into the
// binary area, subtracting 3 from every digit of 8 or more after each
// shift. No wide division is needed in either direction.
package integer

import (
	"math/big"
)

// Int128 is a signed 128 bit two's complement integer.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// Limits.
var (
	Min = Int128{Hi: 1 << 63}
	Max = Int128{Hi: 1<<63 - 1, Lo: 1<<64 - 1}
)

// New returns the integer with the given two's complement halves.
func New(hi, lo uint64) Int128 {
	return Int128{Hi: hi, Lo: lo}
}

// FromInt64 returns v sign extended to 128 bits.
func FromInt64(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: 1<<64 - 1, Lo: uint64(v)}
	}

	return Int128{Lo: uint64(v)}
}

// IsZero reports whether i is zero.
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// IsNegative reports whether the sign bit of i is set.
func (i Int128) IsNegative() bool {
	return i.Hi>>63 == 1
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.IsZero():
		return 0
	case i.IsNegative():
		return -1
	default:
		return 1
	}
}

// Neg returns the two's complement negation of i. Min negates to itself.
func (i Int128) Neg() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}

	return Int128{Hi: hi, Lo: lo}
}

// magnitude returns the absolute value of i as an unsigned 128 bit pattern.
func (i Int128) magnitude() (m Int128, negative bool) {
	if i.IsNegative() {
		return i.Neg(), true
	}

	return i, false
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	m, negative := i.magnitude()

	b := new(big.Int).SetUint64(m.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(m.Lo))

	if negative {
		b.Neg(b)
	}

	return b
}

// FromBig returns b as an Int128.
func FromBig(b *big.Int) (i Int128, err error) {
	if b.BitLen() > 128 {
		return Int128{}, RangeError.New("too big: %s", b)
	}

	var buf [16]byte
	new(big.Int).Abs(b).FillBytes(buf[:])

	for _, c := range buf[:8] {
		i.Hi = i.Hi<<8 | uint64(c)
	}
	for _, c := range buf[8:] {
		i.Lo = i.Lo<<8 | uint64(c)
	}

	return signed(i, b.Sign() < 0, b.String())
}

// signed applies the sign to the unsigned magnitude m and checks that the
// result is in range.
func signed(m Int128, negative bool, text string) (Int128, error) {
	switch {
	case m.IsZero():
		return m, nil
	case negative:
		i := m.Neg()
		if !i.IsNegative() {
			return Int128{}, RangeError.New("too small: %s", text)
		}

		return i, nil
	case m.IsNegative():
		return Int128{}, RangeError.New("too big: %s", text)
	}

	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (i Int128) MarshalText() (data []byte, err error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Int128) UnmarshalText(data []byte) (err error) {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}

	*i = v

	return nil
}
