package integer

import (
	"strings"
)

const (
	// scratchBytes is the size of the BCD area (two digits per byte).
	scratchBytes = 20

	// maxDigits bounds the input accepted by Parse before conversion. The
	// largest magnitude has 39 digits, the BCD check after conversion is
	// the exact range test.
	maxDigits = 2 * scratchBytes
)

// register is the combined BCD scratch and binary value.
type register struct {
	bcd [scratchBytes]byte
	hi  uint64
	lo  uint64
}

// lsh shifts the whole register left by one bit.
func (r *register) lsh() {
	carry := byte(r.hi >> 63)

	r.hi = r.hi<<1 | r.lo>>63
	r.lo <<= 1

	for i := len(r.bcd) - 1; i >= 0; i-- {
		next := r.bcd[i] >> 7
		r.bcd[i] = r.bcd[i]<<1 | carry
		carry = next
	}
}

// rsh shifts the whole register right by one bit.
func (r *register) rsh() {
	r.lo = r.lo>>1 | r.hi<<63
	r.hi = r.hi>>1 | uint64(r.bcd[len(r.bcd)-1]&1)<<63

	var carry byte
	for i := range r.bcd {
		next := r.bcd[i] & 1
		r.bcd[i] = r.bcd[i]>>1 | carry<<7
		carry = next
	}
}

// add3 adds 3 to every BCD digit of 5 or more.
func (r *register) add3() {
	for i, b := range r.bcd {
		if b>>4 >= 5 {
			b += 0x30
		}
		if b&0x0F >= 5 {
			b += 0x03
		}

		r.bcd[i] = b
	}
}

// sub3 subtracts 3 from every BCD digit of 8 or more.
func (r *register) sub3() {
	for i, b := range r.bcd {
		if b>>4 >= 8 {
			b -= 0x30
		}
		if b&0x0F >= 8 {
			b -= 0x03
		}

		r.bcd[i] = b
	}
}

func (r *register) scratchZero() bool {
	for _, b := range r.bcd {
		if b != 0 {
			return false
		}
	}

	return true
}

// String returns i in decimal.
func (i Int128) String() string {
	m, negative := i.magnitude()

	r := register{hi: m.Hi, lo: m.Lo}

	for n := 0; n < 128; n++ {
		if n > 0 {
			r.add3()
		}

		r.lsh()
	}

	sb := &strings.Builder{}
	if negative {
		sb.WriteByte('-')
	}

	started := false
	for _, b := range r.bcd {
		for _, d := range [2]byte{b >> 4, b & 0x0F} {
			if d == 0 && !started {
				continue
			}

			started = true
			sb.WriteByte('0' + d)
		}
	}

	if !started {
		return "0"
	}

	return sb.String()
}

// Parse reads a decimal integer with an optional leading '-'. Any of the
// given thousands separators are ignored.
func Parse(text string, thousands ...rune) (i Int128, err error) {
	s := text
	offset := 0
	negative := false

	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
		offset = 1
	}

	digits := make([]byte, 0, len(s))

next:
	for pos, c := range s {
		for _, sep := range thousands {
			if c == sep {
				continue next
			}
		}

		if c < '0' || c > '9' {
			return Int128{}, ParseError.New(
				"invalid character: %q at offset %d",
				c,
				pos+offset,
			)
		}

		digits = append(digits, byte(c-'0'))
	}

	switch {
	case len(digits) == 0:
		return Int128{}, ParseError.New("no digits: %q", text)
	case len(digits) > maxDigits:
		return Int128{}, RangeError.New("too big: %d digits", len(digits))
	}

	r := register{}

	// Right align the digits, most significant first.
	for k := 0; k < len(digits); k++ {
		d := digits[len(digits)-1-k]
		idx := len(r.bcd) - 1 - k/2

		if k%2 == 0 {
			r.bcd[idx] |= d
		} else {
			r.bcd[idx] |= d << 4
		}
	}

	for n := 0; n < 128; n++ {
		r.rsh()
		r.sub3()
	}

	if !r.scratchZero() {
		return Int128{}, RangeError.New("too big: %s", text)
	}

	return signed(Int128{Hi: r.hi, Lo: r.lo}, negative, text)
}
