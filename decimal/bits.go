package decimal

import "fmt"

// Bits128 is a 128 bit pattern split into high and low halves.
type Bits128 struct {
	Hi uint64
	Lo uint64
}

// String returns the pattern as 32 hex digits.
func (b Bits128) String() string {
	return fmt.Sprintf("%016x%016x", b.Hi, b.Lo)
}

// Rsh returns b shifted right by n bits.
func (b Bits128) Rsh(n uint) Bits128 {
	switch {
	case n == 0:
		return b
	case n >= 128:
		return Bits128{}
	case n >= 64:
		return Bits128{Lo: b.Hi >> (n - 64)}
	}

	return Bits128{
		Hi: b.Hi >> n,
		Lo: b.Lo>>n | b.Hi<<(64-n),
	}
}

// Lsh returns b shifted left by n bits.
func (b Bits128) Lsh(n uint) Bits128 {
	switch {
	case n == 0:
		return b
	case n >= 128:
		return Bits128{}
	case n >= 64:
		return Bits128{Hi: b.Lo << (n - 64)}
	}

	return Bits128{
		Hi: b.Hi<<n | b.Lo>>(64-n),
		Lo: b.Lo << n,
	}
}

// Or returns the bitwise or of b and o.
func (b Bits128) Or(o Bits128) Bits128 {
	return Bits128{Hi: b.Hi | o.Hi, Lo: b.Lo | o.Lo}
}

// field extracts width (< 64) bits starting at bit offset.
func (b Bits128) field(offset, width uint) uint64 {
	return b.Rsh(offset).Lo & (1<<width - 1)
}

// setField ors value (width < 64 bits) into b at bit offset.
func (b Bits128) setField(offset, width uint, value uint64) Bits128 {
	return b.Or(Bits128{Lo: value & (1<<width - 1)}.Lsh(offset))
}
