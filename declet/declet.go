package declet

// Mask covers the ten bits of a declet.
const Mask uint16 = 0b11_1111_1111

// Encode packs three decimal digits (most significant first) into a declet.
// Each digit must be in the range 0-9.
func Encode(d0, d1, d2 uint8) uint16 {
	a, e, i := d0>>3&1, d1>>3&1, d2>>3&1

	bcd := uint16(d0 & 0b111)
	fgh := uint16(d1 & 0b111)
	jkm := uint16(d2 & 0b111)

	d := uint16(d0 & 1)
	h := uint16(d1 & 1)
	m := uint16(d2 & 1)

	fg := uint16(d1 >> 1 & 0b11)
	jk := uint16(d2 >> 1 & 0b11)

	switch a<<2 | e<<1 | i {
	case 0b000:
		return bcd<<7 | fgh<<4 | jkm
	case 0b001:
		return bcd<<7 | fgh<<4 | 0b1000 | m
	case 0b010:
		return bcd<<7 | jk<<5 | h<<4 | 0b1010 | m
	case 0b100:
		return jk<<8 | d<<7 | fgh<<4 | 0b1100 | m
	case 0b110:
		return jk<<8 | d<<7 | 0b00<<5 | h<<4 | 0b1110 | m
	case 0b101:
		return fg<<8 | d<<7 | 0b01<<5 | h<<4 | 0b1110 | m
	case 0b011:
		return bcd<<7 | 0b10<<5 | h<<4 | 0b1110 | m
	default:
		return d<<7 | 0b11<<5 | h<<4 | 0b1110 | m
	}
}

// Decode unpacks a declet into three decimal digits (most significant
// first). Bits above the low ten are ignored.
func Decode(code uint16) (d0, d1, d2 uint8) {
	code &= Mask

	pqr := uint8(code >> 7 & 0b111)
	stu := uint8(code >> 4 & 0b111)
	wxy := uint8(code & 0b111)

	pq := uint8(code >> 8 & 0b11)
	st := uint8(code >> 5 & 0b11)

	r := uint8(code >> 7 & 1)
	u := uint8(code >> 4 & 1)
	y := uint8(code & 1)

	if code>>3&1 == 0 {
		return pqr, stu, wxy
	}

	switch code >> 1 & 0b11 {
	case 0b00:
		return pqr, stu, 8 | y
	case 0b01:
		return pqr, 8 | u, st<<1 | y
	case 0b10:
		return 8 | r, stu, pq<<1 | y
	}

	switch st {
	case 0b00:
		return 8 | r, 8 | u, pq<<1 | y
	case 0b01:
		return 8 | r, pq<<1 | u, 8 | y
	case 0b10:
		return pqr, 8 | u, 8 | y
	default:
		return 8 | r, 8 | u, 8 | y
	}
}

// AppendDigits decodes the declet and appends its digits to dst as ASCII
// characters. Zeros are dropped while dst is empty so that a sequence of
// calls builds a digit string without leading zeros.
func AppendDigits(dst []byte, code uint16) []byte {
	d0, d1, d2 := Decode(code)

	for _, d := range [3]uint8{d0, d1, d2} {
		dst = AppendDigit(dst, d)
	}

	return dst
}

// AppendDigit appends a single digit to dst with the same leading zero
// suppression as AppendDigits.
func AppendDigit(dst []byte, d uint8) []byte {
	if d == 0 && len(dst) == 0 {
		return dst
	}

	return append(dst, '0'+d)
}
