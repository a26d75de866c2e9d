// Package dpd converts decimal64, decimal128 and signed 128 bit integer
// column values between their stored bit patterns and display text.
//
// The work is done by the decimal and integer packages; this package
// collects the conversions used by column adapters.
package dpd

import (
	"github.com/calebcase/dpd/decimal"
	"github.com/calebcase/dpd/integer"
)

// Decimal64FromBits decodes a decimal64 pattern.
func Decimal64FromBits(bits uint64) decimal.Value {
	return decimal.FromBits64(bits)
}

// Decimal64ToBits encodes v as a decimal64 pattern.
func Decimal64ToBits(v decimal.Value) (uint64, error) {
	return decimal.ToBits64(v)
}

// Decimal128FromBits decodes a decimal128 pattern.
func Decimal128FromBits(bits decimal.Bits128) decimal.Value {
	return decimal.FromBits128(bits)
}

// Decimal128ToBits encodes v as a decimal128 pattern.
func Decimal128ToBits(v decimal.Value) (decimal.Bits128, error) {
	return decimal.ToBits128(v)
}

// DecimalToString formats v using the digit count and separator of f.
func DecimalToString(v decimal.Value, f decimal.Format) string {
	return decimal.String(v, f)
}

// StringToDecimal parses s using the separator of f.
func StringToDecimal(s string, f decimal.Format) (decimal.Value, error) {
	return decimal.Parse(s, f)
}

// Int128ToString formats v in decimal.
func Int128ToString(v integer.Int128) string {
	return v.String()
}

// StringToInt128 parses s as a signed 128 bit decimal integer.
func StringToInt128(s string) (integer.Int128, error) {
	return integer.Parse(s)
}
