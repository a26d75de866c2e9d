// Package decimal provides the IEEE 754-2008 decimal64 and decimal128
// interchange encodings using Densely Packed Decimal (DPD) significands.
//
// The equation for a decimal number is:
//
//  number = digits * 10 ^ exponent
//
// Where digits is an unscaled coefficient and exponent is a base 10 scale.
// For example:
//
//  3.14 = 314 * 10^-2
//
// Formats
//
//  | Format     | Bits | Digits | Exponent Range  | Bias |
//  |------------|------|--------|-----------------|------|
//  | Decimal64  |   64 |     16 | -398 .. +369    |  398 |
//  | Decimal128 |  128 |     34 | -6176 .. +6111  | 6176 |
//  |------------|------|--------|-----------------|------|
//
// Encoding
//
// The pattern is laid out as a sign bit, a 5 bit combination field, the
// exponent continuation and finally the trailing significand as a sequence
// of 10 bit declets (see package declet).
//
//  | Format     | Sign | Combination | Continuation      | Declets           |
//  |------------|------|-------------|-------------------|-------------------|
//  | Decimal64  |   63 | 62 .. 58    | 57 .. 50 (8 bits) | 49 .. 0 (5)       |
//  | Decimal128 |  127 | 126 .. 122  | 121 .. 110 (12)   | 109 .. 0 (11)     |
//  |------------|------|-------------|-------------------|-------------------|
//
// The combination field carries the two high bits of the biased exponent
// and the leading (most significant) digit of the coefficient. Leading
// digits 0-7 need three bits, while 8 and 9 only need one, so the field has
// two layouts:
//
//  | 0 | 1 | 2 | 3 | 4 || Meaning                                         |
//  |-------------------||-------------------------------------------------|
//  | a . b | c . d . e || Standard: exponent high bits ab, lead digit cde |
//  | 1 . 1 | a . b | e || Alternate: exponent high bits ab, lead 8 + e    |
//  | 1 . 1 . 1 . 1 | 0 || Infinity                                        |
//  | 1 . 1 . 1 . 1 | 1 || NaN (next bit set for signalling NaN)           |
//  |-------------------||-------------------------------------------------|
//
// The biased exponent is (high << continuation width) | continuation and the
// exponent is the biased exponent minus the bias.
//
// Examples
//
//  | Value            | Sign | Combination | Continuation | Declets        | Pattern            |
//  |------------------|------|-------------|--------------|----------------|--------------------|
//  | 1                | 0    | 01 000      | 1000 1110    | 000 ... 001    | 0x2238000000000001 |
//  | 3.14             | 0    | 01 000      | 1000 1100    | 000 ... 314    | 0x2230000000000194 |
//  | 9000000000000000 | 0    | 11 01 1     | 1000 1110    | 000 ... 000    | 0x6E38000000000000 |
//  | -Infinity        | 1    | 1111 0      |              |                | 0xF800000000000000 |
//  | NaN              | 0    | 1111 1      |              |                | 0x7C00000000000000 |
//  |------------------|------|-------------|--------------|----------------|--------------------|
//
// All examples are decimal64.
//
// Text
//
// Parse accepts an optional sign, digits with at most one decimal
// separator, and an optional exponent introduced by a space and/or 'e' or
// 'E'. The literals "NaN" and "Infinity" are matched case insensitively.
// String writes small negative exponents as a fraction and everything else
// with a " E" exponent suffix (e.g. "123 E-40").
package decimal
