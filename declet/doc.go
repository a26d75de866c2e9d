// Package declet provides the Densely Packed Decimal (DPD) declet codec.
//
// A declet packs three decimal digits into ten bits. The digit values are
// written in binary as:
//
//  d0 = a b c d
//  d1 = e f g h
//  d2 = i j k m
//
// The high bits a, e and i are only set when the digit is 8 or 9. The
// layout of the declet is selected by which of the three digits are 8 or 9.
// When a digit is 8 or 9 only its low bit is stored and the freed bits are
// lent to the other digits.
//
// Encoding
//
//  | a e i || 9 | 8 | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//  |-------||---------------------------------------|
//  | 0 0 0 || b . c . d | f . g . h | 0 | j . k . m |
//  | 0 0 1 || b . c . d | f . g . h | 1 | 0 . 0 . m |
//  | 0 1 0 || b . c . d | j . k . h | 1 | 0 . 1 . m |
//  | 1 0 0 || j . k . d | f . g . h | 1 | 1 . 0 . m |
//  | 1 1 0 || j . k . d | 0 . 0 . h | 1 | 1 . 1 . m |
//  | 1 0 1 || f . g . d | 0 . 1 . h | 1 | 1 . 1 . m |
//  | 0 1 1 || b . c . d | 1 . 0 . h | 1 | 1 . 1 . m |
//  | 1 1 1 || 0 . 0 . d | 1 . 1 . h | 1 | 1 . 1 . m |
//  |-------||---------------------------------------|
//
// Decoding
//
// Decoding dispatches on bit 3 (v), then bits 2..1 (wx), and for the 111
// family on bits 6..5 (st). Labelling the declet bits p q r s t u v w x y
// from bit 9 down to bit 0:
//
//  | v | w x | s t || d0      | d1      | d2      |
//  |---|-----|-----||---------|---------|---------|
//  | 0 | . . | . . || 0 p q r | 0 s t u | 0 w x y |
//  | 1 | 0 0 | . . || 0 p q r | 0 s t u | 1 0 0 y |
//  | 1 | 0 1 | . . || 0 p q r | 1 0 0 u | 0 s t y |
//  | 1 | 1 0 | . . || 1 0 0 r | 0 s t u | 0 p q y |
//  | 1 | 1 1 | 0 0 || 1 0 0 r | 1 0 0 u | 0 p q y |
//  | 1 | 1 1 | 0 1 || 1 0 0 r | 0 p q u | 1 0 0 y |
//  | 1 | 1 1 | 1 0 || 0 p q r | 1 0 0 u | 1 0 0 y |
//  | 1 | 1 1 | 1 1 || 1 0 0 r | 1 0 0 u | 1 0 0 y |
//  |---|-----|-----||---------|---------|---------|
//
// The 24 non-canonical declets (the 111 family with p q set) decode to the
// same digits as their canonical form.
package declet
