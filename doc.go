// Package bigint provides an arbitrary-precision signed integer.
//
// An Int is a sign flag plus a magnitude stored as a sequence of 64-bit
// words in little-endian order (word 0 is the least significant). Words past
// the end of the stored sequence read as zero, which lets operands of
// different lengths be combined without padding.
//
// Canonical Zero
//
// Zero is a single zero word with the sign flag cleared. Every value produced
// by an operation passes through one normalization step that drops
// most-significant zero words and clears the sign of zero, so negative zero is
// never observable. The zero value of Int is canonical zero.
//
// Arithmetic
//
// Values are immutable. Add, Sub, Neg, Mul and Div return new values that own
// their storage. Multiplication is shift-and-add over the bits of the
// receiver. Division searches the quotient with a binary search over the
// dividend's magnitude and truncates toward zero:
//
//  17 / 5  =  3
//  -17 / 5 = -3
//
// Shifting, bit testing and dividing by zero are the only operations that can
// fail; they return InvalidOperation errors.
//
// Text
//
// Hex renders signed lowercase hexadecimal and Dec renders signed decimal:
//
//  New(0xFFFFFFFFFFFFFFFF).Add(New(1)).Hex() == "10000000000000000"
//  NewInt64(-2).Dec() == "-2"
//
// Parse, ParseHex and ParseDec read both forms back.
//
// Binary
//
// MarshalBinary uses the zigzag layout shared with the integer package: the
// magnitude is shifted left one bit, the low bit holds the sign, and the
// result is written big-endian with zero as a single zero byte.
package bigint
