package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// decChunk is the largest power of ten that fits in a word.
const (
	decChunk       = 10_000_000_000_000_000_000
	decChunkDigits = 19
)

// Hex returns x in signed lowercase hexadecimal without a prefix. The most
// significant word is unpadded; every other word is padded to 16 digits.
func (x Int) Hex() string {
	m := trim(x.magnitude())

	sb := &strings.Builder{}
	sb.Grow(len(m)*16 + 1)

	if x.neg && !isZeroMagnitude(m) {
		sb.WriteByte('-')
	}

	top := len(m) - 1
	sb.WriteString(strconv.FormatUint(m[top], 16))

	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(sb, "%016x", m[i])
	}

	return sb.String()
}

// Dec returns x in signed decimal.
func (x Int) Dec() string {
	m := clone(trim(x.magnitude()))

	// Remainders of repeated division by 10^19, least significant first.
	var parts []uint64
	for !isZeroMagnitude(m) {
		var r uint64
		m, r = divWord(m, decChunk)
		parts = append(parts, r)
	}

	if len(parts) == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(len(parts)*decChunkDigits + 1)

	if x.neg {
		sb.WriteByte('-')
	}

	sb.WriteString(strconv.FormatUint(parts[len(parts)-1], 10))

	for i := len(parts) - 2; i >= 0; i-- {
		fmt.Fprintf(sb, "%019d", parts[i])
	}

	return sb.String()
}

// String implements fmt.Stringer. It returns Dec.
func (x Int) String() string {
	return x.Dec()
}
