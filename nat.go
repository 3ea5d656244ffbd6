package bigint

import (
	"encoding/binary"
	"math/bits"
)

const wordBits = 64

// Magnitudes are little-endian word sequences. Every function here ignores
// sign and treats words past the end of a sequence as zero.

func wordAt(m []uint64, i int) uint64 {
	if i < 0 || i >= len(m) {
		return 0
	}

	return m[i]
}

func isZeroMagnitude(m []uint64) bool {
	for _, w := range m {
		if w != 0 {
			return false
		}
	}

	return true
}

// trim drops most-significant zero words, always leaving at least one word.
func trim(m []uint64) []uint64 {
	n := len(m)
	for n > 1 && m[n-1] == 0 {
		n--
	}

	if n == 0 {
		return []uint64{0}
	}

	return m[:n]
}

func clone(m []uint64) []uint64 {
	out := make([]uint64, len(m))
	copy(out, m)

	return out
}

func compareWords(a, b uint64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}

	return 0
}

// compareMagnitudes returns -1 when a > b, +1 when a < b and 0 when they are
// equal. Note the polarity is the reverse of Int.Cmp.
func compareMagnitudes(a, b []uint64) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	if n <= 1 {
		return compareWords(wordAt(a, 0), wordAt(b, 0))
	}

	for i := n - 1; i >= 0; i-- {
		if c := compareWords(wordAt(a, i), wordAt(b, i)); c != 0 {
			return c
		}
	}

	return 0
}

// addMagnitudes is ripple-carry addition. The result has one more word than
// the longer operand when the final carry is set.
func addMagnitudes(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	out := make([]uint64, n, n+1)

	var carry uint64
	for i := range out {
		out[i], carry = bits.Add64(wordAt(a, i), wordAt(b, i), carry)
	}

	if carry != 0 {
		out = append(out, carry)
	}

	return out
}

// subtractMagnitudes is ripple-borrow subtraction. The caller must ensure
// a >= b.
func subtractMagnitudes(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	out := make([]uint64, n)

	var borrow uint64
	for i := range out {
		out[i], borrow = bits.Sub64(wordAt(a, i), wordAt(b, i), borrow)
	}

	// Equal length inputs with equal top words leave a zero top word.
	if n > 1 && out[n-1] == 0 {
		out = out[:n-1]
	}

	return out
}

func bitIsSet(m []uint64, n uint) bool {
	return wordAt(m, int(n/wordBits))>>(n%wordBits)&1 == 1
}

// shiftLeftMagnitude returns m << n. Zero stays a single word whatever n is.
func shiftLeftMagnitude(m []uint64, n uint) []uint64 {
	if isZeroMagnitude(m) {
		return []uint64{0}
	}

	words := int(n / wordBits)
	shift := n % wordBits

	out := make([]uint64, words, words+len(m)+1)

	var carry uint64
	for _, w := range m {
		out = append(out, w<<shift|carry)

		carry = 0
		if shift != 0 {
			carry = w >> (wordBits - shift)
		}
	}

	if carry != 0 {
		out = append(out, carry)
	}

	return out
}

func shiftRightMagnitude(m []uint64, n uint) []uint64 {
	words := n / wordBits
	if words >= uint(len(m)) {
		return []uint64{0}
	}

	shift := n % wordBits
	src := m[words:]

	out := make([]uint64, len(src))
	for i, w := range src {
		out[i] = w >> shift
		if shift != 0 {
			out[i] |= wordAt(src, i+1) << (wordBits - shift)
		}
	}

	return trim(out)
}

// halve shifts m right by one bit in place. The low bit of each word carries
// into the top bit of the word below it.
func halve(m []uint64) {
	var carry uint64
	for i := len(m) - 1; i >= 0; i-- {
		w := m[i]
		m[i] = w>>1 | carry<<(wordBits-1)
		carry = w & 1
	}
}

func bitLen(m []uint64) int {
	m = trim(m)
	top := len(m) - 1

	return top*wordBits + bits.Len64(m[top])
}

// mulMagnitudes adds b shifted by i for every set bit i of a.
func mulMagnitudes(a, b []uint64) []uint64 {
	acc := []uint64{0}

	for i := uint(0); i < uint(len(a))*wordBits; i++ {
		if bitIsSet(a, i) {
			acc = addMagnitudes(acc, shiftLeftMagnitude(b, i))
		}
	}

	return trim(acc)
}

var one = []uint64{1}

// divMagnitudes returns the largest q with q*b <= a. b must be non-zero.
//
// The search keeps lower <= q <= upper and picks the upper midpoint, so
// every step strictly shrinks the range and the loop ends with lower ==
// upper == q.
func divMagnitudes(a, b []uint64) []uint64 {
	a = trim(a)

	lower := []uint64{0}
	upper := clone(a)

	for compareMagnitudes(lower, upper) == 1 {
		mid := addMagnitudes(addMagnitudes(lower, upper), one)
		halve(mid)
		mid = trim(mid)

		switch compareMagnitudes(mulMagnitudes(b, mid), a) {
		case -1:
			upper = trim(subtractMagnitudes(mid, one))
		case 0:
			return mid
		default:
			lower = mid
		}
	}

	return lower
}

// divWord divides m by d returning the quotient and remainder. d must be
// non-zero.
func divWord(m []uint64, d uint64) (q []uint64, r uint64) {
	q = make([]uint64, len(m))
	for i := len(m) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, m[i], d)
	}

	return trim(q), r
}

// mulAddWord returns m*mul + add.
func mulAddWord(m []uint64, mul, add uint64) []uint64 {
	out := make([]uint64, len(m), len(m)+1)

	carry := add
	for i, w := range m {
		hi, lo := bits.Mul64(w, mul)

		var c uint64
		out[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}

	if carry != 0 {
		out = append(out, carry)
	}

	return out
}

// bytesOf encodes m big-endian without leading zero bytes. Zero is a single
// zero byte.
func bytesOf(m []uint64) []byte {
	m = trim(m)

	out := make([]byte, 0, len(m)*8)
	for i := len(m) - 1; i >= 0; i-- {
		out = binary.BigEndian.AppendUint64(out, m[i])
	}

	j := 0
	for j < len(out)-1 && out[j] == 0 {
		j++
	}

	return out[j:]
}

func magnitudeFromBytes(b []byte) []uint64 {
	m := make([]uint64, (len(b)+7)/8)
	for i := range b {
		m[i/8] |= uint64(b[len(b)-1-i]) << (8 * (i % 8))
	}

	return trim(m)
}
