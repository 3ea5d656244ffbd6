package bigint

// Int is an arbitrary-precision signed integer. The zero value is zero.
//
// Int values are immutable and safe for concurrent use.
type Int struct {
	words []uint64
	neg   bool
}

// New returns the non-negative Int holding w.
func New(w uint64) Int {
	return Int{words: []uint64{w}}
}

// NewInt64 returns the Int holding v.
func NewInt64(v int64) Int {
	if v < 0 {
		return Int{words: []uint64{uint64(-(v + 1)) + 1}, neg: true}
	}

	return New(uint64(v))
}

// FromWords returns the Int with the given little-endian magnitude words. The
// words are copied and kept as given, including most-significant zero words.
// A zero magnitude is never negative.
func FromWords(negative bool, words ...uint64) Int {
	m := clone(words)
	if len(m) == 0 {
		m = []uint64{0}
	}

	return Int{
		words: m,
		neg:   negative && !isZeroMagnitude(m),
	}
}

// FromBytes returns the non-negative Int whose magnitude is the big-endian
// bytes b.
func FromBytes(b []byte) Int {
	return Int{words: magnitudeFromBytes(b)}
}

// normalize is the single constructor for computed values. It takes
// ownership of m.
func normalize(m []uint64, negative bool) Int {
	m = trim(m)

	return Int{
		words: m,
		neg:   negative && !isZeroMagnitude(m),
	}
}

func (x Int) magnitude() []uint64 {
	if len(x.words) == 0 {
		return []uint64{0}
	}

	return x.words
}

// Copy returns a copy of x that shares no storage with it.
func (x Int) Copy() Int {
	return FromWords(x.neg, x.words...)
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool {
	return x.neg
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return isZeroMagnitude(x.words)
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	}

	return 1
}

// WordCount returns the number of stored magnitude words. It is at least 1.
func (x Int) WordCount() int {
	return len(x.magnitude())
}

// WordAt returns magnitude word i, or 0 when i is out of range.
func (x Int) WordAt(i int) uint64 {
	return wordAt(x.words, i)
}

// Words returns a copy of the little-endian magnitude words.
func (x Int) Words() []uint64 {
	return clone(x.magnitude())
}

// BitLen returns the length of the magnitude of x in bits. The bit length of
// zero is 0.
func (x Int) BitLen() int {
	return bitLen(x.magnitude())
}

// Bytes returns the magnitude of x as big-endian bytes. Zero is a single zero
// byte.
func (x Int) Bytes() []byte {
	return bytesOf(x.magnitude())
}

// Uint64 returns x as a uint64 and whether it fit.
func (x Int) Uint64() (uint64, bool) {
	m := trim(x.magnitude())
	if x.neg || len(m) > 1 {
		return 0, false
	}

	return m[0], true
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return normalize(clone(x.magnitude()), false)
}
