package bigint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func toBig(x Int) *big.Int {
	b := new(big.Int).SetBytes(x.Bytes())
	if x.IsNegative() {
		b.Neg(b)
	}

	return b
}

func fromBig(t testing.TB, b *big.Int) Int {
	t.Helper()

	x, err := ParseDec(b.String())
	require.NoError(t, err)

	return x
}

// requireBig fails unless x has the value of want and is in canonical form.
func requireBig(t testing.TB, want *big.Int, x Int, msgAndArgs ...interface{}) {
	t.Helper()

	require.Equal(t, want.String(), toBig(x).String(), msgAndArgs...)
	require.Equal(t, want.Sign() < 0, x.IsNegative(), msgAndArgs...)
	require.True(t, x.WordCount() == 1 || x.WordAt(x.WordCount()-1) != 0, msgAndArgs...)
}

var edgeWords = []uint64{0, 1, 2, 1 << 32, 1<<63 - 1, 1 << 63, 1<<64 - 1}

// randomInt returns values up to four words long, favouring words at the
// carry and borrow boundaries.
func randomInt(r *rand.Rand) Int {
	words := make([]uint64, r.Intn(4)+1)
	for i := range words {
		if r.Intn(3) == 0 {
			words[i] = edgeWords[r.Intn(len(edgeWords))]
		} else {
			words[i] = r.Uint64()
		}
	}

	return normalize(words, r.Intn(2) == 0)
}

func randomInts(seed int64, n int) []Int {
	r := rand.New(rand.NewSource(seed))

	out := make([]Int, n)
	for i := range out {
		out[i] = randomInt(r)
	}

	return out
}
