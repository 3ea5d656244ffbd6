package bigint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		x := New(5).Add(New(3))
		require.True(t, x.Equal(New(8)))
		require.Equal(t, "8", x.Hex())
	})

	t.Run("sub to negative", func(t *testing.T) {
		x := New(3).Sub(New(5))
		require.True(t, x.Equal(FromWords(true, 2)))
		require.True(t, x.IsNegative())
		require.Equal(t, "-2", x.Hex())
	})

	t.Run("carry into second word", func(t *testing.T) {
		x := New(0xFFFFFFFFFFFFFFFF).Add(New(1))
		require.Equal(t, []uint64{0, 1}, x.Words())
		require.Equal(t, "10000000000000000", x.Hex())
	})

	t.Run("mul", func(t *testing.T) {
		require.True(t, New(7).Mul(New(6)).Equal(New(42)))
	})

	t.Run("div", func(t *testing.T) {
		q, err := New(17).Div(New(5))
		require.NoError(t, err)
		require.True(t, q.Equal(New(3)))
	})

	t.Run("zero minus zero", func(t *testing.T) {
		x := New(0).Sub(New(0))
		require.True(t, x.Equal(New(0)))
		require.False(t, x.IsNegative())
	})
}

func TestAdd(t *testing.T) {
	type TC struct {
		a, b, want string
	}

	tcs := []TC{
		{"0", "0", "0"},
		{"5", "-5", "0"},
		{"-5", "5", "0"},
		{"-5", "-3", "-8"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"3", "-5", "-2"},
		{"0x10000000000000000", "-1", "0xffffffffffffffff"},
		{"-0x10000000000000000", "1", "-0xffffffffffffffff"},
		{"0xffffffffffffffffffffffffffffffff", "1", "0x100000000000000000000000000000000"},
		{"-0xffffffffffffffffffffffffffffffff", "-1", "-0x100000000000000000000000000000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s+%s", i, tc.a, tc.b), func(t *testing.T) {
			a, b, want := mustParse(t, tc.a), mustParse(t, tc.b), mustParse(t, tc.want)

			got := a.Add(b)
			require.True(t, got.Equal(want), "got %s", got.Hex())
			require.Equal(t, want.Words(), got.Words())
			require.Equal(t, want.IsNegative(), got.IsNegative())
		})
	}
}

func TestSub(t *testing.T) {
	type TC struct {
		a, b, want string
	}

	tcs := []TC{
		{"0", "0", "0"},
		{"7", "0", "7"},
		{"-7", "0", "-7"},
		{"0", "7", "-7"},
		{"0", "-7", "7"},
		{"7", "7", "0"},
		{"-7", "-7", "0"},
		{"-7", "7", "-14"},
		{"7", "-7", "14"},
		{"0x100000000000000000000000000000000", "1", "0xffffffffffffffffffffffffffffffff"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s-%s", i, tc.a, tc.b), func(t *testing.T) {
			a, b, want := mustParse(t, tc.a), mustParse(t, tc.b), mustParse(t, tc.want)

			got := a.Sub(b)
			require.True(t, got.Equal(want), "got %s", got.Hex())
			require.Equal(t, want.IsNegative(), got.IsNegative())
		})
	}
}

func TestNeg(t *testing.T) {
	require.False(t, New(0).Neg().IsNegative())
	require.False(t, Int{}.Neg().IsNegative())
	require.False(t, FromWords(true, 0, 0).IsNegative())
	require.True(t, New(1).Neg().IsNegative())
	require.False(t, New(1).Neg().Neg().IsNegative())
	require.Equal(t, []uint64{3, 4}, FromWords(false, 3, 4).Neg().Words())
}

func TestInvalidOperation(t *testing.T) {
	neg := NewInt64(-1)

	_, err := neg.Lsh(1)
	require.Error(t, err)
	require.True(t, InvalidOperation.Has(err))

	_, err = neg.Rsh(1)
	require.Error(t, err)
	require.True(t, InvalidOperation.Has(err))

	_, err = neg.Bit(0)
	require.Error(t, err)
	require.True(t, InvalidOperation.Has(err))

	_, err = New(1).Div(New(0))
	require.Error(t, err)
	require.True(t, InvalidOperation.Has(err))

	_, err = New(1).Div(Int{})
	require.Error(t, err)
	require.True(t, InvalidOperation.Has(err))

	_, _, err = neg.DivMod(FromWords(false, 0, 0))
	require.Error(t, err)
	require.True(t, InvalidOperation.Has(err))
}

func TestShift(t *testing.T) {
	x, err := New(1).Lsh(64)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, x.Words())

	x, err = New(0).Lsh(200)
	require.NoError(t, err)
	require.True(t, x.IsZero())
	require.Equal(t, 1, x.WordCount())

	x, err = New(0).Lsh(1 << 62)
	require.NoError(t, err)
	require.True(t, x.IsZero())
	require.False(t, x.IsNegative())
	require.Equal(t, 1, x.WordCount())

	x, err = New(0xff).Lsh(60)
	require.NoError(t, err)
	require.Equal(t, "ff000000000000000", x.Hex())

	x, err = x.Rsh(60)
	require.NoError(t, err)
	require.True(t, x.Equal(New(0xff)))

	ok, err := New(0b100).Bit(2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = New(0b100).Bit(500)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDiv(t *testing.T) {
	type TC struct {
		a, b, q, r string
	}

	tcs := []TC{
		{"17", "5", "3", "2"},
		{"-17", "5", "-3", "-2"},
		{"17", "-5", "-3", "2"},
		{"-17", "-5", "3", "-2"},
		{"15", "5", "3", "0"},
		{"4", "5", "0", "4"},
		{"-4", "5", "0", "-4"},
		{"0", "-5", "0", "0"},
		{"1", "1", "1", "0"},
		{"0x100000000000000000000000000000000", "0x10000000000000000", "0x10000000000000000", "0"},
		{"0xffffffffffffffffffffffffffffffff", "0xffffffffffffffff", "0x10000000000000001", "0"},
		{"340282366920938463463374607431768211457", "10", "34028236692093846346337460743176821145", "7"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.a, tc.b), func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)

			q, r, err := a.DivMod(b)
			require.NoError(t, err)
			require.Equal(t, mustParse(t, tc.q).Dec(), q.Dec())
			require.Equal(t, mustParse(t, tc.r).Dec(), r.Dec())
			require.False(t, q.IsZero() && q.IsNegative())
		})
	}
}

func TestCmp(t *testing.T) {
	type TC struct {
		a, b string
		want int
	}

	tcs := []TC{
		{"0", "0", 0},
		{"0", "1", -1},
		{"0", "-1", 1},
		{"-1", "1", -1},
		{"-2", "-1", -1},
		{"-1", "-2", 1},
		{"2", "1", 1},
		{"0x10000000000000000", "0xffffffffffffffff", 1},
		{"-0x10000000000000000", "-0xffffffffffffffff", -1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s<=>%s", i, tc.a, tc.b), func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)

			require.Equal(t, tc.want, a.Cmp(b))
			require.Equal(t, -tc.want, b.Cmp(a))
			require.Equal(t, tc.want == 0, a.Equal(b))
			require.Equal(t, tc.want < 0, a.Less(b))
			require.Equal(t, tc.want > 0, a.Greater(b))
		})
	}

	// Leading zero words do not affect ordering.
	require.Equal(t, 0, FromWords(false, 5, 0, 0).Cmp(New(5)))
}

func TestProperties(t *testing.T) {
	xs := randomInts(1, 40)
	ys := randomInts(2, 40)
	zs := randomInts(3, 40)

	for i := range xs {
		x, y, z := xs[i], ys[i], zs[i]
		bx, by := toBig(x), toBig(y)
		msg := fmt.Sprintf("x=%s y=%s", x.Hex(), y.Hex())

		requireBig(t, new(big.Int).Add(bx, by), x.Add(y), msg)
		requireBig(t, new(big.Int).Sub(bx, by), x.Sub(y), msg)
		requireBig(t, new(big.Int).Mul(bx, by), x.Mul(y), msg)
		requireBig(t, new(big.Int).Neg(bx), x.Neg(), msg)
		require.Equal(t, bx.Cmp(by), x.Cmp(y), msg)

		// Commutativity and associativity.
		require.True(t, x.Add(y).Equal(y.Add(x)), msg)
		require.True(t, x.Mul(y).Equal(y.Mul(x)), msg)
		require.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))), msg)

		// Inverse, with no negative zero.
		sum := x.Add(x.Neg())
		require.True(t, sum.IsZero(), msg)
		require.False(t, sum.IsNegative(), msg)

		// Antisymmetry.
		require.Equal(t, 0, x.Cmp(x), msg)
		require.Equal(t, -x.Cmp(y), y.Cmp(x), msg)

		if !y.IsZero() {
			q, r, err := x.DivMod(y)
			require.NoError(t, err, msg)
			requireBig(t, new(big.Int).Quo(bx, by), q, msg)
			requireBig(t, new(big.Int).Rem(bx, by), r, msg)

			// q*|y| <= |x| < (q+1)*|y|
			qa, ya, xa := q.Abs(), y.Abs(), x.Abs()
			require.False(t, qa.Mul(ya).Greater(xa), msg)
			require.True(t, qa.Add(New(1)).Mul(ya).Greater(xa), msg)
		}

		if !x.IsNegative() {
			for _, n := range []uint{0, 1, 7, 63, 64, 65, 130} {
				shifted, err := x.Lsh(n)
				require.NoError(t, err, msg)

				pow, err := New(1).Lsh(n)
				require.NoError(t, err, msg)

				require.True(t, shifted.Equal(x.Mul(pow)), msg)
				requireBig(t, new(big.Int).Lsh(bx, n), shifted, msg)

				back, err := shifted.Rsh(n)
				require.NoError(t, err, msg)
				require.True(t, back.Equal(x), msg)

				set, err := x.Bit(n)
				require.NoError(t, err, msg)
				require.Equal(t, bx.Bit(int(n)) == 1, set, msg)
			}
		}
	}
}

func TestImmutable(t *testing.T) {
	words := []uint64{1, 2}
	x := FromWords(false, words...)
	words[0] = 9

	require.Equal(t, []uint64{1, 2}, x.Words())

	y := x.Copy()
	_ = x.Add(New(maxWord))
	_ = x.Mul(x)
	_, _ = x.Div(New(3))
	_, _ = x.Lsh(3)
	_ = x.Neg()

	out := x.Words()
	out[0] = 7

	require.Equal(t, []uint64{1, 2}, x.Words())
	require.True(t, x.Equal(y))
}

func mustParse(t testing.TB, s string) Int {
	t.Helper()

	x, err := Parse(s)
	require.NoError(t, err)

	return x
}

func BenchmarkMul(b *testing.B) {
	x := FromWords(false, maxWord, maxWord, maxWord, maxWord)
	y := FromWords(true, 0x0123456789abcdef, 0xfedcba9876543210)

	for n := 0; n < b.N; n++ {
		_ = x.Mul(y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x := FromWords(false, maxWord, maxWord, maxWord, maxWord)
	y := FromWords(true, 0x0123456789abcdef, 0xfedcba9876543210)

	for n := 0; n < b.N; n++ {
		_, err := x.Div(y)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
