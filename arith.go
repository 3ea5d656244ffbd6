package bigint

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return addSameSign(x, y)
	}

	return addMixedSign(x, y)
}

func addSameSign(x, y Int) Int {
	return normalize(addMagnitudes(x.magnitude(), y.magnitude()), x.neg)
}

// addMixedSign subtracts the smaller magnitude from the larger. The larger
// operand decides the sign; equal magnitudes cancel to zero.
func addMixedSign(x, y Int) Int {
	xm, ym := x.magnitude(), y.magnitude()

	switch compareMagnitudes(xm, ym) {
	case -1:
		return normalize(subtractMagnitudes(xm, ym), x.neg)
	case 1:
		return normalize(subtractMagnitudes(ym, xm), y.neg)
	}

	return Int{words: []uint64{0}}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	if y.IsZero() {
		return normalize(clone(x.magnitude()), x.neg)
	}

	return x.Add(y.Neg())
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	return normalize(clone(x.magnitude()), !x.neg)
}

// Bit reports whether bit n of x is set. Bit 0 is the least significant bit.
// It fails for negative x.
func (x Int) Bit(n uint) (bool, error) {
	if x.neg {
		return false, InvalidOperation.New("bit test of negative value %s", x.Hex())
	}

	return bitIsSet(x.words, n), nil
}

// Lsh returns x << n. It fails for negative x.
func (x Int) Lsh(n uint) (Int, error) {
	if x.neg {
		return Int{}, InvalidOperation.New("left shift of negative value %s", x.Hex())
	}

	return normalize(shiftLeftMagnitude(x.magnitude(), n), false), nil
}

// Rsh returns x >> n. It fails for negative x.
func (x Int) Rsh(n uint) (Int, error) {
	if x.neg {
		return Int{}, InvalidOperation.New("right shift of negative value %s", x.Hex())
	}

	return normalize(shiftRightMagnitude(x.magnitude(), n), false), nil
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return normalize(mulMagnitudes(x.magnitude(), y.magnitude()), x.neg != y.neg)
}

// Div returns x / y truncated toward zero. It fails when y is zero.
func (x Int) Div(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, InvalidOperation.New("division by zero")
	}

	return normalize(divMagnitudes(x.magnitude(), y.magnitude()), x.neg != y.neg), nil
}

// DivMod returns the truncated quotient and the remainder of x / y, such that
// q*y + r == x and r is zero or has the sign of x. It fails when y is zero.
func (x Int) DivMod(y Int) (q, r Int, err error) {
	q, err = x.Div(y)
	if err != nil {
		return Int{}, Int{}, err
	}

	return q, x.Sub(q.Mul(y)), nil
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.IsZero() && y.IsZero():
		return 0
	case !x.neg && y.neg:
		return 1
	case x.neg && !y.neg:
		return -1
	}

	c := -compareMagnitudes(x.magnitude(), y.magnitude())
	if x.neg {
		return -c
	}

	return c
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}
