package bizarromath

// BigNumber is a signed magnitude with an optional signed power-of-two
// exponent, per spec 3/4.D. When isFloat is false the value is
// mantissa*(-1)^negative and exponent is forced to the canonical zero
// limb with exponentNegative false. When isFloat is true the value is
// mantissa*(-1)^negative*2^(signed exponent).
//
// BigNumber is immutable in its public API: every method below returns a
// freshly built value. The zero value is not a valid BigNumber; use
// FromInt64(0) or Zero().
type BigNumber struct {
	mantissa         limbs
	exponent         limbs
	negative         bool
	exponentNegative bool
	isFloat          bool
}

// Zero returns the canonical integer zero.
func Zero() *BigNumber {
	return &BigNumber{mantissa: limbs{0}, exponent: limbs{0}}
}

// FromInt64 builds an integer-mode BigNumber from a machine int64. Per
// SPEC_FULL.md's supplemented-features note, this is a convenience for
// values that already fit a machine word, not a precision escape hatch;
// use FromDecimal for arbitrary magnitude.
func FromInt64(v int64) *BigNumber {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return normalizeBN(&BigNumber{
		mantissa: intToLimbs(currentWidth(), u),
		exponent: limbs{0},
		negative: neg,
	})
}

// FromUint64 builds a non-negative integer-mode BigNumber.
func FromUint64(v uint64) *BigNumber {
	return normalizeBN(&BigNumber{mantissa: intToLimbs(currentWidth(), v), exponent: limbs{0}})
}

// normalizeBN enforces the canonical-zero invariant from spec 3: if the
// mantissa is zero, sign and exponent are forced to their canonical
// values regardless of what the caller set.
func normalizeBN(n *BigNumber) *BigNumber {
	n.mantissa = normalize(n.mantissa)
	if n.isFloat {
		n.exponent = normalize(n.exponent)
	} else {
		n.exponent = limbs{0}
		n.exponentNegative = false
	}
	if isZero(n.mantissa) {
		n.negative = false
		n.exponent = limbs{0}
		n.exponentNegative = false
	}
	return n
}

// Sign returns -1, 0 or +1.
func (n *BigNumber) Sign() int {
	if isZero(n.mantissa) {
		return 0
	}
	if n.negative {
		return -1
	}
	return 1
}

// IsFloat reports whether n carries a power-of-two exponent.
func (n *BigNumber) IsFloat() bool {
	return n.isFloat
}

// Neg returns -n.
func (n *BigNumber) Neg() *BigNumber {
	if isZero(n.mantissa) {
		return n
	}
	return normalizeBN(&BigNumber{
		mantissa: n.mantissa, exponent: n.exponent,
		negative: !n.negative, exponentNegative: n.exponentNegative, isFloat: n.isFloat,
	})
}

// Abs returns |n|.
func (n *BigNumber) Abs() *BigNumber {
	if !n.negative {
		return n
	}
	return n.Neg()
}

// Cmp compares the numeric value of two BigNumbers of the same mode,
// returning -1, 0 or +1. Mixed integer/float comparison returns
// UnsupportedMode, matching the rest of the API's mode-matching rule.
func (n *BigNumber) Cmp(other *BigNumber) (int, error) {
	if n.isFloat != other.isFloat {
		return 0, newErr(UnsupportedMode, "Cmp requires both operands in the same mode")
	}
	sn, so := n.Sign(), other.Sign()
	if sn != so {
		if sn < so {
			return -1, nil
		}
		return 1, nil
	}
	if sn == 0 {
		return 0, nil
	}
	// Same sign, both nonzero: align exponents the way Add does, then
	// compare magnitudes; negative numbers reverse the magnitude order.
	am, bm := n.alignedMantissa(other)
	c := compare(am, bm)
	if n.negative {
		c = -c
	}
	return c, nil
}

// alignedMantissa pads the smaller-exponent operand's mantissa with
// low-order zero limbs (spec 4.D: "align exponents by padding the
// smaller-exponent mantissa with low-order zero limbs, each zero limb = W
// bits of binary shift") and returns both mantissas at the larger
// exponent. Integer-mode operands (exponent always 0) pass through
// unchanged.
func (n *BigNumber) alignedMantissa(other *BigNumber) (a, b limbs) {
	if !n.isFloat {
		return n.mantissa, other.mantissa
	}
	en := signedExp(n)
	eo := signedExp(other)
	switch {
	case en == eo:
		return n.mantissa, other.mantissa
	case en > eo:
		return n.mantissa, padLowLimbs(other.mantissa, int(en-eo))
	default:
		return padLowLimbs(n.mantissa, int(eo-en)), other.mantissa
	}
}

func signedExp(n *BigNumber) int64 {
	v := int64(limbsToInt(currentWidth(), n.exponent))
	if n.exponentNegative {
		return -v
	}
	return v
}

func padLowLimbs(a limbs, zeroLimbs int) limbs {
	if zeroLimbs <= 0 {
		return a
	}
	out := make(limbs, zeroLimbs+len(a))
	copy(out[zeroLimbs:], a)
	return out
}

// requireSameMode returns UnsupportedMode unless both operands agree on
// isFloat.
func requireSameMode(a, b *BigNumber) error {
	if a.isFloat != b.isFloat {
		return newErr(UnsupportedMode, "operation requires both operands in the same mode")
	}
	return nil
}

// Add returns n+other. Integer mode: sign-aware magnitude add/sub. Float
// mode: align exponents, then proceed as integer mode, carrying the
// larger exponent (spec 4.D).
func (n *BigNumber) Add(other *BigNumber) (*BigNumber, error) {
	if err := requireSameMode(n, other); err != nil {
		return nil, err
	}
	w := currentWidth()
	am, bm := n.alignedMantissa(other)

	var mant limbs
	var neg bool
	if n.negative == other.negative {
		mant = add(w, am, bm)
		neg = n.negative
	} else if compare(am, bm) >= 0 {
		mant = sub(w, am, bm)
		neg = n.negative
	} else {
		mant = sub(w, bm, am)
		neg = other.negative
	}

	out := &BigNumber{mantissa: mant, negative: neg, isFloat: n.isFloat}
	if n.isFloat {
		if signedExp(n) >= signedExp(other) {
			out.exponent, out.exponentNegative = n.exponent, n.exponentNegative
		} else {
			out.exponent, out.exponentNegative = other.exponent, other.exponentNegative
		}
	}
	return normalizeBN(out), nil
}

// Sub returns n-other, implemented as n + (-other) per spec 4.D.
func (n *BigNumber) Sub(other *BigNumber) (*BigNumber, error) {
	return n.Add(other.Neg())
}

// Mul returns n*other. Integer: delegate to the adaptive multiplier and
// XOR the signs. Float: multiply mantissas and add signed exponents.
func (n *BigNumber) Mul(other *BigNumber) (*BigNumber, error) {
	if err := requireSameMode(n, other); err != nil {
		return nil, err
	}
	w := currentWidth()
	mant := multiply(w, n.mantissa, other.mantissa, defaultPool())
	neg := n.negative != other.negative

	out := &BigNumber{mantissa: mant, negative: neg, isFloat: n.isFloat}
	if n.isFloat {
		exp, expNeg := addSignedExp(n, other)
		out.exponent, out.exponentNegative = exp, expNeg
	}
	return normalizeBN(out), nil
}

func addSignedExp(a, b *BigNumber) (limbs, bool) {
	sum := signedExp(a) + signedExp(b)
	neg := sum < 0
	if neg {
		sum = -sum
	}
	return intToLimbs(currentWidth(), uint64(sum)), neg
}

func subSignedExp(a, b *BigNumber) (limbs, bool) {
	diff := signedExp(a) - signedExp(b)
	neg := diff < 0
	if neg {
		diff = -diff
	}
	return intToLimbs(currentWidth(), uint64(diff)), neg
}

// Div returns the quotient of n/other truncated toward zero (integer
// mode: |n| div |other| with the XOR of the operand signs) or the
// mantissa quotient with subtracted exponents (float mode). Division by
// zero returns DivideByZero.
func (n *BigNumber) Div(other *BigNumber) (*BigNumber, error) {
	if err := requireSameMode(n, other); err != nil {
		return nil, err
	}
	if isZero(other.mantissa) {
		return nil, newErr(DivideByZero, "division by zero")
	}
	w := currentWidth()
	q, _ := longDivide(w, n.mantissa, other.mantissa, defaultPool())
	neg := n.negative != other.negative

	out := &BigNumber{mantissa: q, negative: neg, isFloat: n.isFloat}
	if n.isFloat {
		exp, expNeg := subSignedExp(n, other)
		out.exponent, out.exponentNegative = exp, expNeg
	}
	return normalizeBN(out), nil
}

// QuoRem divides |n| by |other| (integer mode only) and returns the
// quotient and remainder signed like a truncating division: the quotient
// takes the XOR of the operand signs and the remainder takes n's sign.
func (n *BigNumber) QuoRem(other *BigNumber) (q, r *BigNumber, err error) {
	if n.isFloat || other.isFloat {
		return nil, nil, newErr(UnsupportedMode, "QuoRem is for integer mode only")
	}
	if isZero(other.mantissa) {
		return nil, nil, newErr(DivideByZero, "division by zero")
	}
	w := currentWidth()
	qm, rm := longDivide(w, n.mantissa, other.mantissa, defaultPool())
	q = normalizeBN(&BigNumber{mantissa: qm, negative: n.negative != other.negative})
	r = normalizeBN(&BigNumber{mantissa: rm, negative: n.negative})
	return q, r, nil
}

// longDivide performs long division with remainder: at each step
// R := R*BASE + next_limb_of_A, binary-search guess in [0,BASE) such that
// B*guess <= R, subtract, place guess in the quotient limb. Per spec 4.D.
func longDivide(w int, a, b limbs, p *Pool) (q, r limbs) {
	if isZero(a) {
		return limbs{0}, limbs{0}
	}
	if compare(a, b) < 0 {
		return limbs{0}, append(limbs(nil), a...)
	}

	quot := make(limbs, len(a))
	rem := limbs{0}

	for i := len(a) - 1; i >= 0; i-- {
		rem = shiftInLimb(w, rem, a[i])

		lo, hi := uint64(0), widthMask(w)
		var guess uint64
		for lo <= hi {
			mid := lo + (hi-lo)/2
			prod := mulSmall(w, b, mid)
			if compare(prod, rem) <= 0 {
				guess = mid
				if mid == hi {
					break
				}
				lo = mid + 1
			} else {
				if mid == 0 {
					break
				}
				hi = mid - 1
			}
		}
		rem = sub(w, rem, mulSmall(w, b, guess))
		quot[i] = guess
	}
	return normalize(quot), normalize(rem)
}

// shiftInLimb computes r*BASE + limb for the long-division accumulator.
func shiftInLimb(w int, r limbs, limb uint64) limbs {
	shifted := make(limbs, len(r)+1)
	copy(shifted[1:], r)
	shifted[0] = limb
	return normalize(shifted)
}

// Pow raises n to a non-negative integer exponent via repeated squaring,
// per spec 4.D. Negative exponents return NegativeExponent.
func (n *BigNumber) Pow(exponent *BigNumber) (*BigNumber, error) {
	if exponent.isFloat {
		return nil, newErr(UnsupportedMode, "Pow exponent must be integer mode")
	}
	if exponent.negative {
		return nil, newErr(NegativeExponent, "Pow does not support negative exponents")
	}
	w := currentWidth()
	expCopy := append(limbs(nil), exponent.mantissa...)
	result := limbs{1}
	base := append(limbs(nil), n.mantissa...)

	for !isZero(expCopy) {
		if expCopy[0]&1 == 1 {
			result = multiply(w, result, base, defaultPool())
		}
		base = multiply(w, base, base, defaultPool())
		expCopy = shiftRight1(w, expCopy)
	}

	neg := n.negative && (exponent.mantissa[0]&1 == 1)
	out := &BigNumber{mantissa: result, negative: neg, isFloat: n.isFloat}
	if n.isFloat {
		ePart := multiply(w, exponent.mantissa, n.exponent, defaultPool())
		out.exponent = ePart
		out.exponentNegative = n.exponentNegative
	}
	return normalizeBN(out), nil
}

// Sqrt returns floor(sqrt(n)) for integer mode, or the float-mode square
// root described in spec 4.D (factor one power of two out of an odd
// exponent, integer-sqrt the adjusted mantissa, halve the exponent).
// sqrt of a negative operand returns InvalidOperand.
func (n *BigNumber) Sqrt() (*BigNumber, error) {
	if n.negative {
		return nil, newErr(InvalidOperand, "sqrt of a negative number")
	}
	if !n.isFloat {
		return normalizeBN(&BigNumber{mantissa: isqrt(currentWidth(), n.mantissa)}), nil
	}

	w := currentWidth()
	e := signedExp(n)
	mant := append(limbs(nil), n.mantissa...)
	if e%2 != 0 {
		if n.exponentNegative {
			// e is negative and odd in magnitude; preserve
			// mantissa*2^e by halving the mantissa and incrementing e
			// toward 0.
			mant = shiftRight1(w, mant)
			e++
		} else {
			mant = mulSmall(w, mant, 2)
			e--
		}
	}
	root := isqrt(w, mant)
	halfE := e / 2
	neg := halfE < 0
	if neg {
		halfE = -halfE
	}
	out := &BigNumber{
		mantissa: root, isFloat: true,
		exponent: intToLimbs(w, uint64(halfE)), exponentNegative: neg,
	}
	return normalizeBN(out), nil
}

// isqrt computes floor(sqrt(a)) by binary search on [0, a], per spec
// 4.D: mid := (low+high)/2 via shift_right_1(add(low,high)); compare
// mid*mid with a; terminate when mid coincides with either bound.
func isqrt(w int, a limbs) limbs {
	if isZero(a) {
		return limbs{0}
	}
	low := limbs{0}
	high := append(limbs(nil), a...)
	p := defaultPool()

	for {
		mid := shiftRight1(w, add(w, low, high))
		if compare(mid, low) == 0 || compare(mid, high) == 0 {
			if compare(multiply(w, high, high, p), a) <= 0 {
				return high
			}
			sq := multiply(w, mid, mid, p)
			if compare(sq, a) > 0 {
				return low
			}
			return mid
		}
		sq := multiply(w, mid, mid, p)
		switch {
		case compare(sq, a) == 0:
			return mid
		case compare(sq, a) < 0:
			low = mid
		default:
			high = mid
		}
	}
}
