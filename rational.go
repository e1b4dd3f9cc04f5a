package bizarromath

import "strings"

// Rational is an exact fraction built from a pair of integer-mode
// BigNumbers, reduced to lowest terms at construction, per spec 4.E/3.
// Invariants: den > 0, gcd(|num|, den) == 1, sign lives on num.
type Rational struct {
	num *BigNumber
	den *BigNumber
}

// NewRational builds a reduced Rational from num/den. A zero denominator
// returns DivideByZero; a negative denominator is normalized by
// negating both operands (spec 4.E).
func NewRational(num, den *BigNumber) (*Rational, error) {
	if num.isFloat || den.isFloat {
		return nil, newErr(UnsupportedMode, "Rational operands must be integer mode")
	}
	if isZero(den.mantissa) {
		return nil, newErr(DivideByZero, "zero denominator")
	}
	n, d := num, den
	if d.negative {
		n, d = n.Neg(), d.Neg()
	}
	g := gcdAbs(n.Abs(), d)
	if one, _ := g.Cmp(FromInt64(1)); one != 0 {
		nq, _, err := n.Abs().QuoRem(g)
		if err != nil {
			return nil, err
		}
		dq, _, err := d.QuoRem(g)
		if err != nil {
			return nil, err
		}
		if n.negative {
			nq = nq.Neg()
		}
		n, d = nq, dq
	}
	return &Rational{num: n, den: d}, nil
}

// gcdAbs computes gcd(a,b) for non-negative integer-mode a, b via the
// Euclidean divmod loop named in spec 4.E.
func gcdAbs(a, b *BigNumber) *BigNumber {
	for b.Sign() != 0 {
		_, r, _ := a.QuoRem(b)
		a, b = b, r.Abs()
	}
	return a.Abs()
}

func mustMul(a, b *BigNumber) *BigNumber {
	r, err := a.Mul(b)
	if err != nil {
		panic(err) // integer*integer never fails mode-matching here
	}
	return r
}

// Add returns (a*d + b*c) / (b*d), per spec 4.E's cross-multiplication
// formula.
func (r *Rational) Add(o *Rational) (*Rational, error) {
	ad := mustMul(r.num, o.den)
	bc := mustMul(o.num, r.den)
	num, err := ad.Add(bc)
	if err != nil {
		return nil, err
	}
	den := mustMul(r.den, o.den)
	out, err := NewRational(num, den)
	if err != nil {
		return nil, wrapf(err, "reducing result of rational add")
	}
	return out, nil
}

// Sub returns (a*d - b*c) / (b*d).
func (r *Rational) Sub(o *Rational) (*Rational, error) {
	ad := mustMul(r.num, o.den)
	bc := mustMul(o.num, r.den)
	num, err := ad.Sub(bc)
	if err != nil {
		return nil, err
	}
	den := mustMul(r.den, o.den)
	out, err := NewRational(num, den)
	if err != nil {
		return nil, wrapf(err, "reducing result of rational sub")
	}
	return out, nil
}

// Mul returns (a*c) / (b*d).
func (r *Rational) Mul(o *Rational) (*Rational, error) {
	return NewRational(mustMul(r.num, o.num), mustMul(r.den, o.den))
}

// Div returns (a*d) / (b*c); a zero numerator on the right side returns
// DivideByZero.
func (r *Rational) Div(o *Rational) (*Rational, error) {
	if o.num.Sign() == 0 {
		return nil, newErr(DivideByZero, "division by zero rational")
	}
	return NewRational(mustMul(r.num, o.den), mustMul(r.den, o.num))
}

// FromDecimalRational parses a decimal literal into an exact fraction:
// strip the leading sign, locate the optional '.', let L be the
// fractional length, parse the digit block as an integer numerator and
// set denominator = 10^L. Empty string is zero. Unlike
// BigNumber.FromDecimal this is the numerically correct decimal path
// named in spec 9's open question.
func FromDecimalRational(s string) (*Rational, error) {
	if s == "" {
		return NewRational(Zero(), FromInt64(1))
	}
	neg := false
	rest := s
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	digits := rest
	fracLen := 0
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		digits = rest[:dot] + rest[dot+1:]
		fracLen = len(rest) - dot - 1
	}
	if digits == "" {
		digits = "0"
	}
	w := currentWidth()
	mant, err := decToLimbs(w, digits)
	if err != nil {
		return nil, err
	}
	num := normalizeBN(&BigNumber{mantissa: mant, negative: neg, exponent: limbs{0}})

	den := FromInt64(1)
	for i := 0; i < fracLen; i++ {
		den = mustMul(den, FromInt64(10))
	}
	return NewRational(num, den)
}

// String renders "num / den" for debugging, per spec 6.
func (r *Rational) String() string {
	return r.num.ToDecimalString() + " / " + r.den.ToDecimalString()
}

// ToDecimalStringUnbounded returns [sign][int][.[frac]], emitting no
// decimal point when the fraction is an integer. The fractional loop
// (r:=r*10; digit:=r div den; r:=r mod den) runs until the remainder
// hits zero with no cycle detection: a denominator with any prime factor
// other than 2 or 5 loops forever, which spec 4.E/9 calls out as a
// deliberate contract, not a bug. Callers must supply terminating inputs
// or bound the call externally.
func (r *Rational) ToDecimalStringUnbounded() string {
	sign := ""
	if r.num.Sign() < 0 {
		sign = "-"
	}
	absNum := r.num.Abs()
	intPart, rem, _ := absNum.QuoRem(r.den)

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(intPart.ToDecimalString())

	if rem.Sign() == 0 {
		return b.String()
	}
	b.WriteByte('.')
	ten := FromInt64(10)
	for rem.Sign() != 0 {
		rem = mustMul(rem, ten)
		digit, newRem, _ := rem.QuoRem(r.den)
		b.WriteString(digit.ToDecimalString())
		rem = newRem
	}
	return b.String()
}
