package bizarromath

import (
	"math"
	"strconv"
	"strings"
)

// FromDecimal parses a decimal literal per spec 4.D/6: optional leading
// '-', one digit block optionally containing a single '.'. A fractional
// part of length L marks the result as float mode with
// exponentNegative=true and E = ceil(L*log2(10)); the mantissa is the
// digit sequence with the decimal point removed. This reproduces the
// source's encoding exactly, including its documented quirk that the
// result does not numerically equal the decimal literal (see DESIGN.md's
// open-question resolutions and spec 9's open question) —
// FromDecimalRational is the numerically correct decimal path.
func FromDecimal(s string) (*BigNumber, error) {
	neg := false
	rest := s
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}

	digits := rest
	fracLen := 0
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		if strings.IndexByte(rest[dot+1:], '.') >= 0 {
			return nil, newErr(InvalidDigit, "more than one '.' in decimal literal")
		}
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

	out := &BigNumber{mantissa: mant, negative: neg, exponent: limbs{0}}
	if fracLen > 0 {
		out.isFloat = true
		out.exponentNegative = true
		e := int64(math.Ceil(float64(fracLen) * math.Log2(10)))
		out.exponent = intToLimbs(w, uint64(e))
	}
	return normalizeBN(out), nil
}

// FromBinaryString parses an unsigned binary literal with an optional
// "0b" prefix, per spec 6. Always produces an integer-mode BigNumber;
// leading-zero preservation is a BitView concern (BitView.keepLeadingZeros),
// not a BigNumber one, since a BigNumber is always normalized canonically.
func FromBinaryString(s string) (*BigNumber, error) {
	rest := strings.TrimPrefix(s, "0b")
	if rest == "" {
		return Zero(), nil
	}
	w := currentWidth()
	out := limbs{0}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c != '0' && c != '1' {
			return nil, newErr(InvalidDigit, "unexpected character '"+string(c)+"' in binary string")
		}
		out = mulSmall(w, out, 2)
		out = add(w, out, limbs{uint64(c - '0')})
	}
	return normalizeBN(&BigNumber{mantissa: normalize(out), exponent: limbs{0}}), nil
}

// String renders n as a decimal literal (integer mode) or in the
// compatibility-critical "[sign]mantissa * 2^[signed_exponent]" textual
// form (float mode), matching spec 6 byte-for-byte.
func (n *BigNumber) String() string {
	return n.ToDecimalString()
}

// ToDecimalString is the named decimal-output operation from spec 4.D.
func (n *BigNumber) ToDecimalString() string {
	w := currentWidth()
	sign := ""
	if n.negative {
		sign = "-"
	}
	if !n.isFloat {
		return sign + limbsToDec(w, n.mantissa)
	}
	e := signedExp(n)
	return sign + limbsToDec(w, n.mantissa) + " * 2^" + strconv.FormatInt(e, 10)
}
