package bizarromath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6 from spec 8.
func TestScenarioS6Rational(t *testing.T) {
	a, err := FromDecimalRational("123.456")
	require.NoError(t, err)
	b, err := FromDecimalRational("0.0001")
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "123.4561", sum.ToDecimalStringUnbounded())

	c, err := FromDecimalRational("100.0")
	require.NoError(t, err)
	d, err := FromDecimalRational("4.0")
	require.NoError(t, err)
	q, err := c.Div(d)
	require.NoError(t, err)
	assert.Equal(t, "25", q.ToDecimalStringUnbounded())

	e, err := FromDecimalRational("-5")
	require.NoError(t, err)
	f, err := FromDecimalRational("3")
	require.NoError(t, err)
	p, err := e.Mul(f)
	require.NoError(t, err)
	assert.Equal(t, "-15", p.ToDecimalStringUnbounded())
}

func TestRationalReducedInvariant(t *testing.T) {
	num := FromInt64(12)
	den := FromInt64(18)
	r, err := NewRational(num, den)
	require.NoError(t, err)
	assert.Equal(t, "2", r.num.ToDecimalString())
	assert.Equal(t, "3", r.den.ToDecimalString())

	g := gcdAbs(r.num.Abs(), r.den)
	one, _ := g.Cmp(FromInt64(1))
	assert.Equal(t, 0, one)
}

func TestRationalNegativeDenominatorNormalized(t *testing.T) {
	r, err := NewRational(FromInt64(3), FromInt64(-4))
	require.NoError(t, err)
	assert.Equal(t, -1, r.num.Sign())
	assert.Equal(t, 1, r.den.Sign())
}

func TestRationalZeroDenominator(t *testing.T) {
	_, err := NewRational(FromInt64(1), FromInt64(0))
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, DivideByZero, e.Kind)
}

// Universal invariant 10 from spec 8: (a/b + c/d) - c/d == a/b.
func TestRationalCrossOpIdentity(t *testing.T) {
	ab, err := NewRational(FromInt64(7), FromInt64(11))
	require.NoError(t, err)
	cd, err := NewRational(FromInt64(5), FromInt64(13))
	require.NoError(t, err)

	sum, err := ab.Add(cd)
	require.NoError(t, err)
	back, err := sum.Sub(cd)
	require.NoError(t, err)

	// 7/11 has no terminating decimal expansion, so compare the reduced
	// num/den forms rather than ToDecimalStringUnbounded.
	assert.Equal(t, ab.String(), back.String())
}
