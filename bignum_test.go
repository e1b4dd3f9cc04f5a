package bizarromath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1-S5 from spec 8's concrete end-to-end scenarios.

func TestScenarioS1Add(t *testing.T) {
	a, err := FromDecimal("123")
	require.NoError(t, err)
	b, err := FromDecimal("456")
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "579", sum.ToDecimalString())
}

func TestScenarioS2Mul(t *testing.T) {
	a, err := FromDecimal("999999")
	require.NoError(t, err)
	b, err := FromDecimal("1001")
	require.NoError(t, err)
	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, "1000998999", p.ToDecimalString())
}

func TestScenarioS3Div(t *testing.T) {
	a, err := FromDecimal("999999")
	require.NoError(t, err)
	b, err := FromDecimal("1000")
	require.NoError(t, err)
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "999", q.ToDecimalString())
}

func TestScenarioS4Pow(t *testing.T) {
	base, err := FromDecimal("5")
	require.NoError(t, err)
	exp, err := FromDecimal("3")
	require.NoError(t, err)
	p, err := base.Pow(exp)
	require.NoError(t, err)
	assert.Equal(t, "125", p.ToDecimalString())
}

func TestScenarioS5Sqrt(t *testing.T) {
	a, err := FromDecimal("1000000")
	require.NoError(t, err)
	s, err := a.Sqrt()
	require.NoError(t, err)
	assert.Equal(t, "1000", s.ToDecimalString())
}

func TestDivideByZero(t *testing.T) {
	a, _ := FromDecimal("10")
	z, _ := FromDecimal("0")
	_, err := a.Div(z)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, DivideByZero, e.Kind)
}

func TestPowNegativeExponent(t *testing.T) {
	a, _ := FromDecimal("2")
	neg, _ := FromDecimal("-1")
	_, err := a.Pow(neg)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, NegativeExponent, e.Kind)
}

func TestSqrtNegative(t *testing.T) {
	a, _ := FromDecimal("-4")
	_, err := a.Sqrt()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, InvalidOperand, e.Kind)
}

// Universal invariant 7 from spec 8: divmod identity.
func TestQuoRemIdentity(t *testing.T) {
	a, _ := FromDecimal("123456789")
	b, _ := FromDecimal("9173")
	q, r, err := a.QuoRem(b)
	require.NoError(t, err)

	recombined, err := mustMulCheck(t, q, b)
	require.NoError(t, err)
	total, err := recombined.Add(r)
	require.NoError(t, err)
	assert.Equal(t, a.ToDecimalString(), total.ToDecimalString())

	bVal, _ := b.Cmp(r)
	assert.Equal(t, 1, bVal, "remainder must be strictly less than divisor")
}

func mustMulCheck(t *testing.T, a, b *BigNumber) (*BigNumber, error) {
	t.Helper()
	return a.Mul(b)
}

// Universal invariant 6: decode(multiply(A,B)) == decode(A)*decode(B), on
// operand sizes that force the Karatsuba path (>=32 limbs at W=32, i.e.
// >=1024 bits).
func TestMultiplyKaratsubaAgainstSchoolbook(t *testing.T) {
	big1 := repeatDigits("7", 400)
	big2 := repeatDigits("3", 400)
	a, err := FromDecimal(big1)
	require.NoError(t, err)
	b, err := FromDecimal(big2)
	require.NoError(t, err)

	w := currentWidth()
	want := schoolbookMul(w, a.mantissa, b.mantissa)
	got := multiply(w, a.mantissa, b.mantissa, defaultPool())
	assert.Equal(t, want, got)
}

func repeatDigits(d string, n int) string {
	out := make([]byte, 0, n*len(d))
	for i := 0; i < n; i++ {
		out = append(out, d...)
	}
	return string(out)
}

func TestFromDecimalFloatQuirk(t *testing.T) {
	// spec 9's documented open question: from_decimal("123.456") encodes
	// the digit string "123456" as the mantissa with a binary exponent,
	// which does not numerically equal 123.456. This test pins the
	// mantissa digits and the exponent's sign rather than asserting a
	// numeric value.
	n, err := FromDecimal("123.456")
	require.NoError(t, err)
	require.True(t, n.IsFloat())
	assert.Equal(t, "123456", limbsToDec(currentWidth(), n.mantissa))
	assert.True(t, n.exponentNegative)
}

func TestZeroCanonicalForm(t *testing.T) {
	n, err := FromDecimal("-0")
	require.NoError(t, err)
	assert.Equal(t, 0, n.Sign())
	assert.False(t, n.negative)
	assert.Equal(t, limbs{0}, n.exponent)
}
