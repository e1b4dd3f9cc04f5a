package bizarromath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchoolbookMulSmall(t *testing.T) {
	w := currentWidth()
	a := intToLimbs(w, 123)
	b := intToLimbs(w, 456)
	got := schoolbookMul(w, a, b)
	assert.Equal(t, uint64(123*456), limbsToInt(w, got))
}

func TestPowerHostExponent(t *testing.T) {
	w := currentWidth()
	base := intToLimbs(w, 3)
	got := power(w, base, 5, defaultPool())
	assert.Equal(t, uint64(243), limbsToInt(w, got))

	one := power(w, base, 0, defaultPool())
	assert.Equal(t, uint64(1), limbsToInt(w, one))
}

func TestMultiplyDispatchBoundaries(t *testing.T) {
	w := currentWidth()
	// Exercise every strategy boundary named in spec 4.B directly.
	small := make(limbs, 10)
	mid := make(limbs, 50)
	large := make(limbs, 130)
	for i := range small {
		small[i] = 1
	}
	for i := range mid {
		mid[i] = 1
	}
	for i := range large {
		large[i] = 1
	}

	p := defaultPool()
	assert.Equal(t, schoolbookMul(w, small, small), multiply(w, small, small, p))
	assert.Equal(t, karatsubaMul(w, mid, mid, p), multiply(w, mid, mid, p))
	assert.Equal(t, toom3Mul(w, large, large, p), multiply(w, large, large, p))
}
