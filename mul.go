package bizarromath

import "time"

// Strategy thresholds from spec 4.B: schoolbook below karatsubaThreshold,
// Karatsuba from there up to toomThreshold, Toom-3 above that (here: the
// Karatsuba path, see toom3Mul; the reference's own _toom3 is a literal
// schoolbook fallback).
const (
	karatsubaThreshold = 32
	toomThreshold      = 128
)

const (
	strategySchoolbook = "schoolbook"
	strategyKaratsuba  = "karatsuba"
	strategyToom3      = "toom3"
)

// multiply dispatches to the size-appropriate strategy, drawing
// Karatsuba's result buffer from p, and recording timing per strategy
// per spec 4.B ("Timing is recorded per strategy in the pool's metrics");
// calls slower than a millisecond also emit a debug log line.
func multiply(w int, a, b limbs, p *Pool) limbs {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var strategy string
	start := time.Now()
	var out limbs
	switch {
	case n < karatsubaThreshold:
		strategy = strategySchoolbook
		out = schoolbookMul(w, a, b)
	case n < toomThreshold:
		strategy = strategyKaratsuba
		out = karatsubaMul(w, a, b, p)
	default:
		strategy = strategyToom3
		out = toom3Mul(w, a, b, p)
	}
	elapsed := time.Since(start)
	p.recordStrategyTime(strategy, elapsed.Seconds())
	if elapsed > time.Millisecond {
		logger().Debug().Str("strategy", strategy).Int("limbs", n).Dur("elapsed", elapsed).
			Msg("bizarromath: multiply dispatch")
	}
	return out
}

// schoolbookMul is the O(n^2) double-loop multiply from spec 4.B: a
// running 2w-bit accumulator per (i,j) cell, carry = acc>>w, store =
// acc&MASK. It is also used directly, at an explicit width, by the
// chunk-width auto-tune benchmark in chunkwidth.go.
func schoolbookMul(w int, a, b limbs) limbs {
	if isZero(a) || isZero(b) {
		return limbs{0}
	}
	out := make(limbs, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			hi, lo := mulAddWWW(w, av, bv, out[i+j])
			lo, c := addWW(w, lo, carry, 0)
			out[i+j] = lo
			carry = hi + c
		}
		k := i + len(b)
		for carry != 0 {
			var c uint64
			out[k], c = addWW(w, out[k], carry, 0)
			carry = c
			k++
		}
	}
	return normalize(out)
}

// karatsubaMul splits both operands at half = n/2 and combines
// z0 = A0*B0, z2 = A1*B1, z1 = (A0+A1)(B0+B1) - z0 - z2 into
// z0 + (z1 << half*w) + (z2 << 2*half*w), per spec 4.B. Recursion bottoms
// out in schoolbookMul below karatsubaThreshold.
func karatsubaMul(w int, a, b limbs, p *Pool) limbs {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n < karatsubaThreshold {
		return schoolbookMul(w, a, b)
	}

	half := n / 2
	a0, a1 := splitAt(a, half)
	b0, b1 := splitAt(b, half)

	z0 := karatsubaMul(w, a0, b0, p)
	z2 := karatsubaMul(w, a1, b1, p)

	sumA := add(w, a0, a1)
	sumB := add(w, b0, b1)
	z1 := karatsubaMul(w, sumA, sumB, p)
	z1 = subMagnitude(w, z1, z0)
	z1 = subMagnitude(w, z1, z2)

	result := p.get(2 * n)
	addShifted(w, result, z0, 0)
	addShifted(w, result, z1, half)
	addShifted(w, result, z2, 2*half)
	out := append(limbs(nil), normalize(result)...)
	p.put(result)
	return out
}

// toom3Mul is the Toom-3 slot named in spec 4.B. The reference
// implementation's own _toom3 falls back to schoolbook outright (see
// SPEC_FULL.md); this keeps the same contract (same input/output shape
// and correctness) with the dispatch branch named so a real Toom-3 can be
// substituted later without touching any caller.
func toom3Mul(w int, a, b limbs, p *Pool) limbs {
	return karatsubaMul(w, a, b, p)
}

func splitAt(a limbs, half int) (lo, hi limbs) {
	if half >= len(a) {
		return a, limbs{0}
	}
	lo = normalize(append(limbs(nil), a[:half]...))
	hi = normalize(append(limbs(nil), a[half:]...))
	return lo, hi
}

// subMagnitude subtracts b from a, both non-negative magnitudes with
// a >= b guaranteed by Karatsuba's algebra (z1 before subtraction is
// (A0+A1)(B0+B1), always >= z0+z2 for non-negative limbs).
func subMagnitude(w int, a, b limbs) limbs {
	if compare(a, b) < 0 {
		panic("bizarromath: karatsuba: z1 < z0+z2, algebra violated")
	}
	return sub(w, a, b)
}

// addShifted adds source into target at a limb offset, carrying beyond
// the end of source for as long as target has room, mirroring the
// reference's _add_shifted helper.
func addShifted(w int, target, source limbs, shift int) {
	var carry uint64
	i := 0
	for ; i < len(source) && shift+i < len(target); i++ {
		target[shift+i], carry = addWW(w, target[shift+i], source[i], carry)
	}
	for idx := shift + i; carry != 0 && idx < len(target); idx++ {
		target[idx], carry = addWW(w, target[idx], carry, 0)
	}
}

// power computes base^exp via repeated squaring on a host exponent,
// consuming exp from its low bit upward (right-to-left), per spec 4.B.
// exp == 0 returns [1].
func power(w int, base limbs, exp uint64, p *Pool) limbs {
	result := limbs{1}
	b := append(limbs(nil), base...)
	for exp > 0 {
		if exp&1 == 1 {
			result = multiply(w, result, b, p)
		}
		b = multiply(w, b, b, p)
		exp >>= 1
	}
	return result
}
