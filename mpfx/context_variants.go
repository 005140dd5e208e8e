package mpfx

import (
	"math"
)

// The four context shapes. MP has no exponent bounds, MPS adds a
// minimum normalized exponent, MPB adds a maximum magnitude, and
// IEEE754 derives all parameters from an (es, nbits) format
// description.

func check_prec(p uint) {
	if p == 0 {
		panic("mpfx: context precision must be positive")
	}
}

// MP builds an unbounded context: precision and rounding mode only.
func MP(p uint, rm RoundingMode) *Context {
	check_prec(p)
	return &Context{p: p, rm: rm}
}

// MPS adds a minimum normalized exponent emin; all significant digits
// of a representable value lie strictly above position n = emin - p.
func MPS(p uint, emin int32, rm RoundingMode) *Context {
	check_prec(p)
	return &Context{p: p, n: emin - int32(p), has_n: true, rm: rm}
}

// MPB adds a maximum magnitude. maxval must be finite, non-negative and
// exactly representable in the MPS(p, emin, rm) format.
func MPB(p uint, emin int32, maxval float64, rm RoundingMode) *Context {
	ctx := MPS(p, emin, rm)
	if !isfinite(maxval) {
		panic("mpfx: MPB: maxval must be finite")
	}
	if math.Signbit(maxval) {
		panic("mpfx: MPB: maxval must be non-negative")
	}
	if maxval != round_double(maxval, ctx.p, ctx.n, true, rm, FlagsNone) {
		panic("mpfx: MPB: maxval is not representable in the format")
	}
	ctx.maxval = maxval
	ctx.has_max = true
	// parity of maxval at significand position p-1, for overflow
	// tie-breaking
	b := math.Float64bits(maxval)
	pos := int32(f64_prec-1) - int32(p) + 1
	ctx.maxval_odd = pos >= 0 && (b>>uint(pos))&1 != 0
	return ctx
}

// IEEE754 builds the context of a standard binary format with es
// exponent bits and nbits total bits (sign included). The derived
// parameters are p = nbits - es, emax = 2^(es-1) - 1, emin = 1 - emax,
// and maxval = (2^p - 1) * 2^(emax-p+1).
func IEEE754(es, nbits uint, rm RoundingMode) *Context {
	if es < 2 || es > 11 {
		panic("mpfx: IEEE754: exponent width out of range")
	}
	if nbits < es+2 {
		panic("mpfx: IEEE754: total width too small")
	}
	p := nbits - es
	if p > f64_prec {
		panic("mpfx: IEEE754: precision exceeds double capability")
	}
	emax := int32(1)<<(es-1) - 1
	emin := 1 - emax
	mbits := (uint64(1)<<(p-1) - 1) << (f64_prec - p)
	ebits := uint64(emax+f64_bias) << 52
	maxval := math.Float64frombits(ebits | mbits)
	return MPB(p, emin, maxval, rm)
}
