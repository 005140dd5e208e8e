package mpfx

import (
	"math"
)

// Context describes a target number format: a precision p, an optional
// first unrepresentable position n, an optional maximum magnitude, and
// a rounding mode. Contexts are immutable; build them with MP, MPS,
// MPB or IEEE754.
type Context struct {
	p          uint
	n          int32
	has_n      bool
	maxval     float64
	has_max    bool
	maxval_odd bool
	rm         RoundingMode
}

// Prec returns the precision of the format.
func (ctx *Context) Prec() uint {
	return ctx.p
}

// Mode returns the rounding mode of the format.
func (ctx *Context) Mode() RoundingMode {
	return ctx.rm
}

// RoundPrec is the minimum round-to-odd working precision that makes
// rerounding into this context safe.
func (ctx *Context) RoundPrec() uint {
	return ctx.p + 2
}

// Round rounds x into the format.
func (ctx *Context) Round(x float64) float64 {
	return ctx.RoundMasked(x, FlagsAll)
}

// RoundMasked is Round with an explicit status-flag mask. The mask only
// gates flag updates; the result never depends on it.
func (ctx *Context) RoundMasked(x float64, mask Flags) float64 {
	r := round_double(x, ctx.p, ctx.n, ctx.has_n, ctx.rm, mask)
	return ctx.round_overflow(r, mask)
}

// RoundFixed rounds the fixed-point value m * 2^exp into the format.
func (ctx *Context) RoundFixed(m int64, exp int32) float64 {
	return ctx.RoundFixedMasked(m, exp, FlagsAll)
}

// RoundFixedMasked is RoundFixed with an explicit status-flag mask.
func (ctx *Context) RoundFixedMasked(m int64, exp int32, mask Flags) float64 {
	r := round_fixed(m, exp, ctx.p, ctx.n, ctx.has_n, ctx.rm, mask)
	return ctx.round_overflow(r, mask)
}

// round_overflow saturates a rounded result whose magnitude exceeds the
// format maximum, to either the maximum or a signed infinity depending
// on the rounding direction.
func (ctx *Context) round_overflow(x float64, mask Flags) float64 {
	if !ctx.has_max || !isfinite(x) {
		return x
	}
	if math.Abs(x) <= ctx.maxval {
		return x
	}
	raise(mask, FlagOverflow|FlagInexact)
	s := math.Signbit(x)
	if overflow_to_infinity(ctx.rm, s, ctx.maxval_odd) {
		if s {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return math.Copysign(ctx.maxval, x)
}

// overflow_to_infinity decides whether an overflowed value saturates to
// infinity rather than to the format maximum. The rounding direction
// for the value's sign decides; the even/odd directions consult the
// parity of the maximum's least significant digit.
func overflow_to_infinity(rm RoundingMode, s bool, maxval_odd bool) bool {
	switch direction(rm, s) {
	case dir_to_zero:
		return false
	case dir_away_zero:
		return true
	case dir_to_even:
		return maxval_odd
	default:
		return !maxval_odd
	}
}
