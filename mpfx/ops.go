package mpfx

import (
	"math"
)

// User-visible operations. The arithmetic operations are generic over
// an Engine type parameter, so each call site is monomorphized for its
// engine; the Masked variants additionally take an explicit status-flag
// mask. Operation-level conditions (invalid, division by zero) are
// detected here, independently of the engine.

// Engine is the arithmetic capability the operations dispatch over. An
// engine computes an intermediate double carrying at least p bits of
// information about the true result, rounding to odd where the
// operation is inexact.
type Engine interface {
	add(x, y float64, p uint) float64
	sub(x, y float64, p uint) float64
	mul(x, y float64, p uint) float64
	div(x, y float64, p uint) float64
	sqrt(x float64, p uint) float64
	fma(x, y, z float64, p uint) float64
}

func check_round_prec(ctx *Context) {
	if ctx.RoundPrec() > f64_prec {
		panic("mpfx: context working precision exceeds double capability")
	}
}

// Round rounds x into the context.
func Round(x float64, ctx *Context) float64 {
	return ctx.Round(x)
}

// Neg rounds -x into the context.
func Neg(x float64, ctx *Context) float64 {
	return ctx.Round(-x)
}

// Abs rounds |x| into the context.
func Abs(x float64, ctx *Context) float64 {
	return ctx.Round(math.Abs(x))
}

// Add computes x + y rounded into the context.
func Add[E Engine](x, y float64, ctx *Context) float64 {
	return AddMasked[E](x, y, ctx, FlagsAll)
}

// AddMasked is Add with an explicit status-flag mask.
func AddMasked[E Engine](x, y float64, ctx *Context, mask Flags) float64 {
	check_round_prec(ctx)
	var e E
	r := e.add(x, y, ctx.RoundPrec())
	if math.IsNaN(r) && math.IsInf(x, 0) && math.IsInf(y, 0) {
		// (+inf) + (-inf)
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}

// Sub computes x - y rounded into the context.
func Sub[E Engine](x, y float64, ctx *Context) float64 {
	return SubMasked[E](x, y, ctx, FlagsAll)
}

// SubMasked is Sub with an explicit status-flag mask.
func SubMasked[E Engine](x, y float64, ctx *Context, mask Flags) float64 {
	check_round_prec(ctx)
	var e E
	r := e.sub(x, y, ctx.RoundPrec())
	if math.IsNaN(r) && math.IsInf(x, 0) && math.IsInf(y, 0) {
		// (+inf) - (+inf)
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}

// Mul computes x * y rounded into the context.
func Mul[E Engine](x, y float64, ctx *Context) float64 {
	return MulMasked[E](x, y, ctx, FlagsAll)
}

// MulMasked is Mul with an explicit status-flag mask.
func MulMasked[E Engine](x, y float64, ctx *Context, mask Flags) float64 {
	check_round_prec(ctx)
	var e E
	r := e.mul(x, y, ctx.RoundPrec())
	if math.IsNaN(r) && mul_invalid(x, y) {
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}

func mul_invalid(x, y float64) bool {
	return (x == 0 && math.IsInf(y, 0)) || (math.IsInf(x, 0) && y == 0)
}

// Div computes x / y rounded into the context.
func Div[E Engine](x, y float64, ctx *Context) float64 {
	return DivMasked[E](x, y, ctx, FlagsAll)
}

// DivMasked is Div with an explicit status-flag mask.
func DivMasked[E Engine](x, y float64, ctx *Context, mask Flags) float64 {
	check_round_prec(ctx)
	if isfinite(x) && x != 0 && y == 0 {
		raise(mask, FlagDivByZero)
	}
	var e E
	r := e.div(x, y, ctx.RoundPrec())
	if math.IsNaN(r) && ((x == 0 && y == 0) || (math.IsInf(x, 0) && math.IsInf(y, 0))) {
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}

// Sqrt computes the square root of x rounded into the context.
func Sqrt[E Engine](x float64, ctx *Context) float64 {
	return SqrtMasked[E](x, ctx, FlagsAll)
}

// SqrtMasked is Sqrt with an explicit status-flag mask.
func SqrtMasked[E Engine](x float64, ctx *Context, mask Flags) float64 {
	check_round_prec(ctx)
	var e E
	r := e.sqrt(x, ctx.RoundPrec())
	if math.IsNaN(r) && x < 0 && isfinite(x) {
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}

// Fma computes x*y + z with a single rounding into the context.
func Fma[E Engine](x, y, z float64, ctx *Context) float64 {
	return FmaMasked[E](x, y, z, ctx, FlagsAll)
}

// FmaMasked is Fma with an explicit status-flag mask.
func FmaMasked[E Engine](x, y, z float64, ctx *Context, mask Flags) float64 {
	check_round_prec(ctx)
	var e E
	r := e.fma(x, y, z, ctx.RoundPrec())
	if math.IsNaN(r) && fma_invalid(x, y, z) {
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}

func fma_invalid(x, y, z float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		// NaN operands propagate without raising invalid
		return false
	}
	if mul_invalid(x, y) {
		return true
	}
	// infinite product against an opposite-signed infinite addend
	return (math.IsInf(x, 0) || math.IsInf(y, 0)) && math.IsInf(z, 0)
}

// MulFixed computes x * y through the fixed-point engine. The inputs
// must already be representable in the context so that the 63-bit
// product cannot wrap. Non-finite inputs fall back to the exact engine.
func MulFixed(x, y float64, ctx *Context) float64 {
	return MulFixedMasked(x, y, ctx, FlagsAll)
}

// MulFixedMasked is MulFixed with an explicit status-flag mask.
func MulFixedMasked(x, y float64, ctx *Context, mask Flags) float64 {
	if isfinite(x) && isfinite(y) {
		m, exp := mul_fixed(x, y, ctx.RoundPrec())
		return ctx.RoundFixedMasked(m, exp, mask)
	}
	var e EngineExact
	r := e.mul(x, y, ctx.RoundPrec())
	if math.IsNaN(r) && mul_invalid(x, y) {
		raise(mask, FlagInvalid)
	}
	return ctx.RoundMasked(r, mask)
}
