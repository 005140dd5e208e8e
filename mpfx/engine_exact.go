package mpfx

import (
	"math"
)

// EngineExact passes the native result through, assuming the operation
// is exact at double precision. Under the mpfx_debug build tag the
// assumption is verified through the emulated environment.
type EngineExact struct{}

func verify_exact(op func() float64, name string) {
	clear_exceptions()
	op()
	if get_exceptions()&(fe_inexact|fe_overflow) != 0 {
		panic("mpfx: " + name + ": operation assumed exact was inexact")
	}
	clear_exceptions()
}

func (EngineExact) add(x, y float64, p uint) float64 {
	check_engine_prec(p)
	if debug_checks && isfinite(x) && isfinite(y) {
		verify_exact(func() float64 { return rtz_add(x, y) }, "add_exact")
	}
	return x + y
}

func (EngineExact) sub(x, y float64, p uint) float64 {
	check_engine_prec(p)
	if debug_checks && isfinite(x) && isfinite(y) {
		verify_exact(func() float64 { return rtz_sub(x, y) }, "sub_exact")
	}
	return x - y
}

func (EngineExact) mul(x, y float64, p uint) float64 {
	check_engine_prec(p)
	if debug_checks && isfinite(x) && isfinite(y) {
		verify_exact(func() float64 { return rtz_mul(x, y) }, "mul_exact")
	}
	return x * y
}

func (EngineExact) div(x, y float64, p uint) float64 {
	check_engine_prec(p)
	if debug_checks && isfinite(x) && isfinite(y) && y != 0 {
		verify_exact(func() float64 { return rtz_div(x, y) }, "div_exact")
	}
	return x / y
}

func (EngineExact) sqrt(x float64, p uint) float64 {
	check_engine_prec(p)
	if debug_checks && isfinite(x) && x > 0 {
		verify_exact(func() float64 { return rtz_sqrt(x) }, "sqrt_exact")
	}
	return math.Sqrt(x)
}

func (EngineExact) fma(x, y, z float64, p uint) float64 {
	check_engine_prec(p)
	if debug_checks && isfinite(x) && isfinite(y) && isfinite(z) {
		verify_exact(func() float64 { return rtz_fma(x, y, z) }, "fma_exact")
	}
	return math.FMA(x, y, z)
}
