package mpfx

import (
	"math"
)

// EngineHW computes round-to-odd intermediates through the emulated
// floating-point environment: each operation runs inside a
// round-toward-zero window and the inexact sticky bit is jammed into
// the result's least significant bit. The result must neither overflow
// nor underflow double range inside the window.
type EngineHW struct{}

func hw_finish(r float64, exc fp_csr) float64 {
	if debug_checks && exc&(fe_overflow|fe_underflow) != 0 {
		panic("mpfx: round-to-odd window overflowed or underflowed")
	}
	if exc&fe_inexact != 0 {
		r = math.Float64frombits(math.Float64bits(r) | 1)
	}
	return r
}

func (EngineHW) add(x, y float64, p uint) float64 {
	check_engine_prec(p)
	old := prepare_rtz()
	r := rtz_add(x, y)
	return hw_finish(r, rtz_status(old))
}

func (EngineHW) sub(x, y float64, p uint) float64 {
	check_engine_prec(p)
	old := prepare_rtz()
	r := rtz_sub(x, y)
	return hw_finish(r, rtz_status(old))
}

func (EngineHW) mul(x, y float64, p uint) float64 {
	check_engine_prec(p)
	old := prepare_rtz()
	r := rtz_mul(x, y)
	return hw_finish(r, rtz_status(old))
}

func (EngineHW) div(x, y float64, p uint) float64 {
	check_engine_prec(p)
	old := prepare_rtz()
	r := rtz_div(x, y)
	return hw_finish(r, rtz_status(old))
}

func (EngineHW) sqrt(x float64, p uint) float64 {
	check_engine_prec(p)
	old := prepare_rtz()
	r := rtz_sqrt(x)
	return hw_finish(r, rtz_status(old))
}

func (EngineHW) fma(x, y, z float64, p uint) float64 {
	check_engine_prec(p)
	old := prepare_rtz()
	r := rtz_fma(x, y, z)
	return hw_finish(r, rtz_status(old))
}
