package mpfx

import (
	"math/big"
)

// Trusted reference rounding built on math/big.Float, whose Add, Sub,
// Mul and Quo round correctly at the receiver's precision. Its Sqrt
// does not, so the square root is taken at a far higher precision and
// rounded once. big.Float knows six of the eight rounding modes; RTO
// and RTE are covered by the exact integer-grid vectors instead.

func big_mode(rm RoundingMode) (big.RoundingMode, bool) {
	switch rm {
	case RNE:
		return big.ToNearestEven, true
	case RNA:
		return big.ToNearestAway, true
	case RTP:
		return big.ToPositiveInf, true
	case RTN:
		return big.ToNegativeInf, true
	case RTZ:
		return big.ToZero, true
	case RAZ:
		return big.AwayFromZero, true
	}
	return 0, false
}

type ref_op uint8

const (
	ref_add ref_op = iota
	ref_sub
	ref_mul
	ref_div
	ref_sqrt
	ref_fma
)

// reference computes op(x, y[, z]) correctly rounded to p bits under
// rm. ok is false when big.Float does not know the mode.
func reference(op ref_op, x, y, z float64, p uint, rm RoundingMode) (r float64, ok bool) {
	mode, ok := big_mode(rm)
	if !ok {
		return 0, false
	}
	bx := new(big.Float).SetFloat64(x)
	by := new(big.Float).SetFloat64(y)
	res := new(big.Float).SetPrec(p).SetMode(mode)
	switch op {
	case ref_add:
		res.Add(bx, by)
	case ref_sub:
		res.Sub(bx, by)
	case ref_mul:
		res.Mul(bx, by)
	case ref_div:
		res.Quo(bx, by)
	case ref_sqrt:
		// A root of a double lies at least 2^-106 (relative) away from
		// every p-bit rounding boundary unless it is exact, in which case
		// it has at most 27 bits: snap to it, then round once.
		hi := new(big.Float).SetPrec(256).Sqrt(bx)
		ex := new(big.Float).SetPrec(64).Set(hi)
		if new(big.Float).SetPrec(128).Mul(ex, ex).Cmp(bx) == 0 {
			hi = ex
		}
		res.Set(hi)
	case ref_fma:
		// the 106-bit product of two doubles is exact
		u := new(big.Float).SetPrec(106).Mul(bx, by)
		bz := new(big.Float).SetFloat64(z)
		res.Add(u, bz)
	}
	f, _ := res.Float64()
	return f, true
}
