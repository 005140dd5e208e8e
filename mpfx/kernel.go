package mpfx

import (
	"math"
	"math/bits"
)

// The re-rounding kernel. Both entry points reduce their input to a
// normalized (sign, exponent, significand) triple and funnel into
// round_finalize, which produces the correctly rounded double and
// updates the status word.

// round_double rounds a double to precision p, with an optional first
// unrepresentable position n, under rounding mode rm. Non-finite inputs
// are returned untouched and set no flags.
func round_double(x float64, p uint, n int32, has_n bool, rm RoundingMode, mask Flags) float64 {
	if !isfinite(x) {
		return x
	}
	b := math.Float64bits(x)
	s := b>>63 != 0
	ebits := (b >> 52) & 0x7FF
	mbits := b & m52
	var e int32
	var c uint64
	if ebits == 0 {
		if mbits == 0 {
			return round_finalize(f64_prec, s, 0, 0, p, n, has_n, rm, mask)
		}
		lz := f64_prec - bits.Len64(mbits)
		e = f64_emin - int32(lz)
		c = mbits << uint(lz)
	} else {
		e = int32(ebits) - f64_bias
		c = b52 | mbits
	}
	return round_finalize(f64_prec, s, e, c, p, n, has_n, rm, mask)
}

// round_fixed rounds the fixed-point value m * 2^exp, using a 63-bit
// working significand. The value -2^63 is decoded specially so that its
// magnitude still fits in 63 bits.
func round_fixed(m int64, exp int32, p uint, n int32, has_n bool, rm RoundingMode, mask Flags) float64 {
	const prec = 63
	var s bool
	var c uint64
	switch {
	case m == math.MinInt64:
		s = true
		c = uint64(1) << (prec - 1)
		exp++
	case m < 0:
		s = true
		c = uint64(-m)
	default:
		c = uint64(m)
	}
	if c == 0 {
		return round_finalize(prec, false, 0, 0, p, n, has_n, rm, mask)
	}
	lz := prec - bits.Len64(c)
	c <<= uint(lz)
	exp -= int32(lz)
	e := exp + (prec - 1)
	return round_finalize(prec, s, e, c, p, n, has_n, rm, mask)
}

// round_finalize rounds (-1)^s * c * 2^(e-(P-1)) to precision p under
// rounding mode rm. c is either zero or exactly P bits wide with e its
// normalized exponent. When has_n is set, all significant bits of the
// result must lie strictly above position n.
func round_finalize(P uint, s bool, e int32, c uint64, p uint, n int32, has_n bool, rm RoundingMode, mask Flags) float64 {
	if p == 0 {
		panic("mpfx: precision must be positive")
	}

	// zero fast path
	if c == 0 {
		raise(mask, FlagTinyBefore|FlagTinyAfter)
		return pack(s, 0, 0)
	}

	// subnormalization analysis
	tiny_before := false
	overshift := false
	p_kept := p
	e_before := e
	var emin int32
	if has_n {
		emin = n + int32(p)
		if e < emin {
			tiny_before = true
			raise(mask, FlagTinyBefore)
			shift := uint(emin - e)
			if shift > p {
				overshift = true
				p_kept = 0
				e = n
			} else {
				p_kept = p - shift
			}
		}
	}
	if p_kept > P {
		p_kept = P
	}

	// split at the rounding position
	p_lost := P - p_kept
	var c_lost, c_kept uint64
	if p_lost == 0 {
		c_kept = c
	} else {
		c_lost = c & (uint64(1)<<p_lost - 1)
		c_kept = c - c_lost
	}

	if c_lost == 0 {
		// exact
		if tiny_before {
			raise(mask, FlagTinyAfter)
		}
		return encode(P, s, e, c_kept)
	}

	// inexact
	raise(mask, FlagInexact)
	if tiny_before {
		raise(mask, FlagUnderflowBefore)
	}

	// Tininess after rounding is decided against the pre-increment
	// state: it asks whether rounding with an unbounded exponent range
	// would still land below 2^emin.
	if tiny_before && mask&(FlagTinyAfter|FlagUnderflowAfter) != 0 {
		tiny_after := true
		if e_before == emin-1 {
			// Top binade below 2^emin. Values at or below the largest
			// representable value under 2^emin stay tiny; above it,
			// the unbounded rounding decides.
			cutoff := (uint64(1)<<p - 1) << (P - p)
			if c > cutoff {
				tiny_after = !dry_increment(P, s, c, p, rm)
			}
		}
		if tiny_after {
			raise(mask, FlagTinyAfter|FlagUnderflowAfter)
		}
	}

	// increment decision
	inc := false
	if is_nearest(rm) {
		rb := rb_below
		if !overshift {
			half := uint64(1) << (p_lost - 1)
			rb = to_round_bits(c_lost >= half, c_lost != half)
		}
		switch rb {
		case rb_above:
			inc = true
		case rb_halfway:
			if direction(rm, s) == dir_away_zero {
				inc = true
			} else {
				// ties to even
				inc = c_kept&(uint64(1)<<p_lost) != 0
			}
		}
	} else {
		switch direction(rm, s) {
		case dir_away_zero:
			inc = true
		case dir_to_even:
			inc = c_kept&(uint64(1)<<p_lost) != 0
		case dir_to_odd:
			inc = c_kept&(uint64(1)<<p_lost) == 0
		}
	}

	if inc {
		c_kept += uint64(1) << p_lost
		if c_kept == uint64(1)<<P {
			// rounding crossed a binade boundary upward
			c_kept >>= 1
			e++
			if !has_n || e_before >= emin {
				raise(mask, FlagCarry)
			}
		}
	}

	return encode(P, s, e, c_kept)
}

// dry_increment replays the increment decision with the split one
// position lower and the kept least significant bit odd. It reports
// whether the unbounded-exponent rounding at precision p leaves the top
// binade below the minimum normalized exponent.
func dry_increment(P uint, s bool, c uint64, p uint, rm RoundingMode) bool {
	p_lost := P - p
	var c_lost uint64
	if p_lost > 0 {
		c_lost = c & (uint64(1)<<p_lost - 1)
	}
	if c_lost == 0 {
		return false
	}
	if is_nearest(rm) {
		// on a tie the odd least significant bit rounds up under both
		// nearest modes
		half := uint64(1) << (p_lost - 1)
		return c_lost >= half
	}
	switch direction(rm, s) {
	case dir_away_zero:
		return true
	case dir_to_even:
		return true
	default:
		// to zero, or to odd with an already odd significand
		return false
	}
}

// encode reduces a P-bit significand to 53 bits and packs the result.
func encode(P uint, s bool, e int32, c uint64) float64 {
	if P > f64_prec {
		shift := P - f64_prec
		if debug_checks && c&(uint64(1)<<shift-1) != 0 {
			panic("mpfx: encode: dropping non-zero significand bits")
		}
		c >>= shift
	}
	return pack(s, e, c)
}
