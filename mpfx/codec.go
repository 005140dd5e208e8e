package mpfx

import (
	"math"
	"math/bits"
)

// Packing and unpacking of binary64 (and binary32) values to and from
// the representation (-1)^s * c * 2^exp, with c an integer significand
// and exp the exponent of its least significant bit.

func isfinite(x float64) bool {
	return (math.Float64bits(x)>>52)&0x7FF != 0x7FF
}

// unpack decomposes a finite double x into (s, exp, c) such that
// x = (-1)^s * c * 2^exp. Zeros and subnormals report exp = f64_expmin;
// for normals the implicit leading 1 is materialized in c.
func unpack(x float64) (s bool, exp int32, c uint64) {
	if !isfinite(x) {
		panic("mpfx: unpack: input must be finite")
	}
	b := math.Float64bits(x)
	s = b>>63 != 0
	ebits := (b >> 52) & 0x7FF
	mbits := b & m52
	if ebits == 0 {
		exp = f64_expmin
		c = mbits
	} else {
		e := int32(ebits) - f64_bias
		exp = e - (f64_prec - 1)
		c = b52 | mbits
	}
	return s, exp, c
}

// unpack32 is unpack for a finite float32, in binary32 terms.
func unpack32(x float32) (s bool, exp int32, c uint64) {
	b := math.Float32bits(x)
	ebits := (b >> 23) & 0xFF
	if ebits == 0xFF {
		panic("mpfx: unpack32: input must be finite")
	}
	s = b>>31 != 0
	mbits := uint64(b & 0x007FFFFF)
	if ebits == 0 {
		exp = f32_expmin
		c = mbits
	} else {
		e := int32(ebits) - f32_bias
		exp = e - (f32_prec - 1)
		c = uint64(1)<<(f32_prec-1) | mbits
	}
	return s, exp, c
}

// pack reconstructs a double from a sign s, a normalized exponent e and
// a significand c that is either zero or exactly 53 bits wide. A zero c
// yields a signed zero; e below the minimum normalized exponent yields
// a subnormal whose discarded low bits must be zero; e above the maximum
// normalized exponent yields a signed infinity. No rounding occurs here.
func pack(s bool, e int32, c uint64) float64 {
	if c == 0 {
		if s {
			return math.Float64frombits(b63)
		}
		return 0.0
	}
	if debug_checks && bits.Len64(c) != f64_prec {
		panic("mpfx: pack: significand must be 53 bits wide")
	}
	if e > f64_emax {
		if s {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	var ebits, mbits uint64
	if e < f64_emin {
		shift := uint(f64_emin - e)
		if debug_checks && (shift >= 64 || c&(uint64(1)<<shift-1) != 0) {
			panic("mpfx: pack: losing digits during subnormalization")
		}
		ebits = 0
		mbits = c >> shift
	} else {
		ebits = uint64(e + f64_bias)
		mbits = c & m52
	}
	b := ebits<<52 | mbits
	if s {
		b |= b63
	}
	return math.Float64frombits(b)
}

// to_fixed converts a finite double to a fixed-point representation
// m * 2^exp with trailing zeros stripped from the significand.
func to_fixed(x float64) (m int64, exp int32) {
	if !isfinite(x) {
		panic("mpfx: to_fixed: input must be finite")
	}
	if x == 0 {
		return 0, f64_expmin
	}
	s, exp, c := unpack(x)
	tz := bits.TrailingZeros64(c)
	c >>= uint(tz)
	exp += int32(tz)
	if s {
		return -int64(c), exp
	}
	return int64(c), exp
}
