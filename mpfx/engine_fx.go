package mpfx

// Fixed-point multiplication engine. The significands are multiplied in
// 64-bit integer arithmetic and the exponents added, so the product is
// exact as long as the combined significand widths fit in 63 bits. The
// caller is responsible for pre-rounding the inputs so that no wrap
// occurs.

// mul_fixed multiplies two finite doubles in sign-magnitude fixed
// point, returning the product as m * 2^exp.
func mul_fixed(x, y float64, p uint) (m int64, exp int32) {
	if p > 63 {
		panic("mpfx: mul_fixed: requested precision exceeds fixed-point capability")
	}
	xm, xe := to_fixed(x)
	ym, ye := to_fixed(y)
	return xm * ym, xe + ye
}
