package mpfx

// Some useful bit-level constants:
//   bNN    2^NN
//   mNN    2^NN - 1

const b52 = uint64(0x0010000000000000)
const b63 = uint64(0x8000000000000000)

const m52 = uint64(0x000FFFFFFFFFFFFF)
const m63 = uint64(0x7FFFFFFFFFFFFFFF)

// IEEE 754 binary64 format parameters.
const (
	f64_prec   = 53    // significand width, implicit bit included
	f64_emax   = 1023  // maximum normalized exponent
	f64_emin   = -1022 // minimum normalized exponent
	f64_expmin = -1074 // exponent of a subnormal's least significant bit
	f64_bias   = 1023
)

// IEEE 754 binary32 format parameters.
const (
	f32_prec   = 24
	f32_emin   = -126
	f32_expmin = -149
	f32_bias   = 127
)
