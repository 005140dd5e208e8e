// This package simulates arbitrary-precision and custom-format
// floating-point arithmetic on top of the host's IEEE 754 binary64
// arithmetic. A number format is described by a rounding context: a
// precision p, an optional minimum normalized exponent, an optional
// maximum magnitude, and a rounding mode. Each operation computes the
// value that would result from performing the operation in real
// arithmetic and then rounding once into the target format.
//
// Internally every operation runs in two stages. An arithmetic engine
// first computes an intermediate binary64 result that carries at least
// p+2 bits of information about the true real-valued answer, using
// round-to-odd as the intermediate rounding; a re-rounding kernel then
// converts that intermediate into the target format under any of eight
// rounding modes, handling subnormalization, overflow saturation and
// the IEEE 754 style status flags. Rounding to odd at p+2 bits and then
// re-rounding under any mode is equivalent to a single correct rounding
// of the infinitely precise result, so the final value is always the
// correctly rounded one.
//
// Three engines are provided. [EngineHW] drives an emulated
// floating-point environment through a round-toward-zero window and
// jams the sticky bit into the result's least significant bit.
// [EngineEFT] computes the same results from error-free transformations
// (TwoSum, TwoProd and FMA-based decompositions) without touching the
// environment, and is the portable default. [EngineExact] assumes the
// operation is exact and passes the native result through. A
// fixed-point multiplication path ([MulFixed]) is also available for
// inputs already representable in the target format. The engine is
// selected per call through a type parameter, so each operation is
// monomorphized; there is no runtime dispatch.
//
// Exceptional conditions are never reported as errors. Every operation
// returns a float64; invalid operations yield NaN, divisions of finite
// non-zero values by zero yield a signed infinity, and magnitudes above
// a context's maximum saturate to the maximum or to infinity depending
// on the rounding mode. The conditions themselves accumulate in a
// process-wide status word (see [Flags], [ReadFlags], [ResetFlags])
// which the caller samples and resets between the operations of
// interest. Neither the status word nor the emulated floating-point
// environment is synchronized: concurrent use requires the embedder to
// serialize operations, or to run flag-free ([FlagsNone]) on the
// non-environment engines.
//
// Misuse, such as requesting an engine precision above 53 bits or
// constructing a bounded context whose maximum is not representable in
// the format, is a programming error and panics.
package mpfx
