package mpfx

import (
	"math"
	"testing"

	sha3 "golang.org/x/crypto/sha3"
)

// A deterministic PRNG over a SHAKE256 stream, so that randomized tests
// are reproducible.
type shake_rng struct {
	sh  sha3.ShakeHash
	buf [136]byte
	ptr int
}

func new_shake_rng(seed string) *shake_rng {
	r := new(shake_rng)
	r.sh = sha3.NewShake256()
	r.sh.Write([]byte(seed))
	r.ptr = len(r.buf)
	return r
}

func (r *shake_rng) refill() {
	r.sh.Read(r.buf[:])
	r.ptr = 0
}

// Get next byte from the stream.
func (r *shake_rng) next_u8() uint8 {
	if r.ptr == len(r.buf) {
		r.refill()
	}
	v := r.buf[r.ptr]
	r.ptr++
	return v
}

// Get next 16-bit value from the stream.
func (r *shake_rng) next_u16() uint16 {
	if r.ptr > len(r.buf)-2 {
		r.refill()
	}
	v := uint16(r.buf[r.ptr]) + (uint16(r.buf[r.ptr+1]) << 8)
	r.ptr += 2
	return v
}

// Get next 64-bit value from the stream.
func (r *shake_rng) next_u64() uint64 {
	if r.ptr > len(r.buf)-8 {
		r.refill()
	}
	x := uint64(0)
	for i := 0; i < 8; i++ {
		x += uint64(r.buf[r.ptr+i]) << (i << 3)
	}
	r.ptr += 8
	return x
}

// Random finite double with the unbiased exponent confined to
// [-80, +80], so that sums, products and quotients of pairs stay well
// inside double range.
func rand_fp(r *shake_rng) float64 {
	m := r.next_u64()
	e := (((m >> 52) & 0x7FF) % 161) + 943
	m = (m & 0x800FFFFFFFFFFFFF) | (e << 52)
	return math.Float64frombits(m)
}

// Exact small value (-1)^s * c * 2^exp, for the synthetic formats used
// by the flag property tests.
func make_num(s bool, exp int32, c uint64) float64 {
	v := math.Ldexp(float64(c), int(exp))
	if s {
		v = -v
	}
	return v
}

func eqf(t *testing.T, x float64, rx float64) {
	t.Helper()
	v := math.Float64bits(x)
	rv := math.Float64bits(rx)
	if v != rv {
		t.Fatalf("ERR: 0x%016X (%.20g) vs 0x%016X (%.20g)\n",
			v, x, rv, rx)
	}
}

var all_modes = []RoundingMode{RNE, RNA, RTP, RTN, RTZ, RAZ, RTO, RTE}
