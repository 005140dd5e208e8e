//go:build mpfx_debug

package mpfx

// debug_checks enables expensive internal invariant verification.
const debug_checks = true
