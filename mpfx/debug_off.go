//go:build !mpfx_debug

package mpfx

const debug_checks = false
