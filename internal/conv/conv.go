// Package conv provides safe integer conversion helpers for the automaton arena.
//
// States are addressed by uint32 indices, which edges store as their targets
// (see internal/automaton).
// These helpers perform bounds checking before narrowing so that an
// automaton built from pathologically large input fails loudly instead of
// wrapping silently.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
