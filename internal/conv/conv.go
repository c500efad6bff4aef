// Package conv provides checked integer narrowing for the automaton code.
//
// State ids are 32-bit; allocating a state when the table already holds
// math.MaxUint32 entries would silently wrap on conversion. That many states
// indicates a runaway construction, so the conversion panics instead.
package conv

import "math"

// IntToUint32 converts n to uint32, panicking when the value does not fit.
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound also works on 32-bit platforms.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
