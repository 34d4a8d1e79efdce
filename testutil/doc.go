// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random bit strings and bit patterns from a seed.
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(37)        // "0110...", 37 characters
//	bits := rng.Bits(37)          // []bool, index 0 is the least significant bit
package testutil
