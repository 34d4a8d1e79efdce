// Package conv provides checked integer conversions for bit and byte counts.
//
// Bit vectors address bits with uint64 while Go slices are sized and indexed with int,
// and the roaring interop works on uint32 positions. The helpers here perform the
// bounds checks at those boundaries instead of silently truncating.
//
// For conversions that are provably safe by construction (loop indices bounded by
// len(storage), byte offsets below a slice length), use direct type casts instead.
package conv
