package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every conversion failure.
var ErrOverflow = errors.New("integer overflow")

// BytesForBits returns ceil(bits/8) as an int, the number of bytes needed to pack bits.
func BytesForBits(bits uint64) (int, error) {
	n := bits >> 3
	if bits&7 != 0 {
		n++
	}
	if n > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d bits need %d bytes, more than an int can index", ErrOverflow, bits, n)
	}
	return int(n), nil
}

// IntToUint64 converts a non-negative int to uint64.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint64 (negative)", ErrOverflow, v)
	}
	return uint64(v), nil
}

// Uint64ToUint32 converts uint64 to uint32 when it fits.
func Uint64ToUint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}
