package bitvec

import "math/bits"

// Not returns a new vector with every bit of v inverted.
func (v *BitVector) Not() *BitVector {
	r := New(v.bitCount)
	for i, b := range v.storage {
		r.storage[i] = ^b
	}
	r.maskPadding()
	return r
}

// And returns the bitwise AND of v and other.
// It returns an *ErrSizeMismatch if the lengths differ.
func (v *BitVector) And(other *BitVector) (*BitVector, error) {
	return v.combine(other, func(a, b byte) byte { return a & b })
}

// Or returns the bitwise OR of v and other.
// It returns an *ErrSizeMismatch if the lengths differ.
func (v *BitVector) Or(other *BitVector) (*BitVector, error) {
	return v.combine(other, func(a, b byte) byte { return a | b })
}

// Xor returns the bitwise XOR of v and other.
// It returns an *ErrSizeMismatch if the lengths differ.
func (v *BitVector) Xor(other *BitVector) (*BitVector, error) {
	return v.combine(other, func(a, b byte) byte { return a ^ b })
}

func (v *BitVector) combine(other *BitVector, op func(a, b byte) byte) (*BitVector, error) {
	if v.bitCount != other.bitCount {
		return nil, &ErrSizeMismatch{Left: v.bitCount, Right: other.bitCount}
	}
	r := New(v.bitCount)
	for i := range r.storage {
		r.storage[i] = op(v.storage[i], other.storage[i])
	}
	return r, nil
}

// ShiftLeft returns a new vector of the same length with bit i set to bit i-s of v.
//
// Bits move toward higher indices, which is leftward in the printed form; the low s
// bits are zero and the high s bits of v are dropped. If s >= Len the result is all zero.
func (v *BitVector) ShiftLeft(s uint64) *BitVector {
	r := New(v.bitCount)
	if s >= v.bitCount {
		return r
	}

	byteShift := int(s >> 3) // s < bitCount, so it fits the storage length
	bitShift := s & 7
	for i := len(r.storage) - 1; i >= byteShift; i-- {
		b := v.storage[i-byteShift] << bitShift
		if bitShift != 0 && i-byteShift > 0 {
			b |= v.storage[i-byteShift-1] >> (8 - bitShift)
		}
		r.storage[i] = b
	}
	r.maskPadding()
	return r
}

// ShiftRight returns a new vector of the same length with bit i set to bit i+s of v.
//
// Bits move toward lower indices; the high s bits are zero and the low s bits of v are
// dropped. If s >= Len the result is all zero.
func (v *BitVector) ShiftRight(s uint64) *BitVector {
	r := New(v.bitCount)
	if s >= v.bitCount {
		return r
	}

	byteShift := int(s >> 3)
	bitShift := s & 7
	last := len(v.storage) - 1
	for i := 0; i+byteShift <= last; i++ {
		b := v.storage[i+byteShift] >> bitShift
		if bitShift != 0 && i+byteShift < last {
			b |= v.storage[i+byteShift+1] << (8 - bitShift)
		}
		r.storage[i] = b
	}
	return r
}

func popcount(data []byte) int {
	n := 0
	for _, b := range data {
		n += bits.OnesCount8(b)
	}
	return n
}
