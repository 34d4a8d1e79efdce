package bitvec

import (
	"iter"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec/internal/conv"
)

// Ones returns an iterator over the indices of set bits in ascending order.
func (v *BitVector) Ones() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, b := range v.storage {
			for b != 0 {
				k := bits.TrailingZeros8(b)
				if !yield(uint64(i)<<3 | uint64(k)) {
					return
				}
				b &= b - 1
			}
		}
	}
}

// ToRoaring returns a roaring bitmap holding the indices of the set bits of v.
//
// Roaring bitmaps are 32-bit; a set bit above math.MaxUint32 yields an
// *ErrIndexOutOfRange wrapping conv.ErrOverflow.
func (v *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := range v.Ones() {
		id, err := conv.Uint64ToUint32(i)
		if err != nil {
			return nil, &ErrIndexOutOfRange{Index: i, Len: v.bitCount, cause: err}
		}
		rb.Add(id)
	}
	return rb, nil
}

// FromRoaring creates a vector of count bits with the bits listed in rb set.
// It returns an *ErrIndexOutOfRange if rb holds a position >= count.
func FromRoaring(count uint64, rb *roaring.Bitmap) (*BitVector, error) {
	if !rb.IsEmpty() {
		if maxID := uint64(rb.Maximum()); maxID >= count {
			return nil, &ErrIndexOutOfRange{Index: maxID, Len: count}
		}
	}
	v := New(count)
	it := rb.Iterator()
	for it.HasNext() {
		v.setBit(uint64(it.Next()))
	}
	return v, nil
}
