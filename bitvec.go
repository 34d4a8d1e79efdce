package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/internal/conv"
)

// BitVector is a fixed-length sequence of bits packed eight to a byte.
//
// Layout:
//
//	bit index:  ... 15 14 13 12 11 10  9  8 | 7  6  5  4  3  2  1  0
//	storage:    |------- storage[1] -------| |------ storage[0] ------|
//
// Bit k of storage[i] (counting from the least significant bit) holds vector bit 8*i+k.
// Index 0 is the least significant bit. Padding bits beyond Len in the final byte are
// always zero.
//
// A BitVector exclusively owns its storage. It is not safe for concurrent mutation.
type BitVector struct {
	bitCount uint64
	storage  []byte
}

// New creates a zeroed BitVector of count bits.
//
// New panics if count bits cannot be addressed by a byte slice on this platform,
// in the same way make does for an oversized length.
func New(count uint64) *BitVector {
	n, err := conv.BytesForBits(count)
	if err != nil {
		panic(fmt.Sprintf("bitvec: %v", err))
	}
	return &BitVector{
		bitCount: count,
		storage:  make([]byte, n),
	}
}

// Parse creates a BitVector from a string of '0' and '1' characters.
//
// The first character is the most significant bit, so Parse(s).String() == s.
// Any other character yields an *ErrInvalidFormat and no vector.
func Parse(text string) (*BitVector, error) {
	count, err := conv.IntToUint64(len(text))
	if err != nil {
		return nil, err
	}
	v := New(count)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '1':
			v.setBit(count - 1 - uint64(i))
		case '0':
		default:
			return nil, &ErrInvalidFormat{Position: i, Char: text[i]}
		}
	}
	return v, nil
}

// MustParse is like Parse but panics on an invalid string.
// It is intended for literals in tests and examples.
func MustParse(text string) *BitVector {
	v, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("bitvec: MustParse(%q): %v", text, err))
	}
	return v
}

// Len returns the number of bits.
func (v *BitVector) Len() uint64 {
	return v.bitCount
}

// ByteLen returns the number of storage bytes, ceil(Len()/8).
func (v *BitVector) ByteLen() int {
	return len(v.storage)
}

// Get reports whether the bit at index is set.
func (v *BitVector) Get(index uint64) (bool, error) {
	if index >= v.bitCount {
		return false, &ErrIndexOutOfRange{Index: index, Len: v.bitCount}
	}
	return v.bit(index), nil
}

// Set sets (value=true) or clears (value=false) the bit at index.
// On error the vector is left unchanged.
func (v *BitVector) Set(index uint64, value bool) error {
	if index >= v.bitCount {
		return &ErrIndexOutOfRange{Index: index, Len: v.bitCount}
	}
	if value {
		v.setBit(index)
	} else {
		v.storage[index>>3] &^= 1 << (index & 7)
	}
	return nil
}

// Clone returns a deep copy of the vector.
func (v *BitVector) Clone() *BitVector {
	c := &BitVector{
		bitCount: v.bitCount,
		storage:  make([]byte, len(v.storage)),
	}
	copy(c.storage, v.storage)
	return c
}

// CopyFrom replaces the contents of v with a deep copy of src.
// Copying a vector onto itself is a no-op.
func (v *BitVector) CopyFrom(src *BitVector) {
	if v == src {
		return
	}
	v.bitCount = src.bitCount
	v.storage = make([]byte, len(src.storage))
	copy(v.storage, src.storage)
}

// Take moves the contents of v into a new vector and leaves v empty.
//
// The returned vector owns the storage that v owned. Afterwards v has zero length,
// and every Get or Set on it returns an *ErrIndexOutOfRange.
func (v *BitVector) Take() *BitVector {
	moved := &BitVector{
		bitCount: v.bitCount,
		storage:  v.storage,
	}
	v.Reset()
	return moved
}

// MoveFrom transfers the storage of src into v and leaves src empty.
// Moving a vector onto itself is a no-op.
func (v *BitVector) MoveFrom(src *BitVector) {
	if v == src {
		return
	}
	v.bitCount = src.bitCount
	v.storage = src.storage
	src.Reset()
}

// Reset releases the storage and leaves v as an empty, zero-length vector.
func (v *BitVector) Reset() {
	v.bitCount = 0
	v.storage = nil
}

// Count returns the number of set bits.
func (v *BitVector) Count() int {
	return popcount(v.storage)
}

// Equal reports whether v and other have the same length and the same bits.
func (v *BitVector) Equal(other *BitVector) bool {
	if v.bitCount != other.bitCount {
		return false
	}
	for i := range v.storage {
		if v.storage[i] != other.storage[i] {
			return false
		}
	}
	return true
}

// bit returns bit index without a bounds check against bitCount.
func (v *BitVector) bit(index uint64) bool {
	return (v.storage[index>>3]>>(index&7))&1 != 0
}

func (v *BitVector) setBit(index uint64) {
	v.storage[index>>3] |= 1 << (index & 7)
}

// maskPadding clears the unused high bits of the final byte.
func (v *BitVector) maskPadding() {
	if rem := v.bitCount & 7; rem != 0 {
		v.storage[len(v.storage)-1] &= byte(1)<<rem - 1
	}
}
