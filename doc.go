// Package bitvec provides a fixed-length, byte-packed bit vector.
//
// A BitVector holds Len() bits in ceil(Len()/8) bytes. Bit 0 is the least significant
// bit; the textual form prints the most significant bit first, so
//
//	v := bitvec.MustParse("01101110")
//	v.String() // "01101110"
//	ok, _ := v.Get(1) // true
//
// # Construction
//
//	v := bitvec.New(12)              // 12 zero bits
//	w, err := bitvec.Parse("1100")   // *ErrInvalidFormat on anything but '0'/'1'
//
// # Indexed Access
//
// Get and Set return an *ErrIndexOutOfRange for index >= Len(); a failed Set does not
// modify the vector.
//
// # Operators
//
// Not, And, Or, Xor, ShiftLeft and ShiftRight never modify their operands; each returns a
// freshly allocated vector of the same length. The binary operators return an
// *ErrSizeMismatch when the lengths differ. Shifts are logical: ShiftLeft moves bits toward
// higher indices (leftward in the printed form), and a shift of Len() or more yields all
// zeros.
//
// # Value Semantics
//
// A BitVector exclusively owns its storage:
//
//	b := a.Clone()    // deep copy
//	c := a.Take()     // move: c owns a's bits, a is now empty
//	d.CopyFrom(b)     // copy assignment
//	d.MoveFrom(c)     // move assignment, c is now empty
//
// # Interop
//
// ToRoaring and FromRoaring convert to and from a roaring.Bitmap of set-bit positions.
//
// All errors match a sentinel through errors.Is: ErrInvalid, ErrOutOfRange, ErrMismatch.
package bitvec
