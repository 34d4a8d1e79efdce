package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid matches every *ErrInvalidFormat via errors.Is.
	ErrInvalid = errors.New("invalid bit string")

	// ErrOutOfRange matches every *ErrIndexOutOfRange via errors.Is.
	ErrOutOfRange = errors.New("bit index out of range")

	// ErrMismatch matches every *ErrSizeMismatch via errors.Is.
	ErrMismatch = errors.New("bit vector sizes must match")
)

// ErrInvalidFormat indicates a character other than '0' or '1' in a bit string.
type ErrInvalidFormat struct {
	Position int
	Char     byte
}

func (e *ErrInvalidFormat) Error() string {
	return fmt.Sprintf("invalid bit string: character %q at position %d is not '0' or '1'", e.Char, e.Position)
}

func (e *ErrInvalidFormat) Is(target error) bool { return target == ErrInvalid }

// ErrIndexOutOfRange indicates an index at or beyond the vector length.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index uint64
	Len   uint64
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("bit index out of range: index %d, length %d: %v", e.Index, e.Len, e.cause)
	}
	return fmt.Sprintf("bit index out of range: index %d, length %d", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Is(target error) bool { return target == ErrOutOfRange }

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrSizeMismatch indicates a binary operation on vectors of different lengths.
type ErrSizeMismatch struct {
	Left  uint64
	Right uint64
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("bit vector sizes must match: %d != %d", e.Left, e.Right)
}

func (e *ErrSizeMismatch) Is(target error) bool { return target == ErrMismatch }
