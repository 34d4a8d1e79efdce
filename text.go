package bitvec

import (
	"io"
)

// String renders the vector most significant bit first, one '0' or '1' per bit.
func (v *BitVector) String() string {
	return string(v.AppendText(make([]byte, 0, v.bitCount)))
}

// AppendText appends the textual form of v to dst and returns the extended buffer.
func (v *BitVector) AppendText(dst []byte) []byte {
	for i := v.bitCount; i > 0; i-- {
		if v.bit(i - 1) {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}
	return dst
}

// MarshalText implements encoding.TextMarshaler.
func (v *BitVector) MarshalText() ([]byte, error) {
	return v.AppendText(make([]byte, 0, v.bitCount)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The receiver is only replaced when text parses successfully.
func (v *BitVector) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	v.MoveFrom(parsed)
	return nil
}

// WriteTo writes the textual form of v to w.
func (v *BitVector) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.AppendText(make([]byte, 0, v.bitCount)))
	return int64(n), err
}
