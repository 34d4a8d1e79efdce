//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesForBits(t *testing.T) {
	tests := []struct {
		bits uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
		{1027, 129},
	}

	for _, tt := range tests {
		got, err := BytesForBits(tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "bits=%d", tt.bits)
	}

	t.Run("max uint64 does not wrap", func(t *testing.T) {
		got, err := BytesForBits(math.MaxUint64)
		require.NoError(t, err)
		assert.Equal(t, int(uint64(math.MaxUint64)/8+1), got)
	})
}

func TestIntToUint64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint64(0)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := IntToUint64(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint64ToUint32(t *testing.T) {
	t.Run("valid max uint32", func(t *testing.T) {
		got, err := Uint64ToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
