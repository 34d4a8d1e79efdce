package bitvec

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnes(t *testing.T) {
	v := MustParse("1000110111011010")
	assert.Equal(t, []uint64{1, 3, 4, 6, 7, 8, 10, 11, 15}, slices.Collect(v.Ones()))
	assert.Empty(t, slices.Collect(New(20).Ones()))

	t.Run("early stop", func(t *testing.T) {
		var got []uint64
		for i := range v.Ones() {
			got = append(got, i)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []uint64{1, 3}, got)
	})
}

func TestToRoaring(t *testing.T) {
	v := MustParse("001000011010")

	rb, err := v.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 3, 4, 9}, rb.ToArray())
	assert.Equal(t, uint64(v.Count()), rb.GetCardinality())
}

func TestFromRoaring(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		for _, n := range rng.Lengths(20, 150) {
			v := MustParse(rng.BitString(n))
			rb, err := v.ToRoaring()
			require.NoError(t, err)

			back, err := FromRoaring(v.Len(), rb)
			require.NoError(t, err)
			assert.True(t, back.Equal(v), "n=%d", n)
		}
	})

	t.Run("empty bitmap", func(t *testing.T) {
		v, err := FromRoaring(10, roaring.New())
		require.NoError(t, err)
		assert.Equal(t, "0000000000", v.String())
	})

	t.Run("position beyond count", func(t *testing.T) {
		v, err := FromRoaring(10, roaring.BitmapOf(2, 10))
		assert.Nil(t, v)

		var oe *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oe)
		assert.Equal(t, uint64(10), oe.Index)
		assert.Equal(t, uint64(10), oe.Len)
	})
}
