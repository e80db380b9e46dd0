package permmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantour/qtsp/permmat"
)

func TestEncode_Preconditions(t *testing.T) {
	t.Run("duplicate city → ErrNotPermutation", func(t *testing.T) {
		_, err := permmat.Encode([]int{0, 0, 1})
		require.ErrorIs(t, err, permmat.ErrNotPermutation)
	})
	t.Run("out-of-range city → ErrNotPermutation", func(t *testing.T) {
		_, err := permmat.Encode([]int{0, 3, 1})
		require.ErrorIs(t, err, permmat.ErrNotPermutation)
	})
	t.Run("empty order → ErrBadSize", func(t *testing.T) {
		_, err := permmat.Encode(nil)
		require.ErrorIs(t, err, permmat.ErrBadSize)
	})
}

func TestEncode_OneHotLayout(t *testing.T) {
	bits, err := permmat.Encode([]int{2, 0, 1})
	require.NoError(t, err)
	require.Len(t, bits, 9)

	// Row-major layout: bit p*n + order[p] set, everything else zero.
	want := permmat.BitVec{
		0, 0, 1, // position 0 → city 2
		1, 0, 0, // position 1 → city 0
		0, 1, 0, // position 2 → city 1
	}
	require.Equal(t, want, bits)
}

func TestDecode_RoundTrip(t *testing.T) {
	orders := [][]int{
		{0},
		{0, 1},
		{1, 0},
		{2, 0, 1},
		{3, 1, 4, 0, 2},
	}
	for _, order := range orders {
		bits, err := permmat.Encode(order)
		require.NoError(t, err)

		back, err := permmat.Decode(bits, len(order))
		require.NoError(t, err)
		require.Equal(t, order, back, "decode(encode(order)) must be the identity")
	}
}

func TestDecode_ShapeContract(t *testing.T) {
	t.Run("n<1 → ErrBadSize", func(t *testing.T) {
		_, err := permmat.Decode(permmat.BitVec{1}, 0)
		require.ErrorIs(t, err, permmat.ErrBadSize)
	})
	t.Run("length != n² → ErrDimensionMismatch", func(t *testing.T) {
		_, err := permmat.Decode(permmat.BitVec{1, 0, 0}, 2)
		require.ErrorIs(t, err, permmat.ErrDimensionMismatch)
	})
}

func TestDecode_PassThroughPolicy(t *testing.T) {
	// n=3, row 0 = [1,1,0], row 1 = [0,1,0], row 2 = [0,0,1]:
	// row 0 contributes BOTH matching cities, in increasing column order.
	bits := permmat.BitVec{
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
	}
	seq, err := permmat.Decode(bits, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 2}, seq)
	require.False(t, permmat.IsFeasible(bits, 3))
}

func TestDecode_EmptyRowsShortenOutput(t *testing.T) {
	bits := permmat.BitVec{
		0, 0, 0,
		1, 0, 0,
		0, 0, 0,
	}
	seq, err := permmat.Decode(bits, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0}, seq)
	require.False(t, permmat.IsFeasible(bits, 3))
}

func TestIsFeasible(t *testing.T) {
	t.Run("encoded permutations are feasible", func(t *testing.T) {
		for _, order := range [][]int{{0}, {1, 0}, {2, 0, 1}, {0, 1, 2, 3}} {
			bits, err := permmat.Encode(order)
			require.NoError(t, err)
			require.True(t, permmat.IsFeasible(bits, len(order)))
		}
	})
	t.Run("two bits in one row → false", func(t *testing.T) {
		bits := permmat.BitVec{
			1, 1, 0,
			0, 0, 1,
			0, 0, 0,
		}
		require.False(t, permmat.IsFeasible(bits, 3))
	})
	t.Run("city used twice → false", func(t *testing.T) {
		bits := permmat.BitVec{
			1, 0, 0,
			1, 0, 0,
			0, 0, 1,
		}
		require.False(t, permmat.IsFeasible(bits, 3))
	})
	t.Run("shape mismatch → false, not error", func(t *testing.T) {
		require.False(t, permmat.IsFeasible(permmat.BitVec{1, 0}, 2))
		require.False(t, permmat.IsFeasible(nil, 1))
		require.False(t, permmat.IsFeasible(permmat.BitVec{1}, 0))
	})
	t.Run("non-binary value → false", func(t *testing.T) {
		require.False(t, permmat.IsFeasible(permmat.BitVec{2}, 1))
	})
}

func TestRowColCounts(t *testing.T) {
	bits := permmat.BitVec{
		1, 1, 0,
		0, 1, 0,
		0, 0, 0,
	}
	rows, err := permmat.RowCounts(bits, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, rows)

	cols, err := permmat.ColCounts(bits, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, cols)

	_, err = permmat.RowCounts(bits, 2)
	require.ErrorIs(t, err, permmat.ErrDimensionMismatch)
	_, err = permmat.ColCounts(bits, 0)
	require.ErrorIs(t, err, permmat.ErrBadSize)
}

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, permmat.ValidatePermutation([]int{2, 0, 1}, 3))
	require.ErrorIs(t, permmat.ValidatePermutation([]int{0, 1}, 3), permmat.ErrNotPermutation)
	require.ErrorIs(t, permmat.ValidatePermutation([]int{0, 0, 1}, 3), permmat.ErrNotPermutation)
	require.ErrorIs(t, permmat.ValidatePermutation(nil, 0), permmat.ErrBadSize)
}
