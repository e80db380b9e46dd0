package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantour/qtsp/matrix"
)

const tol = 1e-9

// mk builds a Dense from rows, failing the test on malformed fixtures.
func mk(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mk(t, [][]float64{{0}})))
}

func TestValidateSquare(t *testing.T) {
	t.Run("2x3 → ErrNonSquare", func(t *testing.T) {
		m, err := matrix.NewDense(2, 3)
		require.NoError(t, err)
		_, errSq := matrix.ValidateSquare(m)
		require.ErrorIs(t, errSq, matrix.ErrNonSquare)
	})
	t.Run("3x3 → n=3", func(t *testing.T) {
		m, err := matrix.NewDense(3, 3)
		require.NoError(t, err)
		n, errSq := matrix.ValidateSquare(m)
		require.NoError(t, errSq)
		require.Equal(t, 3, n)
	})
}

func TestValidateDistances(t *testing.T) {
	t.Run("nil → ErrNilMatrix", func(t *testing.T) {
		_, err := matrix.ValidateDistances(nil, tol)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
	t.Run("non-square → ErrNonSquare", func(t *testing.T) {
		m, err := matrix.NewDense(2, 3)
		require.NoError(t, err)
		_, errV := matrix.ValidateDistances(m, tol)
		require.ErrorIs(t, errV, matrix.ErrNonSquare)
	})
	t.Run("non-zero diagonal → ErrNonZeroDiagonal", func(t *testing.T) {
		m := mk(t, [][]float64{
			{0, 1},
			{1, 0.5},
		})
		_, err := matrix.ValidateDistances(m, tol)
		require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
	})
	t.Run("negative entry → ErrNegativeValue", func(t *testing.T) {
		m := mk(t, [][]float64{
			{0, -1},
			{-1, 0},
		})
		_, err := matrix.ValidateDistances(m, tol)
		require.ErrorIs(t, err, matrix.ErrNegativeValue)
	})
	t.Run("asymmetric → ErrAsymmetry", func(t *testing.T) {
		m := mk(t, [][]float64{
			{0, 1, 2},
			{7, 0, 3},
			{2, 3, 0},
		})
		_, err := matrix.ValidateDistances(m, tol)
		require.ErrorIs(t, err, matrix.ErrAsymmetry)
	})
	t.Run("asymmetry within tol accepted", func(t *testing.T) {
		m := mk(t, [][]float64{
			{0, 1 + 1e-12},
			{1, 0},
		})
		n, err := matrix.ValidateDistances(m, tol)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})
	t.Run("valid 1x1 accepted", func(t *testing.T) {
		n, err := matrix.ValidateDistances(mk(t, [][]float64{{0}}), tol)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
	t.Run("valid symmetric 3x3 → n=3", func(t *testing.T) {
		m := mk(t, [][]float64{
			{0, 1, 2},
			{1, 0, 3},
			{2, 3, 0},
		})
		n, err := matrix.ValidateDistances(m, tol)
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})
}
