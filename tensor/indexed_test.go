// SPDX-License-Identifier: MIT
// Package tensor_test verifies the Indexed pair: construction invariants,
// label-preserving row operations, and the canonical column basis.
package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polykit/macaulay/monomial"
	"github.com/polykit/macaulay/tensor"
)

func TestNewIndexed_Validation(t *testing.T) {
	mat, err := tensor.New(2, 3)
	require.NoError(t, err)

	cols := []monomial.Term{{0, 0}, {0, 1}, {1, 0}}
	ix, err := tensor.NewIndexed(mat, cols)
	require.NoError(t, err)
	assert.Same(t, mat, ix.Mat)

	_, err = tensor.NewIndexed(nil, cols)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = tensor.NewIndexed(mat, cols[:2])
	assert.ErrorIs(t, err, tensor.ErrColumnMismatch)

	_, err = tensor.NewIndexed(mat, []monomial.Term{{0, 0}, {0, 1}, {1, 0, 0}})
	assert.ErrorIs(t, err, monomial.ErrLengthMismatch)

	cube, err := tensor.New(2, 3, 1)
	require.NoError(t, err)
	_, err = tensor.NewIndexed(cube, cols)
	assert.ErrorIs(t, err, tensor.ErrNotMatrix)
}

func TestIndexed_RowSwapKeepsColumns(t *testing.T) {
	mat, err := tensor.FromRows([][]float64{
		{0, 1, 0},
		{2, 0, 0},
	})
	require.NoError(t, err)
	cols, err := tensor.ColumnBasis(2, 1)
	require.NoError(t, err)

	ix, err := tensor.NewIndexed(mat, cols)
	require.NoError(t, err)

	swapped, err := ix.RowSwap()
	require.NoError(t, err)

	rows, err := swapped.Mat.ToRows()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{2, 0, 0},
		{0, 1, 0},
	}, rows)
	// Rows moved; the column labeling did not.
	assert.Equal(t, cols, swapped.Cols)
	// The original pair is untouched.
	orig, err := ix.Mat.ToRows()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 0}, {2, 0, 0}}, orig)
}

func TestIndexed_CleanChains(t *testing.T) {
	mat, err := tensor.FromRows([][]float64{{1e-13, 1}})
	require.NoError(t, err)
	cols := []monomial.Term{{0}, {1}}
	ix, err := tensor.NewIndexed(mat, cols)
	require.NoError(t, err)

	same, err := ix.Clean()
	require.NoError(t, err)
	assert.Same(t, ix, same)

	v, err := ix.Mat.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestColumnBasis_GrevlexSortedAndComplete(t *testing.T) {
	basis, err := tensor.ColumnBasis(2, 2)
	require.NoError(t, err)

	want := []monomial.Term{
		{0, 0},
		{0, 1}, {1, 0},
		{0, 2}, {1, 1}, {2, 0},
	}
	assert.Equal(t, want, basis)

	n, err := monomial.CountUpTo(3, 4)
	require.NoError(t, err)
	basis, err = tensor.ColumnBasis(3, 4)
	require.NoError(t, err)
	assert.Equal(t, int(n), len(basis))

	_, err = tensor.ColumnBasis(0, 2)
	assert.ErrorIs(t, err, monomial.ErrInvalidDimension)
	_, err = tensor.ColumnBasis(2, -1)
	assert.ErrorIs(t, err, monomial.ErrInvalidDegree)
}
