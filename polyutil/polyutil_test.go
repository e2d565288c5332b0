// SPDX-License-Identifier: MIT
// Package polyutil_test verifies the polynomial glue: in-place dimension
// alignment, stable degree sorting, and the root-verification report.
package polyutil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polykit/macaulay/polyutil"
	"github.com/polykit/macaulay/tensor"
)

// testPoly is a minimal Poly implementation for the tests; evaluation is an
// arbitrary caller-supplied closure so residuals can be scripted exactly.
type testPoly struct {
	name   string
	degree int
	coeff  *tensor.Tensor
	eval   func(point []float64) (float64, error)
}

func (p *testPoly) Degree() int { return p.degree }

func (p *testPoly) Coeff() *tensor.Tensor { return p.coeff }

func (p *testPoly) EvaluateAt(pt []float64) (float64, error) { return p.eval(pt) }

func newTestPoly(t *testing.T, name string, degree int, shape ...int) *testPoly {
	t.Helper()
	c, err := tensor.New(shape...)
	require.NoError(t, err)
	return &testPoly{
		name:   name,
		degree: degree,
		coeff:  c,
		eval:   func([]float64) (float64, error) { return 0, nil },
	}
}

func TestDim_DerivedFromCoeffRank(t *testing.T) {
	p := newTestPoly(t, "p", 2, 3, 3)
	assert.Equal(t, 2, polyutil.Dim(p))
	assert.Equal(t, 0, polyutil.Dim(nil))
	assert.Equal(t, 0, polyutil.Dim(&testPoly{}))
}

func TestMatchDimensions_DestructiveReshape(t *testing.T) {
	univariate := newTestPoly(t, "u", 3, 4)       // dim 1, degree 3
	bivariate := newTestPoly(t, "b", 2, 3, 3)     // dim 2
	trivariate := newTestPoly(t, "t", 1, 2, 2, 2) // dim 3
	require.NoError(t, univariate.coeff.Set(7, 2))

	polys := []polyutil.Poly{univariate, bivariate, trivariate}
	same, err := polyutil.MatchDimensions(polys)
	require.NoError(t, err)

	// The same collection comes back; the mutation happened in place.
	assert.Equal(t, polys, same)
	assert.Equal(t, 3, polyutil.Dim(univariate))
	assert.Equal(t, 3, polyutil.Dim(bivariate))
	assert.Equal(t, 3, polyutil.Dim(trivariate))

	// Leading singleton axes only: shapes gain 1s at the front.
	assert.Equal(t, []int{1, 1, 4}, univariate.coeff.Shape())
	assert.Equal(t, []int{1, 3, 3}, bivariate.coeff.Shape())
	assert.Equal(t, []int{2, 2, 2}, trivariate.coeff.Shape())

	// The data is untouched and visible through the new indexing.
	v, err := univariate.coeff.At(0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestMatchDimensions_Validation(t *testing.T) {
	_, err := polyutil.MatchDimensions(nil)
	assert.ErrorIs(t, err, polyutil.ErrEmptyList)

	_, err = polyutil.MatchDimensions([]polyutil.Poly{nil})
	assert.ErrorIs(t, err, polyutil.ErrNilPoly)

	_, err = polyutil.MatchDimensions([]polyutil.Poly{&testPoly{}})
	assert.ErrorIs(t, err, polyutil.ErrNilCoeff)

	// Validation precedes mutation: a good poly before a bad one must not
	// be reshaped when the list fails as a whole.
	low := newTestPoly(t, "low", 1, 2)
	high := newTestPoly(t, "high", 1, 2, 2)
	_, err = polyutil.MatchDimensions([]polyutil.Poly{low, high, nil})
	assert.ErrorIs(t, err, polyutil.ErrNilPoly)
	assert.Equal(t, []int{2}, low.coeff.Shape(), "failed alignment must not half-mutate")
}

func TestSortByDegree_StableBothDirections(t *testing.T) {
	a := newTestPoly(t, "a", 2, 2)
	b := newTestPoly(t, "b", 1, 2)
	c := newTestPoly(t, "c", 2, 2) // same degree as a; must stay after it
	d := newTestPoly(t, "d", 3, 2)
	in := []polyutil.Poly{a, b, c, d}

	asc, err := polyutil.SortByDegree(in, true)
	require.NoError(t, err)
	assert.Equal(t, []polyutil.Poly{b, a, c, d}, asc)

	desc, err := polyutil.SortByDegree(in, false)
	require.NoError(t, err)
	assert.Equal(t, []polyutil.Poly{d, a, c, b}, desc)

	// Input order untouched: the sort copies.
	assert.Equal(t, []polyutil.Poly{a, b, c, d}, in)

	_, err = polyutil.SortByDegree([]polyutil.Poly{a, nil}, true)
	assert.ErrorIs(t, err, polyutil.ErrNilPoly)
}

func TestCheckZeros_CountsAndOutOfRange(t *testing.T) {
	// p1 vanishes everywhere; p2 vanishes only at points whose first
	// coordinate is 0.5 (residual equals x0 - 0.5).
	p1 := newTestPoly(t, "p1", 1, 2, 2)
	p2 := newTestPoly(t, "p2", 1, 2, 2)
	p2.eval = func(pt []float64) (float64, error) { return pt[0] - 0.5, nil }

	zeros := [][]float64{
		{0.5, 0.1},   // correct
		{0.5001, -1}, // |residual| = 1e-4 <= 1e-3: still correct
		{0.9, 0.9},   // fails p2, in range
		{2.0, 0.0},   // fails p2, first coordinate escapes [-1,1]
		{0.0, -3.0},  // fails p2, second coordinate escapes
	}

	report, err := polyutil.CheckZeros(zeros, []polyutil.Poly{p1, p2})
	require.NoError(t, err)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.Correct)
	assert.Equal(t, 2, report.OutOfRange)
	assert.Equal(t, "2 zeros are correct out of 5 (2 out of range)", report.String())
}

func TestCheckZeros_ToleranceOption(t *testing.T) {
	p := newTestPoly(t, "p", 1, 2)
	p.eval = func(pt []float64) (float64, error) { return 0.01, nil }

	strict, err := polyutil.CheckZeros([][]float64{{0}}, []polyutil.Poly{p})
	require.NoError(t, err)
	assert.Equal(t, 0, strict.Correct)

	loose, err := polyutil.CheckZeros([][]float64{{0}}, []polyutil.Poly{p},
		polyutil.WithCheckTolerance(0.1))
	require.NoError(t, err)
	assert.Equal(t, 1, loose.Correct)

	assert.Panics(t, func() { polyutil.WithCheckTolerance(-0.5) })
}

func TestCheckZeros_EmptyAndErrors(t *testing.T) {
	p := newTestPoly(t, "p", 1, 2)

	report, err := polyutil.CheckZeros(nil, []polyutil.Poly{p})
	require.NoError(t, err)
	assert.Equal(t, &polyutil.ZeroReport{}, report)

	_, err = polyutil.CheckZeros(nil, nil)
	assert.ErrorIs(t, err, polyutil.ErrEmptyList)

	_, err = polyutil.CheckZeros(nil, []polyutil.Poly{nil})
	assert.ErrorIs(t, err, polyutil.ErrNilPoly)

	boom := newTestPoly(t, "boom", 1, 2)
	boom.eval = func(pt []float64) (float64, error) { return 0, errors.New("bad point") }
	_, err = polyutil.CheckZeros([][]float64{{0}}, []polyutil.Poly{boom})
	assert.ErrorIs(t, err, polyutil.ErrEvaluate)
}
