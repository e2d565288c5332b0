// SPDX-License-Identifier: MIT
// Package monomial_test verifies enumeration: stars-and-bars cardinalities
// across a dim/degree grid, exact-degree sums, the documented construction
// order, and parameter validation.
package monomial_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polykit/macaulay/monomial"
)

// choose recomputes C(n,k) independently for the grid below, so a bug in the
// library's binomial cannot mask a matching bug in the enumerator.
func choose(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	r := int64(1)
	for i := 1; i <= k; i++ {
		r = r * int64(n-k+i) / int64(i)
	}
	return r
}

func TestUpTo_CountsMatchStarsAndBars(t *testing.T) {
	for dim := 1; dim <= 5; dim++ {
		for degree := 0; degree <= 6; degree++ {
			name := fmt.Sprintf("dim=%d,degree=%d", dim, degree)
			t.Run(name, func(t *testing.T) {
				terms, err := monomial.UpTo(dim, degree)
				require.NoError(t, err)
				assert.Equal(t, choose(dim+degree, dim), int64(len(terms)))

				n, err := monomial.CountUpTo(dim, degree)
				require.NoError(t, err)
				assert.Equal(t, int64(len(terms)), n)

				// Every tuple respects the bound and the fixed length.
				for _, term := range terms {
					assert.Len(t, term, dim)
					assert.LessOrEqual(t, term.Degree(), degree)
				}
			})
		}
	}
}

func TestExact_CountsAndDegreeSums(t *testing.T) {
	for dim := 1; dim <= 5; dim++ {
		for degree := 1; degree <= 6; degree++ {
			name := fmt.Sprintf("dim=%d,degree=%d", dim, degree)
			t.Run(name, func(t *testing.T) {
				terms, err := monomial.Exact(dim, degree)
				require.NoError(t, err)
				assert.Equal(t, choose(dim+degree-1, dim-1), int64(len(terms)))

				n, err := monomial.CountExact(dim, degree)
				require.NoError(t, err)
				assert.Equal(t, int64(len(terms)), n)

				// Every entry sums to the degree exactly.
				for _, term := range terms {
					assert.Equal(t, degree, term.Degree(), "term %v", term)
				}
			})
		}
	}
}

func TestExact_DegreeZeroSingleTuple(t *testing.T) {
	terms, err := monomial.Exact(4, 0)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, monomial.Term{0, 0, 0, 0}, terms[0])

	n, err := monomial.CountExact(4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUpTo_TwoTwoScenario(t *testing.T) {
	// UpTo(2,2) yields exactly these six tuples (set equality).
	terms, err := monomial.UpTo(2, 2)
	require.NoError(t, err)

	got := make(map[string]bool, len(terms))
	for _, term := range terms {
		got[term.String()] = true
	}
	want := []string{"(0,0)", "(0,1)", "(0,2)", "(1,0)", "(1,1)", "(2,0)"}
	require.Len(t, got, len(want), "duplicates in enumeration")
	for _, s := range want {
		assert.True(t, got[s], "missing %s", s)
	}
}

func TestUpTo_ConstructionOrderIsNotGrevlex(t *testing.T) {
	// The documented emission order fixes the leading positions first and
	// ascends candidate exponents; for (2,2) that is:
	terms, err := monomial.UpTo(2, 2)
	require.NoError(t, err)
	want := []monomial.Term{
		{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0},
	}
	assert.Equal(t, want, terms)

	// Grevlex would interleave the degrees: (0,0),(0,1),(1,0),(0,2),(1,1),(2,0).
	sorted := make([]monomial.Term, len(terms))
	copy(sorted, terms)
	require.NoError(t, monomial.Sort(sorted))
	assert.NotEqual(t, sorted, terms, "construction order must differ from grevlex here")
}

func TestEnumerate_FreshBackingArrays(t *testing.T) {
	terms, err := monomial.UpTo(2, 1)
	require.NoError(t, err)
	require.Len(t, terms, 3)

	terms[0][0] = 99
	assert.NotEqual(t, 99, terms[1][0], "tuples must not share backing storage")
}

func TestEnumerate_ParameterValidation(t *testing.T) {
	for _, tc := range []struct {
		name        string
		dim, degree int
		want        error
	}{
		{"zero dim", 0, 3, monomial.ErrInvalidDimension},
		{"negative dim", -2, 3, monomial.ErrInvalidDimension},
		{"negative degree", 3, -1, monomial.ErrInvalidDegree},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := monomial.UpTo(tc.dim, tc.degree)
			assert.ErrorIs(t, err, tc.want)
			_, err = monomial.Exact(tc.dim, tc.degree)
			assert.ErrorIs(t, err, tc.want)
			_, err = monomial.CountUpTo(tc.dim, tc.degree)
			assert.ErrorIs(t, err, tc.want)
			_, err = monomial.CountExact(tc.dim, tc.degree)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCount_Overflow(t *testing.T) {
	// C(2000, 1000) is astronomically larger than int64.
	_, err := monomial.CountUpTo(1000, 1000)
	assert.ErrorIs(t, err, monomial.ErrCountOverflow)
}

func TestVariables_UnitTuplesInPositionOrder(t *testing.T) {
	vars, err := monomial.Variables(3)
	require.NoError(t, err)
	assert.Equal(t, []monomial.Term{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, vars)

	_, err = monomial.Variables(0)
	assert.ErrorIs(t, err, monomial.ErrInvalidDimension)
}
