// SPDX-License-Identifier: MIT
// Package monomial: exhaustive enumeration of exponent tuples.
//
// Purpose:
//   - Generate every monomial of a fixed dimension with total degree ≤ d
//     (UpTo) or == d exactly (Exact), in a deterministic construction order.
//   - Provide the exact stars-and-bars cardinalities so callers can pre-size
//     coefficient buffers without enumerating twice.
//
// Determinism:
//   - The emission order is the recursive composition order: positions are
//     processed left to right and candidate exponents ascend from 0. The
//     order is stable across calls but is NOT grevlex; use Sort for that.

package monomial

import (
	"fmt"
	"math"
)

// UpTo returns every term of length dim with total degree ≤ degree.
//
// Implementation:
//   - Stage 1: validate dim ≥ 1 and degree ≥ 0.
//   - Stage 2: pre-size the result with CountUpTo when the count fits int64
//     (on overflow the enumeration itself would be infeasible anyway).
//   - Stage 3: recursive composition over positions; recursion depth equals
//     dim by contract, so callers embedding large dim bound it themselves.
//
// Returns:
//   - []Term: exactly C(dim+degree, dim) fresh terms, construction order.
//
// Errors:
//   - ErrInvalidDimension when dim < 1.
//   - ErrInvalidDegree when degree < 0.
//
// Complexity:
//   - Time and space O(C(dim+degree, dim) · dim).
func UpTo(dim, degree int) ([]Term, error) {
	if err := validateEnum(dim, degree, "UpTo"); err != nil {
		return nil, err
	}

	out := make([]Term, 0, enumCapacity(dim, degree, false))
	out = appendUpTo(out, make(Term, dim), degree, 0)

	return out, nil
}

// Exact returns every term of length dim with total degree == degree.
//
// Same validation, ordering and recursion contract as UpTo. The count is
// C(dim+degree-1, dim-1) for degree ≥ 1, and exactly one all-zero term for
// degree == 0.
//
// Complexity: time and space O(C(dim+degree-1, dim-1) · dim).
func Exact(dim, degree int) ([]Term, error) {
	if err := validateEnum(dim, degree, "Exact"); err != nil {
		return nil, err
	}

	out := make([]Term, 0, enumCapacity(dim, degree, true))
	out = appendExact(out, make(Term, dim), degree, 0)

	return out, nil
}

// Variables returns the dim degree-1 unit terms in position order:
// (1,0,...,0), (0,1,...,0), ..., (0,...,0,1).
//
// Errors: ErrInvalidDimension when dim < 1.
// Complexity: O(dim²) space for the dim fresh tuples.
func Variables(dim int) ([]Term, error) {
	if dim < 1 {
		return nil, fmt.Errorf("Variables(%d): %w", dim, ErrInvalidDimension)
	}

	vars := make([]Term, dim)
	for i := 0; i < dim; i++ {
		v := make(Term, dim)
		v[i] = 1
		vars[i] = v
	}

	return vars, nil
}

// CountUpTo returns |UpTo(dim, degree)| = C(dim+degree, dim) without
// enumerating.
//
// Errors: ErrInvalidDimension, ErrInvalidDegree, ErrCountOverflow.
// Complexity: O(min(dim, degree)) multiplications.
func CountUpTo(dim, degree int) (int64, error) {
	if err := validateEnum(dim, degree, "CountUpTo"); err != nil {
		return 0, err
	}

	return binomial(dim+degree, dim)
}

// CountExact returns |Exact(dim, degree)| = C(dim+degree-1, dim-1), which
// also covers degree == 0 (exactly one all-zero tuple).
//
// Errors: ErrInvalidDimension, ErrInvalidDegree, ErrCountOverflow.
// Complexity: O(min(dim, degree)) multiplications.
func CountExact(dim, degree int) (int64, error) {
	if err := validateEnum(dim, degree, "CountExact"); err != nil {
		return 0, err
	}

	return binomial(dim+degree-1, dim-1)
}

// validateEnum guards the shared dim/degree preconditions with a stable
// "Op(dim,degree): sentinel" error shape.
func validateEnum(dim, degree int, op string) error {
	if dim < 1 {
		return fmt.Errorf("%s(%d,%d): %w", op, dim, degree, ErrInvalidDimension)
	}
	if degree < 0 {
		return fmt.Errorf("%s(%d,%d): %w", op, dim, degree, ErrInvalidDegree)
	}

	return nil
}

// enumCapacity returns the exact result count for pre-sizing, or 0 when the
// count overflows int64 (append will grow as needed in that pathological case).
func enumCapacity(dim, degree int, exact bool) int {
	var n int64
	var err error
	if exact {
		n, err = binomial(dim+degree-1, dim-1)
	} else {
		n, err = binomial(dim+degree, dim)
	}
	if err != nil || n > int64(math.MaxInt) {
		return 0
	}

	return int(n)
}

// appendUpTo emits every completion of mon[spot:] spending at most left more
// total degree. The invariant on entry is mon[spot:] == 0, restored on exit,
// so a single scratch tuple serves the whole traversal.
func appendUpTo(out []Term, mon Term, left, spot int) []Term {
	// Last position: spend any amount from 0 to the remaining budget.
	if spot == len(mon)-1 {
		for v := 0; v <= left; v++ {
			mon[spot] = v
			out = append(out, mon.Clone())
		}
		mon[spot] = 0 // restore the zero-suffix invariant

		return out
	}

	// Exhausted budget before the last position: the zero suffix already in
	// place is the only completion ("spend nothing further").
	if left == 0 {
		return append(out, mon.Clone())
	}

	// Intermediate position: fix each candidate exponent and recurse on the
	// remaining positions with the reduced budget.
	for v := 0; v <= left; v++ {
		mon[spot] = v
		out = appendUpTo(out, mon, left-v, spot+1)
	}
	mon[spot] = 0

	return out
}

// appendExact mirrors appendUpTo but forces the residual budget onto the last
// position, so every emitted tuple sums to the full degree.
func appendExact(out []Term, mon Term, left, spot int) []Term {
	// Last position: the residual is forced, emitting exactly one tuple.
	if spot == len(mon)-1 {
		mon[spot] = left
		out = append(out, mon.Clone())
		mon[spot] = 0

		return out
	}

	// Budget already spent: the forced residual for every remaining position
	// is zero, which the scratch tuple already holds.
	if left == 0 {
		return append(out, mon.Clone())
	}

	for v := 0; v <= left; v++ {
		mon[spot] = v
		out = appendExact(out, mon, left-v, spot+1)
	}
	mon[spot] = 0

	return out
}

// binomial computes C(n, k) exactly in int64, detecting overflow before it
// happens. The running value r after i steps equals C(n-k+i, i), so the
// division by i is always exact.
func binomial(n, k int) (int64, error) {
	if k < 0 || k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k // exploit symmetry to shorten the product
	}

	r := int64(1)
	for i := 1; i <= k; i++ {
		m := int64(n - k + i)
		if r > math.MaxInt64/m {
			return 0, fmt.Errorf("binomial(%d,%d): %w", n, k, ErrCountOverflow)
		}
		r = r * m / int64(i) // exact: r*m is divisible by i here
	}

	return r, nil
}
