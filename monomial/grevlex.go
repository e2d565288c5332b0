// SPDX-License-Identifier: MIT
// Package monomial: graded reverse lexicographic (grevlex) ordering kernels.
//
// Purpose:
//   - Provide the canonical strict total order used for Macaulay matrix columns.
//   - Keep validation centralized so Sort and the comparison facades never
//     silently compare truncated tuples.
//
// Determinism & Performance:
//   - All comparisons are pure, allocate nothing, and scan each tuple once.
//   - Sort is stable; equal tuples keep their relative input positions.

package monomial

import (
	"fmt"
	"sort"
)

// Comparison results returned by Compare; named to avoid magic numbers.
const (
	// OrderedBefore means a precedes b under grevlex (a < b).
	OrderedBefore = -1
	// OrderedSame means a and b are the same tuple.
	OrderedSame = 0
	// OrderedAfter means a follows b under grevlex (a > b).
	OrderedAfter = 1
)

// Less reports whether a is strictly less than b under grevlex.
//
// Grevlex rule: a < b iff deg(a) < deg(b), or the degrees are equal and,
// scanning entries from the LAST position toward the first, the first
// position where the tuples differ has a[i] > b[i]. Equal tuples compare
// as neither less.
//
// Inputs:
//   - a, b: terms of equal length (enforced).
//
// Returns:
//   - bool: a < b under grevlex.
//
// Errors:
//   - ErrLengthMismatch when len(a) != len(b) (fail fast; the order is
//     undefined across lengths and zero-padding is never assumed).
//
// Complexity:
//   - Time O(n), Space O(1) for n = len(a).
func Less(a, b Term) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}

	return c == OrderedBefore, nil
}

// Compare returns OrderedBefore, OrderedSame or OrderedAfter for a versus b
// under grevlex. Same contract and failure mode as Less.
//
// Worked examples (degree ties):
//   - (1,1) < (2,0): equal degree 2; last differing position is 1, where
//     1 > 0, so (1,1) precedes.
//   - (0,0,1) < (0,1,0) < (1,0,0): degree-1 monomials order z, y, x.
//
// Complexity: O(n) time, O(1) space.
func Compare(a, b Term) (int, error) {
	// Lengths must agree; comparing truncated tuples silently would corrupt
	// every downstream column ordering, so this is a hard failure.
	if len(a) != len(b) {
		return 0, fmt.Errorf("Compare(%v,%v): %w", a, b, ErrLengthMismatch)
	}

	// Graded part: lower total degree sorts first.
	da, db := a.Degree(), b.Degree()
	if da != db {
		if da < db {
			return OrderedBefore, nil
		}

		return OrderedAfter, nil
	}

	// Reverse-lexicographic tie-break: scan from the last entry toward the
	// first; at the first difference the LARGER entry marks the SMALLER term.
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] == b[i] {
			continue
		}
		if a[i] > b[i] {
			return OrderedBefore, nil
		}

		return OrderedAfter, nil
	}

	return OrderedSame, nil
}

// Sort stably sorts terms in place into ascending grevlex order.
//
// Implementation:
//   - Stage 1: validate that every term shares one length (no partial sorts:
//     validation happens before any element moves).
//   - Stage 2: sort.SliceStable with the Compare kernel; lengths are known
//     equal, so the comparator cannot fail mid-sort.
//
// Errors:
//   - ErrLengthMismatch if the collection mixes tuple lengths; the slice is
//     left untouched in that case.
//
// Complexity:
//   - Time O(m·n·log m), Space O(log m) for m terms of length n.
func Sort(terms []Term) error {
	if len(terms) < 2 {
		return nil // nothing to order
	}

	// Validate first so a mixed-length collection never half-sorts.
	width := len(terms[0])
	for i := 1; i < len(terms); i++ {
		if len(terms[i]) != width {
			return fmt.Errorf("Sort: term %d: %w", i, ErrLengthMismatch)
		}
	}

	sort.SliceStable(terms, func(i, j int) bool {
		c, _ := Compare(terms[i], terms[j]) // lengths pre-validated above
		return c == OrderedBefore
	})

	return nil
}
