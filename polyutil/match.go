// SPDX-License-Identifier: MIT
// Package polyutil: dimension alignment across a polynomial collection.

package polyutil

import "fmt"

// MatchDimensions aligns every polynomial in the collection to the maximum
// dimension found among them by inserting leading singleton axes into the
// lower-dimension coefficient tensors.
//
// Implementation:
//   - Stage 1: validate the collection (non-empty, no nil polynomials, no
//     nil coefficient tensors) and find the maximum rank. Validation runs
//     fully BEFORE any mutation, so a bad list never half-aligns.
//   - Stage 2: PrependAxes on each lower-rank tensor, IN PLACE.
//
// Behavior highlights:
//   - The reshape is destructive: the polynomial's own tensor changes rank,
//     and any alias of the old layout is invalidated. Callers needing the
//     original must Clone beforehand.
//   - Returns the SAME collection for chaining; the slice itself is not
//     copied or reordered.
//
// Errors: ErrEmptyList, ErrNilPoly, ErrNilCoeff.
// Complexity: O(n · maxDim) beyond the tensors' own reshape cost (O(rank)
// each; no data moves).
func MatchDimensions(polys []Poly) ([]Poly, error) {
	if len(polys) == 0 {
		return nil, fmt.Errorf("MatchDimensions: %w", ErrEmptyList)
	}

	maxDim := 0
	for i, p := range polys {
		if p == nil {
			return nil, fmt.Errorf("MatchDimensions: index %d: %w", i, ErrNilPoly)
		}
		if p.Coeff() == nil {
			return nil, fmt.Errorf("MatchDimensions: index %d: %w", i, ErrNilCoeff)
		}
		if d := p.Coeff().Rank(); d > maxDim {
			maxDim = d
		}
	}

	for i, p := range polys {
		d := p.Coeff().Rank()
		if d == maxDim {
			continue
		}
		if err := p.Coeff().PrependAxes(maxDim - d); err != nil {
			return nil, fmt.Errorf("MatchDimensions: index %d: %w", i, err)
		}
	}

	return polys, nil
}
