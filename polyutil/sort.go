// SPDX-License-Identifier: MIT
// Package polyutil: degree-based ordering.

package polyutil

import (
	"fmt"
	"sort"
)

// SortByDegree returns a NEW slice with the polynomials stably sorted by
// their declared degree, ascending or descending per the flag. The input
// slice is left untouched; stability means equal-degree polynomials keep
// their relative input order in both directions.
//
// Errors: ErrNilPoly when the collection contains a nil element (validated
// before sorting). An empty or nil collection sorts to an empty slice.
// Complexity: O(n log n) time, O(n) space.
func SortByDegree(polys []Poly, ascending bool) ([]Poly, error) {
	for i, p := range polys {
		if p == nil {
			return nil, fmt.Errorf("SortByDegree: index %d: %w", i, ErrNilPoly)
		}
	}

	out := make([]Poly, len(polys))
	copy(out, polys)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Degree() < out[j].Degree()
		}

		return out[i].Degree() > out[j].Degree()
	})

	return out, nil
}
