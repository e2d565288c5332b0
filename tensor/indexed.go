// SPDX-License-Identifier: MIT
// Package tensor: matrices paired with their monomial column index.
//
// Purpose:
//   - Replace the implicit "caller keeps an external column-to-monomial map"
//     convention with an explicit pair type, eliminating the silent
//     misalignment bugs that convention invites.

package tensor

import (
	"fmt"

	"github.com/polykit/macaulay/monomial"
)

// Indexed bundles a rank-2 matrix with the monomial labeling its columns.
// Row operations travel with the pair; columns never move, so Cols stays
// valid across every normalization step this package offers.
type Indexed struct {
	Mat  *Tensor         // rank-2 coefficient matrix
	Cols []monomial.Term // Cols[j] labels column j
}

// NewIndexed validates and builds an Indexed pair.
//
// Errors:
//   - ErrNilTensor when mat is nil; ErrNotMatrix when mat is not rank-2.
//   - ErrColumnMismatch when len(cols) differs from the matrix width.
//   - monomial.ErrLengthMismatch when the labels mix tuple lengths.
//
// Complexity: O(len(cols)).
func NewIndexed(mat *Tensor, cols []monomial.Term) (*Indexed, error) {
	if mat == nil {
		return nil, fmt.Errorf("NewIndexed: %w", ErrNilTensor)
	}
	width, err := mat.Cols()
	if err != nil {
		return nil, fmt.Errorf("NewIndexed: %w", err)
	}
	if len(cols) != width {
		return nil, fmt.Errorf("NewIndexed: %d labels for %d columns: %w",
			len(cols), width, ErrColumnMismatch)
	}
	if len(cols) > 0 {
		dim := len(cols[0])
		for j, c := range cols {
			if len(c) != dim {
				return nil, fmt.Errorf("NewIndexed: column %d: %w", j, monomial.ErrLengthMismatch)
			}
		}
	}

	return &Indexed{Mat: mat, Cols: cols}, nil
}

// RowSwap applies the package-level RowSwap to the matrix and returns a new
// Indexed sharing the same column labels: rows move, columns do not.
//
// Errors: as RowSwap. Complexity: as RowSwap.
func (ix *Indexed) RowSwap(opts ...Option) (*Indexed, error) {
	swapped, err := RowSwap(ix.Mat, opts...)
	if err != nil {
		return nil, err
	}

	return &Indexed{Mat: swapped, Cols: ix.Cols}, nil
}

// Clean applies the package-level Clean to the matrix IN PLACE and returns
// the receiver for chaining.
//
// Errors: as Clean. Complexity: as Clean.
func (ix *Indexed) Clean(opts ...Option) (*Indexed, error) {
	if _, err := Clean(ix.Mat, opts...); err != nil {
		return nil, err
	}

	return ix, nil
}

// ColumnBasis returns the canonical grevlex-sorted column labeling for a
// Macaulay matrix over every monomial of total degree ≤ degree in dim
// variables: enumerate, then sort. Pair it with NewIndexed so the column
// convention is carried by the value instead of by documentation.
//
// Errors: monomial.ErrInvalidDimension, monomial.ErrInvalidDegree.
// Complexity: O(C(dim+degree, dim) · dim · log) time.
func ColumnBasis(dim, degree int) ([]monomial.Term, error) {
	basis, err := monomial.UpTo(dim, degree)
	if err != nil {
		return nil, fmt.Errorf("ColumnBasis: %w", err)
	}
	if err = monomial.Sort(basis); err != nil {
		return nil, fmt.Errorf("ColumnBasis: %w", err) // unreachable: UpTo emits one length
	}

	return basis, nil
}
