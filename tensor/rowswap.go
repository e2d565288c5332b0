// SPDX-License-Identifier: MIT
// Package tensor: row reordering toward upper-triangular form.
//
// Purpose:
//   - Permute matrix rows into ascending order of their leading-nonzero
//     column, the cheap preprocessing step that keeps the subsequent exact
//     elimination numerically tame.
//
// Determinism:
//   - The sort is stable: ties (and degenerate rows under the default
//     policy) keep their original relative order, so the result is a pure
//     function of the input.

package tensor

import (
	"fmt"
	"sort"
)

// RowSwap returns a NEW rank-2 tensor whose rows are stably sorted by the
// index of their first nonzero entry (scanning columns left to right). This
// is best-effort triangularization, not a guarantee: it is the preprocessing
// step before exact elimination, and it is idempotent when no row is
// degenerate.
//
// Leading-nonzero detection compares against exact zero. Near-zeros from
// round-off must be flushed with Clean FIRST; RowSwap deliberately does not
// apply a tolerance of its own, so that cleaning and reordering stay
// independently testable.
//
// Zero-row policy (the leading column of an all-zero row is undefined):
//   - WithZeroRowsLast (default): degenerate rows sort after all others,
//     keeping their relative order.
//   - WithZeroRowsRejected: the first degenerate row fails with
//     ErrDegenerateRow, wrapped with its row index.
//
// Errors: ErrNilTensor, ErrNotMatrix, ErrDegenerateRow.
// Complexity: O(r·c + r·log r) time, O(r·c) space for the result.
func RowSwap(t *Tensor, opts ...Option) (*Tensor, error) {
	if t == nil {
		return nil, fmt.Errorf("RowSwap: %w", ErrNilTensor)
	}
	rows, err := t.Rows()
	if err != nil {
		return nil, fmt.Errorf("RowSwap: %w", err)
	}
	o := gatherOptions(opts...)
	cols := t.shape[1]

	// Leading-nonzero column per row; cols is the past-the-end sentinel that
	// sorts degenerate rows after every real leading index.
	leading := make([]int, rows)
	for i := 0; i < rows; i++ {
		leading[i] = cols
		for j := 0; j < cols; j++ {
			if t.data[i*cols+j] != 0 {
				leading[i] = j
				break
			}
		}
		if leading[i] == cols && o.zeroRows == zeroRowsRejected {
			return nil, fmt.Errorf("RowSwap: row %d: %w", i, ErrDegenerateRow)
		}
	}

	// Stable permutation of row indices by leading column.
	perm := make([]int, rows)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return leading[perm[a]] < leading[perm[b]]
	})

	// Materialize the reordered copy; the input stays untouched.
	out, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("RowSwap: %w", err)
	}
	for dst, src := range perm {
		copy(out.data[dst*cols:(dst+1)*cols], t.data[src*cols:(src+1)*cols])
	}

	return out, nil
}
