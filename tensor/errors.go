// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call boundary; callers still match via errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid: rank 0, an
	// axis length < 1, a ragged row set, or a reshape that changes the total
	// element count.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates an index or embed range outside valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRankMismatch indicates operands of different rank passed to a
	// routine that requires equal rank (MatchSize, Embed, At/Set arity).
	// Rank differences are a caller error; implicit broadcasting is never
	// performed.
	ErrRankMismatch = errors.New("tensor: rank mismatch")

	// ErrNotMatrix signals that a rank-2 tensor was required (RowSwap,
	// Rows/Cols, Indexed) but the input has a different rank.
	ErrNotMatrix = errors.New("tensor: rank-2 tensor required")

	// ErrDegenerateRow is returned by RowSwap under WithZeroRowsRejected when
	// a row has no nonzero entry, making its leading column undefined.
	ErrDegenerateRow = errors.New("tensor: all-zero row has no leading column")

	// ErrColumnMismatch indicates that a column label slice does not match
	// the matrix width when building an Indexed pair.
	ErrColumnMismatch = errors.New("tensor: column labels do not match matrix width")

	// ErrNilTensor indicates that a nil *Tensor was passed where a value is
	// required.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
