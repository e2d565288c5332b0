// SPDX-License-Identifier: MIT
// Package tensor: shape matching for same-rank operands.

package tensor

import "fmt"

// MatchSize pads two same-rank tensors to their element-wise maximum shape.
//
// Implementation:
//   - Stage 1: validate both operands non-nil and of equal rank. Different
//     ranks are a caller error; nothing is ever broadcast implicitly.
//   - Stage 2: compute the per-axis maximum shape and allocate two fresh
//     zero-filled tensors of that shape.
//   - Stage 3: embed each input at its top corner (SliceTop anchor).
//
// Behavior highlights:
//   - Every original entry keeps its original multi-index; new space is
//     exactly zero. The originals are untouched.
//
// Returns:
//   - *Tensor, *Tensor: the two resized copies, in input order.
//
// Errors:
//   - ErrNilTensor, ErrRankMismatch.
//
// Complexity: O(product(maxShape)) time and memory.
func MatchSize(a, b *Tensor) (*Tensor, *Tensor, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", ErrNilTensor)
	}
	if a.Rank() != b.Rank() {
		return nil, nil, fmt.Errorf("MatchSize: rank %d vs %d: %w", a.Rank(), b.Rank(), ErrRankMismatch)
	}

	// Element-wise maximum shape.
	shape := make([]int, a.Rank())
	for i := range shape {
		shape[i] = a.shape[i]
		if b.shape[i] > shape[i] {
			shape[i] = b.shape[i]
		}
	}

	aNew, err := New(shape...)
	if err != nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", err)
	}
	bNew, err := New(shape...)
	if err != nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", err)
	}

	// Top-corner embeds; the ranges are each input's own identity slice.
	topA, _ := SliceTop(a) // a proven non-nil above
	if err = Embed(aNew, a, topA); err != nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", err)
	}
	topB, _ := SliceTop(b)
	if err = Embed(bNew, b, topB); err != nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", err)
	}

	return aNew, bNew, nil
}
