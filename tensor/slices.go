// SPDX-License-Identifier: MIT
// Package tensor: corner slices and embedding.
//
// Purpose:
//   - Compute the per-axis index ranges that select the top or bottom corner
//     of a tensor inside a (possibly larger) destination buffer.
//   - Embed a tensor into a zero-initialized destination at those ranges,
//     the primitive behind MatchSize and degree-raising coefficient copies.
//
// Determinism & Performance:
//   - Range computation allocates one small slice per call and nothing else.
//   - Embed copies the innermost axis with copy() for contiguous runs.

package tensor

import "fmt"

// Range is a half-open per-axis interval [Start, Stop). Negative bounds
// count from the end of the destination axis and are resolved at embed
// time: {-k, 0} selects the LAST k elements of whatever axis it is
// applied to.
type Range struct {
	Start int // inclusive; negative means "from the end"
	Stop  int // exclusive; <= 0 means "from the end"
}

// resolve normalizes the range against a destination axis of length n.
func (r Range) resolve(n int) Range {
	if r.Start < 0 {
		r.Start += n
	}
	if r.Stop <= 0 {
		r.Stop += n
	}

	return r
}

// SliceTop returns, for each axis i, the range {0, shape[i]} selecting the
// first shape[i] elements. Applying these ranges to the tensor itself is the
// identity slice; applying them to a larger buffer selects its top corner,
// the anchor used when a smaller array is embedded into a zero-initialized
// destination.
//
// Errors: ErrNilTensor.
// Complexity: O(rank).
func SliceTop(t *Tensor) ([]Range, error) {
	if t == nil {
		return nil, fmt.Errorf("SliceTop: %w", ErrNilTensor)
	}

	out := make([]Range, t.Rank())
	for i, n := range t.shape {
		out[i] = Range{Start: 0, Stop: n}
	}

	return out, nil
}

// SliceBottom returns, for each axis i, the end-anchored range
// {-shape[i], 0} selecting the LAST shape[i] elements of a destination axis.
// The negative bounds resolve against the destination's axis lengths inside
// Embed, mirroring the top-corner case.
//
// Errors: ErrNilTensor.
// Complexity: O(rank).
func SliceBottom(t *Tensor) ([]Range, error) {
	if t == nil {
		return nil, fmt.Errorf("SliceBottom: %w", ErrNilTensor)
	}

	out := make([]Range, t.Rank())
	for i, n := range t.shape {
		out[i] = Range{Start: -n, Stop: 0}
	}

	return out, nil
}

// Embed copies src into dst at the given per-axis ranges, leaving every
// other dst entry untouched. End-anchored (negative) ranges are resolved
// against dst's axis lengths first.
//
// Implementation:
//   - Stage 1: validate operands non-nil, ranks equal, len(at) == rank,
//     each resolved range in-bounds and exactly src's axis length.
//   - Stage 2: walk src's leading axes with an odometer; copy each
//     contiguous innermost run with copy().
//
// Errors:
//   - ErrNilTensor, ErrRankMismatch, ErrOutOfRange, ErrBadShape (range
//     length differs from src's axis).
//
// Complexity: O(src.Size()) time, O(rank) space.
func Embed(dst, src *Tensor, at []Range) error {
	if dst == nil || src == nil {
		return fmt.Errorf("Embed: %w", ErrNilTensor)
	}
	rank := dst.Rank()
	if src.Rank() != rank {
		return fmt.Errorf("Embed: src rank %d vs dst rank %d: %w", src.Rank(), rank, ErrRankMismatch)
	}
	if len(at) != rank {
		return fmt.Errorf("Embed: %d ranges for rank %d: %w", len(at), rank, ErrRankMismatch)
	}

	// Resolve and validate each axis range.
	starts := make([]int, rank)
	for i, r := range at {
		rr := r.resolve(dst.shape[i])
		if rr.Start < 0 || rr.Stop > dst.shape[i] || rr.Start > rr.Stop {
			return fmt.Errorf("Embed: axis %d range [%d,%d): %w", i, rr.Start, rr.Stop, ErrOutOfRange)
		}
		if rr.Stop-rr.Start != src.shape[i] {
			return fmt.Errorf("Embed: axis %d range length %d, src length %d: %w",
				i, rr.Stop-rr.Start, src.shape[i], ErrBadShape)
		}
		starts[i] = rr.Start
	}

	// Odometer over src's leading axes; the innermost axis is one copy().
	inner := src.shape[rank-1]
	idx := make([]int, rank) // src multi-index; idx[rank-1] stays 0
	for {
		srcOff := flatOffset(src.shape, idx, nil)
		dstOff := flatOffset(dst.shape, idx, starts)
		copy(dst.data[dstOff:dstOff+inner], src.data[srcOff:srcOff+inner])

		// Advance the odometer over axes rank-2 .. 0.
		axis := rank - 2
		for axis >= 0 {
			idx[axis]++
			if idx[axis] < src.shape[axis] {
				break
			}
			idx[axis] = 0
			axis--
		}
		if axis < 0 {
			return nil // every leading index combination visited
		}
	}
}

// flatOffset converts the multi-index idx (plus an optional per-axis shift)
// into the flat row-major offset for the given shape.
func flatOffset(shape, idx, shift []int) int {
	off := 0
	for i, n := range shape {
		x := idx[i]
		if shift != nil {
			x += shift[i]
		}
		off = off*n + x
	}

	return off
}
