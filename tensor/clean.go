// SPDX-License-Identifier: MIT
// Package tensor: absolute-tolerance zero-cleaning.

package tensor

import (
	"fmt"
	"math"
)

// Clean flushes every entry with |v| strictly below the tolerance to exactly
// zero, IN PLACE, and returns the same tensor. The mutation is observable
// and intentional: the cleaner runs between elimination steps where the
// buffer is reused, not copied.
//
// Behavior highlights:
//   - Strict inequality: entries with |v| == tol survive unchanged.
//   - Entries at or above the tolerance are never modified, so Clean is
//     idempotent.
//   - NaN entries are left alone (|NaN| < tol is false), matching the
//     fail-where-it-hurts policy of the elimination stage.
//
// Inputs:
//   - t: tensor to clean in place.
//   - opts: WithTolerance(tol); DefaultCleanTolerance when omitted.
//
// Errors:
//   - ErrNilTensor. An invalid tolerance panics in WithTolerance itself
//     (programmer error, caught at option-construction time).
//
// Complexity: O(size) time, O(1) space.
func Clean(t *Tensor, opts ...Option) (*Tensor, error) {
	if t == nil {
		return nil, fmt.Errorf("Clean: %w", ErrNilTensor)
	}
	o := gatherOptions(opts...)

	for i, v := range t.data {
		if math.Abs(v) < o.tol {
			t.data[i] = 0 // exact zero, including for negative near-zeros and -0
		}
	}

	return t, nil
}
