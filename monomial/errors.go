// SPDX-License-Identifier: MIT
// Package monomial: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// monomial package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No routine panics on user-triggered error
// conditions.

package monomial

import "errors"

var (
	// ErrLengthMismatch is returned when two terms of different lengths are
	// compared, or a term collection mixes lengths. The grevlex order is only
	// defined over tuples of equal length; truncated comparison is never
	// attempted.
	ErrLengthMismatch = errors.New("monomial: terms have different lengths")

	// ErrInvalidDimension is returned when an enumeration dimension is < 1.
	ErrInvalidDimension = errors.New("monomial: dimension must be >= 1")

	// ErrInvalidDegree is returned when an enumeration degree bound is negative.
	ErrInvalidDegree = errors.New("monomial: degree must be >= 0")

	// ErrCountOverflow is returned by the counting helpers when the exact
	// cardinality does not fit in an int64.
	ErrCountOverflow = errors.New("monomial: count exceeds int64 range")
)
