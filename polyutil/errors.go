// SPDX-License-Identifier: MIT
// Package polyutil: sentinel error set.

package polyutil

import "errors"

var (
	// ErrEmptyList is returned when an operation needs at least one
	// polynomial but the collection is empty or nil.
	ErrEmptyList = errors.New("polyutil: polynomial list is empty")

	// ErrNilPoly is returned when a collection contains a nil polynomial.
	ErrNilPoly = errors.New("polyutil: nil polynomial in list")

	// ErrNilCoeff is returned when a polynomial reports a nil coefficient
	// tensor, which makes its dimension undefined.
	ErrNilCoeff = errors.New("polyutil: polynomial has nil coefficient tensor")

	// ErrEvaluate wraps evaluation failures surfaced by a Poly
	// implementation during CheckZeros.
	ErrEvaluate = errors.New("polyutil: polynomial evaluation failed")
)
