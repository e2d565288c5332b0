// SPDX-License-Identifier: MIT

// Package polyutil: the external polynomial boundary.
// This file contains ONLY the Poly interface and its derived accessors; the
// list utilities live in match.go and sort.go, verification in check.go.
package polyutil

import "github.com/polykit/macaulay/tensor"

// Poly is the minimal surface an externally-owned polynomial exposes to this
// layer. Implementations are provided by the solver; this package never
// constructs polynomials.
//
// The coefficient tensor is the polynomial's dense representation, one axis
// per variable; the number of variables is its rank. Dimension is therefore
// NOT part of the interface: derive it from Coeff().Rank() (or the Dim
// helper) so that in-place dimension alignment propagates automatically.
type Poly interface {
	// Degree returns the polynomial's declared total degree (>= 0).
	Degree() int

	// Coeff returns the dense coefficient tensor. The tensor is owned by
	// the polynomial but MatchDimensions may reshape it in place; callers
	// needing the pre-reshape layout must Clone first.
	Coeff() *tensor.Tensor

	// EvaluateAt evaluates the polynomial at the given point. The point's
	// length must equal the polynomial's dimension; implementations report
	// their own errors for malformed points.
	EvaluateAt(point []float64) (float64, error)
}

// Dim returns the polynomial's number of variables, i.e. the rank of its
// coefficient tensor, or 0 when the polynomial or its tensor is nil.
// Complexity: O(1).
func Dim(p Poly) int {
	if p == nil || p.Coeff() == nil {
		return 0
	}

	return p.Coeff().Rank()
}
