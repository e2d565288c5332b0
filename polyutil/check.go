// SPDX-License-Identifier: MIT
// Package polyutil: root verification.
//
// Purpose:
//   - Re-check candidate roots produced by the elimination stage against the
//     ORIGINAL polynomials, under an absolute tolerance. This is a
//     diagnostic, not a correctness gate: the report says how many
//     candidates hold up and how many failures look like out-of-domain
//     escapees, and the caller decides what to print.

package polyutil

import (
	"fmt"
	"math"
)

// Verification defaults (single source of truth).
const (
	// DefaultCheckTolerance is the absolute residual bound under which a
	// polynomial is considered to vanish at a candidate point.
	DefaultCheckTolerance = 1e-3

	// domainBound is the coordinate magnitude beyond which a failing
	// candidate is counted as out-of-range. The TVB family solves on
	// [-1,1]^dim, so escapees usually indicate a conditioning problem
	// rather than a spurious root.
	domainBound = 1.0
)

// panic message for the option constructor (no magic strings).
const panicCheckToleranceInvalid = "polyutil: WithCheckTolerance: tol must be finite, non-negative"

// CheckOption configures CheckZeros.
type CheckOption func(*checkOptions)

type checkOptions struct {
	tol float64 // >= 0; DefaultCheckTolerance
}

// WithCheckTolerance overrides the absolute residual tolerance.
// Panics on NaN, ±Inf or negative values (programmer error).
// Complexity: O(1).
func WithCheckTolerance(tol float64) CheckOption {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicCheckToleranceInvalid)
	}

	return func(o *checkOptions) { o.tol = tol }
}

// ZeroReport is the structured result of CheckZeros.
type ZeroReport struct {
	// Total is the number of candidate roots examined.
	Total int
	// Correct counts candidates at which EVERY polynomial's residual is
	// within the tolerance.
	Correct int
	// OutOfRange counts FAILING candidates with any coordinate of
	// magnitude > 1: escapees from the solve domain, reported separately
	// because they usually signal conditioning issues, not genuine roots.
	OutOfRange int
}

// String renders the report the way the diagnostic is usually logged.
func (r *ZeroReport) String() string {
	return fmt.Sprintf("%d zeros are correct out of %d (%d out of range)",
		r.Correct, r.Total, r.OutOfRange)
}

// CheckZeros evaluates every polynomial at every candidate root and returns
// the verification counts.
//
// Implementation:
//   - Stage 1: validate that at least one polynomial is supplied and none
//     is nil. A nil/empty candidate list is fine: the report is all zeros.
//   - Stage 2: for each candidate, scan polynomials in order and stop at the
//     first residual exceeding the tolerance (fail-fast per candidate, the
//     scan order is fixed so the counts are deterministic).
//
// Inputs:
//   - zeros: candidate roots, one coordinate slice per candidate.
//   - polys: the original system the candidates claim to solve.
//   - opts:  WithCheckTolerance; DefaultCheckTolerance when omitted.
//
// Returns:
//   - *ZeroReport: Total/Correct/OutOfRange counts.
//
// Errors:
//   - ErrEmptyList, ErrNilPoly, and ErrEvaluate wrapping the first
//     evaluation failure (malformed point lengths surface here).
//
// Complexity: O(|zeros| · |polys| · eval).
func CheckZeros(zeros [][]float64, polys []Poly, opts ...CheckOption) (*ZeroReport, error) {
	if len(polys) == 0 {
		return nil, fmt.Errorf("CheckZeros: %w", ErrEmptyList)
	}
	for i, p := range polys {
		if p == nil {
			return nil, fmt.Errorf("CheckZeros: index %d: %w", i, ErrNilPoly)
		}
	}

	o := checkOptions{tol: DefaultCheckTolerance}
	for _, set := range opts {
		set(&o)
	}

	report := &ZeroReport{Total: len(zeros)}
	for zi, zero := range zeros {
		good := true
		for pi, p := range polys {
			v, err := p.EvaluateAt(zero)
			if err != nil {
				return nil, fmt.Errorf("CheckZeros: zero %d, poly %d: %v: %w",
					zi, pi, err, ErrEvaluate)
			}
			if math.Abs(v) > o.tol {
				good = false
				if anyCoordinateEscapes(zero) {
					report.OutOfRange++
				}
				break // first failing polynomial settles this candidate
			}
		}
		if good {
			report.Correct++
		}
	}

	return report, nil
}

// anyCoordinateEscapes reports whether any coordinate leaves [-1, 1].
func anyCoordinateEscapes(zero []float64) bool {
	for _, x := range zero {
		if math.Abs(x) > domainBound {
			return true
		}
	}

	return false
}
