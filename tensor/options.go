// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for the normalization routines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are constants.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package tensor

import "math"

// Numeric policy defaults (single source of truth).
const (
	// DefaultCleanTolerance is the absolute threshold below which Clean
	// flushes entries to exactly zero. Chosen to sit well above float64
	// round-off accumulated by QR-style elimination while staying far below
	// meaningful coefficients.
	DefaultCleanTolerance = 1e-10
)

// zeroRowPolicy selects what RowSwap does with all-zero rows, whose leading
// column is undefined.
type zeroRowPolicy int

const (
	// zeroRowsLast stably orders degenerate rows after every row with a
	// leading nonzero (the documented deterministic fallback).
	zeroRowsLast zeroRowPolicy = iota
	// zeroRowsRejected turns a degenerate row into ErrDegenerateRow.
	zeroRowsRejected
)

// Internal panic message (no magic strings).
const panicToleranceInvalid = "tensor: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Unexported fields prevent external mutation; entry points resolve a
// ...Option list via gatherOptions.
type Options struct {
	tol      float64       // >= 0; DefaultCleanTolerance
	zeroRows zeroRowPolicy // zeroRowsLast
}

// WithTolerance sets the absolute tolerance used by Clean.
//
// Inputs:
//   - tol: non-negative finite threshold; entries with |v| < tol become 0.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithZeroRowsLast makes RowSwap stably sort all-zero rows after every row
// with a leading nonzero entry. This is the default policy.
// Complexity: O(1).
func WithZeroRowsLast() Option {
	return func(o *Options) { o.zeroRows = zeroRowsLast }
}

// WithZeroRowsRejected makes RowSwap fail with ErrDegenerateRow on the first
// all-zero row. Use when a zero row can only mean an upstream bug.
// Complexity: O(1).
func WithZeroRowsRejected() Option {
	return func(o *Options) { o.zeroRows = zeroRowsRejected }
}

// gatherOptions applies user setters over the documented defaults
// (last-writer-wins). The canonical internal entry for every ...Option API.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:      DefaultCleanTolerance,
		zeroRows: zeroRowsLast,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
