// Package polyutil is the thin glue between this library and the solver's
// externally-owned polynomial objects.
//
// The polyutil package provides:
//
//   - Poly, the minimal interface a polynomial must expose: its declared
//     degree, its dense coefficient tensor, and pointwise evaluation. The
//     dimension is always derived from the coefficient tensor's rank, so an
//     in-place reshape is immediately visible to every consumer.
//   - MatchDimensions, which aligns a mixed-dimension collection by
//     destructively reshaping lower-dimension coefficient tensors with
//     leading singleton axes.
//   - SortByDegree, a stable degree sort into a fresh slice.
//   - CheckZeros, the root-verification diagnostic: it evaluates each
//     candidate root against every polynomial under an absolute tolerance
//     and returns a structured ZeroReport instead of printing; whether and
//     how to surface the counts is the caller's decision.
package polyutil
