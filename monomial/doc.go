// Package monomial provides exponent tuples (terms), the graded reverse
// lexicographic (grevlex) total order over them, and exhaustive enumeration
// of all monomials of a fixed dimension up to (or exactly at) a total degree.
//
// The monomial package provides:
//
//   - Term, a fixed-length tuple of non-negative exponents, e.g. (2,0,1) = x²z.
//   - Less/Compare/Sort under grevlex: graded first (total degree), then a
//     reverse-lexicographic tie-break scanning entries from last to first.
//   - UpTo/Exact enumeration in a deterministic recursive construction order
//     (NOT grevlex order; use Sort when grevlex column order is required).
//   - CountUpTo/CountExact, the exact stars-and-bars cardinalities, useful to
//     pre-size Macaulay matrix buffers before enumeration.
//   - Variables, the dim unit tuples x_1..x_dim in position order.
//
// Comparing terms of different lengths is a caller error and fails fast with
// ErrLengthMismatch; no zero-padding semantics are ever guessed.
//
// See the examples in this package for usage patterns.
package monomial
