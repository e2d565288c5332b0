// Package macaulay bundles the monomial-ordering and matrix-preparation
// primitives used by Macaulay/TVB-style multivariate root solvers, from
// grevlex exponent tuples to triangular-leaning row normalization.
//
// 🚀 What is macaulay?
//
//	A small, deterministic library that brings together:
//		• Monomials: exponent tuples, grevlex comparison & exhaustive enumeration
//		• Tensors: dense N-D float64 arrays with corner slicing & shape matching
//		• Normalization: zero-cleaning and row reordering toward triangular form
//		• Poly glue: degree sorting, dimension alignment & root verification
//
// ✨ Why choose macaulay?
//
//   - Predictable – fixed loop orders, stable sorts, no hidden randomness
//   - Fail-fast – sentinel errors for every caller mistake, matched via errors.Is
//   - Pure Go – no cgo; float64 throughout with explicit absolute tolerances
//   - Composable – the solver/elimination stage plugs in above this layer
//
// Everything is organized under four subpackages plus a CLI:
//
//	monomial/     — Term (exponent tuple), grevlex order, UpTo/Exact enumeration
//	tensor/       — dense N-D arrays, SliceTop/SliceBottom, MatchSize, Clean, RowSwap
//	polyutil/     — Poly boundary: MatchDimensions, SortByDegree, CheckZeros
//	cmd/macaulay/ — enumerate monomials and normalize matrices from the shell
//
// Quick sketch of the data flow:
//
//	monomial.UpTo ──► column basis ──► caller-built Macaulay matrix
//	                                        │
//	            tensor.Clean ◄── tensor.RowSwap ◄── tensor.MatchSize
//	                                        │
//	                              elimination stage (external)
//
//	go get github.com/polykit/macaulay
package macaulay
