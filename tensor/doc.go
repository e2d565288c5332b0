// Package tensor provides dense N-dimensional float64 arrays and the
// shape/row normalization routines a Macaulay-style solver applies before
// elimination.
//
// The tensor package provides:
//
//   - Tensor, a row-major dense N-D array with bounds-checked indexing,
//     in-place reshape (leading singleton axes) and deep cloning.
//   - SliceTop/SliceBottom corner slices and Embed, for placing a smaller
//     array into the corner of a larger zero-initialized buffer.
//   - MatchSize, padding two same-rank tensors to their element-wise maximum
//     shape without touching the originals.
//   - Clean, the in-place absolute-tolerance zero-cleaner that stabilizes
//     comparisons before and after elimination.
//   - RowSwap, the stable row reordering toward upper-triangular form keyed
//     by each row's leading nonzero column.
//   - Indexed, a rank-2 tensor paired with its column-to-monomial mapping,
//     so the column convention travels with the matrix instead of living in
//     the caller's head.
//
// All routines are single-threaded, deterministic and fail fast with
// sentinel errors; the only in-place mutations are Clean and Reshape, both
// documented as such.
package tensor
