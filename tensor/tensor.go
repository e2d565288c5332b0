// SPDX-License-Identifier: MIT
// Package tensor: the dense N-D array type.
// Tensor is a concrete row-major container storing elements in a flat slice
// for cache friendliness; the shape vector carries the per-axis lengths.

package tensor

import (
	"fmt"
	"strings"
)

// matrixRank is the rank required by the rank-2-only routines.
const matrixRank = 2

// Tensor is a dense N-dimensional array of float64 values in row-major
// order: the LAST axis varies fastest. shape holds the per-axis lengths and
// data holds exactly the product of those lengths.
type Tensor struct {
	shape []int     // per-axis lengths, all >= 1
	data  []float64 // flat backing storage, len == product(shape)
}

// New creates a zero-filled tensor with the given shape.
//
// Errors: ErrBadShape when no axes are given or any axis length is < 1.
// Complexity: O(product(shape)) time and memory.
func New(shape ...int) (*Tensor, error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, fmt.Errorf("New%v: %w", shape, err)
	}

	return &Tensor{
		shape: append([]int(nil), shape...), // private copy; callers may reuse theirs
		data:  make([]float64, size),
	}, nil
}

// FromRows builds a rank-2 tensor from a rectangular [][]float64.
//
// Errors: ErrBadShape when rows is empty, the first row is empty, or any row
// length differs from the first (ragged input).
// Complexity: O(r·c).
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}
	cols := len(rows[0])

	t, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w",
				i, len(row), cols, ErrBadShape)
		}
		copy(t.data[i*cols:(i+1)*cols], row)
	}

	return t, nil
}

// Shape returns a copy of the per-axis lengths. The copy keeps the tensor's
// invariants safe from caller mutation. Complexity: O(rank).
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of axes. Complexity: O(1).
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements. Complexity: O(rank).
func (t *Tensor) Size() int {
	size := 1
	for _, n := range t.shape {
		size *= n
	}

	return size
}

// Rows returns the first-axis length of a rank-2 tensor.
// Errors: ErrNotMatrix for any other rank.
func (t *Tensor) Rows() (int, error) {
	if t.Rank() != matrixRank {
		return 0, fmt.Errorf("Rows: rank %d: %w", t.Rank(), ErrNotMatrix)
	}

	return t.shape[0], nil
}

// Cols returns the second-axis length of a rank-2 tensor.
// Errors: ErrNotMatrix for any other rank.
func (t *Tensor) Cols() (int, error) {
	if t.Rank() != matrixRank {
		return 0, fmt.Errorf("Cols: rank %d: %w", t.Rank(), ErrNotMatrix)
	}

	return t.shape[1], nil
}

// At retrieves the element at the given multi-index.
//
// Errors:
//   - ErrRankMismatch when len(idx) != Rank().
//   - ErrOutOfRange when any index falls outside its axis.
//
// Complexity: O(rank).
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("At%v: %w", idx, err)
	}

	return t.data[off], nil
}

// Set assigns v at the given multi-index. Same failure modes as At.
// Complexity: O(rank).
func (t *Tensor) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return fmt.Errorf("Set%v: %w", idx, err)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep, fully independent copy.
// Complexity: O(size) time and memory.
func (t *Tensor) Clone() *Tensor {
	dup := &Tensor{
		shape: append([]int(nil), t.shape...),
		data:  make([]float64, len(t.data)),
	}
	copy(dup.data, t.data)

	return dup
}

// Equal reports whether the other tensor has the identical shape and
// bit-identical entries. A nil other is never equal. Complexity: O(size).
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil || len(t.shape) != len(other.shape) {
		return false
	}
	for i, n := range t.shape {
		if other.shape[i] != n {
			return false
		}
	}
	for i, v := range t.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Reshape changes the shape IN PLACE without moving data. The total element
// count must be preserved. The mutation is destructive: views of the
// previous shape stop being meaningful, which is the contract the
// dimension-alignment path relies on.
//
// Errors: ErrBadShape when the new shape is invalid or its product differs
// from Size(). Complexity: O(rank).
func (t *Tensor) Reshape(shape ...int) error {
	size, err := checkShape(shape)
	if err != nil {
		return fmt.Errorf("Reshape%v: %w", shape, err)
	}
	if size != t.Size() {
		return fmt.Errorf("Reshape%v: element count %d != %d: %w",
			shape, size, t.Size(), ErrBadShape)
	}
	t.shape = append([]int(nil), shape...)

	return nil
}

// PrependAxes inserts n leading singleton axes IN PLACE: a shape (3,4)
// tensor becomes (1,...,1,3,4). Row-major layout means the flat data is
// untouched. n == 0 is a no-op.
//
// Errors: ErrBadShape when n < 0.
// Complexity: O(rank + n).
func (t *Tensor) PrependAxes(n int) error {
	if n < 0 {
		return fmt.Errorf("PrependAxes(%d): %w", n, ErrBadShape)
	}
	if n == 0 {
		return nil
	}

	shape := make([]int, n+len(t.shape))
	for i := 0; i < n; i++ {
		shape[i] = 1
	}
	copy(shape[n:], t.shape)
	t.shape = shape

	return nil
}

// Row returns a copy of row i of a rank-2 tensor.
// Errors: ErrNotMatrix, ErrOutOfRange.
// Complexity: O(cols).
func (t *Tensor) Row(i int) ([]float64, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= rows {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	cols := t.shape[1]
	out := make([]float64, cols)
	copy(out, t.data[i*cols:(i+1)*cols])

	return out, nil
}

// ToRows exports a rank-2 tensor as a fresh [][]float64, the shape the JSON
// surface of the CLI works with.
// Errors: ErrNotMatrix. Complexity: O(r·c).
func (t *Tensor) ToRows() ([][]float64, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i], _ = t.Row(i) // bounds proven by the loop
	}

	return out, nil
}

// String renders small tensors for diagnostics: the shape header followed by
// rank-2 rows, or the flat data for other ranks. Complexity: O(size).
func (t *Tensor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tensor%v", t.shape)
	if t.Rank() == matrixRank {
		b.WriteByte('\n')
		cols := t.shape[1]
		for i := 0; i < t.shape[0]; i++ {
			b.WriteByte('[')
			for j := 0; j < cols; j++ {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%g", t.data[i*cols+j])
			}
			b.WriteString("]\n")
		}

		return b.String()
	}
	fmt.Fprintf(&b, " %v", t.data)

	return b.String()
}

// offset converts a multi-index to the flat row-major offset, validating
// rank and bounds. Complexity: O(rank).
func (t *Tensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("got %d indices for rank %d: %w", len(idx), len(t.shape), ErrRankMismatch)
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= t.shape[i] {
			return 0, fmt.Errorf("axis %d: %w", i, ErrOutOfRange)
		}
		off = off*t.shape[i] + x
	}

	return off, nil
}

// checkShape validates a shape vector and returns its element count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for i, n := range shape {
		if n < 1 {
			return 0, fmt.Errorf("axis %d length %d: %w", i, n, ErrBadShape)
		}
		size *= n
	}

	return size, nil
}
