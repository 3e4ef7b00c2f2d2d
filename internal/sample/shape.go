package sample

import "fmt"

// Shape represents the dimensions of one variable.
// The first dimension varies fastest (column-major element order).
// An empty Shape denotes a scalar.
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
// A zero dimension is rejected here because it would force a zero-length
// layout, which the schema invariants forbid.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates column-major strides for the shape:
// stride[0] = 1, stride[i] = stride[i-1] * s[i-1].
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// ColumnMajorIndices enumerates every one-based multi-index of the shape in
// column-major order (first index varies fastest). A scalar shape yields a
// single empty index.
func ColumnMajorIndices(shape Shape) [][]int {
	total := shape.NumElements()
	out := make([][]int, 0, total)
	idx := make([]int, len(shape))
	for i := range idx {
		idx[i] = 1
	}
	for n := 0; n < total; n++ {
		cur := make([]int, len(idx))
		copy(cur, idx)
		out = append(out, cur)
		for d := 0; d < len(idx); d++ {
			idx[d]++
			if idx[d] <= shape[d] {
				break
			}
			idx[d] = 1
		}
	}
	return out
}

// String formats the shape as "(d1,d2,...)"; "()" for a scalar.
func (s Shape) String() string {
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", dim)
	}
	return out + ")"
}
