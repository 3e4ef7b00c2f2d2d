package sample

import "fmt"

// Layout describes where one variable's values live within a row of columns
// and what N-dimensional shape they represent. Layouts are created by schema
// construction and are immutable.
type Layout struct {
	offset int
	length int
	shape  Shape
}

// newLayout validates the layout invariants at construction time so that
// view operations never have to.
func newLayout(offset int, shape Shape) (Layout, error) {
	if offset < 0 {
		return Layout{}, fmt.Errorf("%w: negative offset %d", ErrInvalidSchema, offset)
	}
	if err := shape.Validate(); err != nil {
		return Layout{}, err
	}
	length := shape.NumElements()
	if length <= 0 {
		return Layout{}, fmt.Errorf("%w: layout length %d (must be > 0)", ErrInvalidSchema, length)
	}
	return Layout{offset: offset, length: length, shape: shape.Clone()}, nil
}

// Offset returns the zero-based start column.
func (l Layout) Offset() int {
	return l.offset
}

// Length returns the number of columns occupied.
func (l Layout) Length() int {
	return l.length
}

// Shape returns the variable's shape. An empty shape denotes a scalar.
func (l Layout) Shape() Shape {
	return l.shape.Clone()
}

// IsScalar reports whether the layout describes a single unindexed value.
func (l Layout) IsScalar() bool {
	return len(l.shape) == 0
}

// equal reports structural equality.
func (l Layout) equal(other Layout) bool {
	return l.offset == other.offset && l.length == other.length && l.shape.Equal(other.shape)
}

// view produces a zero-copy view of the layout's sub-range of one row.
// The row's length is validated by the schema before dispatch.
func (l Layout) view(row []float64) View {
	return View{
		data:    row[l.offset : l.offset+l.length],
		shape:   l.shape,
		strides: l.shape.ComputeStrides(),
	}
}
