package sample

import "fmt"

// View is a non-owning, column-major reshaped reference into a row's
// sub-range. The first index varies fastest in the underlying data.
type View struct {
	data    []float64
	shape   Shape
	strides []int
}

// Shape returns the view's shape.
func (v View) Shape() Shape {
	return v.shape.Clone()
}

// Scalar returns the single element of a scalar view. For a non-scalar view
// it returns the first element in column-major order.
func (v View) Scalar() float64 {
	return v.data[0]
}

// At returns the element at the given zero-based multi-index.
func (v View) At(idx ...int) float64 {
	if len(idx) != len(v.shape) {
		panic(fmt.Sprintf("view index has %d dimensions, shape %v has %d", len(idx), v.shape, len(v.shape)))
	}
	pos := 0
	for d, i := range idx {
		if i < 0 || i >= v.shape[d] {
			panic(fmt.Sprintf("view index %d out of range for dimension %d of shape %v", i, d, v.shape))
		}
		pos += i * v.strides[d]
	}
	return v.data[pos]
}

// Data returns the underlying flat slice in column-major order, zero-copy.
func (v View) Data() []float64 {
	return v.data
}

// Record is one row of the column space exposed as named views, preserving
// schema order.
type Record struct {
	schema *ColumnSchema
	row    []float64
}

// Names returns the record's variable names in column order.
func (r Record) Names() []string {
	return r.schema.Names()
}

// View returns the shaped zero-copy view of one variable.
func (r Record) View(name string) (View, error) {
	layout, ok := r.schema.Layout(name)
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return layout.view(r.row), nil
}

// Value returns the scalar value of an unindexed variable.
func (r Record) Value(name string) (float64, error) {
	layout, ok := r.schema.Layout(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return r.row[layout.Offset()], nil
}

// Series is one variable viewed across every row of a matrix. The logical
// shape is (rows, *variable shape); a scalar variable behaves as a plain
// column.
type Series struct {
	matrix Matrix
	layout Layout
}

// Rows returns the number of draws in the series.
func (s Series) Rows() int {
	return s.matrix.Rows()
}

// Shape returns the per-draw shape of the variable.
func (s Series) Shape() Shape {
	return s.layout.Shape()
}

// Draw returns the zero-copy view of row i.
func (s Series) Draw(i int) View {
	return s.layout.view(s.matrix.Row(i))
}

// At returns the element at row i and the given zero-based multi-index.
func (s Series) At(i int, idx ...int) float64 {
	return s.Draw(i).At(idx...)
}

// Column returns the raw values of a scalar variable across all rows.
// It copies, since the matrix is row-major.
func (s Series) Column() []float64 {
	out := make([]float64, s.matrix.Rows())
	for i := range out {
		out[i] = s.matrix.At(i, s.layout.Offset())
	}
	return out
}
