package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// SchemaEntry names one variable and its shape, in column order.
type SchemaEntry struct {
	Name  string
	Shape Shape
}

// ColumnSchema is an ordered, named collection of Layouts covering a
// contiguous column range with no gaps or overlaps. It is the authoritative
// description of what each column means. Immutable after construction.
type ColumnSchema struct {
	names   []string
	layouts map[string]Layout
	length  int
}

// NewSchema builds a schema by walking the entries in order, placing each
// variable at the running offset and advancing by its element count.
func NewSchema(entries []SchemaEntry) (*ColumnSchema, error) {
	s := &ColumnSchema{
		names:   make([]string, 0, len(entries)),
		layouts: make(map[string]Layout, len(entries)),
	}
	offset := 0
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty variable name", ErrInvalidSchema)
		}
		if _, ok := s.layouts[e.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrInvalidSchema, e.Name)
		}
		layout, err := newLayout(offset, e.Shape)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", e.Name, err)
		}
		s.names = append(s.names, e.Name)
		s.layouts[e.Name] = layout
		offset += layout.Length()
	}
	s.length = offset
	return s, nil
}

// Len returns the total number of columns covered by the schema.
func (s *ColumnSchema) Len() int {
	return s.length
}

// Names returns the variable names in column order.
func (s *ColumnSchema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Layout returns the layout for name.
func (s *ColumnSchema) Layout(name string) (Layout, bool) {
	l, ok := s.layouts[name]
	return l, ok
}

// Equal reports structural equality: same names in the same order with the
// same layouts. Schemas from independently parsed files compare equal when
// their headers agree.
func (s *ColumnSchema) Equal(other *ColumnSchema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || len(s.names) != len(other.names) {
		return false
	}
	for i, name := range s.names {
		if other.names[i] != name {
			return false
		}
		if !s.layouts[name].equal(other.layouts[name]) {
			return false
		}
	}
	return true
}

// ColumnNames regenerates the flattened per-column names in schema order:
// a scalar contributes its bare name, an indexed variable contributes
// "name.i1.i2..." with one-based indices in column-major order.
func (s *ColumnSchema) ColumnNames() []string {
	out := make([]string, 0, s.length)
	for _, name := range s.names {
		layout := s.layouts[name]
		if layout.IsScalar() {
			out = append(out, name)
			continue
		}
		for _, idx := range ColumnMajorIndices(layout.shape) {
			var b strings.Builder
			b.WriteString(name)
			for _, i := range idx {
				b.WriteByte('.')
				b.WriteString(strconv.Itoa(i))
			}
			out = append(out, b.String())
		}
	}
	return out
}

// Record exposes one row of the flat column space as named, shaped,
// zero-copy views. The row length must equal Len.
func (s *ColumnSchema) Record(row []float64) (Record, error) {
	if len(row) != s.length {
		return Record{}, fmt.Errorf("%w: row has %d values, schema covers %d columns",
			ErrShapeMismatch, len(row), s.length)
	}
	return Record{schema: s, row: row}, nil
}

// Series exposes one variable across every row of m as a zero-copy view
// with shape (rows, *variable shape).
func (s *ColumnSchema) Series(m Matrix, name string) (Series, error) {
	if m.Cols() != s.length {
		return Series{}, fmt.Errorf("%w: matrix has %d columns, schema covers %d",
			ErrShapeMismatch, m.Cols(), s.length)
	}
	layout, ok := s.layouts[name]
	if !ok {
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return Series{matrix: m, layout: layout}, nil
}
