package sample

import (
	"errors"
	"testing"
)

func testSchema(t *testing.T) *ColumnSchema {
	t.Helper()
	schema, err := NewSchema([]SchemaEntry{
		{Name: "a"},
		{Name: "b", Shape: Shape{2}},
		{Name: "c", Shape: Shape{2, 2}},
	})
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	return schema
}

func TestSchemaLayoutPlacement(t *testing.T) {
	schema := testSchema(t)

	if schema.Len() != 7 {
		t.Errorf("Len() = %d, want 7", schema.Len())
	}

	tests := []struct {
		name   string
		offset int
		length int
		shape  Shape
	}{
		{"a", 0, 1, Shape{}},
		{"b", 1, 2, Shape{2}},
		{"c", 3, 4, Shape{2, 2}},
	}

	// Each layout starts where the previous one ends: no gaps, no overlaps.
	for _, tt := range tests {
		layout, ok := schema.Layout(tt.name)
		if !ok {
			t.Fatalf("Layout(%q) missing", tt.name)
		}
		if layout.Offset() != tt.offset || layout.Length() != tt.length {
			t.Errorf("%q: offset/length = %d/%d, want %d/%d",
				tt.name, layout.Offset(), layout.Length(), tt.offset, tt.length)
		}
		if !layout.Shape().Equal(tt.shape) {
			t.Errorf("%q: shape = %v, want %v", tt.name, layout.Shape(), tt.shape)
		}
	}
}

func TestSchemaRejectsDuplicates(t *testing.T) {
	_, err := NewSchema([]SchemaEntry{{Name: "x"}, {Name: "x", Shape: Shape{2}}})
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("duplicate name: err = %v, want ErrInvalidSchema", err)
	}
}

func TestSchemaRejectsBadShape(t *testing.T) {
	_, err := NewSchema([]SchemaEntry{{Name: "x", Shape: Shape{-2}}})
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("negative dimension: err = %v, want ErrInvalidShape", err)
	}
}

func TestSchemaEqual(t *testing.T) {
	a := testSchema(t)
	b := testSchema(t)
	if !a.Equal(b) {
		t.Error("structurally equal schemas reported unequal")
	}

	c, err := NewSchema([]SchemaEntry{
		{Name: "a"},
		{Name: "b", Shape: Shape{3}},
		{Name: "c", Shape: Shape{2, 2}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("schemas with different shapes reported equal")
	}
}

func TestSchemaColumnNames(t *testing.T) {
	schema := testSchema(t)
	got := schema.ColumnNames()
	want := []string{"a", "b.1", "b.2", "c.1.1", "c.2.1", "c.1.2", "c.2.2"}
	if len(got) != len(want) {
		t.Fatalf("ColumnNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecordViews(t *testing.T) {
	schema := testSchema(t)
	row := []float64{0, 1, 2, 3, 4, 5, 6}

	rec, err := schema.Record(row)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if v, err := rec.Value("a"); err != nil || v != 0 {
		t.Errorf("Value(a) = %v, %v, want 0", v, err)
	}

	b, err := rec.View("b")
	if err != nil {
		t.Fatal(err)
	}
	if b.At(0) != 1 || b.At(1) != 2 {
		t.Errorf("b = [%v %v], want [1 2]", b.At(0), b.At(1))
	}

	// c holds columns 3..6 in column-major order: c[i][j] = row[3 + i + 2*j].
	c, err := rec.View("c")
	if err != nil {
		t.Fatal(err)
	}
	if c.At(0, 0) != 3 || c.At(1, 0) != 4 || c.At(0, 1) != 5 || c.At(1, 1) != 6 {
		t.Error("c view does not follow column-major element order")
	}

	if _, err := rec.View("nope"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("View(nope): err = %v, want ErrUnknownVariable", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	schema := testSchema(t)
	row := []float64{10, 11, 12, 13, 14, 15, 16}

	rec, err := schema.Record(row)
	if err != nil {
		t.Fatal(err)
	}

	// Reassembling every view's data in schema order must reproduce the row.
	var flat []float64
	for _, name := range rec.Names() {
		v, err := rec.View(name)
		if err != nil {
			t.Fatal(err)
		}
		flat = append(flat, v.Data()...)
	}
	if len(flat) != len(row) {
		t.Fatalf("round trip length = %d, want %d", len(flat), len(row))
	}
	for i := range row {
		if flat[i] != row[i] {
			t.Errorf("round trip[%d] = %v, want %v", i, flat[i], row[i])
		}
	}
}

func TestRecordShapeMismatch(t *testing.T) {
	schema := testSchema(t)
	_, err := schema.Record([]float64{1, 2, 3})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short row: err = %v, want ErrShapeMismatch", err)
	}
}

func TestViewZeroCopy(t *testing.T) {
	schema := testSchema(t)
	row := []float64{0, 1, 2, 3, 4, 5, 6}
	rec, err := schema.Record(row)
	if err != nil {
		t.Fatal(err)
	}

	b, err := rec.View("b")
	if err != nil {
		t.Fatal(err)
	}
	row[1] = 42
	if b.At(0) != 42 {
		t.Error("view should reference the row buffer, not copy it")
	}
}

func TestSeries(t *testing.T) {
	schema := testSchema(t)
	data := []float64{
		0, 1, 2, 3, 4, 5, 6,
		10, 11, 12, 13, 14, 15, 16,
	}
	m, err := NewMatrix(data, 2, 7)
	if err != nil {
		t.Fatal(err)
	}

	series, err := schema.Series(m, "c")
	if err != nil {
		t.Fatal(err)
	}
	if series.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", series.Rows())
	}
	if series.At(1, 1, 0) != 14 {
		t.Errorf("At(1,1,0) = %v, want 14", series.At(1, 1, 0))
	}

	a, err := schema.Series(m, "a")
	if err != nil {
		t.Fatal(err)
	}
	col := a.Column()
	if len(col) != 2 || col[0] != 0 || col[1] != 10 {
		t.Errorf("Column() = %v, want [0 10]", col)
	}
}
