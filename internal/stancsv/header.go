package stancsv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stanio-ml/stanio/internal/sample"
)

// headerField is one parsed header entry: a variable name and its one-based
// multi-index (empty for a scalar). Discarded once the schema is built.
type headerField struct {
	name  string
	index []int
}

// parseVariableName splits a header field on '.' into a variable name and a
// one-based multi-index. "kappa.1.3" parses to ("kappa", [1 3]); a bare name
// parses to an empty index.
func parseVariableName(field string) (string, []int, error) {
	parts := strings.Split(field, ".")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", nil, fmt.Errorf("%w in field %q", ErrEmptyName, field)
	}
	if len(parts) == 1 {
		return name, nil, nil
	}
	index := make([]int, len(parts)-1)
	for i, seg := range parts[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(seg))
		if err != nil || n < 1 {
			return "", nil, fmt.Errorf("%w: segment %q in field %q", ErrMalformedIndex, seg, field)
		}
		index[i] = n
	}
	return name, index, nil
}

// allOnes reports whether every index component is 1. A scalar's empty
// index is trivially all-ones.
func allOnes(index []int) bool {
	for _, i := range index {
		if i != 1 {
			return false
		}
	}
	return true
}

func indexEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// collapseRun collapses the run of fields sharing one name starting at
// start into that variable's shape. The run must begin at the all-ones
// index; its shape is taken from the last index in the run, and the run is
// verified against the regenerated column-major index sequence for that
// shape. Returns the name, the shape, and the position after the run.
func collapseRun(fields []headerField, start int) (string, sample.Shape, int, error) {
	name := fields[start].name
	if !allOnes(fields[start].index) {
		return "", nil, 0, fmt.Errorf("%w: %q at column %d has index %v",
			ErrNonContiguousStart, name, start+1, fields[start].index)
	}

	end := start + 1
	for end < len(fields) && fields[end].name == name {
		end++
	}

	shape := sample.Shape(fields[end-1].index)
	if err := shape.Validate(); err != nil {
		return "", nil, 0, fmt.Errorf("variable %q: %w", name, err)
	}

	expected := sample.ColumnMajorIndices(shape)
	if len(expected) != end-start {
		return "", nil, 0, fmt.Errorf("%w: %q spans %d columns, shape %v needs %d",
			ErrNonContiguousIndex, name, end-start, shape, len(expected))
	}
	for k, want := range expected {
		if !indexEqual(fields[start+k].index, want) {
			return "", nil, 0, fmt.Errorf("%w: %q at column %d has index %v, want %v",
				ErrNonContiguousIndex, name, start+k+1, fields[start+k].index, want)
		}
	}

	return name, shape, end, nil
}

// parseHeader parses one CSV header line into a ColumnSchema by repeatedly
// collapsing contiguous runs. A name reappearing in a non-adjacent run is
// rejected.
func parseHeader(line string) (*sample.ColumnSchema, error) {
	raw := strings.Split(line, ",")
	fields := make([]headerField, len(raw))
	for i, f := range raw {
		name, index, err := parseVariableName(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("header column %d: %w", i+1, err)
		}
		fields[i] = headerField{name: name, index: index}
	}

	seen := make(map[string]bool, len(fields))
	var entries []sample.SchemaEntry
	for pos := 0; pos < len(fields); {
		name, shape, next, err := collapseRun(fields, pos)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q at column %d", ErrDuplicateName, name, pos+1)
		}
		seen[name] = true
		entries = append(entries, sample.SchemaEntry{Name: name, Shape: shape})
		pos = next
	}

	return sample.NewSchema(entries)
}
