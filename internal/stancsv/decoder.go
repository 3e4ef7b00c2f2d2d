package stancsv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stanio-ml/stanio/internal/sample"
)

// maxLineSize bounds a single CSV line. Wide models can emit rows with
// hundreds of thousands of columns.
const maxLineSize = 16 * 1024 * 1024

// isComment reports whether the line's first non-blank character is '#'.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// isBlank reports whether the line holds only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// decoder streams one cmdstan CSV input: a header line followed by
// delimiter-separated data rows, with comment lines allowed anywhere.
type decoder struct {
	scanner *bufio.Scanner
	lineNo  int
}

func newDecoder(r io.Reader) *decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &decoder{scanner: scanner}
}

// next returns the next non-comment, non-blank line, or ok=false at end of
// input.
func (d *decoder) next() (string, bool, error) {
	for d.scanner.Scan() {
		d.lineNo++
		line := d.scanner.Text()
		if isComment(line) || isBlank(line) {
			continue
		}
		return line, true, nil
	}
	if err := d.scanner.Err(); err != nil {
		return "", false, fmt.Errorf("line %d: %w", d.lineNo, err)
	}
	return "", false, nil
}

// header reads up to the first non-comment line and parses it into a
// schema.
func (d *decoder) header() (*sample.ColumnSchema, error) {
	line, ok, err := d.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoHeader
	}
	schema, err := parseHeader(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", d.lineNo, err)
	}
	return schema, nil
}

// decodeRow parses one data line into exactly want float64 fields appended
// to dst. Short rows and extra trailing fields are both rejected.
func (d *decoder) decodeRow(line string, want int, dst []float64) ([]float64, error) {
	fields := strings.Split(line, ",")
	if len(fields) < want {
		return nil, fmt.Errorf("line %d: %w: got %d, header declares %d",
			d.lineNo, ErrTooFewFields, len(fields), want)
	}
	if len(fields) > want {
		return nil, fmt.Errorf("line %d: %w: got %d, header declares %d",
			d.lineNo, ErrTooManyFields, len(fields), want)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d, field %d: %w: %q", d.lineNo, i+1, ErrBadField, f)
		}
		dst = append(dst, v)
	}
	return dst, nil
}

// decode reads the whole stream into a schema and a row-major sample
// matrix. One row's fields are contiguous in the growing buffer before the
// next row starts, so the final buffer reshapes directly to (rows, cols).
func (d *decoder) decode() (*sample.ColumnSchema, sample.Matrix, error) {
	schema, err := d.header()
	if err != nil {
		return nil, sample.Matrix{}, err
	}
	cols := schema.Len()

	var buf []float64
	rows := 0
	for {
		line, ok, err := d.next()
		if err != nil {
			return nil, sample.Matrix{}, err
		}
		if !ok {
			break
		}
		buf, err = d.decodeRow(line, cols, buf)
		if err != nil {
			return nil, sample.Matrix{}, err
		}
		rows++
	}

	m, err := sample.NewMatrix(buf, rows, cols)
	if err != nil {
		return nil, sample.Matrix{}, err
	}
	return schema, m, nil
}
