// Package arrowio converts chains to Apache Arrow record batches and writes
// them to Parquet, one float64 field per flattened schema column.
//
// Column names are regenerated from the chain's schema in column-major
// order ("theta.1.2"), so a round trip through Arrow preserves the cmdstan
// header naming.
package arrowio

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/stanio-ml/stanio/internal/sample"
)

// ArrowSchema builds the Arrow schema for a chain: one non-nullable float64
// field per flattened column.
func ArrowSchema(schema *sample.ColumnSchema) *arrow.Schema {
	names := schema.ColumnNames()
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
	}
	return arrow.NewSchema(fields, nil)
}

// Record converts a chain's draws into an Arrow record batch. The caller
// owns the returned record and must Release it.
func Record(chain *sample.Chain, includeWarmup bool) arrow.Record {
	aschema := ArrowSchema(chain.Schema())
	m := chain.SampleMatrix(includeWarmup)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, aschema)
	defer builder.Release()

	for j := 0; j < m.Cols(); j++ {
		fb := builder.Field(j).(*array.Float64Builder)
		fb.Reserve(m.Rows())
		for i := 0; i < m.Rows(); i++ {
			fb.Append(m.At(i, j))
		}
	}
	return builder.NewRecord()
}

// WriteParquet writes a chain's post-warmup draws to w as Snappy-compressed
// Parquet.
func WriteParquet(chain *sample.Chain, w io.Writer) error {
	rec := Record(chain, false)
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	return writer.Close()
}
