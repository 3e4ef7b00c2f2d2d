// Copyright 2025 Stanio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arrowio provides the public API for Apache Arrow and Parquet
// interop: one float64 field per flattened schema column, named the way the
// cmdstan header names them.
package arrowio

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/stanio-ml/stanio/internal/arrowio"
	"github.com/stanio-ml/stanio/internal/sample"
)

// ArrowSchema builds the Arrow schema for a chain's columns.
func ArrowSchema(schema *sample.ColumnSchema) *arrow.Schema {
	return arrowio.ArrowSchema(schema)
}

// Record converts a chain's draws into an Arrow record batch. The caller
// owns the returned record and must Release it.
func Record(chain *sample.Chain, includeWarmup bool) arrow.Record {
	return arrowio.Record(chain, includeWarmup)
}

// WriteParquet writes a chain's post-warmup draws to w as Snappy-compressed
// Parquet.
func WriteParquet(chain *sample.Chain, w io.Writer) error {
	return arrowio.WriteParquet(chain, w)
}
