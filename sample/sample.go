// Copyright 2025 Stanio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sample provides the public API for posterior-sample layout and
// chain access.
//
// The package exposes the core types of the stanio data model:
//   - Shape, Layout, ColumnSchema: the column layout engine
//   - Matrix: a row-major draws × columns buffer
//   - Chain: one sampler run with warmup/thinning/ordering metadata
//   - Record, View, Series: named, shaped, zero-copy read access
//
// Example:
//
//	schema, err := sample.NewSchema([]sample.SchemaEntry{
//	    {Name: "lp__"},
//	    {Name: "theta", Shape: sample.Shape{8}},
//	})
//	chain, err := sample.NewChain(schema, m, sample.ChainConfig{Ordered: true})
//	for rec := range chain.Posterior() {
//	    theta, _ := rec.View("theta")
//	    _ = theta.At(3)
//	}
package sample

import (
	"github.com/stanio-ml/stanio/internal/sample"
)

// Type aliases for public API

// Shape represents the dimensions of one variable; the first dimension
// varies fastest. An empty Shape denotes a scalar.
type Shape = sample.Shape

// Layout describes one variable's column range and shape.
type Layout = sample.Layout

// SchemaEntry names one variable and its shape, in column order.
type SchemaEntry = sample.SchemaEntry

// ColumnSchema is the ordered, named, gap-free set of Layouts for a dataset.
type ColumnSchema = sample.ColumnSchema

// Matrix is a row-major draws × columns buffer of float64 samples.
type Matrix = sample.Matrix

// Chain is one sampler run's output: a sample matrix paired with its schema
// and ordering metadata.
type Chain = sample.Chain

// ChainConfig carries the ordering metadata of one sampler run.
type ChainConfig = sample.ChainConfig

// Record is one row of the column space exposed as named views.
type Record = sample.Record

// View is a zero-copy, column-major reshaped reference into a row.
type View = sample.View

// Series is one variable viewed across every draw of a matrix.
type Series = sample.Series

// Errors

var (
	ErrInvalidShape    = sample.ErrInvalidShape
	ErrInvalidSchema   = sample.ErrInvalidSchema
	ErrShapeMismatch   = sample.ErrShapeMismatch
	ErrSchemaMismatch  = sample.ErrSchemaMismatch
	ErrInvalidChain    = sample.ErrInvalidChain
	ErrUnknownVariable = sample.ErrUnknownVariable
)

// Construction functions

// NewSchema builds a ColumnSchema from ordered (name, shape) entries,
// placing each variable at the running column offset.
func NewSchema(entries []SchemaEntry) (*ColumnSchema, error) {
	return sample.NewSchema(entries)
}

// NewMatrix creates a matrix over data, which must hold exactly rows*cols
// values in row-major order.
func NewMatrix(data []float64, rows, cols int) (Matrix, error) {
	return sample.NewMatrix(data, rows, cols)
}

// NewChain validates and constructs a chain over schema and m.
func NewChain(schema *ColumnSchema, m Matrix, cfg ChainConfig) (*Chain, error) {
	return sample.NewChain(schema, m, cfg)
}

// Concat row-stacks the post-warmup draws of structurally equal chains.
// The result is unordered with warmup 0 and undefined thinning.
func Concat(chains ...*Chain) (*Chain, error) {
	return sample.Concat(chains...)
}

// ColumnMajorIndices enumerates every one-based multi-index of the shape in
// column-major order.
func ColumnMajorIndices(shape Shape) [][]int {
	return sample.ColumnMajorIndices(shape)
}
