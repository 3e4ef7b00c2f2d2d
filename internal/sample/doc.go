// Package sample implements the column layout engine and chain container
// for MCMC posterior samples.
//
// The package maps named, possibly multi-dimensional variables onto
// contiguous ranges of a flat column space:
//   - Shape: dimension sizes of one variable (first dimension varies fastest)
//   - Layout: the column range and shape of one variable
//   - ColumnSchema: the ordered, gap-free set of Layouts for a dataset
//   - Matrix: a row-major draws × columns buffer
//   - Chain: a Matrix paired with its ColumnSchema and ordering metadata
//
// Views produced from a Matrix or a row are zero-copy: they reference the
// underlying buffer and reshape it with column-major element order. Every
// type in this package is immutable after construction, so chains and views
// may be read concurrently without locking.
//
// Example:
//
//	schema, err := sample.NewSchema([]sample.SchemaEntry{
//	    {Name: "lp__"},
//	    {Name: "theta", Shape: sample.Shape{2, 3}},
//	})
//	m, err := sample.NewMatrix(data, draws, schema.Len())
//	chain, err := sample.NewChain(schema, m, sample.ChainConfig{Thinning: 1, Ordered: true})
//	for rec := range chain.Posterior() {
//	    theta, _ := rec.View("theta")
//	    _ = theta.At(1, 2)
//	}
package sample
