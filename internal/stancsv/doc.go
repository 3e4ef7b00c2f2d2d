// Package stancsv reads the CSV dialect emitted by the cmdstan sampler.
//
// The dialect is narrow and fixed:
//   - comment lines (first non-blank character '#') are ignored everywhere
//   - the first non-comment line is the header; fields are "name" or
//     "name.i1.i2..." with one-based indices, and the fields of one variable
//     appear consecutively in column-major order starting from all-ones
//   - every data line holds exactly as many comma-separated floating-point
//     fields as the header; no quoting or escaping
//
// The header is collapsed into a sample.ColumnSchema, data rows are decoded
// into a sample.Matrix, and the two are wrapped into a sample.Chain.
//
// Example:
//
//	chain, err := stancsv.ReadChainFile("output_1.csv", stancsv.WithWarmup(1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for rec := range chain.Posterior() {
//	    // ...
//	}
package stancsv
