// Copyright 2025 Stanio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stancsv provides the public API for reading cmdstan CSV output.
//
// Example:
//
//	chains, err := stancsv.ReadAll("run/output_", stancsv.WithWarmup(1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	combined, err := sample.Concat(chains...)
package stancsv

import (
	"io"

	isample "github.com/stanio-ml/stanio/internal/sample"
	"github.com/stanio-ml/stanio/internal/stancsv"
)

// ReadOption declares sampler settings the CSV itself does not carry.
type ReadOption = stancsv.ReadOption

// ChainFile is one discovered chain CSV, identified by its numeric suffix.
type ChainFile = stancsv.ChainFile

// Errors

var (
	ErrEmptyName          = stancsv.ErrEmptyName
	ErrMalformedIndex     = stancsv.ErrMalformedIndex
	ErrNonContiguousStart = stancsv.ErrNonContiguousStart
	ErrNonContiguousIndex = stancsv.ErrNonContiguousIndex
	ErrDuplicateName      = stancsv.ErrDuplicateName
	ErrTooFewFields       = stancsv.ErrTooFewFields
	ErrTooManyFields      = stancsv.ErrTooManyFields
	ErrBadField           = stancsv.ErrBadField
	ErrNoHeader           = stancsv.ErrNoHeader
	ErrDuplicateFileID    = stancsv.ErrDuplicateFileID
)

// WithWarmup marks the first n rows of the file as burn-in.
func WithWarmup(n int) ReadOption {
	return stancsv.WithWarmup(n)
}

// WithThinning declares the stride the sampler used between retained draws.
func WithThinning(n int) ReadOption {
	return stancsv.WithThinning(n)
}

// ReadChain decodes one cmdstan CSV stream into an ordered chain.
func ReadChain(r io.Reader, opts ...ReadOption) (*isample.Chain, error) {
	return stancsv.ReadChain(r, opts...)
}

// ReadChainFile decodes one cmdstan CSV file into an ordered chain.
func ReadChainFile(path string, opts ...ReadOption) (*isample.Chain, error) {
	return stancsv.ReadChainFile(path, opts...)
}

// ReadAll discovers every file matching prefix and reads each into a chain,
// in file-id order.
func ReadAll(prefix string, opts ...ReadOption) ([]*isample.Chain, error) {
	return stancsv.ReadAll(prefix, opts...)
}

// MatchingFiles enumerates files named <prefix><digits>.csv in the prefix's
// directory, sorted by numeric id.
func MatchingFiles(prefix string) ([]ChainFile, error) {
	return stancsv.MatchingFiles(prefix)
}
