package stancsv

import (
	"fmt"
	"io"
	"os"

	"github.com/stanio-ml/stanio/internal/sample"
)

// ReadOption declares sampler settings the CSV itself does not carry.
type ReadOption func(*readConfig)

type readConfig struct {
	warmup   int
	thinning int
}

// WithWarmup marks the first n rows of the file as burn-in.
func WithWarmup(n int) ReadOption {
	return func(cfg *readConfig) {
		cfg.warmup = n
	}
}

// WithThinning declares the stride the sampler used between retained
// draws.
func WithThinning(n int) ReadOption {
	return func(cfg *readConfig) {
		cfg.thinning = n
	}
}

// ReadChain decodes one cmdstan CSV stream into an ordered chain.
// With no options the chain has warmup 0 and thinning 1.
func ReadChain(r io.Reader, opts ...ReadOption) (*sample.Chain, error) {
	cfg := readConfig{warmup: 0, thinning: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	schema, m, err := newDecoder(r).decode()
	if err != nil {
		return nil, err
	}
	return sample.NewChain(schema, m, sample.ChainConfig{
		Thinning: cfg.thinning,
		Warmup:   cfg.warmup,
		Ordered:  true,
	})
}

// ReadChainFile decodes one cmdstan CSV file into an ordered chain.
func ReadChainFile(path string, opts ...ReadOption) (*sample.Chain, error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected here
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chain file: %w", err)
	}
	defer f.Close()

	chain, err := ReadChain(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return chain, nil
}

// ReadAll discovers every file matching prefix and reads each into a chain,
// in file-id order.
func ReadAll(prefix string, opts ...ReadOption) ([]*sample.Chain, error) {
	files, err := MatchingFiles(prefix)
	if err != nil {
		return nil, err
	}
	chains := make([]*sample.Chain, 0, len(files))
	for _, cf := range files {
		chain, err := ReadChainFile(cf.Path, opts...)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, nil
}
