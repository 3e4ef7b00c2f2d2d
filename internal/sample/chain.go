package sample

import "fmt"

// ChainConfig carries the ordering metadata of one sampler run.
type ChainConfig struct {
	// Thinning is the stride between retained draws. Meaningful only for
	// ordered chains, where it must be >= 1. Zero defaults to 1.
	Thinning int

	// Warmup is the number of leading rows considered burn-in.
	Warmup int

	// Ordered is true only if the rows are consecutive draws from one
	// Markov chain. Row-stacked combinations of several chains are not
	// ordered, and their warmup is forced to 0.
	Ordered bool
}

// Chain is one sampler run's output: a sample matrix (rows = draws,
// columns = flattened variables) paired with its ColumnSchema and ordering
// metadata. Read-only after construction.
type Chain struct {
	schema   *ColumnSchema
	matrix   Matrix
	thinning int
	warmup   int
	ordered  bool
}

// NewChain validates and constructs a chain over schema and m.
// A warmup exceeding the row count fails rather than clamps, since it means
// the producer's bookkeeping disagrees with the data.
func NewChain(schema *ColumnSchema, m Matrix, cfg ChainConfig) (*Chain, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidChain)
	}
	if m.Cols() != schema.Len() {
		return nil, fmt.Errorf("%w: matrix has %d columns, schema covers %d",
			ErrInvalidChain, m.Cols(), schema.Len())
	}
	thinning := cfg.Thinning
	if thinning == 0 {
		thinning = 1
	}
	if thinning < 1 {
		return nil, fmt.Errorf("%w: thinning %d (must be >= 1)", ErrInvalidChain, cfg.Thinning)
	}
	if cfg.Warmup < 0 {
		return nil, fmt.Errorf("%w: negative warmup %d", ErrInvalidChain, cfg.Warmup)
	}
	if cfg.Warmup > m.Rows() {
		return nil, fmt.Errorf("%w: warmup %d exceeds %d rows", ErrInvalidChain, cfg.Warmup, m.Rows())
	}
	warmup := cfg.Warmup
	if !cfg.Ordered {
		warmup = 0
	}
	return &Chain{
		schema:   schema,
		matrix:   m,
		thinning: thinning,
		warmup:   warmup,
		ordered:  cfg.Ordered,
	}, nil
}

// Schema returns the chain's column schema.
func (c *Chain) Schema() *ColumnSchema {
	return c.schema
}

// SampleMatrix returns the chain's draws, zero-copy. With includeWarmup
// false it returns the post-warmup tail.
func (c *Chain) SampleMatrix(includeWarmup bool) Matrix {
	if includeWarmup {
		return c.matrix
	}
	return c.matrix.Tail(c.warmup)
}

// Rows returns the total number of draws, warmup included.
func (c *Chain) Rows() int {
	return c.matrix.Rows()
}

// Warmup returns the number of leading burn-in rows.
func (c *Chain) Warmup() int {
	return c.warmup
}

// Thinning returns the stride between retained draws. ok is false for
// unordered chains, where thinning is undefined.
func (c *Chain) Thinning() (thinning int, ok bool) {
	if !c.ordered {
		return 0, false
	}
	return c.thinning, true
}

// Ordered reports whether the rows are consecutive draws from one chain.
func (c *Chain) Ordered() bool {
	return c.ordered
}

// Series exposes one variable across the post-warmup draws.
func (c *Chain) Series(name string) (Series, error) {
	return c.schema.Series(c.SampleMatrix(false), name)
}

// Concat row-stacks the post-warmup draws of the given chains. All schemas
// must be structurally equal. The result is unordered with warmup 0, since
// stacking destroys single-chain ordering regardless of the inputs.
func Concat(chains ...*Chain) (*Chain, error) {
	if len(chains) == 0 {
		return nil, fmt.Errorf("%w: no chains to concatenate", ErrInvalidChain)
	}
	schema := chains[0].schema
	rows := 0
	for _, c := range chains {
		if !schema.Equal(c.schema) {
			return nil, fmt.Errorf("%w: cannot concatenate", ErrSchemaMismatch)
		}
		rows += c.SampleMatrix(false).Rows()
	}

	data := make([]float64, 0, rows*schema.Len())
	for _, c := range chains {
		data = append(data, c.SampleMatrix(false).Data()...)
	}
	m, err := NewMatrix(data, rows, schema.Len())
	if err != nil {
		return nil, err
	}
	return NewChain(schema, m, ChainConfig{Thinning: 1, Warmup: 0, Ordered: false})
}
