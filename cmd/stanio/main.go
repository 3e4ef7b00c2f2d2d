// Package main provides the stanio CLI: inspect cmdstan CSV output and
// export posterior draws to Parquet.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"

	"github.com/stanio-ml/stanio/arrowio"
	"github.com/stanio-ml/stanio/sample"
	"github.com/stanio-ml/stanio/stancsv"
)

const version = "v0.1.0"

type cliArgs struct {
	Input    string `arg:"positional,required" help:"chain CSV file, or a file prefix like run/output_"`
	Warmup   int    `arg:"--warmup,env:STANIO_WARMUP" help:"leading draws to treat as burn-in" default:"0"`
	Thinning int    `arg:"--thinning,env:STANIO_THINNING" help:"stride the sampler used between retained draws" default:"1"`
	Parquet  string `arg:"--parquet" help:"write combined post-warmup draws to this Parquet file"`
	Verbose  bool   `arg:"-v,--verbose" help:"debug logging"`
}

func (cliArgs) Version() string {
	return "stanio " + version
}

func main() {
	var args cliArgs
	arg.MustParse(&args)

	logger := newLogger(args.Verbose)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(args); err != nil {
		zap.L().Error("stanio failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
	}
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func run(args cliArgs) error {
	opts := []stancsv.ReadOption{
		stancsv.WithWarmup(args.Warmup),
		stancsv.WithThinning(args.Thinning),
	}

	chains, err := loadChains(args.Input, opts)
	if err != nil {
		return err
	}

	for i, chain := range chains {
		printSummary(os.Stdout, i+1, chain)
	}

	if args.Parquet == "" {
		return nil
	}

	combined := chains[0]
	if len(chains) > 1 {
		combined, err = sample.Concat(chains...)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(args.Parquet)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args.Parquet, err)
	}
	if err := arrowio.WriteParquet(combined, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	zap.L().Info("wrote parquet",
		zap.String("path", args.Parquet),
		zap.Int("draws", combined.SampleMatrix(false).Rows()),
		zap.Int("columns", combined.Schema().Len()))
	return nil
}

// loadChains reads a single CSV file, or every numbered file under a
// prefix.
func loadChains(input string, opts []stancsv.ReadOption) ([]*sample.Chain, error) {
	info, err := os.Stat(input)
	if err == nil && !info.IsDir() {
		chain, err := stancsv.ReadChainFile(input, opts...)
		if err != nil {
			return nil, err
		}
		return []*sample.Chain{chain}, nil
	}

	chains, err := stancsv.ReadAll(input, opts...)
	if err != nil {
		return nil, err
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("no chain files match prefix %s", input)
	}
	return chains, nil
}

func printSummary(w *os.File, id int, chain *sample.Chain) {
	post := chain.SampleMatrix(false)
	fmt.Fprintf(w, "chain %d: %d draws (%d warmup), %d columns\n",
		id, post.Rows(), chain.Warmup(), chain.Schema().Len())
	for _, name := range chain.Schema().Names() {
		layout, _ := chain.Schema().Layout(name)
		shape := "scalar"
		if !layout.IsScalar() {
			shape = layout.Shape().String()
		}
		fmt.Fprintf(w, "  %-24s %-12s cols %d..%d\n",
			name, shape, layout.Offset(), layout.Offset()+layout.Length()-1)
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
}
