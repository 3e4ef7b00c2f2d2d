package sample

import "errors"

// Common errors
var (
	// ErrInvalidShape reports a shape with a non-positive dimension.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidSchema reports a schema construction violation (duplicate
	// name, bad layout bounds).
	ErrInvalidSchema = errors.New("invalid column schema")

	// ErrShapeMismatch reports a buffer whose length disagrees with the
	// schema it is viewed through.
	ErrShapeMismatch = errors.New("buffer length does not match schema")

	// ErrSchemaMismatch reports an attempt to combine chains whose schemas
	// are not structurally equal.
	ErrSchemaMismatch = errors.New("column schemas differ")

	// ErrInvalidChain reports an invalid chain configuration (matrix width,
	// thinning, warmup bounds).
	ErrInvalidChain = errors.New("invalid chain configuration")

	// ErrUnknownVariable reports a name not present in the schema.
	ErrUnknownVariable = errors.New("unknown variable")
)
