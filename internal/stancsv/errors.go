package stancsv

import "errors"

// Header errors
var (
	ErrEmptyName          = errors.New("empty variable name")
	ErrMalformedIndex     = errors.New("malformed dimension index")
	ErrNonContiguousStart = errors.New("variable run does not start at all-ones index")
	ErrNonContiguousIndex = errors.New("variable indices out of column-major order")
	ErrDuplicateName      = errors.New("variable reappears in a non-adjacent run")
)

// Row errors
var (
	ErrTooFewFields  = errors.New("too few fields")
	ErrTooManyFields = errors.New("too many fields")
	ErrBadField      = errors.New("field is not a number")
)

// Stream and discovery errors
var (
	ErrNoHeader        = errors.New("no header line before end of input")
	ErrDuplicateFileID = errors.New("two chain files map to the same id")
)
