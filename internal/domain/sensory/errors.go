package sensory

import "errors"

var (
	// ErrUnknownReceptor indicates a receptor name missing from the static
	// catalog. This is a configuration problem, not an absence of data.
	ErrUnknownReceptor = errors.New("receptor is not in the sensory catalog")

	ErrNegativeConcentration = errors.New("concentration must not be negative")
	ErrEmptyCompound         = errors.New("compound name must not be empty")
)
