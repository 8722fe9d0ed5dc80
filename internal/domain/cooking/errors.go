package cooking

import "errors"

var (
	ErrNegativeTemperature = errors.New("temperature must not be negative")
	ErrNegativeTime        = errors.New("time must not be negative")
	ErrReactantOutOfRange  = errors.New("reactant content must be between 0.0 and 1.0")

	// Catalog errors: the named entry is missing from static reference data.
	ErrUnknownSugar          = errors.New("sugar type is not in the caramelization catalog")
	ErrUnknownPreparation    = errors.New("unknown garlic preparation")
	ErrUnknownTransformation = errors.New("transformation type is not in the catalog")
)
