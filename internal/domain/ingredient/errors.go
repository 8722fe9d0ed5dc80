package ingredient

import "errors"

// Domain errors for the ingredient knowledge base

var (
	// Entity validation errors
	ErrEmptyName       = errors.New("ingredient name must not be empty")
	ErrNameTooLong     = errors.New("ingredient name must not exceed 200 characters")
	ErrUnknownCategory = errors.New("unknown ingredient category")

	// Attribute validation errors
	ErrNegativeConcentration = errors.New("compound concentration must not be negative")
	ErrImportanceOutOfRange  = errors.New("importance score must be between 0.0 and 1.0")
	ErrStrengthOutOfRange    = errors.New("activation strength must be between 0.0 and 1.0")
	ErrEmptyCompoundName     = errors.New("compound name must not be empty")
	ErrEmptyReceptorName     = errors.New("receptor name must not be empty")
	ErrNegativeNutrient      = errors.New("nutrient values must not be negative")

	// Transformation rule errors
	ErrEmptyTransformationType = errors.New("transformation type must not be empty")
	ErrEmptyState              = errors.New("initial and final states must not be empty")
	ErrInvertedRange           = errors.New("range minimum must not exceed maximum")
)
