package ingredient

// FloatRange is an optional closed interval. Nil endpoints are unbounded.
type FloatRange struct {
	Min *float64
	Max *float64
}

// Contains reports whether v falls within the range.
func (r FloatRange) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Validate validates the range.
func (r FloatRange) Validate() error {
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return ErrInvertedRange
	}
	return nil
}

// TransformationRule records how a specific ingredient responds to a named
// transformation between two states. At most one rule exists per
// (ingredient, transformation type, initial state, final state) tuple.
//
// The transformation type refers into the static cooking catalog; validity
// against that catalog is enforced at the application boundary.
type TransformationRule struct {
	TransformationType string
	InitialState       string
	FinalState         string

	TemperatureRangeC FloatRange
	TimeRangeMin      FloatRange

	PungencyMultiplier   float64
	SweetnessMultiplier  float64
	BitternessMultiplier float64

	FlavorChange  string
	TextureChange string
	ColorChange   string
}

// Validate validates the transformation rule.
func (t TransformationRule) Validate() error {
	if t.TransformationType == "" {
		return ErrEmptyTransformationType
	}
	if t.InitialState == "" || t.FinalState == "" {
		return ErrEmptyState
	}
	if err := t.TemperatureRangeC.Validate(); err != nil {
		return err
	}
	if err := t.TimeRangeMin.Validate(); err != nil {
		return err
	}
	return nil
}
