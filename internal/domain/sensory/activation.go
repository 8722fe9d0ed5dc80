package sensory

import "math"

// Activation is the computed perceptual response of one receptor to one
// compound at a given concentration.
//
// AmplifiesStimulus and AmplificationFactor are carried through from the
// catalog entry when present; both are nil for receptors without an
// amplification target. Nil is deliberate: "does not amplify" must not be
// confused with "amplifies by a factor of zero".
type Activation struct {
	Receptor            string
	Compound            string
	ConcentrationUM     float64
	ActivationPercent   float64 // [0, 100]
	Intensity           float64 // [0, 10]
	Sensation           string
	DurationSeconds     float64
	AmplifiesStimulus   *string
	AmplificationFactor *float64
}

// CalculateActivation models how strongly a compound at the given
// concentration (µM) activates the named receptor.
//
// Activation follows a Hill-form dose-response curve: it rises monotonically
// with concentration and saturates toward 100%. A concentration of zero is a
// valid input and yields zero activation with the sensation metadata still
// populated: the compound is present but imperceptible.
//
// An unknown receptor name is a configuration error, because the catalog is
// the fixed reference the caller claims to be using. Negative concentration
// is rejected before any computation.
func CalculateActivation(receptorName, compound string, concentrationUM float64) (*Activation, error) {
	if compound == "" {
		return nil, ErrEmptyCompound
	}
	if concentrationUM < 0 {
		return nil, ErrNegativeConcentration
	}

	receptor, ok := Lookup(receptorName)
	if !ok {
		return nil, ErrUnknownReceptor
	}

	percent := hillActivation(concentrationUM, receptor.HalfMaxUM, receptor.HillCoefficient)

	result := &Activation{
		Receptor:          receptor.Name,
		Compound:          compound,
		ConcentrationUM:   concentrationUM,
		ActivationPercent: percent,
		Intensity:         percent / 10,
		Sensation:         receptor.Sensation,
		DurationSeconds:   clearanceFor(receptor, compound),
	}

	if amp := receptor.Amplifies; amp != nil {
		stimulus := amp.Stimulus
		factor := amp.Factor
		result.AmplifiesStimulus = &stimulus
		result.AmplificationFactor = &factor
	}

	return result, nil
}

// hillActivation computes the classic Hill equation response in percent:
//
//	100 * c^n / (c^n + K^n)
//
// where K is the half-maximal concentration and n the Hill coefficient. The
// result is monotonically non-decreasing in c and bounded by 100.
func hillActivation(concentration, halfMax, coefficient float64) float64 {
	if concentration == 0 {
		return 0
	}

	// Computed as 100 / (1 + (K/c)^n) rather than the textbook
	// 100*c^n/(c^n+K^n): c^n overflows to +Inf for very large c, which
	// would turn the quotient into NaN. The ratio form stays finite.
	ratio := math.Pow(halfMax/concentration, coefficient)

	percent := 100 / (1 + ratio)
	if percent > 100 {
		percent = 100
	}
	return percent
}
