package cooking

import "math"

// maillardOnsetC is the temperature below which the Maillard reaction is
// negligible at culinary timescales.
const maillardOnsetC = 140.0

// maillardCompounds is the illustrative set of flavor compounds the reaction
// generates. It is fixed, not derived from the inputs.
var maillardCompounds = []string{"pyrazines", "melanoidins", "furans", "thiophenes"}

// MaillardResult is the computed outcome of a Maillard reaction.
type MaillardResult struct {
	Extent          float64 // [0, 1]
	BrowningLevel   BrowningLevel
	Color           string
	FlavorIntensity float64 // [0, 10]
	CompoundsFormed []string
}

// MaillardReaction computes the extent of browning between amino acids and
// reducing sugars under heat.
//
// Extent increases monotonically with temperature above the 140°C onset and
// with time, and scales with the product of protein and sugar content: both
// reactants are required, so zero of either yields zero extent. Protein and
// sugar content are fractions in [0, 1].
func MaillardReaction(temperatureC, timeMin, proteinContent, sugarContent float64) (*MaillardResult, error) {
	if temperatureC < 0 {
		return nil, ErrNegativeTemperature
	}
	if timeMin < 0 {
		return nil, ErrNegativeTime
	}
	if proteinContent < 0 || proteinContent > 1 || sugarContent < 0 || sugarContent > 1 {
		return nil, ErrReactantOutOfRange
	}

	extent := maillardExtent(temperatureC, timeMin) * proteinContent * sugarContent

	level, color := browningBucket(extent)

	result := &MaillardResult{
		Extent:          extent,
		BrowningLevel:   level,
		Color:           color,
		FlavorIntensity: extent * 10,
	}
	if level != BrowningNone {
		result.CompoundsFormed = maillardCompounds
	}
	return result, nil
}

// maillardExtent is the temperature-time kinetic factor in [0, 1). Both
// saturating exponentials rise monotonically, so extent is non-decreasing in
// temperature and time.
func maillardExtent(temperatureC, timeMin float64) float64 {
	if temperatureC <= maillardOnsetC {
		return 0
	}
	tempFactor := 1 - math.Exp(-(temperatureC-maillardOnsetC)/40)
	timeFactor := 1 - math.Exp(-timeMin/15)
	return tempFactor * timeFactor
}

// browningBucket maps extent to its ordered categorical bucket. Bucket edges
// are fixed extent ranges.
func browningBucket(extent float64) (BrowningLevel, string) {
	switch {
	case extent < 0.05:
		return BrowningNone, "unchanged"
	case extent < 0.20:
		return BrowningLight, "pale gold"
	case extent < 0.50:
		return BrowningMedium, "golden brown"
	default:
		return BrowningDark, "deep brown"
	}
}
