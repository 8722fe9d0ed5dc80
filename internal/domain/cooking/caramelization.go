package cooking

import "math"

// CaramelizationResult is the computed outcome of caramelizing a sugar.
type CaramelizationResult struct {
	Sugar  SugarType
	Stage  CaramelStage
	Color  string
	Flavor string
	Extent float64 // [0, 1]
}

// Caramelize computes the thermal decomposition of a sugar, independent of
// protein. Each sugar has a distinct onset temperature; extent is zero below
// it and rises with time and excess temperature above it.
func Caramelize(sugar SugarType, temperatureC, timeMin float64) (*CaramelizationResult, error) {
	if temperatureC < 0 {
		return nil, ErrNegativeTemperature
	}
	if timeMin < 0 {
		return nil, ErrNegativeTime
	}

	onset, ok := onsetTemperatures[sugar]
	if !ok {
		return nil, ErrUnknownSugar
	}

	var extent float64
	if temperatureC > onset {
		tempFactor := 1 - math.Exp(-(temperatureC-onset)/30)
		timeFactor := 1 - math.Exp(-timeMin/10)
		extent = tempFactor * timeFactor
	}

	stage, color, flavor := caramelBucket(extent)

	return &CaramelizationResult{
		Sugar:  sugar,
		Stage:  stage,
		Color:  color,
		Flavor: flavor,
		Extent: extent,
	}, nil
}

// caramelBucket maps extent to the ordered caramelization stage.
func caramelBucket(extent float64) (CaramelStage, string, string) {
	switch {
	case extent < 0.05:
		return CaramelNone, "clear", "neutral sweet"
	case extent < 0.30:
		return CaramelLight, "pale amber", "delicate, sweet"
	case extent < 0.60:
		return CaramelMedium, "amber", "rich, rounded"
	case extent < 0.85:
		return CaramelDark, "dark amber", "bittersweet, nutty"
	default:
		return CaramelBurnt, "near black", "acrid, bitter"
	}
}
