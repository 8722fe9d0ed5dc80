package cooking

import "math"

// AllicinResult is the computed outcome of allicin formation in garlic.
type AllicinResult struct {
	Preparation        Preparation
	CellDamageFactor   float64 // [0, 1]
	AllicinLevel       float64 // [0, 1]
	PungencyMultiplier float64 // [1, 10]
}

// AllicinFormation models allicin release after garlic is prepared.
//
// Mechanical disruption ruptures cells, mixing alliin with alliinase; the
// resulting allicin rises toward a plateau over the minutes following
// preparation and then slowly decays, since allicin is itself unstable. The
// cell damage factor multiplies the whole curve, so at any elapsed time a
// more disruptive preparation yields strictly more allicin.
func AllicinFormation(preparation Preparation, timeMin float64) (*AllicinResult, error) {
	if timeMin < 0 {
		return nil, ErrNegativeTime
	}

	damage, ok := cellDamageFactors[preparation]
	if !ok {
		return nil, ErrUnknownPreparation
	}

	rise := 1 - math.Exp(-timeMin/3)
	decay := math.Exp(-timeMin / 120)
	level := damage * rise * decay

	return &AllicinResult{
		Preparation:        preparation,
		CellDamageFactor:   damage,
		AllicinLevel:       level,
		PungencyMultiplier: 1 + 9*level,
	}, nil
}
