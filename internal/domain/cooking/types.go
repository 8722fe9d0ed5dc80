// Package cooking models chemical and physical cooking transformations: the
// static transformation-type catalog plus the empirical outcome curves for
// Maillard browning, caramelization and allicin formation.
//
// Each transformation has its own distinct curve, so the formulas are
// independent pure functions rather than a generic rule interpreter.
package cooking

import "sort"

// TransformationType is a catalog entry naming a transformation and the
// physical preconditions it requires. The catalog is static reference data,
// compiled in and read-only.
type TransformationType struct {
	Name               string
	RequiresHeat       bool
	RequiresTime       bool
	RequiresMechanical bool
	RequiresChemical   bool
}

var transformationCatalog = map[string]TransformationType{
	"Maillard Reaction":    {Name: "Maillard Reaction", RequiresHeat: true, RequiresTime: true},
	"Caramelization":       {Name: "Caramelization", RequiresHeat: true, RequiresTime: true},
	"Protein Denaturation": {Name: "Protein Denaturation", RequiresHeat: true},
	"Enzymatic Browning":   {Name: "Enzymatic Browning", RequiresTime: true, RequiresMechanical: true},
	"Fermentation":         {Name: "Fermentation", RequiresTime: true, RequiresChemical: true},
	"Gelatinization":       {Name: "Gelatinization", RequiresHeat: true, RequiresTime: true},
	"Emulsification":       {Name: "Emulsification", RequiresMechanical: true},
}

// LookupType returns the catalog entry for the named transformation.
func LookupType(name string) (TransformationType, bool) {
	t, ok := transformationCatalog[name]
	return t, ok
}

// TypeNames returns all transformation names in the catalog, sorted ascending.
func TypeNames() []string {
	names := make([]string, 0, len(transformationCatalog))
	for name := range transformationCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BrowningLevel is an ordered categorical bucket of Maillard extent.
type BrowningLevel string

const (
	BrowningNone   BrowningLevel = "none"
	BrowningLight  BrowningLevel = "light"
	BrowningMedium BrowningLevel = "medium"
	BrowningDark   BrowningLevel = "dark"
)

// CaramelStage is an ordered categorical bucket of caramelization extent.
type CaramelStage string

const (
	CaramelNone   CaramelStage = "none"
	CaramelLight  CaramelStage = "light"
	CaramelMedium CaramelStage = "medium"
	CaramelDark   CaramelStage = "dark"
	CaramelBurnt  CaramelStage = "burnt"
)

// SugarType selects among the sugars with known caramelization onsets.
type SugarType string

const (
	SugarSucrose  SugarType = "sucrose"
	SugarGlucose  SugarType = "glucose"
	SugarFructose SugarType = "fructose"
)

// onsetTemperatures maps each sugar to the temperature (°C) below which
// caramelization does not proceed.
var onsetTemperatures = map[SugarType]float64{
	SugarSucrose:  160,
	SugarGlucose:  150,
	SugarFructose: 110,
}

// Preparation describes how much mechanical disruption garlic has undergone.
type Preparation string

const (
	PreparationWhole   Preparation = "whole"
	PreparationChopped Preparation = "chopped"
	PreparationMinced  Preparation = "minced"
	PreparationCrushed Preparation = "crushed"
)

// cellDamageFactors maps preparation to the fraction of cells ruptured. More
// disruption releases more alliin and alliinase, the allicin precursors.
var cellDamageFactors = map[Preparation]float64{
	PreparationWhole:   0.05,
	PreparationChopped: 0.40,
	PreparationMinced:  0.70,
	PreparationCrushed: 0.90,
}
