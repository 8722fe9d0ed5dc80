// Package sensory models the physiological receptor catalog and the
// dose-response relationship between compounds and perceived sensation.
//
// The receptor catalog is static reference data: it is compiled in, loaded
// once, and exposed through read-only accessors. Nothing in normal operation
// edits it.
package sensory

import "sort"

// Amplification describes a receptor that amplifies perception of an
// unrelated stimulus, such as TRPM8 amplifying perceived cold.
type Amplification struct {
	Stimulus string
	Factor   float64
}

// Receptor is a catalog entry for a sensory receptor protein.
//
// HalfMaxUM is the compound concentration (µM) producing half-maximal
// activation; HillCoefficient controls the steepness of the dose-response
// curve. ClearanceSeconds is how long the evoked sensation persists once the
// stimulus is delivered; it depends on the receptor (and sometimes the
// compound), not on concentration.
type Receptor struct {
	Name             string
	Sensation        string
	HalfMaxUM        float64
	HillCoefficient  float64
	ClearanceSeconds float64
	Amplifies        *Amplification
}

// catalog holds the fixed receptor table. Entries are returned by value so
// callers cannot mutate the catalog.
var catalog = map[string]Receptor{
	"TRPV1": {
		Name:             "TRPV1",
		Sensation:        "burning, hot",
		HalfMaxUM:        0.7,
		HillCoefficient:  1.8,
		ClearanceSeconds: 300,
	},
	"TRPM8": {
		Name:             "TRPM8",
		Sensation:        "cooling, cold",
		HalfMaxUM:        4.0,
		HillCoefficient:  1.5,
		ClearanceSeconds: 120,
		Amplifies:        &Amplification{Stimulus: "cold", Factor: 2.5},
	},
	"TRPA1": {
		Name:             "TRPA1",
		Sensation:        "sharp, pungent",
		HalfMaxUM:        10.0,
		HillCoefficient:  1.4,
		ClearanceSeconds: 180,
	},
	"T1R2_T1R3": {
		Name:             "T1R2_T1R3",
		Sensation:        "sweet",
		HalfMaxUM:        500.0,
		HillCoefficient:  1.0,
		ClearanceSeconds: 15,
	},
	"T1R1_T1R3": {
		Name:             "T1R1_T1R3",
		Sensation:        "umami, savory",
		HalfMaxUM:        800.0,
		HillCoefficient:  1.0,
		ClearanceSeconds: 30,
	},
	"mGluR4": {
		Name:             "mGluR4",
		Sensation:        "umami, savory",
		HalfMaxUM:        1200.0,
		HillCoefficient:  1.0,
		ClearanceSeconds: 30,
		Amplifies:        &Amplification{Stimulus: "umami", Factor: 1.8},
	},
	"T2R38": {
		Name:             "T2R38",
		Sensation:        "bitter",
		HalfMaxUM:        50.0,
		HillCoefficient:  1.2,
		ClearanceSeconds: 45,
	},
	"ENaC": {
		Name:             "ENaC",
		Sensation:        "salty",
		HalfMaxUM:        2000.0,
		HillCoefficient:  1.0,
		ClearanceSeconds: 10,
	},
}

// clearanceOverrides carries per (receptor, compound) clearance durations for
// pairs known to deviate from the receptor baseline. Capsaicin binds TRPV1
// far longer than the receptor's typical agonist.
var clearanceOverrides = map[string]map[string]float64{
	"TRPV1": {
		"capsaicin": 900,
		"piperine":  450,
	},
	"TRPM8": {
		"menthol": 240,
	},
}

// molarMasses lists molar masses (g/mol) for the compounds the catalog
// models, so that concentrations stored in ppm can be converted into the
// micromolar scale the dose-response curves use.
var molarMasses = map[string]float64{
	"capsaicin":            305.41,
	"piperine":             285.34,
	"gingerol":             294.39,
	"menthol":              156.27,
	"menthone":             154.25,
	"allicin":              162.27,
	"diallyl disulfide":    146.27,
	"propanethial S-oxide": 90.14,
	"linalool":             154.25,
	"eugenol":              164.20,
	"(Z)-3-hexenal":        98.14,
	"furaneol":             128.13,
}

// MicromolarFromPPM converts a ppm concentration to µM for a cataloged
// compound. In a dilute aqueous matrix 1 ppm is 1 mg/L, so
// µM = 1000 * ppm / molarMass. The second return is false when the
// compound's molar mass is not cataloged.
func MicromolarFromPPM(compound string, ppm float64) (float64, bool) {
	mass, ok := molarMasses[compound]
	if !ok {
		return 0, false
	}
	return 1000 * ppm / mass, true
}

// Lookup returns the catalog entry for the named receptor.
func Lookup(name string) (Receptor, bool) {
	r, ok := catalog[name]
	return r, ok
}

// Names returns all receptor names in the catalog, sorted ascending.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clearanceFor returns the sensation duration for a receptor/compound pair.
func clearanceFor(receptor Receptor, compound string) float64 {
	if overrides, ok := clearanceOverrides[receptor.Name]; ok {
		if d, ok := overrides[compound]; ok {
			return d
		}
	}
	return receptor.ClearanceSeconds
}
