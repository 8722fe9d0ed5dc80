package ingredient

import (
	"time"

	"github.com/google/uuid"
)

// Value Objects - Immutable objects that describe aspects of the domain

// NutritionalProfile holds per-100g macro and micronutrient values for an
// ingredient. Every field is a pointer: nil means "not yet known", which is
// distinct from a known value of zero. Downstream scoring treats the two
// differently, so the profile is only ever replaced whole, never patched in
// a way that loses that distinction.
type NutritionalProfile struct {
	Calories      *float64 // kcal
	Protein       *float64 // g
	Fat           *float64 // g
	Carbohydrates *float64 // g
	Fiber         *float64 // g
	Sugar         *float64 // g
	VitaminC      *float64 // mg
	Calcium       *float64 // mg
	Iron          *float64 // mg
	Potassium     *float64 // mg
	Sodium        *float64 // mg
}

// Validate validates the nutritional profile. Unknown (nil) values are
// always valid; known values must not be negative.
func (p NutritionalProfile) Validate() error {
	for _, v := range []*float64{
		p.Calories, p.Protein, p.Fat, p.Carbohydrates, p.Fiber, p.Sugar,
		p.VitaminC, p.Calcium, p.Iron, p.Potassium, p.Sodium,
	} {
		if v != nil && *v < 0 {
			return ErrNegativeNutrient
		}
	}
	return nil
}

// Compound represents a named aroma/taste chemical (e.g. vanillin). It is a
// normalized entity shared by flavor links and receptor activations, so an
// activating compound does not need a full flavor profile to be referenced.
type Compound struct {
	ID          uuid.UUID
	Name        string
	Descriptors []string
}

// Validate validates the compound.
func (c Compound) Validate() error {
	if c.Name == "" {
		return ErrEmptyCompoundName
	}
	return nil
}

// FlavorLink associates a compound with an ingredient. ConcentrationPPM is
// the measured concentration in parts per million; ImportanceScore states how
// much this compound drives the ingredient's overall flavor. At most one link
// exists per (ingredient, compound) pair.
type FlavorLink struct {
	Compound         Compound
	ConcentrationPPM float64
	ImportanceScore  float64
}

// Validate validates the flavor link.
func (l FlavorLink) Validate() error {
	if err := l.Compound.Validate(); err != nil {
		return err
	}
	if l.ConcentrationPPM < 0 {
		return ErrNegativeConcentration
	}
	if l.ImportanceScore < 0 || l.ImportanceScore > 1 {
		return ErrImportanceOutOfRange
	}
	return nil
}

// ReceptorActivation records that a compound in this ingredient activates a
// named sensory receptor at a baseline strength. At most one activation
// exists per (ingredient, receptor) pair. The receptor name refers into the
// static sensory catalog, not into the ingredient store.
type ReceptorActivation struct {
	ReceptorName string
	Compound     Compound
	Strength     float64
}

// Validate validates the receptor activation.
func (a ReceptorActivation) Validate() error {
	if a.ReceptorName == "" {
		return ErrEmptyReceptorName
	}
	if err := a.Compound.Validate(); err != nil {
		return err
	}
	if a.Strength < 0 || a.Strength > 1 {
		return ErrStrengthOutOfRange
	}
	return nil
}

// AttributeBundle is the plain key-value projection of an ingredient's
// attributes handed to optional knowledge-integration collaborators.
type AttributeBundle struct {
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	ScientificName string         `json:"scientific_name,omitempty"`
	Nutrition      map[string]any `json:"nutrition,omitempty"`
	TopCompounds   []string       `json:"top_compounds,omitempty"`
	Receptors      []string       `json:"receptors,omitempty"`
	ExportedAt     time.Time      `json:"exported_at"`
}

// Category classifies ingredients.
type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryProtein   Category = "protein"
	CategoryGrain     Category = "grain"
	CategoryDairy     Category = "dairy"
	CategoryHerb      Category = "herb"
	CategorySpice     Category = "spice"
	CategoryCondiment Category = "condiment"
	CategoryOil       Category = "oil"
	CategoryOther     Category = "other"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryVegetable, CategoryFruit, CategoryProtein, CategoryGrain,
		CategoryDairy, CategoryHerb, CategorySpice, CategoryCondiment,
		CategoryOil, CategoryOther:
		return true
	}
	return false
}
