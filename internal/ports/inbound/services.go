// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the application exposes to its callers
package inbound

import (
	"context"

	"github.com/palateworks/flavorcore/internal/domain/cooking"
	"github.com/palateworks/flavorcore/internal/domain/sensory"
)

// PairingService quantifies how well two ingredients' flavors combine based
// on their shared flavor compounds.
type PairingService interface {
	// Score returns a pairing strength in [0.0, 1.0]. Ingredients sharing no
	// compounds score exactly 0.0; that is a valid result, not an error.
	Score(ctx context.Context, nameA, nameB string) (float64, error)

	// Suggest scores name against every other stored ingredient and returns
	// those at or above minStrength, sorted descending by strength with ties
	// broken by ingredient name ascending.
	Suggest(ctx context.Context, name string, minStrength float64) ([]PairingSuggestion, error)
}

// PairingSuggestion is one candidate pairing.
type PairingSuggestion struct {
	Ingredient string  `json:"ingredient"`
	Strength   float64 `json:"strength"`
}

// PerceptionService models how compounds activate sensory receptors.
type PerceptionService interface {
	// CalculateActivation computes the response of the named receptor to a
	// compound at the given concentration (µM). Unknown receptors are a
	// configuration error; negative concentrations are a validation error.
	CalculateActivation(ctx context.Context, receptorName, compound string, concentrationUM float64) (*sensory.Activation, error)

	// PerceiveIngredient computes the activation profile across every
	// receptor the stored ingredient is known to activate.
	PerceiveIngredient(ctx context.Context, name string) ([]IngredientPerception, error)
}

// IngredientPerception is one receptor's contribution to an ingredient's
// sensory profile, weighted by the stored baseline strength.
type IngredientPerception struct {
	Activation        sensory.Activation `json:"activation"`
	BaselineStrength  float64            `json:"baseline_strength"`
	WeightedIntensity float64            `json:"weighted_intensity"`
}

// TransformService computes cooking transformation outcomes.
type TransformService interface {
	Maillard(ctx context.Context, temperatureC, timeMin, proteinContent, sugarContent float64) (*cooking.MaillardResult, error)
	Caramelize(ctx context.Context, sugar cooking.SugarType, temperatureC, timeMin float64) (*cooking.CaramelizationResult, error)
	AllicinFormation(ctx context.Context, preparation cooking.Preparation, timeMin float64) (*cooking.AllicinResult, error)

	// ApplyRule looks up the stored transformation rule for an ingredient and
	// evaluates it under the given conditions.
	ApplyRule(ctx context.Context, cmd ApplyRuleCommand) (*TransformOutcome, error)
}

// ApplyRuleCommand names the ingredient, the state transition, and the
// conditions to evaluate the stored rule under.
type ApplyRuleCommand struct {
	Ingredient   string
	InitialState string
	FinalState   string
	TemperatureC float64
	TimeMin      float64
}

// TransformOutcome is the evaluated result of an ingredient transformation
// rule. ConditionsMet reports whether the given temperature and time fall
// inside the rule's ranges; the multipliers apply only when they do.
type TransformOutcome struct {
	Ingredient           string  `json:"ingredient"`
	TransformationType   string  `json:"transformation_type"`
	InitialState         string  `json:"initial_state"`
	FinalState           string  `json:"final_state"`
	ConditionsMet        bool    `json:"conditions_met"`
	PungencyMultiplier   float64 `json:"pungency_multiplier"`
	SweetnessMultiplier  float64 `json:"sweetness_multiplier"`
	BitternessMultiplier float64 `json:"bitterness_multiplier"`
	FlavorChange         string  `json:"flavor_change"`
	TextureChange        string  `json:"texture_change"`
	ColorChange          string  `json:"color_change"`
}

// IngredientService is the write boundary and read facade over the
// ingredient store.
type IngredientService interface {
	Get(ctx context.Context, name string) (*IngredientDTO, error)
	Search(ctx context.Context, query, category string) ([]IngredientDTO, error)

	UpsertIngredient(ctx context.Context, cmd UpsertIngredientCommand) (*IngredientDTO, error)
	UpsertNutrition(ctx context.Context, cmd UpsertNutritionCommand) error
	UpsertFlavorLink(ctx context.Context, cmd UpsertFlavorLinkCommand) error
	UpsertReceptorActivation(ctx context.Context, cmd UpsertReceptorActivationCommand) error
	UpsertTransformationRule(ctx context.Context, cmd UpsertTransformationRuleCommand) error

	// ExportAttributes assembles the ingredient's attribute bundle and hands
	// it to the knowledge sink when one is wired. Best-effort: a missing or
	// failing sink is not an error.
	ExportAttributes(ctx context.Context, name string) error
}

// IngredientDTO is the read projection of an ingredient.
type IngredientDTO struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	ScientificName string   `json:"scientific_name,omitempty"`
	Aliases        []string `json:"aliases,omitempty"`
}

// UpsertIngredientCommand creates or replaces an ingredient record.
type UpsertIngredientCommand struct {
	Name           string   `validate:"required,max=200"`
	Category       string   `validate:"required"`
	ScientificName string   `validate:"max=200"`
	Aliases        []string `validate:"dive,max=200"`
}

// UpsertNutritionCommand replaces an ingredient's nutritional profile whole.
// Nil fields mean "unknown" and are stored as such, not as zero.
type UpsertNutritionCommand struct {
	Ingredient    string   `validate:"required"`
	Calories      *float64 `validate:"omitempty,gte=0"`
	Protein       *float64 `validate:"omitempty,gte=0"`
	Fat           *float64 `validate:"omitempty,gte=0"`
	Carbohydrates *float64 `validate:"omitempty,gte=0"`
	Fiber         *float64 `validate:"omitempty,gte=0"`
	Sugar         *float64 `validate:"omitempty,gte=0"`
	VitaminC      *float64 `validate:"omitempty,gte=0"`
	Calcium       *float64 `validate:"omitempty,gte=0"`
	Iron          *float64 `validate:"omitempty,gte=0"`
	Potassium     *float64 `validate:"omitempty,gte=0"`
	Sodium        *float64 `validate:"omitempty,gte=0"`
}

// UpsertFlavorLinkCommand links a compound to an ingredient.
type UpsertFlavorLinkCommand struct {
	Ingredient       string   `validate:"required"`
	Compound         string   `validate:"required"`
	Descriptors      []string `validate:"dive,max=100"`
	ConcentrationPPM float64  `validate:"gte=0"`
	ImportanceScore  float64  `validate:"gte=0,lte=1"`
}

// UpsertReceptorActivationCommand records which compound in an ingredient
// activates a receptor. The receptor must exist in the sensory catalog.
type UpsertReceptorActivationCommand struct {
	Ingredient string  `validate:"required"`
	Receptor   string  `validate:"required"`
	Compound   string  `validate:"required"`
	Strength   float64 `validate:"gte=0,lte=1"`
}

// UpsertTransformationRuleCommand records how an ingredient responds to a
// transformation. The transformation type must exist in the cooking catalog.
type UpsertTransformationRuleCommand struct {
	Ingredient           string `validate:"required"`
	TransformationType   string `validate:"required"`
	InitialState         string `validate:"required"`
	FinalState           string `validate:"required"`
	MinTemperatureC      *float64
	MaxTemperatureC      *float64
	MinTimeMin           *float64 `validate:"omitempty,gte=0"`
	MaxTimeMin           *float64 `validate:"omitempty,gte=0"`
	PungencyMultiplier   float64  `validate:"gte=0"`
	SweetnessMultiplier  float64  `validate:"gte=0"`
	BitternessMultiplier float64  `validate:"gte=0"`
	FlavorChange         string
	TextureChange        string
	ColorChange          string
}
