package gorm

import (
	"strings"

	"github.com/google/uuid"
	"github.com/palateworks/flavorcore/internal/domain/ingredient"
)

// IngredientToModel converts a domain ingredient to a GORM model.
func IngredientToModel(ing *ingredient.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:             ing.ID(),
		Name:           ing.Name(),
		NameKey:        nameKey(ing.Name()),
		Category:       string(ing.Category()),
		ScientificName: ing.ScientificName(),
		Aliases:        StringSlice(ing.Aliases()),
		CreatedAt:      ing.CreatedAt(),
		UpdatedAt:      ing.UpdatedAt(),
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient.
func ModelToIngredient(model *IngredientModel) (*ingredient.Ingredient, error) {
	return ingredient.Rehydrate(
		model.ID,
		model.Name,
		ingredient.Category(model.Category),
		model.ScientificName,
		[]string(model.Aliases),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// CompoundToModel converts a domain compound to a GORM model.
func CompoundToModel(c ingredient.Compound) *CompoundModel {
	return &CompoundModel{
		ID:          c.ID,
		Name:        c.Name,
		NameKey:     nameKey(c.Name),
		Descriptors: StringSlice(c.Descriptors),
	}
}

// ModelToCompound converts a GORM model to a domain compound.
func ModelToCompound(model *CompoundModel) ingredient.Compound {
	return ingredient.Compound{
		ID:          model.ID,
		Name:        model.Name,
		Descriptors: []string(model.Descriptors),
	}
}

// NutritionToModel converts a domain profile to a GORM model.
func NutritionToModel(ingredientID uuid.UUID, profile ingredient.NutritionalProfile) *NutritionModel {
	return &NutritionModel{
		IngredientID:  ingredientID,
		Calories:      profile.Calories,
		Protein:       profile.Protein,
		Fat:           profile.Fat,
		Carbohydrates: profile.Carbohydrates,
		Fiber:         profile.Fiber,
		Sugar:         profile.Sugar,
		VitaminC:      profile.VitaminC,
		Calcium:       profile.Calcium,
		Iron:          profile.Iron,
		Potassium:     profile.Potassium,
		Sodium:        profile.Sodium,
	}
}

// ModelToNutrition converts a GORM model to a domain profile.
func ModelToNutrition(model *NutritionModel) *ingredient.NutritionalProfile {
	return &ingredient.NutritionalProfile{
		Calories:      model.Calories,
		Protein:       model.Protein,
		Fat:           model.Fat,
		Carbohydrates: model.Carbohydrates,
		Fiber:         model.Fiber,
		Sugar:         model.Sugar,
		VitaminC:      model.VitaminC,
		Calcium:       model.Calcium,
		Iron:          model.Iron,
		Potassium:     model.Potassium,
		Sodium:        model.Sodium,
	}
}

// ModelToFlavorLink converts a GORM model (with its compound preloaded) to a
// domain flavor link.
func ModelToFlavorLink(model *FlavorLinkModel) ingredient.FlavorLink {
	return ingredient.FlavorLink{
		Compound:         ModelToCompound(&model.Compound),
		ConcentrationPPM: model.ConcentrationPPM,
		ImportanceScore:  model.ImportanceScore,
	}
}

// ModelToReceptorActivation converts a GORM model (with its compound
// preloaded) to a domain receptor activation.
func ModelToReceptorActivation(model *ReceptorActivationModel) ingredient.ReceptorActivation {
	return ingredient.ReceptorActivation{
		ReceptorName: model.ReceptorName,
		Compound:     ModelToCompound(&model.Compound),
		Strength:     model.Strength,
	}
}

// TransformationRuleToModel converts a domain rule to a GORM model.
func TransformationRuleToModel(ingredientID uuid.UUID, rule ingredient.TransformationRule) *TransformationRuleModel {
	return &TransformationRuleModel{
		IngredientID:         ingredientID,
		TransformationType:   rule.TransformationType,
		InitialState:         rule.InitialState,
		FinalState:           rule.FinalState,
		MinTemperatureC:      rule.TemperatureRangeC.Min,
		MaxTemperatureC:      rule.TemperatureRangeC.Max,
		MinTimeMin:           rule.TimeRangeMin.Min,
		MaxTimeMin:           rule.TimeRangeMin.Max,
		PungencyMultiplier:   rule.PungencyMultiplier,
		SweetnessMultiplier:  rule.SweetnessMultiplier,
		BitternessMultiplier: rule.BitternessMultiplier,
		FlavorChange:         rule.FlavorChange,
		TextureChange:        rule.TextureChange,
		ColorChange:          rule.ColorChange,
	}
}

// ModelToTransformationRule converts a GORM model to a domain rule.
func ModelToTransformationRule(model *TransformationRuleModel) *ingredient.TransformationRule {
	return &ingredient.TransformationRule{
		TransformationType: model.TransformationType,
		InitialState:       model.InitialState,
		FinalState:         model.FinalState,
		TemperatureRangeC: ingredient.FloatRange{
			Min: model.MinTemperatureC,
			Max: model.MaxTemperatureC,
		},
		TimeRangeMin: ingredient.FloatRange{
			Min: model.MinTimeMin,
			Max: model.MaxTimeMin,
		},
		PungencyMultiplier:   model.PungencyMultiplier,
		SweetnessMultiplier:  model.SweetnessMultiplier,
		BitternessMultiplier: model.BitternessMultiplier,
		FlavorChange:         model.FlavorChange,
		TextureChange:        model.TextureChange,
		ColorChange:          model.ColorChange,
	}
}

// nameKey normalizes a name for case-insensitive lookups and uniqueness.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
