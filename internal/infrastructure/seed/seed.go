// Package seed loads the reference ingredient data set. Every write goes
// through the application service's upserts, so running the pass repeatedly
// converges on the same stored state.
package seed

import (
	"context"
	"fmt"

	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"go.uber.org/zap"
)

type ingredientSeed struct {
	ingredient  inbound.UpsertIngredientCommand
	nutrition   *inbound.UpsertNutritionCommand
	links       []inbound.UpsertFlavorLinkCommand
	activations []inbound.UpsertReceptorActivationCommand
	rules       []inbound.UpsertTransformationRuleCommand
}

// Run seeds the reference ingredients.
func Run(ctx context.Context, svc inbound.IngredientService, logger *zap.Logger) error {
	log := logger.Named("seed")

	for _, s := range referenceIngredients() {
		if _, err := svc.UpsertIngredient(ctx, s.ingredient); err != nil {
			return fmt.Errorf("seed ingredient %s: %w", s.ingredient.Name, err)
		}

		if s.nutrition != nil {
			n := *s.nutrition
			n.Ingredient = s.ingredient.Name
			if err := svc.UpsertNutrition(ctx, n); err != nil {
				return fmt.Errorf("seed nutrition for %s: %w", s.ingredient.Name, err)
			}
		}

		for _, link := range s.links {
			link.Ingredient = s.ingredient.Name
			if err := svc.UpsertFlavorLink(ctx, link); err != nil {
				return fmt.Errorf("seed flavor link %s/%s: %w", s.ingredient.Name, link.Compound, err)
			}
		}

		for _, act := range s.activations {
			act.Ingredient = s.ingredient.Name
			if err := svc.UpsertReceptorActivation(ctx, act); err != nil {
				return fmt.Errorf("seed activation %s/%s: %w", s.ingredient.Name, act.Receptor, err)
			}
		}

		for _, rule := range s.rules {
			rule.Ingredient = s.ingredient.Name
			if err := svc.UpsertTransformationRule(ctx, rule); err != nil {
				return fmt.Errorf("seed rule %s/%s: %w", s.ingredient.Name, rule.TransformationType, err)
			}
		}

		log.Debug("seeded ingredient", zap.String("name", s.ingredient.Name))
	}

	log.Info("Reference ingredients seeded")
	return nil
}

func f(v float64) *float64 { return &v }

// referenceIngredients returns the built-in data set. Compound importance
// scores and receptor strengths follow published flavor chemistry values
// where available and sensible estimates elsewhere.
func referenceIngredients() []ingredientSeed {
	return []ingredientSeed{
		{
			ingredient: inbound.UpsertIngredientCommand{
				Name:           "garlic",
				Category:       "vegetable",
				ScientificName: "Allium sativum",
			},
			nutrition: &inbound.UpsertNutritionCommand{
				Calories: f(149), Protein: f(6.4), Fat: f(0.5),
				Carbohydrates: f(33.1), Fiber: f(2.1), Sugar: f(1.0),
				VitaminC: f(31.2), Calcium: f(181), Iron: f(1.7),
				Potassium: f(401), Sodium: f(17),
			},
			links: []inbound.UpsertFlavorLinkCommand{
				{Compound: "allicin", Descriptors: []string{"pungent", "garlic"}, ConcentrationPPM: 3700, ImportanceScore: 0.95},
				{Compound: "diallyl disulfide", Descriptors: []string{"sulfurous", "cooked garlic"}, ConcentrationPPM: 580, ImportanceScore: 0.7},
			},
			activations: []inbound.UpsertReceptorActivationCommand{
				{Receptor: "TRPA1", Compound: "allicin", Strength: 0.9},
			},
			rules: []inbound.UpsertTransformationRuleCommand{
				{
					TransformationType: "Maillard Reaction",
					InitialState:       "raw",
					FinalState:         "golden",
					MinTemperatureC:    f(110), MaxTemperatureC: f(160),
					MinTimeMin: f(2), MaxTimeMin: f(10),
					PungencyMultiplier:   0.3,
					SweetnessMultiplier:  1.8,
					BitternessMultiplier: 1.0,
					FlavorChange:         "sharp sulfur notes mellow into sweet, nutty depth",
					TextureChange:        "firm cloves soften",
					ColorChange:          "white to pale gold",
				},
			},
		},
		{
			ingredient: inbound.UpsertIngredientCommand{
				Name:           "mint",
				Category:       "herb",
				ScientificName: "Mentha piperita",
				Aliases:        []string{"peppermint"},
			},
			links: []inbound.UpsertFlavorLinkCommand{
				{Compound: "menthol", Descriptors: []string{"cooling", "minty"}, ConcentrationPPM: 4000, ImportanceScore: 0.9},
				{Compound: "menthone", Descriptors: []string{"minty", "green"}, ConcentrationPPM: 1900, ImportanceScore: 0.6},
			},
			activations: []inbound.UpsertReceptorActivationCommand{
				{Receptor: "TRPM8", Compound: "menthol", Strength: 0.85},
			},
		},
		{
			ingredient: inbound.UpsertIngredientCommand{
				Name:           "chili pepper",
				Category:       "spice",
				ScientificName: "Capsicum annuum",
				Aliases:        []string{"chilli", "hot pepper"},
			},
			links: []inbound.UpsertFlavorLinkCommand{
				{Compound: "capsaicin", Descriptors: []string{"burning", "pungent"}, ConcentrationPPM: 1200, ImportanceScore: 0.95},
			},
			activations: []inbound.UpsertReceptorActivationCommand{
				{Receptor: "TRPV1", Compound: "capsaicin", Strength: 0.95},
			},
		},
		{
			ingredient: inbound.UpsertIngredientCommand{
				Name:           "tomato",
				Category:       "fruit",
				ScientificName: "Solanum lycopersicum",
			},
			nutrition: &inbound.UpsertNutritionCommand{
				Calories: f(18), Protein: f(0.9), Fat: f(0.2),
				Carbohydrates: f(3.9), Fiber: f(1.2), Sugar: f(2.6),
				VitaminC: f(13.7), Potassium: f(237),
			},
			links: []inbound.UpsertFlavorLinkCommand{
				{Compound: "(Z)-3-hexenal", Descriptors: []string{"green", "fresh"}, ConcentrationPPM: 12, ImportanceScore: 0.8},
				{Compound: "furaneol", Descriptors: []string{"caramel", "sweet"}, ConcentrationPPM: 5, ImportanceScore: 0.5},
				{Compound: "linalool", Descriptors: []string{"floral"}, ConcentrationPPM: 2, ImportanceScore: 0.4},
			},
			rules: []inbound.UpsertTransformationRuleCommand{
				{
					TransformationType: "Maillard Reaction",
					InitialState:       "raw",
					FinalState:         "roasted",
					MinTemperatureC:    f(160), MaxTemperatureC: f(230),
					MinTimeMin: f(20), MaxTimeMin: f(90),
					PungencyMultiplier:   1.0,
					SweetnessMultiplier:  2.0,
					BitternessMultiplier: 1.2,
					FlavorChange:         "bright acidity concentrates into jammy sweetness",
					TextureChange:        "firm flesh collapses",
					ColorChange:          "red deepens, edges char",
				},
			},
		},
		{
			ingredient: inbound.UpsertIngredientCommand{
				Name:           "basil",
				Category:       "herb",
				ScientificName: "Ocimum basilicum",
			},
			links: []inbound.UpsertFlavorLinkCommand{
				{Compound: "linalool", Descriptors: []string{"floral"}, ConcentrationPPM: 320, ImportanceScore: 0.7},
				{Compound: "eugenol", Descriptors: []string{"clove", "spicy"}, ConcentrationPPM: 150, ImportanceScore: 0.6},
				{Compound: "(Z)-3-hexenal", Descriptors: []string{"green", "fresh"}, ConcentrationPPM: 8, ImportanceScore: 0.5},
			},
		},
		{
			ingredient: inbound.UpsertIngredientCommand{
				Name:           "onion",
				Category:       "vegetable",
				ScientificName: "Allium cepa",
			},
			nutrition: &inbound.UpsertNutritionCommand{
				Calories: f(40), Protein: f(1.1), Fat: f(0.1),
				Carbohydrates: f(9.3), Fiber: f(1.7), Sugar: f(4.2),
				VitaminC: f(7.4), Potassium: f(146),
			},
			links: []inbound.UpsertFlavorLinkCommand{
				{Compound: "diallyl disulfide", Descriptors: []string{"sulfurous"}, ConcentrationPPM: 110, ImportanceScore: 0.6},
				{Compound: "propanethial S-oxide", Descriptors: []string{"lachrymatory", "sharp"}, ConcentrationPPM: 90, ImportanceScore: 0.8},
			},
			activations: []inbound.UpsertReceptorActivationCommand{
				{Receptor: "TRPA1", Compound: "propanethial S-oxide", Strength: 0.7},
			},
			rules: []inbound.UpsertTransformationRuleCommand{
				{
					TransformationType: "Caramelization",
					InitialState:       "raw",
					FinalState:         "caramelized",
					MinTemperatureC:    f(120), MaxTemperatureC: f(180),
					MinTimeMin: f(20), MaxTimeMin: f(60),
					PungencyMultiplier:   0.1,
					SweetnessMultiplier:  2.5,
					BitternessMultiplier: 1.1,
					FlavorChange:         "sharp bite gives way to deep caramel sweetness",
					TextureChange:        "crisp layers turn silky",
					ColorChange:          "white to amber brown",
				},
			},
		},
	}
}
