// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
)

// FloatPtr returns a pointer to v, for nullable numeric fields.
func FloatPtr(v float64) *float64 { return &v }

// IngredientFactory generates test ingredients and their attributes from a
// seeded faker, so a fixed seed reproduces the same data.
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a new ingredient factory with seeded faker
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient builds a random domain ingredient.
func (f *IngredientFactory) Ingredient() *ingredient.Ingredient {
	categories := []ingredient.Category{
		ingredient.CategoryVegetable,
		ingredient.CategoryFruit,
		ingredient.CategoryHerb,
		ingredient.CategorySpice,
	}

	ing, err := ingredient.NewIngredient(
		f.faker.LetterN(4)+"-"+f.faker.Vegetable(),
		categories[f.faker.IntRange(0, len(categories)-1)],
	)
	if err != nil {
		panic(err)
	}
	return ing
}

// Compound builds a random compound.
func (f *IngredientFactory) Compound() ingredient.Compound {
	return ingredient.Compound{
		ID:          uuid.New(),
		Name:        f.faker.LetterN(6) + "-ol",
		Descriptors: []string{f.faker.AdjectiveDescriptive()},
	}
}

// FlavorLink builds a random flavor link for the given compound name.
func (f *IngredientFactory) FlavorLink(compoundName string, importance float64) ingredient.FlavorLink {
	return ingredient.FlavorLink{
		Compound: ingredient.Compound{
			ID:   uuid.New(),
			Name: compoundName,
		},
		ConcentrationPPM: f.faker.Float64Range(1, 5000),
		ImportanceScore:  importance,
	}
}

// UpsertIngredientCommand builds a valid random upsert command.
func (f *IngredientFactory) UpsertIngredientCommand() inbound.UpsertIngredientCommand {
	return inbound.UpsertIngredientCommand{
		Name:           f.faker.LetterN(4) + "-" + f.faker.Vegetable(),
		Category:       string(ingredient.CategoryVegetable),
		ScientificName: f.faker.LetterN(8) + " " + f.faker.LetterN(6),
	}
}

// NutritionProfile builds a random full nutritional profile.
func (f *IngredientFactory) NutritionProfile() ingredient.NutritionalProfile {
	return ingredient.NutritionalProfile{
		Calories:      FloatPtr(f.faker.Float64Range(10, 500)),
		Protein:       FloatPtr(f.faker.Float64Range(0, 30)),
		Fat:           FloatPtr(f.faker.Float64Range(0, 40)),
		Carbohydrates: FloatPtr(f.faker.Float64Range(0, 80)),
		Fiber:         FloatPtr(f.faker.Float64Range(0, 15)),
		Sugar:         FloatPtr(f.faker.Float64Range(0, 30)),
		VitaminC:      FloatPtr(f.faker.Float64Range(0, 100)),
		Calcium:       FloatPtr(f.faker.Float64Range(0, 300)),
		Iron:          FloatPtr(f.faker.Float64Range(0, 10)),
		Potassium:     FloatPtr(f.faker.Float64Range(0, 600)),
		Sodium:        FloatPtr(f.faker.Float64Range(0, 100)),
	}
}

// TransformationRule builds a rule covering the given condition window.
func (f *IngredientFactory) TransformationRule(transformationType, initial, final string, minTemp, maxTemp, minTime, maxTime float64) ingredient.TransformationRule {
	return ingredient.TransformationRule{
		TransformationType:   transformationType,
		InitialState:         initial,
		FinalState:           final,
		TemperatureRangeC:    ingredient.FloatRange{Min: FloatPtr(minTemp), Max: FloatPtr(maxTemp)},
		TimeRangeMin:         ingredient.FloatRange{Min: FloatPtr(minTime), Max: FloatPtr(maxTime)},
		PungencyMultiplier:   f.faker.Float64Range(0, 2),
		SweetnessMultiplier:  f.faker.Float64Range(0.5, 3),
		BitternessMultiplier: f.faker.Float64Range(0.5, 2),
		FlavorChange:         f.faker.Sentence(4),
	}
}

// DefaultSeed is a stable seed for factories in deterministic tests.
var DefaultSeed = int64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix())
