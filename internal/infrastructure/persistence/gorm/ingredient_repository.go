package gorm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IngredientRepository implements the ingredient repository interface using
// GORM. Absent rows surface as (nil, nil); every write is an upsert keyed on
// the table's uniqueness invariant, so repeated calls with identical data
// converge on one row.
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository.
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// FindByName finds an ingredient by its name or one of its aliases,
// case-insensitively.
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "name_key = ?", nameKey(name))
	if result.Error == nil {
		return ModelToIngredient(&model)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	// Alias match. Aliases are stored as a JSON array, so a candidate scan
	// narrowed by LIKE is confirmed against the domain matcher.
	pattern := "%" + strings.ToLower(name) + "%"
	var candidates []IngredientModel
	result = r.db.WithContext(ctx).
		Where("LOWER(aliases) LIKE ?", pattern).
		Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range candidates {
		ing, err := ModelToIngredient(&candidates[i])
		if err != nil {
			return nil, err
		}
		if ing.Matches(name) {
			return ing, nil
		}
	}

	return nil, nil
}

// Search finds ingredients whose name or aliases contain the query,
// optionally restricted to one category. Results are ordered by name.
func (r *IngredientRepository) Search(ctx context.Context, query string, category *ingredient.Category) ([]*ingredient.Ingredient, error) {
	q := r.db.WithContext(ctx).Model(&IngredientModel{})

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("name_key LIKE ? OR LOWER(aliases) LIKE ?", pattern, pattern)
	}
	if category != nil {
		q = q.Where("category = ?", string(*category))
	}

	var models []IngredientModel
	result := q.Order("name_key ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]*ingredient.Ingredient, len(models))
	for i := range models {
		ing, err := ModelToIngredient(&models[i])
		if err != nil {
			return nil, err
		}
		ingredients[i] = ing
	}

	return ingredients, nil
}

// ListNames returns every stored ingredient name, ordered.
func (r *IngredientRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string

	result := r.db.WithContext(ctx).
		Model(&IngredientModel{}).
		Order("name_key ASC").
		Pluck("name", &names)
	if result.Error != nil {
		return nil, result.Error
	}

	return names, nil
}

// GetNutrition returns the ingredient's nutritional profile, nil when none
// is stored.
func (r *IngredientRepository) GetNutrition(ctx context.Context, name string) (*ingredient.NutritionalProfile, error) {
	id, err := r.resolveID(ctx, name)
	if err != nil || id == nil {
		return nil, err
	}

	var model NutritionModel
	result := r.db.WithContext(ctx).First(&model, "ingredient_id = ?", *id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToNutrition(&model), nil
}

// GetFlavorLinks returns the ingredient's compound links with their
// compounds attached, ordered by compound name.
func (r *IngredientRepository) GetFlavorLinks(ctx context.Context, name string) ([]ingredient.FlavorLink, error) {
	id, err := r.resolveID(ctx, name)
	if err != nil || id == nil {
		return nil, err
	}

	var models []FlavorLinkModel
	result := r.db.WithContext(ctx).
		Preload("Compound").
		Where("ingredient_id = ?", *id).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	links := make([]ingredient.FlavorLink, len(models))
	for i := range models {
		links[i] = ModelToFlavorLink(&models[i])
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].Compound.Name < links[j].Compound.Name
	})

	return links, nil
}

// GetReceptorActivations returns the ingredient's receptor activations with
// their compounds attached.
func (r *IngredientRepository) GetReceptorActivations(ctx context.Context, name string) ([]ingredient.ReceptorActivation, error) {
	id, err := r.resolveID(ctx, name)
	if err != nil || id == nil {
		return nil, err
	}

	var models []ReceptorActivationModel
	result := r.db.WithContext(ctx).
		Preload("Compound").
		Where("ingredient_id = ?", *id).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	activations := make([]ingredient.ReceptorActivation, len(models))
	for i := range models {
		activations[i] = ModelToReceptorActivation(&models[i])
	}
	sort.Slice(activations, func(i, j int) bool {
		return activations[i].ReceptorName < activations[j].ReceptorName
	})

	return activations, nil
}

// GetTransformationRule returns the rule for the given state transition,
// nil when none is stored. Several rule types may share a transition, so
// the lookup orders by type to keep the chosen rule deterministic.
func (r *IngredientRepository) GetTransformationRule(ctx context.Context, name, initialState, finalState string) (*ingredient.TransformationRule, error) {
	id, err := r.resolveID(ctx, name)
	if err != nil || id == nil {
		return nil, err
	}

	var model TransformationRuleModel
	result := r.db.WithContext(ctx).
		Where("ingredient_id = ? AND initial_state = ? AND final_state = ?",
			*id, initialState, finalState).
		Order("transformation_type").
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToTransformationRule(&model), nil
}

// UpsertIngredient creates or replaces the ingredient row keyed on the
// case-insensitive name.
func (r *IngredientRepository) UpsertIngredient(ctx context.Context, ing *ingredient.Ingredient) error {
	model := IngredientToModel(ing)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "category", "scientific_name", "aliases", "updated_at",
		}),
	}).Create(model)

	return result.Error
}

// UpsertNutrition replaces the ingredient's nutritional profile whole.
func (r *IngredientRepository) UpsertNutrition(ctx context.Context, name string, profile ingredient.NutritionalProfile) error {
	id, err := r.requireID(ctx, name)
	if err != nil {
		return err
	}

	model := NutritionToModel(id, profile)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calories", "protein", "fat", "carbohydrates", "fiber", "sugar",
			"vitamin_c", "calcium", "iron", "potassium", "sodium", "updated_at",
		}),
	}).Create(model)

	return result.Error
}

// UpsertCompound creates or refreshes a compound row keyed on the
// case-insensitive name. An existing row keeps its ID.
func (r *IngredientRepository) UpsertCompound(ctx context.Context, compound ingredient.Compound) error {
	model := CompoundToModel(compound)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "descriptors", "updated_at",
		}),
	}).Create(model)

	return result.Error
}

// UpsertFlavorLink creates or replaces the link between the ingredient and
// the named compound.
func (r *IngredientRepository) UpsertFlavorLink(ctx context.Context, name string, link ingredient.FlavorLink) error {
	id, err := r.requireID(ctx, name)
	if err != nil {
		return err
	}

	compoundID, err := r.compoundID(ctx, link.Compound.Name)
	if err != nil {
		return err
	}

	model := &FlavorLinkModel{
		IngredientID:     id,
		CompoundID:       compoundID,
		ConcentrationPPM: link.ConcentrationPPM,
		ImportanceScore:  link.ImportanceScore,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ingredient_id"}, {Name: "compound_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"concentration_ppm", "importance_score", "updated_at",
		}),
	}).Create(model)

	return result.Error
}

// UpsertReceptorActivation creates or replaces the ingredient's activation
// record for the named receptor.
func (r *IngredientRepository) UpsertReceptorActivation(ctx context.Context, name string, activation ingredient.ReceptorActivation) error {
	id, err := r.requireID(ctx, name)
	if err != nil {
		return err
	}

	compoundID, err := r.compoundID(ctx, activation.Compound.Name)
	if err != nil {
		return err
	}

	model := &ReceptorActivationModel{
		IngredientID: id,
		ReceptorName: activation.ReceptorName,
		CompoundID:   compoundID,
		Strength:     activation.Strength,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ingredient_id"}, {Name: "receptor_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"compound_id", "strength", "updated_at",
		}),
	}).Create(model)

	return result.Error
}

// UpsertTransformationRule creates or replaces the ingredient's rule for
// the given transformation and state transition.
func (r *IngredientRepository) UpsertTransformationRule(ctx context.Context, name string, rule ingredient.TransformationRule) error {
	id, err := r.requireID(ctx, name)
	if err != nil {
		return err
	}

	model := TransformationRuleToModel(id, rule)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "ingredient_id"}, {Name: "transformation_type"},
			{Name: "initial_state"}, {Name: "final_state"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_temperature_c", "max_temperature_c", "min_time_min", "max_time_min",
			"pungency_multiplier", "sweetness_multiplier", "bitterness_multiplier",
			"flavor_change", "texture_change", "color_change", "updated_at",
		}),
	}).Create(model)

	return result.Error
}

// resolveID maps a name to the stored ingredient ID, nil when absent.
func (r *IngredientRepository) resolveID(ctx context.Context, name string) (*uuid.UUID, error) {
	ing, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	id := ing.ID()
	return &id, nil
}

// requireID maps a name to the stored ingredient ID, failing when absent.
// Attribute writes always target an existing ingredient.
func (r *IngredientRepository) requireID(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := r.resolveID(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, fmt.Errorf("ingredient %q not found", name)
	}
	return *id, nil
}

// compoundID maps a compound name to its stored ID.
func (r *IngredientRepository) compoundID(ctx context.Context, name string) (uuid.UUID, error) {
	var model CompoundModel
	result := r.db.WithContext(ctx).First(&model, "name_key = ?", nameKey(name))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("compound %q not found", name)
		}
		return uuid.Nil, result.Error
	}
	return model.ID, nil
}
