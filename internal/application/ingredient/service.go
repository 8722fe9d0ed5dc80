// Package ingredient implements the ingredient write boundary and read
// facade over the store.
package ingredient

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/palateworks/flavorcore/internal/domain/cooking"
	domain "github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/palateworks/flavorcore/internal/domain/sensory"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"github.com/palateworks/flavorcore/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the ingredient use cases.
type Service struct {
	repo     outbound.IngredientRepository
	sink     outbound.KnowledgeSink
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new ingredient service. The knowledge sink is
// optional; pass nil when no external knowledge system is wired.
func NewService(repo outbound.IngredientRepository, sink outbound.KnowledgeSink, logger *zap.Logger) inbound.IngredientService {
	return &Service{
		repo:     repo,
		sink:     sink,
		validate: validator.New(),
		logger:   logger.Named("ingredient-service"),
	}
}

// Get returns the stored ingredient by name or alias.
func (s *Service) Get(ctx context.Context, name string) (*inbound.IngredientDTO, error) {
	ing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}
	if ing == nil {
		return nil, errors.NewIngredientNotFoundError(name)
	}
	dto := toDTO(ing)
	return &dto, nil
}

// Search returns ingredients whose name or alias contains the query,
// optionally restricted to one category. Results are ordered by name.
func (s *Service) Search(ctx context.Context, query, category string) ([]inbound.IngredientDTO, error) {
	var cat *domain.Category
	if category != "" {
		c := domain.Category(category)
		if !c.Valid() {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown category: %s", category))
		}
		cat = &c
	}

	found, err := s.repo.Search(ctx, query, cat)
	if err != nil {
		return nil, errors.NewDatabaseError("search ingredients", err)
	}

	dtos := make([]inbound.IngredientDTO, 0, len(found))
	for _, ing := range found {
		dtos = append(dtos, toDTO(ing))
	}
	return dtos, nil
}

// UpsertIngredient creates the ingredient or replaces its descriptive
// attributes. The name is the identity and is matched case-insensitively,
// so re-running with the same name never creates a second row.
func (s *Service) UpsertIngredient(ctx context.Context, cmd inbound.UpsertIngredientCommand) (*inbound.IngredientDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := s.repo.FindByName(ctx, cmd.Name)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}

	var ing *domain.Ingredient
	if existing != nil {
		ing = existing
	} else {
		ing, err = domain.NewIngredient(cmd.Name, domain.Category(cmd.Category))
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ScientificName != "" {
		ing.SetScientificName(cmd.ScientificName)
	}
	for _, alias := range cmd.Aliases {
		ing.AddAlias(alias)
	}

	if err := s.repo.UpsertIngredient(ctx, ing); err != nil {
		return nil, errors.NewDatabaseError("upsert ingredient", err)
	}

	s.logger.Info("ingredient upserted",
		zap.String("name", ing.Name()),
		zap.String("category", string(ing.Category())))

	dto := toDTO(ing)
	return &dto, nil
}

// UpsertNutrition replaces the ingredient's nutritional profile whole. Nil
// fields are stored as unknown, not as zero.
func (s *Service) UpsertNutrition(ctx context.Context, cmd inbound.UpsertNutritionCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return errors.NewValidationError(err.Error())
	}

	profile := domain.NutritionalProfile{
		Calories:      cmd.Calories,
		Protein:       cmd.Protein,
		Fat:           cmd.Fat,
		Carbohydrates: cmd.Carbohydrates,
		Fiber:         cmd.Fiber,
		Sugar:         cmd.Sugar,
		VitaminC:      cmd.VitaminC,
		Calcium:       cmd.Calcium,
		Iron:          cmd.Iron,
		Potassium:     cmd.Potassium,
		Sodium:        cmd.Sodium,
	}
	if err := profile.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	ing, err := s.requireIngredient(ctx, cmd.Ingredient)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertNutrition(ctx, ing.Name(), profile); err != nil {
		return errors.NewDatabaseError("upsert nutrition", err)
	}
	return nil
}

// UpsertFlavorLink links a compound to the ingredient, creating the compound
// record when it does not exist yet.
func (s *Service) UpsertFlavorLink(ctx context.Context, cmd inbound.UpsertFlavorLinkCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return errors.NewValidationError(err.Error())
	}

	link := domain.FlavorLink{
		Compound: domain.Compound{
			ID:          uuid.New(),
			Name:        cmd.Compound,
			Descriptors: cmd.Descriptors,
		},
		ConcentrationPPM: cmd.ConcentrationPPM,
		ImportanceScore:  cmd.ImportanceScore,
	}
	if err := link.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	ing, err := s.requireIngredient(ctx, cmd.Ingredient)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertCompound(ctx, link.Compound); err != nil {
		return errors.NewDatabaseError("upsert compound", err)
	}
	if err := s.repo.UpsertFlavorLink(ctx, ing.Name(), link); err != nil {
		return errors.NewDatabaseError("upsert flavor link", err)
	}
	return nil
}

// UpsertReceptorActivation records that a compound in the ingredient
// activates a catalog receptor.
func (s *Service) UpsertReceptorActivation(ctx context.Context, cmd inbound.UpsertReceptorActivationCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if _, ok := sensory.Lookup(cmd.Receptor); !ok {
		return errors.NewConfigurationError("sensory receptor", cmd.Receptor)
	}

	activation := domain.ReceptorActivation{
		ReceptorName: cmd.Receptor,
		Compound: domain.Compound{
			ID:   uuid.New(),
			Name: cmd.Compound,
		},
		Strength: cmd.Strength,
	}
	if err := activation.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	ing, err := s.requireIngredient(ctx, cmd.Ingredient)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertCompound(ctx, activation.Compound); err != nil {
		return errors.NewDatabaseError("upsert compound", err)
	}
	if err := s.repo.UpsertReceptorActivation(ctx, ing.Name(), activation); err != nil {
		return errors.NewDatabaseError("upsert receptor activation", err)
	}
	return nil
}

// UpsertTransformationRule records how the ingredient responds to a catalog
// transformation between two states.
func (s *Service) UpsertTransformationRule(ctx context.Context, cmd inbound.UpsertTransformationRuleCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if _, ok := cooking.LookupType(cmd.TransformationType); !ok {
		return errors.NewConfigurationError("transformation type", cmd.TransformationType)
	}

	rule := domain.TransformationRule{
		TransformationType:   cmd.TransformationType,
		InitialState:         cmd.InitialState,
		FinalState:           cmd.FinalState,
		TemperatureRangeC:    domain.FloatRange{Min: cmd.MinTemperatureC, Max: cmd.MaxTemperatureC},
		TimeRangeMin:         domain.FloatRange{Min: cmd.MinTimeMin, Max: cmd.MaxTimeMin},
		PungencyMultiplier:   cmd.PungencyMultiplier,
		SweetnessMultiplier:  cmd.SweetnessMultiplier,
		BitternessMultiplier: cmd.BitternessMultiplier,
		FlavorChange:         cmd.FlavorChange,
		TextureChange:        cmd.TextureChange,
		ColorChange:          cmd.ColorChange,
	}
	if err := rule.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	ing, err := s.requireIngredient(ctx, cmd.Ingredient)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertTransformationRule(ctx, ing.Name(), rule); err != nil {
		return errors.NewDatabaseError("upsert transformation rule", err)
	}
	return nil
}

// ExportAttributes assembles the ingredient's attribute bundle and hands it
// to the knowledge sink. Sink failures are logged, never propagated; the
// ingredient not existing is still an error.
func (s *Service) ExportAttributes(ctx context.Context, name string) error {
	ing, err := s.requireIngredient(ctx, name)
	if err != nil {
		return err
	}

	if s.sink == nil {
		s.logger.Debug("no knowledge sink wired, skipping export",
			zap.String("ingredient", ing.Name()))
		return nil
	}

	bundle, err := s.buildBundle(ctx, ing)
	if err != nil {
		return err
	}

	if err := s.sink.Publish(ctx, *bundle); err != nil {
		s.logger.Warn("knowledge sink publish failed",
			zap.String("ingredient", ing.Name()),
			zap.Error(err))
		return nil
	}

	s.logger.Info("ingredient attributes exported", zap.String("ingredient", ing.Name()))
	return nil
}

// buildBundle projects the ingredient's stored attributes into a flat
// bundle. Compounds are ordered by importance so a truncating consumer
// keeps the most characteristic ones.
func (s *Service) buildBundle(ctx context.Context, ing *domain.Ingredient) (*domain.AttributeBundle, error) {
	bundle := &domain.AttributeBundle{
		Name:           ing.Name(),
		Category:       string(ing.Category()),
		ScientificName: ing.ScientificName(),
		ExportedAt:     time.Now().UTC(),
	}

	profile, err := s.repo.GetNutrition(ctx, ing.Name())
	if err != nil {
		return nil, errors.NewDatabaseError("load nutrition", err)
	}
	if profile != nil {
		bundle.Nutrition = nutritionMap(*profile)
	}

	links, err := s.repo.GetFlavorLinks(ctx, ing.Name())
	if err != nil {
		return nil, errors.NewDatabaseError("load flavor links", err)
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].ImportanceScore != links[j].ImportanceScore {
			return links[i].ImportanceScore > links[j].ImportanceScore
		}
		return links[i].Compound.Name < links[j].Compound.Name
	})
	for _, link := range links {
		bundle.TopCompounds = append(bundle.TopCompounds, link.Compound.Name)
	}

	activations, err := s.repo.GetReceptorActivations(ctx, ing.Name())
	if err != nil {
		return nil, errors.NewDatabaseError("load receptor activations", err)
	}
	for _, a := range activations {
		bundle.Receptors = append(bundle.Receptors, a.ReceptorName)
	}
	sort.Strings(bundle.Receptors)

	return bundle, nil
}

// requireIngredient resolves a name to a stored ingredient, failing with a
// not-found error when nothing matches.
func (s *Service) requireIngredient(ctx context.Context, name string) (*domain.Ingredient, error) {
	ing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}
	if ing == nil {
		return nil, errors.NewIngredientNotFoundError(name)
	}
	return ing, nil
}

func toDTO(ing *domain.Ingredient) inbound.IngredientDTO {
	return inbound.IngredientDTO{
		Name:           ing.Name(),
		Category:       string(ing.Category()),
		ScientificName: ing.ScientificName(),
		Aliases:        ing.Aliases(),
	}
}

func nutritionMap(p domain.NutritionalProfile) map[string]any {
	m := make(map[string]any)
	put := func(key string, v *float64) {
		if v != nil {
			m[key] = *v
		}
	}
	put("calories", p.Calories)
	put("protein_g", p.Protein)
	put("fat_g", p.Fat)
	put("carbohydrates_g", p.Carbohydrates)
	put("fiber_g", p.Fiber)
	put("sugar_g", p.Sugar)
	put("vitamin_c_mg", p.VitaminC)
	put("calcium_mg", p.Calcium)
	put("iron_mg", p.Iron)
	put("potassium_mg", p.Potassium)
	put("sodium_mg", p.Sodium)
	if len(m) == 0 {
		return nil
	}
	return m
}
