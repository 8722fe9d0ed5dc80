// Package transform provides the application layer for cooking
// transformations.
package transform

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/palateworks/flavorcore/internal/domain/cooking"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"github.com/palateworks/flavorcore/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the transformation use cases.
type Service struct {
	repo   outbound.IngredientRepository
	logger *zap.Logger
}

// NewService creates a new transformation service.
func NewService(repo outbound.IngredientRepository, logger *zap.Logger) inbound.TransformService {
	return &Service{
		repo:   repo,
		logger: logger.Named("transform-service"),
	}
}

// Maillard computes Maillard browning under the given conditions.
func (s *Service) Maillard(ctx context.Context, temperatureC, timeMin, proteinContent, sugarContent float64) (*cooking.MaillardResult, error) {
	result, err := cooking.MaillardReaction(temperatureC, timeMin, proteinContent, sugarContent)
	if err != nil {
		return nil, translateCookingError(err, "")
	}
	return result, nil
}

// Caramelize computes sugar caramelization under the given conditions.
func (s *Service) Caramelize(ctx context.Context, sugar cooking.SugarType, temperatureC, timeMin float64) (*cooking.CaramelizationResult, error) {
	result, err := cooking.Caramelize(sugar, temperatureC, timeMin)
	if err != nil {
		return nil, translateCookingError(err, string(sugar))
	}
	return result, nil
}

// AllicinFormation computes allicin release for a garlic preparation.
func (s *Service) AllicinFormation(ctx context.Context, preparation cooking.Preparation, timeMin float64) (*cooking.AllicinResult, error) {
	result, err := cooking.AllicinFormation(preparation, timeMin)
	if err != nil {
		return nil, translateCookingError(err, string(preparation))
	}
	return result, nil
}

// ApplyRule evaluates an ingredient's stored transformation rule under the
// given conditions. When the conditions fall outside the rule's ranges the
// outcome is returned with neutral multipliers and ConditionsMet false.
func (s *Service) ApplyRule(ctx context.Context, cmd inbound.ApplyRuleCommand) (*inbound.TransformOutcome, error) {
	if cmd.TemperatureC < 0 {
		return nil, errors.NewValidationError("temperature must not be negative")
	}
	if cmd.TimeMin < 0 {
		return nil, errors.NewValidationError("time must not be negative")
	}

	ing, err := s.repo.FindByName(ctx, cmd.Ingredient)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}
	if ing == nil {
		return nil, errors.NewIngredientNotFoundError(cmd.Ingredient)
	}

	rule, err := s.repo.GetTransformationRule(ctx, ing.Name(), cmd.InitialState, cmd.FinalState)
	if err != nil {
		return nil, errors.NewDatabaseError("load transformation rule", err)
	}
	if rule == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf(
			"transformation rule %s to %s for %s", cmd.InitialState, cmd.FinalState, ing.Name()))
	}

	if _, ok := cooking.LookupType(rule.TransformationType); !ok {
		return nil, errors.NewConfigurationError("transformation type", rule.TransformationType)
	}

	outcome := &inbound.TransformOutcome{
		Ingredient:           ing.Name(),
		TransformationType:   rule.TransformationType,
		InitialState:         rule.InitialState,
		FinalState:           rule.FinalState,
		PungencyMultiplier:   1,
		SweetnessMultiplier:  1,
		BitternessMultiplier: 1,
	}

	if rule.TemperatureRangeC.Contains(cmd.TemperatureC) && rule.TimeRangeMin.Contains(cmd.TimeMin) {
		outcome.ConditionsMet = true
		outcome.PungencyMultiplier = rule.PungencyMultiplier
		outcome.SweetnessMultiplier = rule.SweetnessMultiplier
		outcome.BitternessMultiplier = rule.BitternessMultiplier
		outcome.FlavorChange = rule.FlavorChange
		outcome.TextureChange = rule.TextureChange
		outcome.ColorChange = rule.ColorChange
	}

	return outcome, nil
}

// translateCookingError maps domain sentinels onto the application error
// taxonomy.
func translateCookingError(err error, catalogName string) error {
	switch {
	case stderrors.Is(err, cooking.ErrUnknownSugar):
		return errors.NewConfigurationError("caramelization sugar", catalogName)
	case stderrors.Is(err, cooking.ErrUnknownPreparation):
		return errors.NewConfigurationError("garlic preparation", catalogName)
	case stderrors.Is(err, cooking.ErrUnknownTransformation):
		return errors.NewConfigurationError("transformation type", catalogName)
	case stderrors.Is(err, cooking.ErrNegativeTemperature),
		stderrors.Is(err, cooking.ErrNegativeTime),
		stderrors.Is(err, cooking.ErrReactantOutOfRange):
		return errors.NewValidationError(err.Error())
	default:
		return errors.Wrap(err, "transformation failed")
	}
}
