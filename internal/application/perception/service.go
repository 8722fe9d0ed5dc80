// Package perception provides the application layer for receptor activation.
package perception

import (
	"context"
	stderrors "errors"

	"github.com/palateworks/flavorcore/internal/domain/sensory"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"github.com/palateworks/flavorcore/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the perception use cases over the static sensory
// catalog and the ingredient store.
type Service struct {
	repo   outbound.IngredientRepository
	logger *zap.Logger
}

// NewService creates a new perception service.
func NewService(repo outbound.IngredientRepository, logger *zap.Logger) inbound.PerceptionService {
	return &Service{
		repo:   repo,
		logger: logger.Named("perception-service"),
	}
}

// CalculateActivation computes the dose-response of one receptor to one
// compound.
func (s *Service) CalculateActivation(ctx context.Context, receptorName, compound string, concentrationUM float64) (*sensory.Activation, error) {
	activation, err := sensory.CalculateActivation(receptorName, compound, concentrationUM)
	if err != nil {
		return nil, translateSensoryError(err, receptorName)
	}
	return activation, nil
}

// PerceiveIngredient computes the activation profile across every receptor
// link the stored ingredient carries.
//
// The concentration fed into each dose-response curve comes from the
// ingredient's flavor link for the activating compound when one exists,
// converted from the stored ppm into µM via the compound's molar mass.
// Compounds recorded only as activators, or without a cataloged molar mass,
// are evaluated at the receptor's half-maximal concentration.
func (s *Service) PerceiveIngredient(ctx context.Context, name string) ([]inbound.IngredientPerception, error) {
	ing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}
	if ing == nil {
		return nil, errors.NewIngredientNotFoundError(name)
	}

	activations, err := s.repo.GetReceptorActivations(ctx, ing.Name())
	if err != nil {
		return nil, errors.NewDatabaseError("load receptor activations", err)
	}

	links, err := s.repo.GetFlavorLinks(ctx, ing.Name())
	if err != nil {
		return nil, errors.NewDatabaseError("load flavor links", err)
	}
	concentrations := make(map[string]float64, len(links))
	for _, link := range links {
		concentrations[link.Compound.Name] = link.ConcentrationPPM
	}

	perceptions := make([]inbound.IngredientPerception, 0, len(activations))
	for _, ra := range activations {
		receptor, found := sensory.Lookup(ra.ReceptorName)
		if !found {
			return nil, errors.NewConfigurationError("sensory receptor", ra.ReceptorName)
		}

		concentration := receptor.HalfMaxUM
		if ppm, linked := concentrations[ra.Compound.Name]; linked {
			if um, converted := sensory.MicromolarFromPPM(ra.Compound.Name, ppm); converted {
				concentration = um
			}
		}

		activation, err := sensory.CalculateActivation(ra.ReceptorName, ra.Compound.Name, concentration)
		if err != nil {
			return nil, translateSensoryError(err, ra.ReceptorName)
		}

		perceptions = append(perceptions, inbound.IngredientPerception{
			Activation:        *activation,
			BaselineStrength:  ra.Strength,
			WeightedIntensity: activation.Intensity * ra.Strength,
		})
	}

	return perceptions, nil
}

// translateSensoryError maps domain sentinels onto the application error
// taxonomy.
func translateSensoryError(err error, receptorName string) error {
	switch {
	case stderrors.Is(err, sensory.ErrUnknownReceptor):
		return errors.NewConfigurationError("sensory receptor", receptorName)
	case stderrors.Is(err, sensory.ErrNegativeConcentration), stderrors.Is(err, sensory.ErrEmptyCompound):
		return errors.NewValidationError(err.Error())
	default:
		return errors.Wrap(err, "receptor activation failed")
	}
}
