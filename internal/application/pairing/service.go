// Package pairing provides the application layer for flavor pairing.
//
// The scorer follows the molecular-gastronomy heuristic: ingredients sharing
// many high-importance flavor compounds pair well. Scores are pure functions
// of the stored compound data, so the service holds no state beyond its
// collaborators and is safe for concurrent use.
package pairing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"github.com/palateworks/flavorcore/pkg/errors"
	"go.uber.org/zap"
)

// defaultSuggestCacheTTL bounds how stale cached suggestion lists may get.
const defaultSuggestCacheTTL = 10 * time.Minute

// defaultSuggestWorkers bounds the fan-out when scanning all candidates.
const defaultSuggestWorkers = 8

// Options tunes the suggestion scan. Zero values fall back to the package
// defaults, so Options{} is always valid.
type Options struct {
	SuggestWorkers  int
	SuggestCacheTTL time.Duration
}

// Service implements the pairing use cases.
type Service struct {
	repo     outbound.IngredientRepository
	cache    outbound.CacheRepository
	logger   *zap.Logger
	workers  int
	cacheTTL time.Duration
}

// NewService creates a new pairing service. cache may be nil, in which case
// suggestion results are recomputed on every call.
func NewService(repo outbound.IngredientRepository, cache outbound.CacheRepository, logger *zap.Logger, opts Options) inbound.PairingService {
	workers := opts.SuggestWorkers
	if workers < 1 {
		workers = defaultSuggestWorkers
	}
	cacheTTL := opts.SuggestCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultSuggestCacheTTL
	}

	return &Service{
		repo:     repo,
		cache:    cache,
		logger:   logger.Named("pairing-service"),
		workers:  workers,
		cacheTTL: cacheTTL,
	}
}

// Score computes the pairing strength between two ingredients.
func (s *Service) Score(ctx context.Context, nameA, nameB string) (float64, error) {
	linksA, err := s.linksFor(ctx, nameA)
	if err != nil {
		return 0, err
	}
	linksB, err := s.linksFor(ctx, nameB)
	if err != nil {
		return 0, err
	}

	return scoreLinks(linksA, linksB), nil
}

// Suggest scores name against every other stored ingredient.
func (s *Service) Suggest(ctx context.Context, name string, minStrength float64) ([]inbound.PairingSuggestion, error) {
	if minStrength < 0 || minStrength > 1 {
		return nil, errors.NewValidationError("min strength must be between 0.0 and 1.0")
	}

	if cached, ok := s.cachedSuggestions(ctx, name, minStrength); ok {
		return cached, nil
	}

	baseLinks, err := s.linksFor(ctx, name)
	if err != nil {
		return nil, err
	}

	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredient names", err)
	}

	// Each candidate's score depends only on its own links and the base
	// ingredient's, so candidates fan out without coordination beyond the
	// read path.
	type scored struct {
		name     string
		strength float64
		err      error
	}

	candidates := make(chan string)
	results := make(chan scored)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for candidate := range candidates {
				links, err := s.repo.GetFlavorLinks(ctx, candidate)
				if err != nil {
					results <- scored{name: candidate, err: err}
					continue
				}
				results <- scored{name: candidate, strength: scoreLinks(baseLinks, links)}
			}
		}()
	}

	go func() {
		for _, candidate := range names {
			if strings.EqualFold(candidate, name) {
				continue
			}
			candidates <- candidate
		}
		close(candidates)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var suggestions []inbound.PairingSuggestion
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if r.strength >= minStrength {
			suggestions = append(suggestions, inbound.PairingSuggestion{
				Ingredient: r.name,
				Strength:   r.strength,
			})
		}
	}
	if firstErr != nil {
		return nil, errors.NewDatabaseError("score pairing candidates", firstErr)
	}

	// Deterministic ordering: strength descending, names ascending on ties.
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Strength != suggestions[j].Strength {
			return suggestions[i].Strength > suggestions[j].Strength
		}
		return suggestions[i].Ingredient < suggestions[j].Ingredient
	})

	s.cacheSuggestions(ctx, name, minStrength, suggestions)

	return suggestions, nil
}

// linksFor loads an ingredient's flavor links, requiring the ingredient to
// exist.
func (s *Service) linksFor(ctx context.Context, name string) ([]ingredient.FlavorLink, error) {
	ing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}
	if ing == nil {
		return nil, errors.NewIngredientNotFoundError(name)
	}

	links, err := s.repo.GetFlavorLinks(ctx, ing.Name())
	if err != nil {
		return nil, errors.NewDatabaseError("load flavor links", err)
	}
	return links, nil
}

// scoreLinks computes the pairing strength from two compound profiles.
//
// For every compound present in both profiles with nonzero importance on
// both sides, the importance scores are multiplied; the products are
// averaged and the square root taken. The mean keeps ingredients sharing
// hundreds of trace compounds from saturating the scale, and the square root
// rewards sharing a few dominant compounds over many weak ones while staying
// sub-linear in count. The result is clamped to [0, 1] against
// floating-point overshoot.
//
// Shared compounds are summed in sorted order so repeated calls round
// identically.
func scoreLinks(linksA, linksB []ingredient.FlavorLink) float64 {
	importanceB := make(map[string]float64, len(linksB))
	for _, link := range linksB {
		if link.ImportanceScore > 0 {
			importanceB[link.Compound.Name] = link.ImportanceScore
		}
	}

	type shared struct {
		name    string
		product float64
	}
	var matches []shared
	for _, link := range linksA {
		if link.ImportanceScore <= 0 {
			continue
		}
		if imp, ok := importanceB[link.Compound.Name]; ok {
			matches = append(matches, shared{name: link.Compound.Name, product: link.ImportanceScore * imp})
		}
	}

	if len(matches) == 0 {
		return 0.0
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].name < matches[j].name })

	var sum float64
	for _, m := range matches {
		sum += m.product
	}

	strength := math.Sqrt(sum / float64(len(matches)))
	if strength > 1 {
		strength = 1
	}
	if strength < 0 {
		strength = 0
	}
	return strength
}

// Cache operations

func (s *Service) suggestKey(name string, minStrength float64) string {
	return fmt.Sprintf("pairing:suggest:%s:%.4f", name, minStrength)
}

func (s *Service) cachedSuggestions(ctx context.Context, name string, minStrength float64) ([]inbound.PairingSuggestion, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, s.suggestKey(name, minStrength))
	if err != nil || raw == nil {
		return nil, false
	}

	var suggestions []inbound.PairingSuggestion
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		s.logger.Warn("Discarding undecodable cached suggestions",
			zap.String("ingredient", name),
			zap.Error(err),
		)
		return nil, false
	}
	return suggestions, true
}

func (s *Service) cacheSuggestions(ctx context.Context, name string, minStrength float64, suggestions []inbound.PairingSuggestion) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.suggestKey(name, minStrength), raw, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache suggestions",
			zap.String("ingredient", name),
			zap.Error(err),
		)
	}
}

