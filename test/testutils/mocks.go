// Package testutils provides in-memory doubles for the outbound ports.
package testutils

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/palateworks/flavorcore/internal/domain/ingredient"
)

// InMemoryIngredientRepository implements the ingredient repository on maps.
// It honors the real contract: case-insensitive lookups, (nil, nil) for
// absence, idempotent upserts.
type InMemoryIngredientRepository struct {
	mu          sync.RWMutex
	ingredients map[string]*ingredient.Ingredient
	nutrition   map[string]ingredient.NutritionalProfile
	links       map[string]map[string]ingredient.FlavorLink
	activations map[string]map[string]ingredient.ReceptorActivation
	rules       map[string]map[string]ingredient.TransformationRule
	compounds   map[string]ingredient.Compound

	// FailWith, when set, makes every operation return this error.
	FailWith error
}

// NewInMemoryIngredientRepository creates an empty in-memory repository.
func NewInMemoryIngredientRepository() *InMemoryIngredientRepository {
	return &InMemoryIngredientRepository{
		ingredients: make(map[string]*ingredient.Ingredient),
		nutrition:   make(map[string]ingredient.NutritionalProfile),
		links:       make(map[string]map[string]ingredient.FlavorLink),
		activations: make(map[string]map[string]ingredient.ReceptorActivation),
		rules:       make(map[string]map[string]ingredient.TransformationRule),
		compounds:   make(map[string]ingredient.Compound),
	}
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

func ruleKey(transformationType, initial, final string) string {
	return transformationType + "|" + initial + "|" + final
}

func (r *InMemoryIngredientRepository) FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ing, ok := r.ingredients[key(name)]; ok {
		return ing, nil
	}
	for _, ing := range r.ingredients {
		if ing.Matches(name) {
			return ing, nil
		}
	}
	return nil, nil
}

func (r *InMemoryIngredientRepository) Search(ctx context.Context, query string, category *ingredient.Category) ([]*ingredient.Ingredient, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var found []*ingredient.Ingredient
	for _, ing := range r.ingredients {
		if category != nil && ing.Category() != *category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(ing.Name()), q) {
			match := false
			for _, alias := range ing.Aliases() {
				if strings.Contains(strings.ToLower(alias), q) {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		found = append(found, ing)
	}

	sort.Slice(found, func(i, j int) bool {
		return strings.ToLower(found[i].Name()) < strings.ToLower(found[j].Name())
	})
	return found, nil
}

func (r *InMemoryIngredientRepository) ListNames(ctx context.Context) ([]string, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		names = append(names, ing.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (r *InMemoryIngredientRepository) GetNutrition(ctx context.Context, name string) (*ingredient.NutritionalProfile, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if profile, ok := r.nutrition[key(name)]; ok {
		p := profile
		return &p, nil
	}
	return nil, nil
}

func (r *InMemoryIngredientRepository) GetFlavorLinks(ctx context.Context, name string) ([]ingredient.FlavorLink, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var links []ingredient.FlavorLink
	for _, link := range r.links[key(name)] {
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].Compound.Name < links[j].Compound.Name
	})
	return links, nil
}

func (r *InMemoryIngredientRepository) GetReceptorActivations(ctx context.Context, name string) ([]ingredient.ReceptorActivation, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activations []ingredient.ReceptorActivation
	for _, act := range r.activations[key(name)] {
		activations = append(activations, act)
	}
	sort.Slice(activations, func(i, j int) bool {
		return activations[i].ReceptorName < activations[j].ReceptorName
	})
	return activations, nil
}

func (r *InMemoryIngredientRepository) GetTransformationRule(ctx context.Context, name, initialState, finalState string) (*ingredient.TransformationRule, error) {
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Match the persistent store's tie-break: when several rule types share
	// a transition, the lowest type wins.
	var match *ingredient.TransformationRule
	for _, rule := range r.rules[key(name)] {
		if rule.InitialState != initialState || rule.FinalState != finalState {
			continue
		}
		if match == nil || rule.TransformationType < match.TransformationType {
			rl := rule
			match = &rl
		}
	}
	return match, nil
}

func (r *InMemoryIngredientRepository) UpsertIngredient(ctx context.Context, ing *ingredient.Ingredient) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ingredients[key(ing.Name())] = ing
	return nil
}

func (r *InMemoryIngredientRepository) UpsertNutrition(ctx context.Context, name string, profile ingredient.NutritionalProfile) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(name)
	if _, ok := r.ingredients[k]; !ok {
		return fmt.Errorf("ingredient %q not found", name)
	}
	r.nutrition[k] = profile
	return nil
}

func (r *InMemoryIngredientRepository) UpsertCompound(ctx context.Context, compound ingredient.Compound) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(compound.Name)
	if existing, ok := r.compounds[k]; ok {
		compound.ID = existing.ID
	}
	r.compounds[k] = compound
	return nil
}

func (r *InMemoryIngredientRepository) UpsertFlavorLink(ctx context.Context, name string, link ingredient.FlavorLink) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(name)
	if _, ok := r.ingredients[k]; !ok {
		return fmt.Errorf("ingredient %q not found", name)
	}
	if r.links[k] == nil {
		r.links[k] = make(map[string]ingredient.FlavorLink)
	}
	r.links[k][key(link.Compound.Name)] = link
	return nil
}

func (r *InMemoryIngredientRepository) UpsertReceptorActivation(ctx context.Context, name string, activation ingredient.ReceptorActivation) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(name)
	if _, ok := r.ingredients[k]; !ok {
		return fmt.Errorf("ingredient %q not found", name)
	}
	if r.activations[k] == nil {
		r.activations[k] = make(map[string]ingredient.ReceptorActivation)
	}
	r.activations[k][activation.ReceptorName] = activation
	return nil
}

func (r *InMemoryIngredientRepository) UpsertTransformationRule(ctx context.Context, name string, rule ingredient.TransformationRule) error {
	if r.FailWith != nil {
		return r.FailWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(name)
	if _, ok := r.ingredients[k]; !ok {
		return fmt.Errorf("ingredient %q not found", name)
	}
	if r.rules[k] == nil {
		r.rules[k] = make(map[string]ingredient.TransformationRule)
	}
	r.rules[k][ruleKey(rule.TransformationType, rule.InitialState, rule.FinalState)] = rule
	return nil
}

// MockCacheRepository is a map-backed cache that records hit and miss
// counts.
type MockCacheRepository struct {
	mu     sync.Mutex
	data   map[string][]byte
	Hits   int
	Misses int
	Sets   int

	// LastSetTTL records the expiry passed to the most recent Set.
	LastSetTTL time.Duration
}

// NewMockCacheRepository creates an empty mock cache.
func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string][]byte)}
}

func (c *MockCacheRepository) Get(ctx context.Context, cacheKey string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.data[cacheKey]; ok {
		c.Hits++
		return value, nil
	}
	c.Misses++
	return nil, nil
}

func (c *MockCacheRepository) Set(ctx context.Context, cacheKey string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Sets++
	c.LastSetTTL = ttl
	c.data[cacheKey] = value
	return nil
}

func (c *MockCacheRepository) Delete(ctx context.Context, cacheKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, cacheKey)
	return nil
}

// RecordingKnowledgeSink captures published bundles. Set Fail to simulate a
// broken downstream system.
type RecordingKnowledgeSink struct {
	mu      sync.Mutex
	Bundles []ingredient.AttributeBundle
	Fail    bool
}

// ErrSinkUnavailable is returned by a failing RecordingKnowledgeSink.
var ErrSinkUnavailable = errors.New("knowledge sink unavailable")

func (s *RecordingKnowledgeSink) Publish(ctx context.Context, bundle ingredient.AttributeBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail {
		return ErrSinkUnavailable
	}
	s.Bundles = append(s.Bundles, bundle)
	return nil
}
