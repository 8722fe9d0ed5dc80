// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/palateworks/flavorcore/internal/domain/ingredient"
)

// IngredientRepository is the persistence contract for the ingredient
// knowledge base. A relational database is assumed but not mandated; any
// store honoring these semantics will do.
//
// Lookups by name are case-insensitive and return (nil, nil) when nothing
// matches; absence is a normal outcome, never an error. All upserts are
// idempotent: calling twice with identical data yields identical stored
// state, and re-running a seed pass never duplicates rows.
type IngredientRepository interface {
	// Lookups
	FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error)
	Search(ctx context.Context, query string, category *ingredient.Category) ([]*ingredient.Ingredient, error)
	ListNames(ctx context.Context) ([]string, error)

	// Attribute reads
	GetNutrition(ctx context.Context, name string) (*ingredient.NutritionalProfile, error)
	GetFlavorLinks(ctx context.Context, name string) ([]ingredient.FlavorLink, error)
	GetReceptorActivations(ctx context.Context, name string) ([]ingredient.ReceptorActivation, error)
	GetTransformationRule(ctx context.Context, name, initialState, finalState string) (*ingredient.TransformationRule, error)

	// Idempotent writes. Validation happens at the application boundary;
	// repositories additionally enforce the uniqueness invariants via their
	// conflict targets.
	UpsertIngredient(ctx context.Context, ing *ingredient.Ingredient) error
	UpsertNutrition(ctx context.Context, name string, profile ingredient.NutritionalProfile) error
	UpsertCompound(ctx context.Context, compound ingredient.Compound) error
	UpsertFlavorLink(ctx context.Context, name string, link ingredient.FlavorLink) error
	UpsertReceptorActivation(ctx context.Context, name string, activation ingredient.ReceptorActivation) error
	UpsertTransformationRule(ctx context.Context, name string, rule ingredient.TransformationRule) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// KnowledgeSink receives ingredient attribute bundles for external
// grounding/graph/reasoning systems. Integration is best-effort and
// optional: the core functions identically whether or not a sink is wired,
// and a failing sink is logged by the caller, never propagated.
type KnowledgeSink interface {
	Publish(ctx context.Context, bundle ingredient.AttributeBundle) error
}
