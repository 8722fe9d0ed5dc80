// Package ingredient contains the core domain logic for the ingredient
// knowledge base. This follows Domain-Driven Design principles with rich
// domain models.
package ingredient

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ingredient represents a named food substance together with its scientific
// and cultural attributes. Identity is the name, which is unique
// case-insensitively and never changes once created.
type Ingredient struct {
	id             uuid.UUID
	name           string
	category       Category
	scientificName string
	aliases        []string

	createdAt time.Time
	updatedAt time.Time
}

// NewIngredient creates a new Ingredient with validation.
func NewIngredient(name string, category Category) (*Ingredient, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if !category.Valid() {
		return nil, ErrUnknownCategory
	}

	now := time.Now()
	return &Ingredient{
		id:        uuid.New(),
		name:      name,
		category:  category,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Rehydrate reconstructs an Ingredient from stored state. It bypasses the
// creation defaults but still enforces the naming invariant.
func Rehydrate(id uuid.UUID, name string, category Category, scientificName string, aliases []string, createdAt, updatedAt time.Time) (*Ingredient, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Ingredient{
		id:             id,
		name:           name,
		category:       category,
		scientificName: scientificName,
		aliases:        aliases,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the ingredient's unique identifier.
func (i *Ingredient) ID() uuid.UUID {
	return i.id
}

// Name returns the ingredient's name.
func (i *Ingredient) Name() string {
	return i.name
}

// Category returns the ingredient's category.
func (i *Ingredient) Category() Category {
	return i.category
}

// ScientificName returns the ingredient's scientific name, empty when unknown.
func (i *Ingredient) ScientificName() string {
	return i.scientificName
}

// Aliases returns the ingredient's alternate names.
func (i *Ingredient) Aliases() []string {
	return i.aliases
}

// CreatedAt returns when the ingredient was created.
func (i *Ingredient) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns when the ingredient was last updated.
func (i *Ingredient) UpdatedAt() time.Time {
	return i.updatedAt
}

// SetScientificName records the ingredient's botanical/scientific name.
func (i *Ingredient) SetScientificName(name string) {
	i.scientificName = name
	i.updatedAt = time.Now()
}

// AddAlias records an alternate name. Duplicate aliases (case-insensitive)
// are ignored.
func (i *Ingredient) AddAlias(alias string) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return
	}
	for _, existing := range i.aliases {
		if strings.EqualFold(existing, alias) {
			return
		}
	}
	i.aliases = append(i.aliases, alias)
	i.updatedAt = time.Now()
}

// Matches reports whether the given name refers to this ingredient, by its
// primary name or any alias, case-insensitively.
func (i *Ingredient) Matches(name string) bool {
	if strings.EqualFold(i.name, name) {
		return true
	}
	for _, alias := range i.aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// validateName validates an ingredient name.
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(trimmed) > 200 {
		return ErrNameTooLong
	}
	return nil
}
