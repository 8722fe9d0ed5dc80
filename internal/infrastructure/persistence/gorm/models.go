// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientModel represents the GORM model for ingredients. NameKey holds
// the lowercased name and backs the case-insensitive uniqueness invariant on
// both database engines.
type IngredientModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name           string    `gorm:"type:varchar(200);not null"`
	NameKey        string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Category       string    `gorm:"type:varchar(50);index"`
	ScientificName string    `gorm:"type:varchar(200)"`
	Aliases        StringSlice `gorm:"type:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relationships
	Nutrition           *NutritionModel           `gorm:"foreignKey:IngredientID"`
	FlavorLinks         []FlavorLinkModel         `gorm:"foreignKey:IngredientID"`
	ReceptorActivations []ReceptorActivationModel `gorm:"foreignKey:IngredientID"`
	TransformationRules []TransformationRuleModel `gorm:"foreignKey:IngredientID"`
}

// CompoundModel represents the GORM model for flavor compounds. Compounds
// are normalized: flavor links and receptor activations both reference a
// row here.
type CompoundModel struct {
	ID          uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Name        string      `gorm:"type:varchar(200);not null"`
	NameKey     string      `gorm:"type:varchar(200);uniqueIndex;not null"`
	Descriptors StringSlice `gorm:"type:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NutritionModel represents the GORM model for nutritional profiles. One
// row per ingredient; nullable columns carry the known/unknown distinction.
type NutritionModel struct {
	IngredientID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	Calories      *float64
	Protein       *float64
	Fat           *float64
	Carbohydrates *float64
	Fiber         *float64
	Sugar         *float64
	VitaminC      *float64 `gorm:"column:vitamin_c"`
	Calcium       *float64
	Iron          *float64
	Potassium     *float64
	Sodium        *float64
	UpdatedAt     time.Time
}

// FlavorLinkModel represents the GORM model for ingredient-compound links.
type FlavorLinkModel struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey"`
	IngredientID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_flavor_link"`
	CompoundID       uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_flavor_link"`
	ConcentrationPPM float64   `gorm:"column:concentration_ppm;default:0"`
	ImportanceScore  float64   `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Relationships
	Compound CompoundModel `gorm:"foreignKey:CompoundID"`
}

// ReceptorActivationModel represents the GORM model for receptor
// activations. ReceptorName refers into the static sensory catalog, so
// there is no receptor table to join against.
type ReceptorActivationModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	IngredientID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_receptor_activation"`
	ReceptorName string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_receptor_activation"`
	CompoundID   uuid.UUID `gorm:"type:char(36);not null"`
	Strength     float64   `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Compound CompoundModel `gorm:"foreignKey:CompoundID"`
}

// TransformationRuleModel represents the GORM model for per-ingredient
// transformation rules. Nullable range bounds mean unbounded.
type TransformationRuleModel struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey"`
	IngredientID       uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_transformation_rule"`
	TransformationType string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_transformation_rule"`
	InitialState       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_transformation_rule"`
	FinalState         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_transformation_rule"`

	MinTemperatureC *float64 `gorm:"column:min_temperature_c"`
	MaxTemperatureC *float64 `gorm:"column:max_temperature_c"`
	MinTimeMin      *float64
	MaxTimeMin      *float64

	PungencyMultiplier   float64 `gorm:"default:1"`
	SweetnessMultiplier  float64 `gorm:"default:1"`
	BitternessMultiplier float64 `gorm:"default:1"`

	FlavorChange  string `gorm:"type:text"`
	TextureChange string `gorm:"type:text"`
	ColorChange   string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for CompoundModel
func (c *CompoundModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for FlavorLinkModel
func (f *FlavorLinkModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ReceptorActivationModel
func (r *ReceptorActivationModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for TransformationRuleModel
func (t *TransformationRuleModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (IngredientModel) TableName() string {
	return "ingredients"
}

func (CompoundModel) TableName() string {
	return "compounds"
}

func (NutritionModel) TableName() string {
	return "nutrition_profiles"
}

func (FlavorLinkModel) TableName() string {
	return "flavor_links"
}

func (ReceptorActivationModel) TableName() string {
	return "receptor_activations"
}

func (TransformationRuleModel) TableName() string {
	return "transformation_rules"
}
