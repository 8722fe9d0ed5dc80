package ingredient_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IngredientTestSuite provides a test suite for the Ingredient entity
type IngredientTestSuite struct {
	suite.Suite
}

// TestIngredientCreation tests ingredient creation scenarios
func (suite *IngredientTestSuite) TestIngredientCreation() {
	suite.Run("ValidIngredient_ShouldCreateSuccessfully", func() {
		// Arrange
		name := "Tomato"
		category := ingredient.CategoryFruit

		// Act
		ing, err := ingredient.NewIngredient(name, category)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), ing)

		assert.Equal(suite.T(), name, ing.Name())
		assert.Equal(suite.T(), category, ing.Category())
		assert.NotEqual(suite.T(), uuid.Nil, ing.ID())
		assert.NotZero(suite.T(), ing.CreatedAt())
		assert.NotZero(suite.T(), ing.UpdatedAt())
		assert.Empty(suite.T(), ing.Aliases())
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		// Act
		ing, err := ingredient.NewIngredient("", ingredient.CategoryVegetable)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), ing)
		assert.Equal(suite.T(), ingredient.ErrEmptyName, err)
	})

	suite.Run("WhitespaceName_ShouldReturnError", func() {
		// Act
		ing, err := ingredient.NewIngredient("   ", ingredient.CategoryVegetable)

		// Assert
		assert.Equal(suite.T(), ingredient.ErrEmptyName, err)
		assert.Nil(suite.T(), ing)
	})

	suite.Run("NameTooLong_ShouldReturnError", func() {
		// Arrange
		name := strings.Repeat("a", 201)

		// Act
		ing, err := ingredient.NewIngredient(name, ingredient.CategoryVegetable)

		// Assert
		assert.Equal(suite.T(), ingredient.ErrNameTooLong, err)
		assert.Nil(suite.T(), ing)
	})

	suite.Run("UnknownCategory_ShouldReturnError", func() {
		// Act
		ing, err := ingredient.NewIngredient("Tomato", ingredient.Category("mineral"))

		// Assert
		assert.Equal(suite.T(), ingredient.ErrUnknownCategory, err)
		assert.Nil(suite.T(), ing)
	})
}

// TestAliases tests alias handling
func (suite *IngredientTestSuite) TestAliases() {
	suite.Run("AddAlias_ShouldRecord", func() {
		ing, err := ingredient.NewIngredient("cilantro", ingredient.CategoryHerb)
		require.NoError(suite.T(), err)

		ing.AddAlias("coriander leaf")

		assert.Equal(suite.T(), []string{"coriander leaf"}, ing.Aliases())
	})

	suite.Run("DuplicateAlias_ShouldBeIgnoredCaseInsensitively", func() {
		ing, err := ingredient.NewIngredient("cilantro", ingredient.CategoryHerb)
		require.NoError(suite.T(), err)

		ing.AddAlias("coriander leaf")
		ing.AddAlias("Coriander Leaf")
		ing.AddAlias("")

		assert.Len(suite.T(), ing.Aliases(), 1)
	})

	suite.Run("Matches_ShouldCoverNameAndAliases", func() {
		ing, err := ingredient.NewIngredient("chili pepper", ingredient.CategorySpice)
		require.NoError(suite.T(), err)
		ing.AddAlias("hot pepper")

		assert.True(suite.T(), ing.Matches("Chili Pepper"))
		assert.True(suite.T(), ing.Matches("HOT PEPPER"))
		assert.False(suite.T(), ing.Matches("bell pepper"))
	})
}

// TestRehydrate tests reconstruction from stored state
func (suite *IngredientTestSuite) TestRehydrate() {
	suite.Run("StoredState_ShouldRoundTrip", func() {
		// Arrange
		id := uuid.New()
		created := time.Now().Add(-24 * time.Hour)
		updated := time.Now().Add(-time.Hour)

		// Act
		ing, err := ingredient.Rehydrate(id, "garlic", ingredient.CategoryVegetable,
			"Allium sativum", []string{"ail"}, created, updated)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), id, ing.ID())
		assert.Equal(suite.T(), "garlic", ing.Name())
		assert.Equal(suite.T(), "Allium sativum", ing.ScientificName())
		assert.Equal(suite.T(), []string{"ail"}, ing.Aliases())
		assert.Equal(suite.T(), created, ing.CreatedAt())
	})

	suite.Run("EmptyName_ShouldStillBeRejected", func() {
		_, err := ingredient.Rehydrate(uuid.New(), "", ingredient.CategoryVegetable,
			"", nil, time.Now(), time.Now())

		assert.Equal(suite.T(), ingredient.ErrEmptyName, err)
	})
}

// TestValueObjectValidation tests the attribute value objects
func (suite *IngredientTestSuite) TestValueObjectValidation() {
	suite.Run("NutritionalProfile_NilFieldsAreValid", func() {
		profile := ingredient.NutritionalProfile{}

		assert.NoError(suite.T(), profile.Validate())
	})

	suite.Run("NutritionalProfile_NegativeValue_ShouldReturnError", func() {
		negative := -1.0
		profile := ingredient.NutritionalProfile{Protein: &negative}

		assert.Equal(suite.T(), ingredient.ErrNegativeNutrient, profile.Validate())
	})

	suite.Run("FlavorLink_ImportanceOutOfRange_ShouldReturnError", func() {
		link := ingredient.FlavorLink{
			Compound:        ingredient.Compound{ID: uuid.New(), Name: "vanillin"},
			ImportanceScore: 1.2,
		}

		assert.Equal(suite.T(), ingredient.ErrImportanceOutOfRange, link.Validate())
	})

	suite.Run("FlavorLink_NegativeConcentration_ShouldReturnError", func() {
		link := ingredient.FlavorLink{
			Compound:         ingredient.Compound{ID: uuid.New(), Name: "vanillin"},
			ConcentrationPPM: -5,
			ImportanceScore:  0.5,
		}

		assert.Equal(suite.T(), ingredient.ErrNegativeConcentration, link.Validate())
	})

	suite.Run("ReceptorActivation_StrengthOutOfRange_ShouldReturnError", func() {
		activation := ingredient.ReceptorActivation{
			ReceptorName: "TRPV1",
			Compound:     ingredient.Compound{ID: uuid.New(), Name: "capsaicin"},
			Strength:     -0.1,
		}

		assert.Equal(suite.T(), ingredient.ErrStrengthOutOfRange, activation.Validate())
	})

	suite.Run("TransformationRule_InvertedRange_ShouldReturnError", func() {
		lo, hi := 100.0, 50.0
		rule := ingredient.TransformationRule{
			TransformationType: "Maillard Reaction",
			InitialState:       "raw",
			FinalState:         "browned",
			TemperatureRangeC:  ingredient.FloatRange{Min: &lo, Max: &hi},
		}

		assert.Equal(suite.T(), ingredient.ErrInvertedRange, rule.Validate())
	})

	suite.Run("FloatRange_NilEndpointsAreUnbounded", func() {
		var r ingredient.FloatRange

		assert.True(suite.T(), r.Contains(-1e9))
		assert.True(suite.T(), r.Contains(1e9))
	})
}

func TestIngredientTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientTestSuite))
}
