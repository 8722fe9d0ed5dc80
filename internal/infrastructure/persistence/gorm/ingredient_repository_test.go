package gorm_test

import (
	"context"
	"testing"

	domain "github.com/palateworks/flavorcore/internal/domain/ingredient"
	gormRepo "github.com/palateworks/flavorcore/internal/infrastructure/persistence/gorm"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"github.com/palateworks/flavorcore/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IngredientRepositoryTestSuite provides an integration test suite for the
// GORM-backed ingredient repository
type IngredientRepositoryTestSuite struct {
	suite.Suite
	repo outbound.IngredientRepository
	ctx  context.Context
}

// SetupTest runs before each test
func (suite *IngredientRepositoryTestSuite) SetupTest() {
	db := testutils.SetupTestDatabase(suite.T())
	suite.repo = gormRepo.NewIngredientRepository(db)
	suite.ctx = context.Background()
}

func (suite *IngredientRepositoryTestSuite) storeIngredient(name string, category domain.Category, aliases ...string) *domain.Ingredient {
	ing, err := domain.NewIngredient(name, category)
	require.NoError(suite.T(), err)
	for _, alias := range aliases {
		ing.AddAlias(alias)
	}
	require.NoError(suite.T(), suite.repo.UpsertIngredient(suite.ctx, ing))
	return ing
}

// TestUpsertIngredient tests idempotent ingredient writes
func (suite *IngredientRepositoryTestSuite) TestUpsertIngredient() {
	suite.Run("RepeatedUpsert_ShouldConvergeOnOneRow", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)

		// Act: same identity, updated attributes.
		updated, err := domain.NewIngredient("garlic", domain.CategoryVegetable)
		require.NoError(suite.T(), err)
		updated.SetScientificName("Allium sativum")
		require.NoError(suite.T(), suite.repo.UpsertIngredient(suite.ctx, updated))

		// Assert
		names, err := suite.repo.ListNames(suite.ctx)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"garlic"}, names)

		found, err := suite.repo.FindByName(suite.ctx, "garlic")
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), found)
		assert.Equal(suite.T(), "Allium sativum", found.ScientificName())
	})

	suite.Run("DifferentCase_ShouldHitTheSameRow", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("Garlic", domain.CategoryVegetable)

		// Act
		second, err := domain.NewIngredient("GARLIC", domain.CategoryVegetable)
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), suite.repo.UpsertIngredient(suite.ctx, second))

		// Assert
		names, err := suite.repo.ListNames(suite.ctx)
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), names, 1)
	})
}

// TestFindByName tests case-insensitive and alias resolution
func (suite *IngredientRepositoryTestSuite) TestFindByName() {
	suite.Run("CaseInsensitiveName_ShouldResolve", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)

		// Act
		found, err := suite.repo.FindByName(suite.ctx, "GaRlIc")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), found)
		assert.Equal(suite.T(), "garlic", found.Name())
	})

	suite.Run("Alias_ShouldResolve", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("mint", domain.CategoryHerb, "peppermint")

		// Act
		found, err := suite.repo.FindByName(suite.ctx, "Peppermint")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), found)
		assert.Equal(suite.T(), "mint", found.Name())
	})

	suite.Run("AliasSubstring_ShouldNotResolve", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("mint", domain.CategoryHerb, "peppermint")

		// Act: LIKE narrows candidates but the domain matcher requires a
		// whole-alias match.
		found, err := suite.repo.FindByName(suite.ctx, "pepper")

		// Assert
		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), found)
	})

	suite.Run("UnknownName_ShouldReturnNilNil", func() {
		// Arrange
		suite.SetupTest()

		// Act
		found, err := suite.repo.FindByName(suite.ctx, "durian")

		// Assert
		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), found)
	})
}

// TestSearch tests filtered listing
func (suite *IngredientRepositoryTestSuite) TestSearch() {
	suite.Run("Results_ShouldBeOrderedByName", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("tomato", domain.CategoryVegetable)
		suite.storeIngredient("basil", domain.CategoryHerb)
		suite.storeIngredient("garlic", domain.CategoryVegetable)

		// Act
		found, err := suite.repo.Search(suite.ctx, "", nil)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), found, 3)
		assert.Equal(suite.T(), "basil", found[0].Name())
		assert.Equal(suite.T(), "garlic", found[1].Name())
		assert.Equal(suite.T(), "tomato", found[2].Name())
	})

	suite.Run("CategoryFilter_ShouldRestrictResults", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("tomato", domain.CategoryVegetable)
		suite.storeIngredient("basil", domain.CategoryHerb)

		// Act
		herb := domain.CategoryHerb
		found, err := suite.repo.Search(suite.ctx, "", &herb)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), found, 1)
		assert.Equal(suite.T(), "basil", found[0].Name())
	})

	suite.Run("FactoryIngredients_ShouldAllRoundTrip", func() {
		// Arrange
		suite.SetupTest()
		factory := testutils.NewIngredientFactory(testutils.DefaultSeed)
		for i := 0; i < 10; i++ {
			ing := factory.Ingredient()
			require.NoError(suite.T(), suite.repo.UpsertIngredient(suite.ctx, ing))
			require.NoError(suite.T(), suite.repo.UpsertNutrition(suite.ctx, ing.Name(), factory.NutritionProfile()))
		}

		// Act
		found, err := suite.repo.Search(suite.ctx, "", nil)

		// Assert
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), found, 10)
		for _, ing := range found {
			profile, err := suite.repo.GetNutrition(suite.ctx, ing.Name())
			require.NoError(suite.T(), err)
			require.NotNil(suite.T(), profile)
			assert.NotNil(suite.T(), profile.Calories)
		}
	})

	suite.Run("QueryMatchesAliases_ShouldIncludeIngredient", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("mint", domain.CategoryHerb, "peppermint")

		// Act
		found, err := suite.repo.Search(suite.ctx, "pepper", nil)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), found, 1)
		assert.Equal(suite.T(), "mint", found[0].Name())
	})
}

// TestNutrition tests nutrition round-trips
func (suite *IngredientRepositoryTestSuite) TestNutrition() {
	suite.Run("RoundTrip_ShouldPreserveNilVersusZero", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)
		profile := domain.NutritionalProfile{
			Calories: testutils.FloatPtr(149),
			Sugar:    testutils.FloatPtr(0),
		}

		// Act
		require.NoError(suite.T(), suite.repo.UpsertNutrition(suite.ctx, "garlic", profile))
		stored, err := suite.repo.GetNutrition(suite.ctx, "garlic")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), stored)
		assert.Equal(suite.T(), 149.0, *stored.Calories)
		require.NotNil(suite.T(), stored.Sugar)
		assert.Equal(suite.T(), 0.0, *stored.Sugar)
		assert.Nil(suite.T(), stored.Protein)
	})

	suite.Run("MissingProfile_ShouldReturnNilNil", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)

		// Act
		stored, err := suite.repo.GetNutrition(suite.ctx, "garlic")

		// Assert
		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), stored)
	})

	suite.Run("Reupsert_ShouldReplaceTheProfile", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)
		require.NoError(suite.T(), suite.repo.UpsertNutrition(suite.ctx, "garlic",
			domain.NutritionalProfile{Calories: testutils.FloatPtr(100)}))

		// Act
		require.NoError(suite.T(), suite.repo.UpsertNutrition(suite.ctx, "garlic",
			domain.NutritionalProfile{Calories: testutils.FloatPtr(149)}))

		// Assert
		stored, err := suite.repo.GetNutrition(suite.ctx, "garlic")
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), stored)
		assert.Equal(suite.T(), 149.0, *stored.Calories)
	})
}

// TestFlavorLinks tests compound link round-trips
func (suite *IngredientRepositoryTestSuite) TestFlavorLinks() {
	suite.Run("UpsertTwice_ShouldKeepOneLinkPerCompound", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)
		compound := domain.Compound{Name: "allicin", Descriptors: []string{"pungent"}}
		require.NoError(suite.T(), suite.repo.UpsertCompound(suite.ctx, compound))

		// Act
		link := domain.FlavorLink{Compound: compound, ConcentrationPPM: 3000, ImportanceScore: 0.9}
		require.NoError(suite.T(), suite.repo.UpsertFlavorLink(suite.ctx, "garlic", link))
		link.ImportanceScore = 0.95
		require.NoError(suite.T(), suite.repo.UpsertFlavorLink(suite.ctx, "garlic", link))

		// Assert
		links, err := suite.repo.GetFlavorLinks(suite.ctx, "garlic")
		require.NoError(suite.T(), err)
		require.Len(suite.T(), links, 1)
		assert.Equal(suite.T(), "allicin", links[0].Compound.Name)
		assert.Equal(suite.T(), 0.95, links[0].ImportanceScore)
		assert.Contains(suite.T(), links[0].Compound.Descriptors, "pungent")
	})

	suite.Run("SharedCompound_ShouldKeepOneCompoundRow", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)
		suite.storeIngredient("onion", domain.CategoryVegetable)
		compound := domain.Compound{Name: "diallyl disulfide"}
		require.NoError(suite.T(), suite.repo.UpsertCompound(suite.ctx, compound))

		// Act
		require.NoError(suite.T(), suite.repo.UpsertFlavorLink(suite.ctx, "garlic",
			domain.FlavorLink{Compound: compound, ImportanceScore: 0.7}))
		require.NoError(suite.T(), suite.repo.UpsertFlavorLink(suite.ctx, "onion",
			domain.FlavorLink{Compound: compound, ImportanceScore: 0.6}))

		// Assert
		garlicLinks, err := suite.repo.GetFlavorLinks(suite.ctx, "garlic")
		require.NoError(suite.T(), err)
		onionLinks, err := suite.repo.GetFlavorLinks(suite.ctx, "onion")
		require.NoError(suite.T(), err)
		require.Len(suite.T(), garlicLinks, 1)
		require.Len(suite.T(), onionLinks, 1)
		assert.Equal(suite.T(), garlicLinks[0].Compound.ID, onionLinks[0].Compound.ID)
	})
}

// TestReceptorActivations tests receptor link round-trips
func (suite *IngredientRepositoryTestSuite) TestReceptorActivations() {
	suite.Run("UpsertTwice_ShouldKeepOnePerReceptor", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("chili pepper", domain.CategorySpice)
		compound := domain.Compound{Name: "capsaicin"}
		require.NoError(suite.T(), suite.repo.UpsertCompound(suite.ctx, compound))

		// Act
		activation := domain.ReceptorActivation{ReceptorName: "TRPV1", Compound: compound, Strength: 0.9}
		require.NoError(suite.T(), suite.repo.UpsertReceptorActivation(suite.ctx, "chili pepper", activation))
		activation.Strength = 0.95
		require.NoError(suite.T(), suite.repo.UpsertReceptorActivation(suite.ctx, "chili pepper", activation))

		// Assert
		activations, err := suite.repo.GetReceptorActivations(suite.ctx, "chili pepper")
		require.NoError(suite.T(), err)
		require.Len(suite.T(), activations, 1)
		assert.Equal(suite.T(), "TRPV1", activations[0].ReceptorName)
		assert.Equal(suite.T(), 0.95, activations[0].Strength)
		assert.Equal(suite.T(), "capsaicin", activations[0].Compound.Name)
	})
}

// TestTransformationRules tests rule round-trips
func (suite *IngredientRepositoryTestSuite) TestTransformationRules() {
	suite.Run("LookupByStates_ShouldReturnStoredRule", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)
		rule := domain.TransformationRule{
			TransformationType:   "Maillard Reaction",
			InitialState:         "raw",
			FinalState:           "golden",
			TemperatureRangeC:    domain.FloatRange{Min: testutils.FloatPtr(110), Max: testutils.FloatPtr(160)},
			TimeRangeMin:         domain.FloatRange{Min: testutils.FloatPtr(2), Max: testutils.FloatPtr(10)},
			PungencyMultiplier:   0.3,
			SweetnessMultiplier:  1.8,
			BitternessMultiplier: 1.0,
			ColorChange:          "white to golden",
		}
		require.NoError(suite.T(), suite.repo.UpsertTransformationRule(suite.ctx, "garlic", rule))

		// Act
		stored, err := suite.repo.GetTransformationRule(suite.ctx, "garlic", "raw", "golden")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), stored)
		assert.Equal(suite.T(), "Maillard Reaction", stored.TransformationType)
		assert.Equal(suite.T(), 0.3, stored.PungencyMultiplier)
		require.NotNil(suite.T(), stored.TemperatureRangeC.Min)
		assert.Equal(suite.T(), 110.0, *stored.TemperatureRangeC.Min)
		assert.Equal(suite.T(), "white to golden", stored.ColorChange)
	})

	suite.Run("UnboundedRange_ShouldRoundTripAsNil", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("egg", domain.CategoryProtein)
		rule := domain.TransformationRule{
			TransformationType:   "Protein Denaturation",
			InitialState:         "raw",
			FinalState:           "set",
			TemperatureRangeC:    domain.FloatRange{Min: testutils.FloatPtr(62)},
			PungencyMultiplier:   1,
			SweetnessMultiplier:  1,
			BitternessMultiplier: 1,
		}
		require.NoError(suite.T(), suite.repo.UpsertTransformationRule(suite.ctx, "egg", rule))

		// Act
		stored, err := suite.repo.GetTransformationRule(suite.ctx, "egg", "raw", "set")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), stored)
		assert.Nil(suite.T(), stored.TemperatureRangeC.Max)
		assert.Nil(suite.T(), stored.TimeRangeMin.Min)
		assert.Nil(suite.T(), stored.TimeRangeMin.Max)
	})

	suite.Run("SharedTransition_ShouldResolveDeterministically", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("onion", domain.CategoryVegetable)
		for _, transformationType := range []string{"Maillard Reaction", "Caramelization"} {
			rule := domain.TransformationRule{
				TransformationType:   transformationType,
				InitialState:         "raw",
				FinalState:           "golden",
				PungencyMultiplier:   1,
				SweetnessMultiplier:  1,
				BitternessMultiplier: 1,
			}
			require.NoError(suite.T(), suite.repo.UpsertTransformationRule(suite.ctx, "onion", rule))
		}

		// Act
		first, err := suite.repo.GetTransformationRule(suite.ctx, "onion", "raw", "golden")
		require.NoError(suite.T(), err)
		second, err := suite.repo.GetTransformationRule(suite.ctx, "onion", "raw", "golden")
		require.NoError(suite.T(), err)

		// Assert
		require.NotNil(suite.T(), first)
		require.NotNil(suite.T(), second)
		assert.Equal(suite.T(), "Caramelization", first.TransformationType)
		assert.Equal(suite.T(), first.TransformationType, second.TransformationType)
	})

	suite.Run("UnknownTransition_ShouldReturnNilNil", func() {
		// Arrange
		suite.SetupTest()
		suite.storeIngredient("garlic", domain.CategoryVegetable)

		// Act
		stored, err := suite.repo.GetTransformationRule(suite.ctx, "garlic", "raw", "charred")

		// Assert
		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), stored)
	})
}

func TestIngredientRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientRepositoryTestSuite))
}
