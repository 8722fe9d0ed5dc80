package pairing_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/palateworks/flavorcore/internal/application/pairing"
	domain "github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/pkg/errors"
	"github.com/palateworks/flavorcore/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// PairingServiceTestSuite provides a test suite for the pairing service
type PairingServiceTestSuite struct {
	suite.Suite
	repo    *testutils.InMemoryIngredientRepository
	cache   *testutils.MockCacheRepository
	service inbound.PairingService
	ctx     context.Context
}

// SetupTest runs before each test
func (suite *PairingServiceTestSuite) SetupTest() {
	suite.repo = testutils.NewInMemoryIngredientRepository()
	suite.cache = testutils.NewMockCacheRepository()
	suite.service = pairing.NewService(suite.repo, suite.cache, zap.NewNop(), pairing.Options{})
	suite.ctx = context.Background()
}

// seedIngredient stores an ingredient with the given compound importance map.
func (suite *PairingServiceTestSuite) seedIngredient(name string, compounds map[string]float64) {
	ing, err := domain.NewIngredient(name, domain.CategoryVegetable)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.repo.UpsertIngredient(suite.ctx, ing))

	for compound, importance := range compounds {
		link := domain.FlavorLink{
			Compound:        domain.Compound{Name: compound},
			ImportanceScore: importance,
		}
		require.NoError(suite.T(), suite.repo.UpsertFlavorLink(suite.ctx, name, link))
	}
}

// TestScore tests pairwise scoring
func (suite *PairingServiceTestSuite) TestScore() {
	suite.Run("SharedCompounds_ShouldScoreRootMeanProduct", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{
			"(Z)-3-hexenal": 0.8,
			"furaneol":      0.5,
			"linalool":      0.4,
		})
		suite.seedIngredient("basil", map[string]float64{
			"linalool":      0.7,
			"eugenol":       0.6,
			"(Z)-3-hexenal": 0.5,
		})

		// Act
		score, err := suite.service.Score(suite.ctx, "tomato", "basil")

		// Assert
		require.NoError(suite.T(), err)
		expected := math.Sqrt((0.8*0.5 + 0.4*0.7) / 2)
		assert.InDelta(suite.T(), expected, score, 1e-9)
	})

	suite.Run("Score_ShouldBeSymmetric", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("garlic", map[string]float64{"allicin": 0.95, "diallyl disulfide": 0.7})
		suite.seedIngredient("onion", map[string]float64{"diallyl disulfide": 0.6, "propanethial S-oxide": 0.8})

		// Act
		ab, err := suite.service.Score(suite.ctx, "garlic", "onion")
		require.NoError(suite.T(), err)
		ba, err := suite.service.Score(suite.ctx, "onion", "garlic")
		require.NoError(suite.T(), err)

		// Assert
		assert.Equal(suite.T(), ab, ba)
	})

	suite.Run("Score_ShouldBeDeterministicAndBounded", func() {
		// Arrange
		suite.SetupTest()
		compounds := map[string]float64{"a": 0.9, "b": 0.8, "c": 0.7, "d": 0.6, "e": 0.5}
		suite.seedIngredient("first", compounds)
		suite.seedIngredient("second", compounds)

		// Act
		reference, err := suite.service.Score(suite.ctx, "first", "second")
		require.NoError(suite.T(), err)

		// Assert
		assert.GreaterOrEqual(suite.T(), reference, 0.0)
		assert.LessOrEqual(suite.T(), reference, 1.0)
		for i := 0; i < 20; i++ {
			score, err := suite.service.Score(suite.ctx, "first", "second")
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), reference, score)
		}
	})

	suite.Run("DisjointCompounds_ShouldScoreExactlyZero", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("rice", map[string]float64{"2-acetyl-1-pyrroline": 0.9})
		suite.seedIngredient("mint", map[string]float64{"menthol": 0.9})

		// Act
		score, err := suite.service.Score(suite.ctx, "rice", "mint")

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.0, score)
	})

	suite.Run("ZeroImportanceCompound_ShouldNotCount", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("celery", map[string]float64{"sedanolide": 0.0, "apiole": 0.6})
		suite.seedIngredient("parsley", map[string]float64{"sedanolide": 0.8, "apiole": 0.5})

		// Act
		score, err := suite.service.Score(suite.ctx, "celery", "parsley")

		// Assert
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), math.Sqrt(0.6*0.5), score, 1e-9)
	})

	suite.Run("UnknownIngredient_ShouldReturnNotFound", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"furaneol": 0.5})

		// Act
		_, err := suite.service.Score(suite.ctx, "tomato", "durian")

		// Assert
		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeIngredientNotFound))
	})
}

// TestSuggest tests candidate fan-out and ordering
func (suite *PairingServiceTestSuite) TestSuggest() {
	suite.Run("Suggestions_ShouldBeOrderedByStrengthThenName", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"linalool": 0.8, "furaneol": 0.6})
		suite.seedIngredient("basil", map[string]float64{"linalool": 0.9})
		suite.seedIngredient("strawberry", map[string]float64{"furaneol": 0.9})
		suite.seedIngredient("alpha", map[string]float64{"linalool": 0.5})
		suite.seedIngredient("beta", map[string]float64{"linalool": 0.5})
		suite.seedIngredient("rice", map[string]float64{"2-acetyl-1-pyrroline": 0.9})

		// Act
		suggestions, err := suite.service.Suggest(suite.ctx, "tomato", 0.0)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), suggestions, 5)
		for i := 1; i < len(suggestions); i++ {
			prev, curr := suggestions[i-1], suggestions[i]
			ordered := prev.Strength > curr.Strength ||
				(prev.Strength == curr.Strength && prev.Ingredient < curr.Ingredient)
			assert.True(suite.T(), ordered, "suggestions out of order at %d", i)
		}
		// alpha and beta tie and resolve alphabetically.
		alphaIdx, betaIdx := -1, -1
		for i, s := range suggestions {
			switch s.Ingredient {
			case "alpha":
				alphaIdx = i
			case "beta":
				betaIdx = i
			}
		}
		assert.Less(suite.T(), alphaIdx, betaIdx)
	})

	suite.Run("MinStrength_ShouldFilterWeakPairings", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"linalool": 0.8})
		suite.seedIngredient("basil", map[string]float64{"linalool": 0.9})
		suite.seedIngredient("rice", map[string]float64{"2-acetyl-1-pyrroline": 0.9})

		// Act
		suggestions, err := suite.service.Suggest(suite.ctx, "tomato", 0.5)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), suggestions, 1)
		assert.Equal(suite.T(), "basil", suggestions[0].Ingredient)
	})

	suite.Run("BaseIngredient_ShouldBeExcludedFromCandidates", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"linalool": 0.8})

		// Act
		suggestions, err := suite.service.Suggest(suite.ctx, "tomato", 0.0)

		// Assert
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), suggestions)
	})

	suite.Run("InvalidMinStrength_ShouldReturnValidationError", func() {
		for _, min := range []float64{-0.1, 1.1} {
			_, err := suite.service.Suggest(suite.ctx, "tomato", min)

			require.Error(suite.T(), err)
			assert.True(suite.T(), errors.Is(err, errors.CodeValidationFailed))
		}
	})

	suite.Run("UnknownIngredient_ShouldReturnNotFound", func() {
		suite.SetupTest()

		_, err := suite.service.Suggest(suite.ctx, "durian", 0.0)

		require.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeIngredientNotFound))
	})

	suite.Run("SecondCall_ShouldServeFromCache", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"linalool": 0.8})
		suite.seedIngredient("basil", map[string]float64{"linalool": 0.9})

		// Act
		first, err := suite.service.Suggest(suite.ctx, "tomato", 0.2)
		require.NoError(suite.T(), err)
		second, err := suite.service.Suggest(suite.ctx, "tomato", 0.2)
		require.NoError(suite.T(), err)

		// Assert
		assert.Equal(suite.T(), first, second)
		assert.Equal(suite.T(), 1, suite.cache.Sets)
		assert.Equal(suite.T(), 1, suite.cache.Hits)
	})

	suite.Run("NilCache_ShouldStillSuggest", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"linalool": 0.8})
		suite.seedIngredient("basil", map[string]float64{"linalool": 0.9})
		service := pairing.NewService(suite.repo, nil, zap.NewNop(), pairing.Options{})

		// Act
		suggestions, err := service.Suggest(suite.ctx, "tomato", 0.0)

		// Assert
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), suggestions, 1)
	})

	suite.Run("ConfiguredOptions_ShouldDriveFanOutAndCacheTTL", func() {
		// Arrange
		suite.SetupTest()
		suite.seedIngredient("tomato", map[string]float64{"linalool": 0.8})
		suite.seedIngredient("basil", map[string]float64{"linalool": 0.9})
		suite.seedIngredient("garlic", map[string]float64{"allicin": 0.95})
		suite.seedIngredient("mint", map[string]float64{"menthol": 0.9})
		service := pairing.NewService(suite.repo, suite.cache, zap.NewNop(), pairing.Options{
			SuggestWorkers:  1,
			SuggestCacheTTL: time.Minute,
		})

		// Act
		suggestions, err := service.Suggest(suite.ctx, "tomato", 0.0)

		// Assert
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), suggestions, 3)
		assert.Equal(suite.T(), time.Minute, suite.cache.LastSetTTL)
	})
}

func TestPairingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PairingServiceTestSuite))
}
