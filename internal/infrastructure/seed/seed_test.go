package seed_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/palateworks/flavorcore/internal/application/ingredient"
	"github.com/palateworks/flavorcore/internal/infrastructure/seed"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// SeedTestSuite provides a test suite for the reference data loader
type SeedTestSuite struct {
	suite.Suite
	repo    *testutils.InMemoryIngredientRepository
	service inbound.IngredientService
	ctx     context.Context
}

// SetupTest runs before each test
func (suite *SeedTestSuite) SetupTest() {
	suite.repo = testutils.NewInMemoryIngredientRepository()
	suite.service = app.NewService(suite.repo, nil, zap.NewNop())
	suite.ctx = context.Background()
}

// TestRun tests the seeding pass
func (suite *SeedTestSuite) TestRun() {
	suite.Run("Run_ShouldLoadReferenceIngredients", func() {
		// Arrange
		suite.SetupTest()

		// Act
		err := seed.Run(suite.ctx, suite.service, zap.NewNop())

		// Assert
		require.NoError(suite.T(), err)

		names, err := suite.repo.ListNames(suite.ctx)
		require.NoError(suite.T(), err)
		assert.Contains(suite.T(), names, "garlic")
		assert.Contains(suite.T(), names, "mint")
		assert.Contains(suite.T(), names, "chili pepper")
		assert.Contains(suite.T(), names, "tomato")
		assert.Contains(suite.T(), names, "basil")
		assert.Contains(suite.T(), names, "onion")
	})

	suite.Run("SeededAttributes_ShouldBeQueryable", func() {
		// Arrange
		suite.SetupTest()
		require.NoError(suite.T(), seed.Run(suite.ctx, suite.service, zap.NewNop()))

		// Act
		links, err := suite.repo.GetFlavorLinks(suite.ctx, "garlic")
		require.NoError(suite.T(), err)
		activations, err := suite.repo.GetReceptorActivations(suite.ctx, "mint")
		require.NoError(suite.T(), err)
		rule, err := suite.repo.GetTransformationRule(suite.ctx, "garlic", "raw", "golden")
		require.NoError(suite.T(), err)

		// Assert
		assert.NotEmpty(suite.T(), links)
		require.Len(suite.T(), activations, 1)
		assert.Equal(suite.T(), "TRPM8", activations[0].ReceptorName)
		require.NotNil(suite.T(), rule)
		assert.Equal(suite.T(), "Maillard Reaction", rule.TransformationType)
	})

	suite.Run("RunTwice_ShouldBeIdempotent", func() {
		// Arrange
		suite.SetupTest()
		require.NoError(suite.T(), seed.Run(suite.ctx, suite.service, zap.NewNop()))
		first, err := suite.repo.ListNames(suite.ctx)
		require.NoError(suite.T(), err)

		// Act
		require.NoError(suite.T(), seed.Run(suite.ctx, suite.service, zap.NewNop()))

		// Assert
		second, err := suite.repo.ListNames(suite.ctx)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), first, second)

		links, err := suite.repo.GetFlavorLinks(suite.ctx, "tomato")
		require.NoError(suite.T(), err)
		assert.Len(suite.T(), links, 3)
	})

	suite.Run("FailingStore_ShouldSurfaceTheError", func() {
		// Arrange
		suite.SetupTest()
		suite.repo.FailWith = errors.New("store unavailable")

		// Act
		err := seed.Run(suite.ctx, suite.service, zap.NewNop())

		// Assert
		assert.Error(suite.T(), err)
	})
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}
