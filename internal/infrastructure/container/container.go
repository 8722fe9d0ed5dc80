// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"

	appIngredient "github.com/palateworks/flavorcore/internal/application/ingredient"
	"github.com/palateworks/flavorcore/internal/application/pairing"
	"github.com/palateworks/flavorcore/internal/application/perception"
	"github.com/palateworks/flavorcore/internal/application/transform"
	"github.com/palateworks/flavorcore/internal/infrastructure/config"
	"github.com/palateworks/flavorcore/internal/infrastructure/knowledge"
	"github.com/palateworks/flavorcore/internal/infrastructure/persistence/database"
	gormRepo "github.com/palateworks/flavorcore/internal/infrastructure/persistence/gorm"
	"github.com/palateworks/flavorcore/internal/infrastructure/persistence/memory"
	redisCache "github.com/palateworks/flavorcore/internal/infrastructure/persistence/redis"
	"github.com/palateworks/flavorcore/internal/infrastructure/seed"
	"github.com/palateworks/flavorcore/internal/ports/inbound"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"github.com/palateworks/flavorcore/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	KnowledgeModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	// Provide sugared logger
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides database connections
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		return database.Connect(cfg, log)
	},
)

// CacheModule provides caching. Redis when enabled, in-memory otherwise,
// so pairing suggestions are cached either way.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return redisCache.NewCacheRepository(cfg, log)
		}
		log.Info("Redis disabled, using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// KnowledgeModule provides the knowledge sink
var KnowledgeModule = fx.Provide(
	func(log *zap.Logger) outbound.KnowledgeSink {
		return knowledge.NewLogSink(log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewIngredientRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	// Ingredient service
	func(repo outbound.IngredientRepository, sink outbound.KnowledgeSink, log *zap.Logger) inbound.IngredientService {
		return appIngredient.NewService(repo, sink, log)
	},

	// Pairing service
	func(cfg *config.Config, repo outbound.IngredientRepository, cache outbound.CacheRepository, log *zap.Logger) inbound.PairingService {
		return pairing.NewService(repo, cache, log, pairing.Options{
			SuggestWorkers:  cfg.Pairing.SuggestWorkers,
			SuggestCacheTTL: cfg.Redis.CacheTTL,
		})
	},

	// Perception service
	func(repo outbound.IngredientRepository, log *zap.Logger) inbound.PerceptionService {
		return perception.NewService(repo, log)
	},

	// Transform service
	func(repo outbound.IngredientRepository, log *zap.Logger) inbound.TransformService {
		return transform.NewService(repo, log)
	},
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	ingredients inbound.IngredientService,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting FlavorCore",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			if cfg.Seed.Enabled {
				if err := seed.Run(ctx, ingredients, log); err != nil {
					log.Warn("Failed to seed reference ingredients", zap.Error(err))
				}
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down FlavorCore")

			if err := database.Close(db); err != nil {
				log.Error("Failed to close database connection", zap.Error(err))
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
