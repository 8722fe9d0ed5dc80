// Package database provides database connection setup for the supported
// engines. SQLite (including in-memory) serves development and tests;
// PostgreSQL serves deployments.
package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/palateworks/flavorcore/internal/infrastructure/config"
	gormModels "github.com/palateworks/flavorcore/internal/infrastructure/persistence/gorm"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database, tunes the connection pool, and
// runs auto-migration when enabled.
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:                 newGormLogger(cfg),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		path := cfg.Database.Path
		if path == "" {
			path = ":memory:"
		}
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("Database connected",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Bool("auto_migrate", cfg.Database.AutoMigrate),
	)

	return db, nil
}

// Migrate brings the schema up to date for the ingredient store.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&gormModels.IngredientModel{},
		&gormModels.CompoundModel{},
		&gormModels.NutritionModel{},
		&gormModels.FlavorLinkModel{},
		&gormModels.ReceptorActivationModel{},
		&gormModels.TransformationRuleModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newGormLogger maps the configured log level onto GORM's logger, with the
// slow query threshold applied.
func newGormLogger(cfg *config.Config) logger.Interface {
	logLevel := logger.Silent
	switch cfg.Database.LogLevel {
	case "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	}

	return logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             cfg.Database.SlowQueryThreshold,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
