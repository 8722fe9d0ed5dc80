// Package main provides the schema migration tool for PostgreSQL
// deployments. Usage: migrate [up|down|version|force N]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/palateworks/flavorcore/internal/infrastructure/config"
	"github.com/palateworks/flavorcore/internal/infrastructure/persistence/migrations"
	"github.com/palateworks/flavorcore/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		log.Fatalf("Versioned migrations require the postgres driver, got %q", cfg.Database.Driver)
	}

	zapLog, err := logger.New(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLog.Sync()

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	migrator, err := migrations.New(sqlDB, zapLog)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	defer migrator.Close()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = migrator.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%v\n", version, dirty)
		}
	case "force":
		if len(os.Args) < 3 {
			log.Fatal("force requires a version argument")
		}
		var v int
		v, err = strconv.Atoi(os.Args[2])
		if err == nil {
			err = migrator.Force(v)
		}
	default:
		log.Fatalf("Unknown command %q", command)
	}
	if err != nil {
		log.Fatalf("Migration %s failed: %v", command, err)
	}
}
