// Package main provides the main entry point for the FlavorCore engine.
// This demonstrates clean architecture with proper dependency injection.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palateworks/flavorcore/internal/infrastructure/container"
	"go.uber.org/fx"
)

func main() {
	// Create Fx application with dependency injection
	app := fx.New(
		fx.NopLogger, // Use our own logger instead of Fx's

		// Provide all dependencies
		container.Module,
	)

	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Graceful shutdown
	fmt.Println("\nShutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop application gracefully: %v", err)
	}

	fmt.Println("Application stopped successfully")
}
