// Package knowledge provides adapters for external knowledge-integration
// systems consuming ingredient attribute bundles.
package knowledge

import (
	"context"
	"encoding/json"

	"github.com/palateworks/flavorcore/internal/domain/ingredient"
	"github.com/palateworks/flavorcore/internal/ports/outbound"
	"go.uber.org/zap"
)

// LogSink writes attribute bundles to the structured log. It stands in for
// a real knowledge-graph exporter and doubles as an audit trail of what was
// exported when.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that logs published bundles.
func NewLogSink(logger *zap.Logger) outbound.KnowledgeSink {
	return &LogSink{logger: logger.Named("knowledge-sink")}
}

// Publish logs the bundle as a single JSON payload.
func (s *LogSink) Publish(ctx context.Context, bundle ingredient.AttributeBundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return err
	}

	s.logger.Info("Ingredient attributes published",
		zap.String("ingredient", bundle.Name),
		zap.ByteString("bundle", payload),
	)
	return nil
}
