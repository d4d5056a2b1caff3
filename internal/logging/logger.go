// Package logging builds the zap loggers used across the demo command
// and the evolution driver's diagnostic sink, replacing the teacher's
// bare log.Fatal calls (deveworld-relativity_simul/main.go) with
// structured logging, grounded in nmxmxh-master-ovasabi's pervasive
// zap usage (cmd/kg/main.go).
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"relativity_simulation_2d/internal/physics"
)

// New builds a production zap logger, or a development logger with
// human-readable output when debug is true.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	return zap.NewProduction()
}

// DiagnosticsSink adapts a *zap.Logger to physics.Diagnostics, logging
// pinned/escape warnings emitted by the evolution driver (spec §7).
type DiagnosticsSink struct {
	Logger *zap.Logger
	RunID  string
}

// Warn implements physics.Diagnostics.
func (s *DiagnosticsSink) Warn(w physics.Warning) {
	s.Logger.Warn("numeric warning",
		zap.String("run_id", s.RunID),
		zap.String("kind", w.Kind.String()),
		zap.Int("obstacle_index", w.ObstacleIndex),
		zap.Float64("accumulated_seconds", w.AccumulatedSec),
	)
}
