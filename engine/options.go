package engine

import "go.uber.org/zap"

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	topAreas int // row cap for the highest-delay-areas table
}

// WithLogger attaches a structured logger. The engine is silent without one.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTopAreas caps the highest-delay-areas table at n rows (default 10).
func WithTopAreas(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.topAreas = n
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		logger:   zap.NewNop(),
		topAreas: 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
