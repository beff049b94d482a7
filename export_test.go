package portcheck

import "log/slog"

// ConfigSnapshot holds a copy of checkerConfig fields for test assertions.
type ConfigSnapshot struct {
	Resolver Resolver
	Logger   *slog.Logger
}

// ApplyOptionsForTesting applies opts to a zero checkerConfig and returns a
// snapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	var cfg checkerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return ConfigSnapshot{
		Resolver: cfg.Resolver,
		Logger:   cfg.Logger,
	}
}
