package app

import (
	"go.uber.org/zap"

	"stakit/internal/parse"
	"stakit/internal/policy"
	"stakit/internal/services/constraints"
	"stakit/internal/services/tuner"
)

// App bundles the services for the CLI.
type App struct {
	Tuner       *tuner.Service
	Constraints *constraints.Service
	Logger      *zap.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &App{
		Tuner:       tuner.New(parse.Timing{}, parse.Skew{}, policy.Heuristic{}, log),
		Constraints: constraints.New(log),
		Logger:      log,
	}
}
