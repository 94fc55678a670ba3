package facts

import (
	"context"
	"fmt"
	"log/slog"
)

// Selector maps a category to its source and runs the All fallback chain.
type Selector struct {
	hosted      []Source
	tech        Source
	programming Source
	ai          Source
	scaling     Source
	logger      *slog.Logger
}

// NewSelector builds a selector over the given hosted chain and the built-in
// tables.
func NewSelector(hosted []Source, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		hosted:      hosted,
		tech:        NewTableSource("tech", TechFacts),
		programming: NewTableSource("programming", ProgrammingFacts),
		ai:          NewTableSource("ai", AIFacts),
		scaling:     NewTableSource("scaling", ScalingFacts),
		logger:      logger,
	}
}

// Fetch returns one fact for category.
func (s *Selector) Fetch(ctx context.Context, category Category) (string, error) {
	switch category {
	case All:
		return s.fetchChain(ctx)
	case Coding, Programming:
		return s.programming.Fetch(ctx)
	case Tech:
		return s.tech.Fetch(ctx)
	case AI:
		return s.ai.Fetch(ctx)
	case Scaling:
		return s.scaling.Fetch(ctx)
	default:
		return "", fmt.Errorf("unknown category %v", category)
	}
}

func (s *Selector) fetchChain(ctx context.Context) (string, error) {
	for _, src := range s.hosted {
		fact, err := src.Fetch(ctx)
		if err == nil {
			return fact, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn("fact source failed, trying next", "source", src.Name(), "error", err)
	}

	s.logger.Info("all hosted sources failed, using local table", "table", s.tech.Name())
	return s.tech.Fetch(ctx)
}
