package search

import (
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/pkg/errors"
)

// Config is the structure to configure the search.
type Config struct {
	// MaxDepth is the depth, in plies, of every completed search.
	MaxDepth int

	// StartDepth is where iterative deepening begins on the first Solve of an engine.
	// Later calls search MaxDepth straight away, relying on the move ordering hints
	// left behind by the previous call.
	StartDepth int

	Rules flip.Rules
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:   7,
		StartDepth: 4,
		Rules:      flip.DefaultRules,
	}
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// Validate reports what is wrong with the config, if anything.
func (c Config) Validate() error {
	switch {
	case c.MaxDepth < 1:
		return errors.Errorf("MaxDepth must be at least 1. Got %d", c.MaxDepth)
	case c.StartDepth < 1 || c.StartDepth > c.MaxDepth:
		return errors.Errorf("StartDepth must be between 1 and MaxDepth (%d). Got %d", c.MaxDepth, c.StartDepth)
	case c.Rules.TripleWeight < 0:
		return errors.Errorf("TripleWeight cannot be negative. Got %d", c.Rules.TripleWeight)
	}
	return nil
}
