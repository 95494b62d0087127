package flipswap

import (
	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/gorgonia/flipswap/search"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type Config struct {
	Name     string
	Search   search.Config
	Seed     uint64     // seeds the zobrist keys and the random agents
	Keys     *flip.Keys // if nil, keys are built from Seed
	MaxPlies int        // 0 means play until nobody can move
	Parallel int        // number of games played at the same time by Run
	RandomB  bool       // B picks uniformly random moves instead of searching
	Verify   bool       // check every board the arena produces

	// extensions
	Output EncoderFactory
	Logger zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Name:     "Flip Swap",
		Search:   search.DefaultConfig(),
		Seed:     flip.DefaultSeed,
		Parallel: 1,
		Logger:   zerolog.Nop(),
	}
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// Validate reports what is wrong with the config, if anything.
func (c Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return errors.WithMessage(err, "invalid search config")
	}
	switch {
	case c.MaxPlies < 0:
		return errors.Errorf("MaxPlies cannot be negative. Got %d", c.MaxPlies)
	case c.Parallel < 1:
		return errors.Errorf("Parallel must be at least 1. Got %d", c.Parallel)
	}
	return nil
}

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the gif Encoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// EncoderFactory returns the OutputEncoder of a game, or nil if the game is not to be encoded.
type EncoderFactory func(gameNumber int) OutputEncoder

// Ply is a move played in an arena.
type Ply struct {
	Player game.Player
	Move   flip.Move
	Score  int // evaluation of the board after the move
	Nodes  int // positions searched to find the move
}

// Record is a game played in an arena.
type Record struct {
	Game  int
	Plies []Ply
	Final flip.Board
}

// Moves returns the moves of the game, in order.
func (r Record) Moves() []flip.Move {
	return lo.Map(r.Plies, func(p Ply, _ int) flip.Move { return p.Move })
}

// Score is the evaluation of the final board.
func (r Record) Score() int { return r.Final.Evaluate() }
