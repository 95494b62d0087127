// Package flipswap plays the flip-swap game between agents.
//
// The rules and the board live in game/flip, and the alpha-beta search in search. This package
// holds the self-play layer: agents, the arena they play in, and statistics over the games.
package flipswap

import (
	"context"

	"github.com/gorgonia/flipswap/game/flip"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Run plays games independent games, at most conf.Parallel at a time. Every game has its own agents, so
// no engine is shared between goroutines. The records are returned in game order.
func Run(ctx context.Context, conf Config, games int) ([]Record, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	keys := conf.Keys
	if keys == nil {
		keys = flip.NewKeys(conf.Seed)
	}

	records := make([]Record, games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Parallel)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			ar := NewArena(keys, newAgentA(conf), newAgentB(conf, i), conf, i)
			conf.Logger.Debug().Int("game", i).Msg("game-start")
			rec, err := ar.Play(ctx, conf.MaxPlies)
			if err != nil {
				return errors.WithMessage(err, ar.Name())
			}
			records[i] = rec
			conf.Logger.Info().
				Int("game", i).
				Int("plies", len(rec.Plies)).
				Int("score", rec.Score()).
				Msg("game-done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func newAgentA(conf Config) *Agent { return NewSearchAgent("A", conf.Search) }

func newAgentB(conf Config, gameNumber int) *Agent {
	if conf.RandomB {
		return NewRandomAgent("B", conf.Search.Rules, int64(conf.Seed)+int64(gameNumber))
	}
	return NewSearchAgent("B", conf.Search)
}
