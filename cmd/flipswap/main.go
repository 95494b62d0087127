package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/gorgonia/flipswap"
	"github.com/gorgonia/flipswap/encoding/gif"
	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/gorgonia/flipswap/search"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	depth    = flag.Int("depth", 7, "search depth in plies")
	start    = flag.Int("start", 4, "depth the first search of an engine starts deepening from")
	seed     = flag.Uint64("seed", flip.DefaultSeed, "seed of the zobrist keys and of the random player")
	games    = flag.Int("games", 1, "number of games to play")
	parallel = flag.Int("parallel", runtime.NumCPU(), "games played at the same time")
	plies    = flag.Int("plies", 0, "stop a game after this many plies (0 = play until nobody can move)")
	random   = flag.Bool("random", false, "White picks random moves")
	verify   = flag.Bool("verify", false, "verify every board produced")
	gifFile  = flag.String("gif", "", "write the first game as an animated gif")
	dotFile  = flag.String("dot", "", "write the principal variation of the opening move as a graphviz file")
	stats    = flag.String("stats", "", "write every ply as CSV")
	quiet    = flag.Bool("q", false, "do not print the positions of the first game")
	verbose  = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Fatal().Err(err).Msg("flipswap")
	}
}

func run(ctx context.Context, logger zerolog.Logger) error {
	conf := flipswap.DefaultConfig()
	conf.Search.MaxDepth = *depth
	conf.Search.StartDepth = *start
	if conf.Search.StartDepth > conf.Search.MaxDepth {
		conf.Search.StartDepth = conf.Search.MaxDepth
	}
	conf.Seed = *seed
	conf.Keys = flip.Init(*seed)
	conf.MaxPlies = *plies
	conf.Parallel = *parallel
	conf.RandomB = *random
	conf.Verify = *verify
	conf.Logger = logger
	if err := conf.Validate(); err != nil {
		return err
	}

	var gifEnc *gif.Encoder
	if *gifFile != "" {
		f, err := os.Create(*gifFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		gifEnc = gif.NewEncoder(f, 800, 800)
	}
	conf.Output = func(gameNumber int) flipswap.OutputEncoder {
		if gameNumber != 0 {
			return nil
		}
		var encs flipswap.MultiEncoder
		if !*quiet {
			encs = append(encs, flipswap.NewTextEncoder(os.Stdout))
		}
		if gifEnc != nil {
			encs = append(encs, gifEnc)
		}
		if len(encs) == 0 {
			return nil
		}
		return encs
	}

	logger.Info().
		Int("depth", conf.Search.MaxDepth).
		Int("games", *games).
		Int("parallel", conf.Parallel).
		Bool("random", conf.RandomB).
		Msg("starting")
	records, err := flipswap.Run(ctx, conf, *games)
	if err != nil {
		return err
	}

	var s flipswap.Statistics
	s.Add(records...)
	logger.Info().Int("games", len(records)).Int("plies", s.Plies()).Int("nodes", s.Nodes()).Msg("finished")
	if *stats != "" {
		if err := s.Dump(*stats); err != nil {
			return err
		}
	}
	if *dotFile != "" {
		return writeDot(conf.Search, flip.NewBoard(), *dotFile)
	}
	return nil
}

func writeDot(conf search.Config, b flip.Board, filename string) error {
	e := search.New(conf)
	p := game.Player(game.Black)
	if _, ok := e.Solve(b, p); !ok {
		return errors.New("no move to explain")
	}
	dot, err := e.ToDot(b, p)
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(filename, []byte(dot), 0644))
}
