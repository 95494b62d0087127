package flipswap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var _ game.MetaState = &Arena{}

// Arena is where two agents play a game against each other. A plays Black and moves first.
type Arena struct {
	A, B *Agent

	// state
	board         flip.Board
	currentPlayer *Agent
	ply           int
	verify        bool
	enc           OutputEncoder
	buf           bytes.Buffer
	logger        zerolog.Logger

	name       string
	gameNumber int // which game is this in
}

// NewArena makes an arena with an empty board hashed with keys.
func NewArena(keys *flip.Keys, a, b *Agent, conf Config, gameNumber int) *Arena {
	name := conf.Name
	if name == "" {
		name = "UNKNOWN GAME"
	}
	ar := &Arena{
		A:          a,
		B:          b,
		board:      flip.New(keys),
		verify:     conf.Verify,
		name:       name,
		gameNumber: gameNumber,
	}
	if conf.Output != nil {
		ar.enc = conf.Output(gameNumber)
	}
	ar.A.Player = game.Player(game.Black)
	ar.B.Player = game.Player(game.White)
	ar.currentPlayer = ar.A

	ar.logger = zerolog.New(zerolog.ConsoleWriter{Out: &ar.buf, NoColor: true, TimeFormat: time.Kitchen}).
		With().Timestamp().Int("game", gameNumber).Logger()
	ar.A.setLogger(ar.logger)
	ar.B.setLogger(ar.logger)
	return ar
}

// Play plays the game until the player to move has no legal move, maxPlies plies have been played
// (if maxPlies > 0) or ctx is done.
func (a *Arena) Play(ctx context.Context, maxPlies int) (Record, error) {
	rec := Record{Game: a.gameNumber}
	a.logger.Info().Str("A", a.A.Name()).Str("B", a.B.Name()).Int("maxPlies", maxPlies).Msg("playing")
	for maxPlies <= 0 || a.ply < maxPlies {
		if err := ctx.Err(); err != nil {
			rec.Final = a.board
			return rec, errors.Wrapf(err, "game %d stopped at ply %d", a.gameNumber, a.ply)
		}

		p := a.currentPlayer.Player
		next, ok := a.currentPlayer.Move(a.board, p)
		if !ok {
			a.logger.Info().Str("player", fmt.Sprintf("%v", p)).Int("ply", a.ply).Msg("no-move")
			break
		}
		a.board = next
		a.ply++
		if a.verify {
			if err := a.board.Verify(); err != nil {
				rec.Final = a.board
				return rec, errors.Wrapf(err, "game %d, ply %d (%v)", a.gameNumber, a.ply, next.LastMove())
			}
		}

		ply := Ply{
			Player: p,
			Move:   next.LastMove(),
			Score:  next.Evaluate(),
			Nodes:  a.currentPlayer.LastNodes(),
		}
		rec.Plies = append(rec.Plies, ply)
		a.logger.Debug().
			Int("ply", a.ply).
			Stringer("move", ply.Move).
			Int("score", ply.Score).
			Int("nodes", ply.Nodes).
			Msg("played")

		a.switchPlayer()
		if a.enc != nil {
			if err := a.enc.Encode(a); err != nil {
				rec.Final = a.board
				return rec, errors.WithMessage(err, fmt.Sprintf("unable to encode ply %d", a.ply))
			}
		}
	}
	rec.Final = a.board
	a.logger.Info().Int("plies", a.ply).Int("score", rec.Score()).Msg("done")

	if a.enc != nil {
		if err := a.enc.Flush(); err != nil {
			return rec, errors.WithMessage(err, "unable to flush output")
		}
	}
	return rec, nil
}

func (a *Arena) GameNumber() int         { return a.gameNumber }
func (a *Arena) Name() string            { return a.name }
func (a *Arena) Ply() int                { return a.ply }
func (a *Arena) ToMove() game.Player     { return a.currentPlayer.Player }
func (a *Arena) State() game.State       { return a.board }
func (a *Arena) Board() flip.Board       { return a.board }
func (a *Arena) Score(p game.Player) int { return p.Sign() * a.board.Evaluate() }

// Log writes the game log, followed by the statistics of both agents.
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
	fmt.Fprintf(w, "\nA (%s): %d moves, %d nodes\n", a.A.Name(), a.A.Moves, a.A.Nodes)
	fmt.Fprintf(w, "B (%s): %d moves, %d nodes\n", a.B.Name(), a.B.Moves, a.B.Nodes)
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}
