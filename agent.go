package flipswap

import (
	"math/rand"

	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/gorgonia/flipswap/search"
	"github.com/rs/zerolog"
)

// An Agent is a player. It either searches for the best move, or picks one at random.
type Agent struct {
	Engine *search.Engine // nil for random agents
	Player game.Player

	// Statistics
	Moves int
	Nodes int

	name  string
	rules flip.Rules
	r     *rand.Rand
	last  int // nodes searched by the last move
}

// NewSearchAgent creates an agent backed by its own search engine.
func NewSearchAgent(name string, conf search.Config) *Agent {
	return &Agent{
		Engine: search.New(conf),
		name:   name,
		rules:  conf.Rules,
	}
}

// NewRandomAgent creates an agent that picks uniformly among the legal moves. The choices are
// deterministic for a seed.
func NewRandomAgent(name string, rules flip.Rules, seed int64) *Agent {
	return &Agent{
		name:  name,
		rules: rules,
		r:     rand.New(rand.NewSource(seed)),
	}
}

func (a *Agent) Name() string { return a.name }

// Move returns the board after the agent moved for p. It returns false if p has no legal move.
func (a *Agent) Move(b flip.Board, p game.Player) (flip.Board, bool) {
	var next flip.Board
	var ok bool
	if a.Engine != nil {
		next, ok = a.Engine.Solve(b, p)
		a.last = a.Engine.Stats().TotalNodes
	} else {
		next, ok = a.random(b, p)
		a.last = 0
	}
	if ok {
		a.Moves++
		a.Nodes += a.last
	}
	return next, ok
}

// random walks the generator to a uniformly chosen successor.
func (a *Agent) random(b flip.Board, p game.Player) (flip.Board, bool) {
	n := a.rules.Count(b, p)
	if n == 0 {
		return b, false
	}
	k := a.r.Intn(n)
	it := a.rules.Moves(b, p)
	next, ok := it.Next()
	for ; k > 0 && ok; k-- {
		next, ok = it.Next()
	}
	return next, ok
}

// LastNodes returns the positions searched by the last move.
func (a *Agent) LastNodes() int { return a.last }

func (a *Agent) setLogger(l zerolog.Logger) {
	if a.Engine != nil {
		a.Engine.SetLogger(l)
	}
}

// Reset clears the statistics and whatever the engine learnt.
func (a *Agent) Reset() {
	a.Moves, a.Nodes, a.last = 0, 0, 0
	if a.Engine != nil {
		a.Engine.Reset()
	}
}
