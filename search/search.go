package search

import (
	"time"

	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/rs/zerolog"
)

/*
The search is a negamax formulation of alpha-beta: every call returns a score from the point of view of the
player to move at that node, so both players share a single code path and a parent simply negates what its
children return.

	function negamax(node, depth, α, β, color) is
	    if depth = 0 or node is a terminal node then
	        return color × the heuristic value of node
	    value := −∞
	    foreach child in orderMoves(generateMoves(node)) do
	        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
	        α := max(α, value)
	        if α ≥ β then
	            break (* cut-off *)
	    return value
*/

// Infinity is larger than any score a board can have.
const Infinity = 1 << 30

// Engine searches for the best move. An Engine is not safe for concurrent use.
type Engine struct {
	conf   Config
	table  *Table
	warm   bool // a Solve has completed, so the previous generation holds hints
	stats  Stats
	logger zerolog.Logger
}

// New creates an engine. It panics if the config is not valid.
func New(conf Config) *Engine {
	if err := conf.Validate(); err != nil {
		panic(err.Error())
	}
	return &Engine{
		conf:   conf,
		table:  NewTable(),
		logger: zerolog.Nop(),
	}
}

// SetLogger sets where the engine reports its progress. Progress is logged at debug level.
func (e *Engine) SetLogger(l zerolog.Logger) { e.logger = l }

func (e *Engine) Config() Config { return e.conf }

// Stats returns the statistics of the last Solve.
func (e *Engine) Stats() Stats { return e.stats }

// Reset forgets everything learnt by previous searches.
func (e *Engine) Reset() {
	e.table.Reset()
	e.warm = false
	e.stats = Stats{}
}

// Solve returns the best successor of b for p. It returns false if p has no legal move.
func (e *Engine) Solve(b flip.Board, p game.Player) (flip.Board, bool) {
	start := e.conf.MaxDepth
	if !e.warm {
		start = e.conf.StartDepth
	}
	e.stats = Stats{}
	began := time.Now()

	var best flip.Board
	var found bool
	for depth := start; depth <= e.conf.MaxDepth; depth++ {
		e.logger.Debug().Int("plies", depth).Msg("deepening-iteratively")
		before := e.stats.TotalNodes

		score, move, ok := e.negamax(b, p, depth, -Infinity, Infinity)
		e.table.Rotate()
		best, found = move, ok

		e.stats.Depth = depth
		e.stats.Score = score
		e.stats.Nodes = e.stats.TotalNodes - before
		e.logger.Debug().
			Int("ply", depth).
			Int("score", score).
			Int("nodes", e.stats.Nodes).
			Stringer("move", best.LastMove()).
			Msg("best-val")
		if !ok {
			break
		}
	}
	e.warm = true
	e.stats.Elapsed = time.Since(began)
	return best, found
}

func (e *Engine) negamax(b flip.Board, p game.Player, depth, alpha, beta int) (int, flip.Board, bool) {
	e.stats.TotalNodes++
	if depth == 0 {
		e.stats.Leaves++
		return p.Sign() * e.conf.Rules.Evaluate(b), flip.Board{}, false
	}

	key := b.Key(p)
	if entry, ok := e.table.Probe(key); ok {
		if score, ok := entry.usable(depth, alpha, beta); ok {
			e.stats.MemoHits++
			return score, entry.Best, entry.HasBest && entry.Bound == Exact
		}
	}

	origAlpha := alpha
	bestScore := -Infinity
	var best flip.Board
	var found bool

	moves := e.orderedMoves(b, p, key)
	for child, ok := moves.Next(); ok; child, ok = moves.Next() {
		score, _, _ := e.negamax(child, p.Opponent(), depth-1, -beta, -alpha)
		score = -score
		if !found || score > bestScore {
			bestScore, best, found = score, child, true
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			e.stats.Cutoffs++
			break
		}
	}

	entry := Entry{Score: bestScore, Depth: depth, Best: best, HasBest: found}
	switch {
	case !found:
		entry.Score = p.Sign() * e.conf.Rules.Evaluate(b)
		entry.Bound = Exact
	case bestScore <= origAlpha:
		entry.Bound = Upper
	case bestScore >= beta:
		entry.Bound = Lower
	default:
		entry.Bound = Exact
	}
	e.table.Store(key, entry)
	return entry.Score, best, found
}

// PV returns the principal variation found by the last completed depth, starting with the move played from b.
func (e *Engine) PV(b flip.Board, p game.Player) []flip.Board {
	var line []flip.Board
	for len(line) < e.conf.MaxDepth {
		next, ok := e.table.Hint(b.Key(p))
		if !ok {
			break
		}
		line = append(line, next)
		b, p = next, p.Opponent()
	}
	return line
}

// moveOrder yields the hint of the previous generation first, then everything the generator produces
// except the hint.
type moveOrder struct {
	hint    flip.Board
	hasHint bool
	hinted  bool
	moves   *flip.MoveIter
}

func (e *Engine) orderedMoves(b flip.Board, p game.Player, key game.Zobrist) *moveOrder {
	hint, ok := e.table.Hint(key)
	return &moveOrder{
		hint:    hint,
		hasHint: ok,
		moves:   e.conf.Rules.Moves(b, p),
	}
}

func (m *moveOrder) Next() (flip.Board, bool) {
	if m.hasHint && !m.hinted {
		m.hinted = true
		return m.hint, true
	}
	for {
		b, ok := m.moves.Next()
		if !ok {
			return b, false
		}
		if m.hasHint && b.Eq(m.hint) {
			continue
		}
		return b, true
	}
}
