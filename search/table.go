package search

import (
	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
)

// Bound says how an entry's score relates to the true value of the position.
type Bound uint8

const (
	Exact Bound = iota
	Lower       // the search failed high; the true value is at least Score
	Upper       // the search failed low; the true value is at most Score
)

// Entry is what the table remembers about a position.
type Entry struct {
	Score   int
	Depth   int
	Bound   Bound
	Best    flip.Board
	HasBest bool
}

// usable returns the score to use for a search of the given depth and window, if the entry can stand in for one.
// Only entries of the same depth qualify: a deeper score would make the result depend on the order in which
// transpositions are met.
func (e Entry) usable(depth, alpha, beta int) (int, bool) {
	if e.Depth != depth {
		return 0, false
	}
	switch e.Bound {
	case Exact:
		return e.Score, true
	case Lower:
		if e.Score >= beta {
			return e.Score, true
		}
	case Upper:
		if e.Score <= alpha {
			return e.Score, true
		}
	}
	return 0, false
}

// Table is a two generation transposition table. The current generation memoizes the depth being searched.
// The previous generation holds what the last completed depth found, and is only read for move ordering.
// There is no eviction: Rotate is the only way entries go away.
type Table struct {
	current  map[game.Zobrist]Entry
	previous map[game.Zobrist]Entry
}

func NewTable() *Table {
	return &Table{
		current:  make(map[game.Zobrist]Entry),
		previous: make(map[game.Zobrist]Entry),
	}
}

// Probe looks the key up in the current generation.
func (t *Table) Probe(key game.Zobrist) (Entry, bool) {
	e, ok := t.current[key]
	return e, ok
}

// Hint returns the best successor the previous generation recorded for the key.
func (t *Table) Hint(key game.Zobrist) (flip.Board, bool) {
	e, ok := t.previous[key]
	if !ok || !e.HasBest {
		return flip.Board{}, false
	}
	return e.Best, true
}

// Store records an entry in the current generation.
func (t *Table) Store(key game.Zobrist, e Entry) { t.current[key] = e }

// Rotate makes the current generation the previous one, and starts an empty current generation.
func (t *Table) Rotate() {
	t.current, t.previous = t.previous, t.current
	for k := range t.current {
		delete(t.current, k)
	}
}

// Reset forgets everything.
func (t *Table) Reset() {
	for k := range t.current {
		delete(t.current, k)
	}
	for k := range t.previous {
		delete(t.previous, k)
	}
}

// Len returns the number of entries of both generations.
func (t *Table) Len() (current, previous int) { return len(t.current), len(t.previous) }
