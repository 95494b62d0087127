package flip

import (
	"fmt"
	"math/bits"

	"github.com/gorgonia/flipswap/game"
)

// MoveKind tells placements and swaps apart.
type MoveKind uint8

const (
	KindNone MoveKind = iota
	KindPlace
	KindSwap
)

// Move describes how a board was reached from its parent. B is game.NoCell for placements.
type Move struct {
	Player game.Player
	Kind   MoveKind
	A, B   game.Single
}

// IsZero returns true for the zero Move, i.e. no move.
func (m Move) IsZero() bool { return m.Kind == KindNone }

func (m Move) String() string { return fmt.Sprintf("%v", m) }

func (m Move) Format(s fmt.State, c rune) {
	switch m.Kind {
	case KindPlace:
		fmt.Fprintf(s, "%s@%d", m.Player, m.A)
	case KindSwap:
		fmt.Fprintf(s, "%s@%d<>%d", m.Player, m.A, m.B)
	default:
		fmt.Fprint(s, "none")
	}
}

// MoveIter lazily produces the successors of a board: first every placement in ascending cell order,
// then every swap of two upright pieces in ascending (i, j) order, i < j.
// An iterator is used once; generating moves again requires a new iterator.
type MoveIter struct {
	rules Rules
	from  Board
	p     game.Player

	empty   Bitboard      // placements not yet produced
	upright []game.Single // swap candidates, filled when placements run out
	i, j    int
	swaps   bool
}

// Moves returns an iterator over the successors of b with p to act.
func (r Rules) Moves(b Board, p game.Player) *MoveIter {
	it := &MoveIter{rules: r, from: b, p: p}
	if validPlayer(p) {
		it.empty = b.Empty()
	} else {
		it.swaps = true // nothing to produce
	}
	return it
}

// Next returns the next successor. It returns false once the moves are exhausted.
func (it *MoveIter) Next() (Board, bool) {
	for it.empty != 0 {
		i := game.Single(bits.TrailingZeros32(uint32(it.empty)))
		it.empty &^= bit(i)
		if b, ok := it.rules.Place(it.from, i, it.p); ok {
			return b, true
		}
	}
	if !it.swaps {
		it.swaps = true
		it.upright = (it.from.upright[0] | it.from.upright[1]).Cells()
		it.i, it.j = 0, 1
	}
	for it.i < len(it.upright)-1 {
		a, b := it.upright[it.i], it.upright[it.j]
		it.j++
		if it.j == len(it.upright) {
			it.i++
			it.j = it.i + 1
		}
		if next, ok := it.rules.Swap(it.from, a, b, it.p); ok {
			return next, true
		}
	}
	return Board{}, false
}

// All drains the iterator.
func (it *MoveIter) All() []Board {
	var retVal []Board
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		retVal = append(retVal, b)
	}
	return retVal
}

// Count returns how many successors Moves would produce, without building them.
func (r Rules) Count(b Board, p game.Player) int {
	if !validPlayer(p) {
		return 0
	}
	u := (b.upright[0] | b.upright[1]).Count()
	return b.Empty().Count() + u*(u-1)/2
}
