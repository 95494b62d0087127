package flip

import (
	"strings"

	"github.com/gorgonia/flipswap/game"
	"github.com/pkg/errors"
)

var _ game.State = Board{}

// Board is a position of the game. Boards are values: every move copies the board and changes the copy,
// so a Board that has been handed out is never modified.
type Board struct {
	upright [2]Bitboard
	flipped [2]Bitboard
	hash    game.Zobrist
	keys    *Keys

	last Move // not part of the position
}

// New creates an empty board hashed with the given keys.
func New(keys *Keys) Board { return Board{keys: keys} }

// NewBoard creates an empty board hashed with the process wide keys. See Init.
func NewBoard() Board { return New(Default()) }

// FromColours builds a board from a row major slice of colours. Flips are taken as given; no propagation happens.
func FromColours(keys *Keys, cells []game.Colour) (Board, error) {
	b := New(keys)
	if len(cells) != Cells {
		return b, errors.Errorf("expected %d cells, got %d", Cells, len(cells))
	}
	for i, c := range cells {
		if c == game.None {
			continue
		}
		if tag(c) < 0 {
			return b, errors.Errorf("invalid colour %d at cell %d", c, i)
		}
		m := bit(game.Single(i))
		idx := game.Player(c.Owner()).Index()
		if c.IsFlipped() {
			b.flipped[idx] |= m
		} else {
			b.upright[idx] |= m
		}
	}
	b.hash = b.Rehash()
	return b, nil
}

// Parse reads a board in the compact notation: '.' (or '·') empty, 'x'/'o' upright Black/White,
// 'X'/'O' flipped Black/White. Whitespace and the '⎢' '⎥' row brackets are ignored.
func Parse(keys *Keys, s string) (Board, error) {
	cells := make([]game.Colour, 0, Cells)
	for _, r := range s {
		switch r {
		case '.', '·':
			cells = append(cells, game.None)
		case 'x':
			cells = append(cells, game.Black)
		case 'o':
			cells = append(cells, game.White)
		case 'X':
			cells = append(cells, game.Black|game.Flipped)
		case 'O':
			cells = append(cells, game.White|game.Flipped)
		case ' ', '\t', '\n', '\r', '⎢', '⎥':
		default:
			return New(keys), errors.Errorf("unexpected %q in board %q", r, strings.TrimSpace(s))
		}
	}
	return FromColours(keys, cells)
}

func (b Board) BoardSize() (int, int) { return Width, Height }

// Board returns the colour of every cell, row major.
func (b Board) Board() []game.Colour {
	retVal := make([]game.Colour, Cells)
	for i := range retVal {
		retVal[i] = b.At(game.Single(i))
	}
	return retVal
}

// At returns the colour of cell i.
func (b Board) At(i game.Single) game.Colour {
	if !inRange(i) {
		return game.None
	}
	m := bit(i)
	switch {
	case b.upright[0]&m != 0:
		return game.Black
	case b.upright[1]&m != 0:
		return game.White
	case b.flipped[0]&m != 0:
		return game.Black | game.Flipped
	case b.flipped[1]&m != 0:
		return game.White | game.Flipped
	}
	return game.None
}

func (b Board) Hash() game.Zobrist { return b.hash }

// Key is the transposition key of the board with p to move.
func (b Board) Key(p game.Player) game.Zobrist { return b.hash ^ b.keys.Side(p) }

// Keys returns the key table the board is hashed with.
func (b Board) Keys() *Keys { return b.keys }

func (b Board) Evaluate() int { return DefaultRules.Evaluate(b) }

// LastMove is the move that produced this board. It is the zero Move for a board that was not made by a move.
func (b Board) LastMove() Move { return b.last }

func (b Board) Upright(p game.Player) Bitboard { return b.upright[p.Index()] }
func (b Board) Flipped(p game.Player) Bitboard { return b.flipped[p.Index()] }

// Own returns every cell held by p.
func (b Board) Own(p game.Player) Bitboard { return b.upright[p.Index()] | b.flipped[p.Index()] }

func (b Board) Occupied() Bitboard {
	return b.upright[0] | b.upright[1] | b.flipped[0] | b.flipped[1]
}

func (b Board) Empty() Bitboard { return Full &^ b.Occupied() }

// Eq compares positions. The last move is ignored.
func (b Board) Eq(other Board) bool {
	return b.upright == other.upright && b.flipped == other.flipped
}

// Moves generates the successors of the board under the default rules.
func (b Board) Moves(p game.Player) *MoveIter { return DefaultRules.Moves(b, p) }

// Place puts an upright piece of p on cell i under the default rules.
func (b Board) Place(i game.Single, p game.Player) (Board, bool) { return DefaultRules.Place(b, i, p) }

// Swap exchanges the upright pieces on cells i and j under the default rules.
func (b Board) Swap(i, j game.Single, p game.Player) (Board, bool) {
	return DefaultRules.Swap(b, i, j, p)
}

// Place puts an upright piece of p on the empty cell i and flips whatever that completes.
// Nothing happens, and false is returned, if the cell is not empty or the move is malformed.
func (r Rules) Place(b Board, i game.Single, p game.Player) (Board, bool) {
	if !validPlayer(p) || !inRange(i) || b.Occupied()&bit(i) != 0 {
		return b, false
	}
	b.upright[p.Index()] |= bit(i)
	b.hash ^= b.keys.Cell(i, game.Colour(p))
	b.propagate(p)
	b.last = Move{Player: p, Kind: KindPlace, A: i, B: game.NoCell}
	return b, true
}

// Swap exchanges the pieces on the upright cells i and j, on behalf of p. When the pieces belong to
// different players, ownership is exchanged. Both pieces end up flipped.
// Nothing happens, and false is returned, if either cell is not an upright piece or the move is malformed.
func (r Rules) Swap(b Board, i, j game.Single, p game.Player) (Board, bool) {
	if !validPlayer(p) || i == j {
		return b, false
	}
	oi, ok := b.uprightOwner(i)
	if !ok {
		return b, false
	}
	oj, ok := b.uprightOwner(j)
	if !ok {
		return b, false
	}
	if i > j {
		i, j = j, i
		oi, oj = oj, oi
	}

	b.upright[oi.Index()] &^= bit(i)
	b.upright[oj.Index()] &^= bit(j)
	b.flipped[oj.Index()] |= bit(i)
	b.flipped[oi.Index()] |= bit(j)

	b.hash ^= b.keys.Cell(i, game.Colour(oi)) ^ b.keys.Cell(i, game.Colour(oj)|game.Flipped)
	b.hash ^= b.keys.Cell(j, game.Colour(oj)) ^ b.keys.Cell(j, game.Colour(oi)|game.Flipped)

	b.propagate(p)
	if r.PropagateBoth && oi != oj {
		b.propagate(p.Opponent())
	}
	b.last = Move{Player: p, Kind: KindSwap, A: i, B: j}
	return b, true
}

func (b *Board) uprightOwner(i game.Single) (game.Player, bool) {
	if !inRange(i) {
		return game.Player(game.None), false
	}
	switch m := bit(i); {
	case b.upright[0]&m != 0:
		return game.Player(game.Black), true
	case b.upright[1]&m != 0:
		return game.Player(game.White), true
	}
	return game.Player(game.None), false
}

// propagate flips every upright piece of p that has at least three neighbours owned by p.
// Flipping does not change who owns what, so a single pass reaches the fixed point.
func (b *Board) propagate(p game.Player) {
	idx := p.Index()
	_, three := Neighbours(b.upright[idx] | b.flipped[idx])
	newly := three & b.upright[idx]
	if newly == 0 {
		return
	}
	up, fl := game.Colour(p), game.Colour(p)|game.Flipped
	for _, i := range newly.Cells() {
		b.hash ^= b.keys.Cell(i, up) ^ b.keys.Cell(i, fl)
	}
	b.upright[idx] &^= newly
	b.flipped[idx] |= newly
}

// Rehash computes the hash from scratch. It exists to check the incremental hash; search never calls it.
func (b Board) Rehash() game.Zobrist {
	var h game.Zobrist
	for i := game.Single(0); i < Cells; i++ {
		if c := b.At(i); c != game.None {
			h ^= b.keys.Cell(i, c)
		}
	}
	return h
}

// Verify checks the invariants of the board: the four piece sets are disjoint and within the board,
// and the incremental hash equals the recomputed one.
func (b Board) Verify() error {
	sets := [4]Bitboard{b.upright[0], b.upright[1], b.flipped[0], b.flipped[1]}
	var seen Bitboard
	for k, s := range sets {
		if s&^Full != 0 {
			return errors.Errorf("piece set %d has cells outside the board: %#x", k, s&^Full)
		}
		if seen&s != 0 {
			return errors.Errorf("piece set %d overlaps another set at %#x", k, seen&s)
		}
		seen |= s
	}
	if b.keys == nil {
		return errors.New("board has no zobrist keys")
	}
	if h := b.Rehash(); h != b.hash {
		return errors.Errorf("incremental hash %#x does not match recomputed hash %#x", b.hash, h)
	}
	return nil
}
