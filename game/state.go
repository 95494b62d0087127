package game

import (
	"fmt"
)

// Colour is the content of a cell. The low bits name the owner, the Flipped bit marks a piece
// that has permanently turned over.
type Colour int32

const (
	None Colour = iota
	Black
	White

	// Flipped is or-ed onto Black or White.
	Flipped Colour = 4
)

// Owner strips the Flipped bit.
func (cl Colour) Owner() Colour { return cl &^ Flipped }

// IsFlipped returns true when the piece has been flipped.
func (cl Colour) IsFlipped() bool { return cl&Flipped != 0 }

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		var name string
		switch cl.Owner() {
		case None:
			name = "None"
		case Black:
			name = "Black"
		case White:
			name = "White"
		}
		if cl.IsFlipped() {
			name += "(flipped)"
		}
		fmt.Fprint(s, name)
	case 's': // used in board games
		fmt.Fprint(s, cl.glyph(true))
	case 'c': // compact, ascii only
		fmt.Fprint(s, cl.glyph(false))
	}
}

func (cl Colour) glyph(fancy bool) string {
	switch cl {
	case Black:
		return "x"
	case White:
		return "o"
	case Black | Flipped:
		return "X"
	case White | Flipped:
		return "O"
	}
	if fancy {
		return "·"
	}
	return "."
}

// Player represents a player. It's also a colour.
type Player Colour

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player(Black):
		return Player(White)
	case Player(White):
		return Player(Black)
	}
	return Player(None)
}

// Index returns 0 for Black and 1 for White. The result is meaningless for None.
func (p Player) Index() int { return int(p-1) & 1 }

// Sign returns +1 for Black and -1 for White. Scores are always from Black's perspective.
func (p Player) Sign() int {
	if p == Player(White) {
		return -1
	}
	return 1
}

func (p Player) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch Colour(p) {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch Colour(p) {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Coord represents a (column, row) coordinate. (0, 0) is the top left.
type Coord struct {
	X, Y int16
}

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// Single represents a coordinate as a single number, utilized in a rowmajor fashion.
//		- 0 represents the top left
//		- 4 represents the top right of a 5x5 board
//		- 5 represents (0, 1)
// 		- -1 represents "no cell"
type Single int32

// NoCell is the Single used where a move has no second cell.
const NoCell Single = -1

// Zobrist is a type representing a zobrist hash of a position.
type Zobrist uint64

// State is what renderers and loggers need from a position.
type State interface {
	BoardSize() (int, int) // returns the board size
	Board() []Colour       // returns the board state
	Hash() Zobrist         // returns the hash of the board
	Evaluate() int         // heuristic score, positive favours Black
}

// MetaState is a position in the context of the game being played.
type MetaState interface {
	Name() string // name of the game
	GameNumber() int
	Ply() int
	ToMove() Player
	State() State
}
