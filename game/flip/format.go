package flip

import (
	"fmt"

	"github.com/gorgonia/flipswap/game"
)

// Format prints the board. %s prints bracketed rows:
//		⎢ x · · O · ⎥
// %v prints the compact notation understood by Parse, one row per line.
func (b Board) Format(s fmt.State, c rune) {
	for i := game.Single(0); i < Cells; i++ {
		cell := b.At(i)
		switch c {
		case 's':
			if i%Width == 0 {
				fmt.Fprint(s, "⎢ ")
			}
			fmt.Fprintf(s, "%s ", cell)
			if (i+1)%Width == 0 {
				fmt.Fprint(s, "⎥\n")
			}
		default:
			fmt.Fprintf(s, "%c", cell)
			if (i+1)%Width == 0 && i+1 != Cells {
				fmt.Fprint(s, "\n")
			}
		}
	}
}

// Ltoi converts a coordinate to a cell index.
func Ltoi(c game.Coord) game.Single {
	if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height {
		return game.NoCell
	}
	return game.Single(int(c.Y)*Width + int(c.X))
}

// Itol converts a cell index to a coordinate.
func Itol(i game.Single) game.Coord {
	return game.Coord{X: int16(int(i) % Width), Y: int16(int(i) / Width)}
}
