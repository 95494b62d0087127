package flip

import (
	"math/bits"

	"github.com/gorgonia/flipswap/game"
)

const (
	Width  = 5
	Height = 5
	Cells  = Width * Height
)

// Bitboard is a set of cells, bit i is the cell at (i%Width, i/Width).
type Bitboard uint32

// Bitboard constants
const (
	Full  Bitboard = 1<<Cells - 1
	FileA Bitboard = 0x108421 // leftmost column
	FileE Bitboard = FileA << (Width - 1)
)

func bit(i game.Single) Bitboard { return Bitboard(1) << uint(i) }

func inRange(i game.Single) bool { return i >= 0 && i < Cells }

// Has returns true if the cell is in the set.
func (bb Bitboard) Has(i game.Single) bool { return inRange(i) && bb&bit(i) != 0 }

// Count returns the number of cells in the set.
func (bb Bitboard) Count() int { return bits.OnesCount32(uint32(bb)) }

// Cells lists the cells of the set in ascending order.
func (bb Bitboard) Cells() []game.Single {
	retVal := make([]game.Single, 0, bb.Count())
	for bb != 0 {
		retVal = append(retVal, game.Single(bits.TrailingZeros32(uint32(bb))))
		bb &= bb - 1
	}
	return retVal
}

// Neighbours marks every cell that has at least two, and at least three, orthogonal neighbours in own.
//
// Each direction gives an indicator mask (bit i is set when the neighbour of i in that direction is in own).
// Horizontal shifts are masked so that a row never wraps into the next one. The four indicators are
// then summed pairwise: a cell has ≥2 when either pair is full or both pairs are non-empty, and ≥3
// when one pair is full and the other is non-empty.
//
// Cells outside own are included in the result; callers intersect with whatever set they care about.
func Neighbours(own Bitboard) (atLeast2, atLeast3 Bitboard) {
	own &= Full
	l := (own << 1) &^ FileA
	r := (own >> 1) &^ FileE
	u := (own << Width) & Full
	d := own >> Width

	lr2, lr1 := l&r, l|r
	ud2, ud1 := u&d, u|d

	atLeast2 = lr2 | ud2 | (lr1 & ud1)
	atLeast3 = (lr2 & ud1) | (ud2 & lr1)
	return
}
