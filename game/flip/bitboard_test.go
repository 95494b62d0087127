package flip

import (
	"math/rand"
	"testing"

	"github.com/gorgonia/flipswap/game"
)

// neighboursSlow counts the neighbours of every cell one by one.
func neighboursSlow(own Bitboard) (atLeast2, atLeast3 Bitboard) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			var sum int
			if x > 0 && own&(1<<uint(y*Width+x-1)) != 0 {
				sum++
			}
			if x < Width-1 && own&(1<<uint(y*Width+x+1)) != 0 {
				sum++
			}
			if y > 0 && own&(1<<uint((y-1)*Width+x)) != 0 {
				sum++
			}
			if y < Height-1 && own&(1<<uint((y+1)*Width+x)) != 0 {
				sum++
			}
			m := Bitboard(1) << uint(y*Width+x)
			if sum >= 2 {
				atLeast2 |= m
			}
			if sum >= 3 {
				atLeast3 |= m
			}
		}
	}
	return
}

func checkNeighbours(t *testing.T, own Bitboard) bool {
	two, three := Neighbours(own)
	slow2, slow3 := neighboursSlow(own)
	if two != slow2 || three != slow3 {
		t.Errorf("mask %#07x: got (%#07x, %#07x), expected (%#07x, %#07x)", own, two, three, slow2, slow3)
		return false
	}
	return true
}

func TestNeighboursExhaustiveBands(t *testing.T) {
	// every mask confined to three consecutive rows
	const band = 3 * Width
	for shift := 0; shift+band <= Cells; shift += Width {
		for m := Bitboard(0); m < 1<<band; m++ {
			if !checkNeighbours(t, m<<uint(shift)) {
				return
			}
		}
	}
}

func TestNeighboursRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	n := 200000
	if testing.Short() {
		n = 10000
	}
	for i := 0; i < n; i++ {
		if !checkNeighbours(t, Bitboard(r.Uint32())&Full) {
			return
		}
	}
	checkNeighbours(t, Full)
	checkNeighbours(t, 0)
}

func TestNeighboursNoRowWrap(t *testing.T) {
	// cells 4 and 5 are on different rows, as are 9 and 10.
	own := bit(4) | bit(5) | bit(9) | bit(10)
	two, _ := Neighbours(own)
	slow2, _ := neighboursSlow(own)
	if two != slow2 {
		t.Fatalf("row wrap leaked: got %#07x, expected %#07x", two, slow2)
	}
	if two.Has(4) || two.Has(5) {
		t.Errorf("cells on the edges should have a single neighbour each. Got %#07x", two)
	}
}

func TestBitboardCells(t *testing.T) {
	bb := bit(0) | bit(7) | bit(24)
	cells := bb.Cells()
	expected := []game.Single{0, 7, 24}
	if len(cells) != len(expected) {
		t.Fatalf("Expected %v. Got %v", expected, cells)
	}
	for i := range cells {
		if cells[i] != expected[i] {
			t.Errorf("Expected %v. Got %v", expected, cells)
		}
	}
	if bb.Count() != 3 {
		t.Errorf("Expected 3 cells. Got %d", bb.Count())
	}
	if bb.Has(25) || bb.Has(-1) {
		t.Error("out of range cells are never in a set")
	}
}
