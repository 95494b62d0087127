package flip

import (
	"sync"

	"github.com/gorgonia/flipswap/game"
)

// Keys is a table of zobrist keys: one key per (cell, tag) where the tag is one of
// upright-Black, upright-White, flipped-Black, flipped-White, plus one key per side to move.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// A Keys is never modified once built. Boards hold a pointer to the table that built their hash,
// so two boards built from different tables must never be compared by hash.
type Keys struct {
	cells [Cells][4]game.Zobrist
	side  [2]game.Zobrist
	seed  uint64
}

// NewKeys builds a key table. The same seed always yields the same table.
func NewKeys(seed uint64) *Keys {
	rng := splitmix64{state: seed}
	k := &Keys{seed: seed}
	for i := range k.cells {
		for t := range k.cells[i] {
			k.cells[i][t] = game.Zobrist(rng.next())
		}
	}
	k.side[0] = game.Zobrist(rng.next())
	k.side[1] = game.Zobrist(rng.next())
	return k
}

// Seed returns the seed the table was built from.
func (k *Keys) Seed() uint64 { return k.seed }

// Cell returns the key for a piece of the given colour on cell i. Empty cells have no key.
func (k *Keys) Cell(i game.Single, c game.Colour) game.Zobrist {
	t := tag(c)
	if t < 0 || !inRange(i) {
		return 0
	}
	return k.cells[i][t]
}

// Side returns the side to move key of p.
func (k *Keys) Side(p game.Player) game.Zobrist { return k.side[p.Index()] }

func tag(c game.Colour) int {
	switch c {
	case game.Black:
		return 0
	case game.White:
		return 1
	case game.Black | game.Flipped:
		return 2
	case game.White | game.Flipped:
		return 3
	}
	return -1
}

var (
	defaultKeys *Keys
	initOnce    sync.Once
)

// DefaultSeed is the seed used by the command line tools.
const DefaultSeed uint64 = 0x9e3779b97f4a7c15

// Init builds the process wide key table. It has to be called once before NewBoard.
// Only the first call builds a table; later calls return that table and ignore their seed.
func Init(seed uint64) *Keys {
	initOnce.Do(func() {
		defaultKeys = NewKeys(seed)
	})
	return defaultKeys
}

// Default returns the process wide key table. It panics if Init has not been called.
func Default() *Keys {
	if defaultKeys == nil {
		panic("flip: Init must be called before the default zobrist keys are used")
	}
	return defaultKeys
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
