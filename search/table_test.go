package search

import (
	"testing"

	"github.com/gorgonia/flipswap/game/flip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRotate(t *testing.T) {
	tab := NewTable()
	b := flip.New(testKeys)
	child, ok := b.Place(12, Black)
	require.True(t, ok)
	key := b.Key(Black)

	tab.Store(key, Entry{Score: 7, Depth: 2, Best: child, HasBest: true})
	_, ok = tab.Probe(key)
	assert.True(t, ok)
	_, ok = tab.Hint(key)
	assert.False(t, ok, "hints only come from the previous generation")

	tab.Rotate()
	_, ok = tab.Probe(key)
	assert.False(t, ok, "rotation clears the memo")
	hint, ok := tab.Hint(key)
	require.True(t, ok)
	assert.True(t, hint.Eq(child))

	cur, prev := tab.Len()
	assert.Equal(t, 0, cur)
	assert.Equal(t, 1, prev)

	tab.Rotate()
	_, ok = tab.Hint(key)
	assert.False(t, ok, "hints last a single generation")

	tab.Store(key, Entry{Score: 1})
	tab.Rotate()
	_, ok = tab.Hint(key)
	assert.False(t, ok, "entries without a best move give no hint")

	tab.Reset()
	cur, prev = tab.Len()
	assert.Zero(t, cur+prev)
}

var usableTests = []struct {
	entry       Entry
	depth       int
	alpha, beta int
	usable      bool
}{
	{Entry{Score: 5, Depth: 3, Bound: Exact}, 3, -10, 10, true},
	{Entry{Score: 5, Depth: 2, Bound: Exact}, 3, -10, 10, false},
	{Entry{Score: 5, Depth: 4, Bound: Exact}, 3, -10, 10, false},
	{Entry{Score: 15, Depth: 3, Bound: Lower}, 3, -10, 10, true},
	{Entry{Score: 5, Depth: 3, Bound: Lower}, 3, -10, 10, false},
	{Entry{Score: -15, Depth: 3, Bound: Upper}, 3, -10, 10, true},
	{Entry{Score: -5, Depth: 3, Bound: Upper}, 3, -10, 10, false},
}

func TestEntryUsable(t *testing.T) {
	for i, c := range usableTests {
		score, ok := c.entry.usable(c.depth, c.alpha, c.beta)
		assert.Equal(t, c.usable, ok, "case %d", i)
		if ok {
			assert.Equal(t, c.entry.Score, score, "case %d", i)
		}
	}
}
