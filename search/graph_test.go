package search

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDot(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	b, p := randomBoard(r, 6)
	conf := DefaultConfig()
	conf.StartDepth, conf.MaxDepth = 1, 3
	e := New(conf)
	_, ok := e.Solve(b, p)
	require.True(t, ok)

	pv := e.PV(b, p)
	dot, err := e.ToDot(b, p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "digraph PV"), dot)
	assert.Equal(t, len(pv), strings.Count(dot, "->"))

	g, err := gographviz.Read([]byte(dot))
	require.NoError(t, err)
	assert.Len(t, g.Nodes.Nodes, len(pv)+1)
	assert.Len(t, g.Edges.Edges, len(pv))
}
