package flipswap

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gorgonia/flipswap/game/flip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	rec := new(recorder)
	conf := DefaultConfig()
	conf.Output = func(int) OutputEncoder { return MultiEncoder{NewTextEncoder(&buf), rec} }
	ar := NewArena(testKeys, NewRandomAgent("A", flip.DefaultRules, 3), NewRandomAgent("B", flip.DefaultRules, 4), conf, 0)

	played, err := ar.Play(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, rec.frames, 2)
	assert.Equal(t, 1, rec.flushed)

	out := buf.String()
	first := played.Plies[0].Move.String()
	assert.True(t, strings.HasPrefix(out, "Flip Swap, game 0, ply 1: "+first+". Score 0, O to move\n⎢ "), out)
	assert.Contains(t, out, "ply 2: "+played.Plies[1].Move.String())
	assert.Equal(t, 2*flip.Height, strings.Count(out, "⎥\n"))
}

func TestMultiEncoderStops(t *testing.T) {
	rec := new(recorder)
	m := MultiEncoder{failingEncoder{}, rec}
	err := m.Encode(nil)
	require.Error(t, err)
	assert.Equal(t, "disk full", errors.Cause(err).Error())
	assert.Empty(t, rec.frames)
	require.NoError(t, m.Flush())
	assert.Equal(t, 1, rec.flushed)
}
