package gif

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metaState struct {
	ply   int
	board flip.Board
}

func (m metaState) Name() string        { return "test" }
func (m metaState) GameNumber() int     { return 2 }
func (m metaState) Ply() int            { return m.ply }
func (m metaState) ToMove() game.Player { return game.Player(game.Black) }
func (m metaState) State() game.State   { return m.board }

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, 1000, 1000)

	b := flip.New(flip.NewKeys(1))
	p := game.Player(game.Black)
	for ply := 1; ply <= 3; ply++ {
		var ok bool
		b, ok = b.Place(game.Single(ply*6), p)
		require.True(t, ok)
		require.NoError(t, enc.Encode(metaState{ply: ply, board: b}))
		p = p.Opponent()
	}
	assert.Equal(t, 3, enc.Frames())
	require.NoError(t, enc.Flush())

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, []int{frameDelay, frameDelay, finalDelay}, g.Delay)
	for _, im := range g.Image {
		assert.Equal(t, enc.W, im.Bounds().Dx())
		assert.Equal(t, enc.H, im.Bounds().Dy())
	}
	assert.True(t, enc.W <= 1000 && enc.H <= 1000)
}

func TestEncoderSmallFrames(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, 50, 60)
	require.NoError(t, enc.Encode(metaState{board: flip.New(flip.NewKeys(1))}))
	assert.Equal(t, 50, enc.H)
	assert.Equal(t, 60, enc.W)
}

func TestEncoderNoFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewEncoder(&buf, 100, 100).Flush())
	assert.Zero(t, buf.Len())
}

func TestBoardRows(t *testing.T) {
	b, err := flip.Parse(flip.NewKeys(1), `
		x....
		.O...
		.....
		.....
		....o`)
	require.NoError(t, err)
	rows := boardRows(b)
	require.Len(t, rows, 5)
	assert.Equal(t, "x · · · ·", rows[0])
	assert.Equal(t, "· O · · ·", rows[1])
	assert.Equal(t, "· · · · o", rows[4])
}
