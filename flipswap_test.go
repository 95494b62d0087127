package flipswap

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/gorgonia/flipswap/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConfig() Config {
	conf := DefaultConfig()
	conf.Search.StartDepth, conf.Search.MaxDepth = 1, 1
	conf.MaxPlies = 6
	conf.Parallel = 3
	conf.RandomB = true
	conf.Verify = true
	return conf
}

func TestRun(t *testing.T) {
	conf := runConfig()
	recs, err := Run(context.Background(), conf, 5)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	for i, rec := range recs {
		assert.Equal(t, i, rec.Game)
		assert.Len(t, rec.Plies, conf.MaxPlies)
		assert.NoError(t, rec.Final.Verify())
	}

	again, err := Run(context.Background(), conf, 5)
	require.NoError(t, err)
	for i := range recs {
		if diff := cmp.Diff(recs[i].Moves(), again[i].Moves()); diff != "" {
			t.Errorf("game %d differs between runs (-first +second):\n%s", i, diff)
		}
	}
}

func TestRunSharedKeys(t *testing.T) {
	conf := runConfig()
	conf.Keys = testKeys
	conf.MaxPlies = 2
	recs, err := Run(context.Background(), conf, 2)
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Same(t, testKeys, rec.Final.Keys())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	conf := runConfig()
	conf.Parallel = 0
	_, err := Run(context.Background(), conf, 1)
	assert.Error(t, err)
}

var configTests = []struct {
	modify func(*Config)
	valid  bool
}{
	{func(*Config) {}, true},
	{func(c *Config) { c.MaxPlies = -1 }, false},
	{func(c *Config) { c.Parallel = 0 }, false},
	{func(c *Config) { c.Search = search.Config{} }, false},
	{func(c *Config) { c.Search.StartDepth = c.Search.MaxDepth + 1 }, false},
}

func TestConfig(t *testing.T) {
	for i, c := range configTests {
		conf := DefaultConfig()
		c.modify(&conf)
		assert.Equal(t, c.valid, conf.IsValid(), "config %d", i)
	}
}

func TestStatistics(t *testing.T) {
	recs := []Record{
		{Game: 0, Plies: []Ply{
			{Player: Black, Move: flip.Move{Player: Black, Kind: flip.KindPlace, A: 12, B: game.NoCell}, Score: 0, Nodes: 30},
			{Player: White, Move: flip.Move{Player: White, Kind: flip.KindPlace, A: 7, B: game.NoCell}, Score: 0, Nodes: 0},
		}},
		{Game: 1, Plies: []Ply{
			{Player: Black, Move: flip.Move{Player: Black, Kind: flip.KindSwap, A: 3, B: 17}, Score: 2, Nodes: 12},
		}},
	}
	var s Statistics
	s.Add(recs...)
	assert.Equal(t, 3, s.Plies())
	assert.Equal(t, 42, s.Nodes())

	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	want := [][]string{
		{"game", "ply", "player", "move", "score", "nodes"},
		{"0", "1", "Black", "X@12", "0", "30"},
		{"0", "2", "White", "O@7", "0", "0"},
		{"1", "1", "Black", "X@3<>17", "2", "12"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("csv (-want +got):\n%s", diff)
	}

	filename := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, s.Dump(filename))
	dumped, err := os.ReadFile(filename)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, s.WriteCSV(&buf))
	assert.Equal(t, buf.String(), string(dumped))
}
