package search_test

import (
	"fmt"

	"github.com/gorgonia/flipswap/game"
	"github.com/gorgonia/flipswap/game/flip"
	"github.com/gorgonia/flipswap/search"
)

func Example() {
	keys := flip.NewKeys(flip.DefaultSeed)
	b, err := flip.Parse(keys, `
		.x...
		x.x..
		.....
		.....
		.....`)
	if err != nil {
		panic(err)
	}

	conf := search.DefaultConfig()
	conf.StartDepth, conf.MaxDepth = 1, 1
	e := search.New(conf)

	best, ok := e.Solve(b, game.Player(game.Black))
	fmt.Println(ok, best.LastMove(), e.Stats().Score)
	fmt.Printf("%s", best)

	// Output:
	// true X@6 1001
	// ⎢ · x · · · ⎥
	// ⎢ x X x · · ⎥
	// ⎢ · · · · · ⎥
	// ⎢ · · · · · ⎥
	// ⎢ · · · · · ⎥
}
