package flip

import "github.com/gorgonia/flipswap/game"

// Rules holds the policy choices of the game that are not fixed by the board itself.
type Rules struct {
	// TripleWeight is what a cell with at least three same owner neighbours is worth,
	// relative to a cell with at least two.
	TripleWeight int

	// PropagateBoth makes a swap that exchanges owners flip the pieces of both players.
	// When false only the acting player is propagated.
	PropagateBoth bool
}

// DefaultRules are the rules used by the Board convenience methods.
var DefaultRules = Rules{
	TripleWeight:  1000,
	PropagateBoth: true,
}

// Score is the heuristic value of p's pieces.
func (r Rules) Score(b Board, p game.Player) int {
	if !validPlayer(p) {
		return 0
	}
	own := b.Own(p)
	two, three := Neighbours(own)
	return r.TripleWeight*(three&own).Count() + (two & own).Count()
}

// Evaluate scores the board. Positive values favour Black.
func (r Rules) Evaluate(b Board) int {
	return r.Score(b, game.Player(game.Black)) - r.Score(b, game.Player(game.White))
}

func validPlayer(p game.Player) bool {
	return p == game.Player(game.Black) || p == game.Player(game.White)
}
