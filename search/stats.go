package search

import (
	"time"

	"github.com/chewxy/math32"
)

// Stats describes the last Solve.
type Stats struct {
	Depth int // deepest completed depth
	Score int // score of the root at Depth, from the point of view of the player to move

	Nodes      int // positions visited by the deepest iteration
	TotalNodes int // positions visited by all iterations
	Leaves     int
	MemoHits   int
	Cutoffs    int

	Elapsed time.Duration
}

// EffectiveBranchingFactor is the branching factor a uniform tree of the searched depth would need to
// have as many nodes as the deepest iteration visited.
func (s Stats) EffectiveBranchingFactor() float32 {
	if s.Depth == 0 || s.Nodes <= 1 {
		return 0
	}
	return math32.Pow(float32(s.Nodes), 1/float32(s.Depth))
}
