package ai

import "snake-arena/game/types"

// RandomWalk is a memoryless enemy policy: every decision is a uniform
// pick among the four cardinal headings, with no regard for the board.
type RandomWalk struct {
	rng types.RandSource
}

func NewRandomWalk(rng types.RandSource) *RandomWalk {
	return &RandomWalk{rng: rng}
}

// GetAction returns the next heading for an enemy.
func (w *RandomWalk) GetAction() types.Heading {
	return types.Cardinal[w.rng.Intn(len(types.Cardinal))]
}
