package mapgen

import (
	"math/rand"

	"github.com/agade09/wondev-arena/internal/geometry"
	"github.com/agade09/wondev-arena/internal/state"
)

// SquareWidth and DiamondWidth are the fixed sizes of the two
// hard-coded maps.
const (
	SquareWidth  = 5
	DiamondWidth = 7
	RandomWidth  = 6
)

// Square returns the 5x5 all-playable, all-height-0 map.
func Square() (int, []int) {
	heights := make([]int, SquareWidth*SquareWidth)
	return SquareWidth, heights
}

// diamondMask is the fixed 7x7 layout carried over from the reference
// implementation: a diamond with holes at the corners.
var diamondMask = []int{
	-1, -1, -1, 0, -1, -1, -1,
	-1, -1, 0, 0, 0, -1, -1,
	-1, 0, 0, 0, 0, 0, -1,
	0, 0, 0, 0, 0, 0, 0,
	-1, 0, 0, 0, 0, 0, -1,
	-1, -1, 0, 0, 0, -1, -1,
	-1, -1, -1, 0, -1, -1, -1,
}

// Diamond returns the fixed 7x7 diamond-masked map.
func Diamond() (int, []int) {
	heights := make([]int, len(diamondMask))
	copy(heights, diamondMask)
	return DiamondWidth, heights
}

// Random generates a 6x6 map: pick a random target cell count in
// [25, 34], then repeatedly make a random cell and its horizontal
// mirror (W-1-x, y) playable until a draw counter reaches the target
// and the playable subgraph is a single 8-connected component.
// Mirroring enforces left/right symmetry so neither spawn side is
// advantaged. The draw counter advances by 2 on every iteration, even
// when the drawn cell or its mirror were already playable, matching
// the reference generator's N_Cells bookkeeping; a run with enough
// duplicate draws can therefore settle with fewer than 25 distinct
// playable cells.
func Random(rng *rand.Rand) (int, []int) {
	const w = RandomWidth
	heights := make([]int, w*w)
	for i := range heights {
		heights[i] = state.Hole
	}

	target := 25 + rng.Intn(34-25+1)
	drawn := 0
	for drawn < target || geometry.Components(heights, w) > 1 {
		c := geometry.Coordinate{X: rng.Intn(w), Y: rng.Intn(w)}
		mirror := geometry.Coordinate{X: w - 1 - c.X, Y: c.Y}
		heights[c.Index(w)] = 0
		heights[mirror.Index(w)] = 0
		drawn += 2
	}
	return w, heights
}

// Generate picks one of Square, Diamond, or Random with equal
// probability.
func Generate(rng *rand.Rand) (int, []int) {
	switch rng.Intn(3) {
	case 0:
		return Square()
	case 1:
		return Diamond()
	default:
		return Random(rng)
	}
}

// Spawns picks four distinct playable cells uniformly without
// replacement and assigns them to pawn indices 0..3 in draw order.
func Spawns(rng *rand.Rand, w int, heights []int) [4]geometry.Coordinate {
	var spawns [4]geometry.Coordinate
	taken := make(map[geometry.Coordinate]bool, 4)

	for i := 0; i < 4; i++ {
		for {
			c := geometry.Coordinate{X: rng.Intn(w), Y: rng.Intn(w)}
			if taken[c] || heights[c.Index(w)] == state.Hole {
				continue
			}
			spawns[i] = c
			taken[c] = true
			break
		}
	}
	return spawns
}
