package state

import (
	"strconv"
	"strings"

	"github.com/agade09/wondev-arena/internal/geometry"
)

// Hole is the height of an off-board, unplayable cell.
const Hole = -1

// Capped is the height a tower reaches once it is built on from height
// 3; it is unplayable for movement from then on, same as Hole, but
// remains distinguishable when rendered.
const Capped = 4

// State is the complete mutable state of one game: the board heights,
// the four pawn positions, and the two players' scores. It is created
// by the round driver from a map and four spawn coordinates, mutated
// only by the rules engine, and discarded at game end.
type State struct {
	W       int
	Heights []int
	Pawns   [4]geometry.Coordinate
	Score   [2]int
}

// New builds a State from a W*W heights slice and four spawn
// coordinates, one per pawn index 0..3.
func New(w int, heights []int, spawns [4]geometry.Coordinate) *State {
	h := make([]int, len(heights))
	copy(h, heights)
	return &State{W: w, Heights: h, Pawns: spawns}
}

// Height returns the height of cell c. Callers must ensure c is
// in-bounds.
func (s *State) Height(c geometry.Coordinate) int {
	return s.Heights[c.Index(s.W)]
}

// SetHeight sets the height of cell c. Callers must ensure c is
// in-bounds.
func (s *State) SetHeight(c geometry.Coordinate, h int) {
	s.Heights[c.Index(s.W)] = h
}

// Playable reports whether height h can be moved onto or built from:
// neither a hole nor a capped tower.
func Playable(h int) bool {
	return h != Hole && h != Capped
}

// Occupant returns the pawn id occupying c, or -1 if none does. It is
// a linear scan over the four pawns, matching the source's
// small-N, cache-friendly Occupant.
func (s *State) Occupant(c geometry.Coordinate) int {
	for i, p := range s.Pawns {
		if p == c {
			return i
		}
	}
	return -1
}

// Build increases the height of the cell at c by one, capping a
// height-3 tower to Capped (4) rather than incrementing further.
func (s *State) Build(c geometry.Coordinate) {
	idx := c.Index(s.W)
	if s.Heights[idx] < 3 {
		s.Heights[idx]++
	} else if s.Heights[idx] == 3 {
		s.Heights[idx] = Capped
	}
}

// PlayerPawns returns the pawn id range [2*player, 2*player+1].
func PlayerPawns(player int) (int, int) {
	return 2 * player, 2*player + 1
}

// Visible reports whether cell c is visible to player: within
// Chebyshev distance 1 of at least one of the player's own pawns.
func (s *State) Visible(player int, c geometry.Coordinate) bool {
	a, b := PlayerPawns(player)
	return geometry.Dist(s.Pawns[a], c) <= 1 || geometry.Dist(s.Pawns[b], c) <= 1
}

// RenderRows writes the W board rows as the contestant protocol
// expects: '.' for a hole, a single digit 0..4 otherwise.
func (s *State) RenderRows(sb *strings.Builder) {
	for y := 0; y < s.W; y++ {
		for x := 0; x < s.W; x++ {
			h := s.Heights[y*s.W+x]
			if h == Hole {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(h))
			}
		}
		sb.WriteByte('\n')
	}
}
