package rules

import (
	"errors"
	"testing"

	"github.com/agade09/wondev-arena/internal/geometry"
	"github.com/agade09/wondev-arena/internal/state"
)

func newApplyTestState(heights []int) *state.State {
	spawns := [4]geometry.Coordinate{
		{X: 1, Y: 1}, {X: 3, Y: 1},
		{X: 1, Y: 3}, {X: 3, Y: 3},
	}
	return state.New(5, heights, spawns)
}

func flatHeights(w int, h int) []int {
	heights := make([]int, w*w)
	for i := range heights {
		heights[i] = h
	}
	return heights
}

func TestApplyMoveAndBuild(t *testing.T) {
	s := newApplyTestState(flatHeights(5, 0))
	action := Action{
		Type:   MoveAndBuild,
		PawnID: 0,
		Target: geometry.Coordinate{X: 2, Y: 1},
		Build:  geometry.Coordinate{X: 2, Y: 2},
	}

	if err := Apply(s, action, 0); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if s.Pawns[0] != action.Target {
		t.Errorf("pawn 0 did not move to the target cell")
	}
	if got := s.Height(action.Build); got != 1 {
		t.Errorf("build cell height = %d, want 1", got)
	}
}

func TestApplyMoveRejectsOccupiedTarget(t *testing.T) {
	s := newApplyTestState(flatHeights(5, 0))
	action := Action{
		Type:   MoveAndBuild,
		PawnID: 0,
		Target: s.Pawns[1], // occupied by pawn 1
		Build:  geometry.Coordinate{X: 2, Y: 2},
	}
	if err := Apply(s, action, 0); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Apply onto an occupied cell returned %v, want ErrIllegalMove", err)
	}
}

func TestApplyMoveRejectsTooHighTarget(t *testing.T) {
	heights := flatHeights(5, 0)
	target := geometry.Coordinate{X: 2, Y: 1}
	heights[target.Index(5)] = 2 // more than one step above height 0
	s := newApplyTestState(heights)

	action := Action{Type: MoveAndBuild, PawnID: 0, Target: target, Build: geometry.Coordinate{X: 2, Y: 2}}
	if err := Apply(s, action, 0); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Apply onto a cell 2 higher than the pawn returned %v, want ErrIllegalMove", err)
	}
}

func TestApplyMoveScoresOnHeightThree(t *testing.T) {
	heights := flatHeights(5, 0)
	target := geometry.Coordinate{X: 2, Y: 1}
	heights[s5Index(1, 1)] = 2 // pawn 0 stands one step below the tower
	heights[s5Index(2, 1)] = 3
	s := newApplyTestState(heights)

	action := Action{Type: MoveAndBuild, PawnID: 0, Target: target, Build: geometry.Coordinate{X: 2, Y: 2}}
	if err := Apply(s, action, 0); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if s.Score[0] != 1 {
		t.Errorf("Score[0] = %d, want 1 after landing on height 3", s.Score[0])
	}
}

func TestApplyMoveRejectsUnplayableCells(t *testing.T) {
	heights := flatHeights(5, 0)
	target := geometry.Coordinate{X: 2, Y: 1}
	heights[s5Index(2, 1)] = state.Hole
	s := newApplyTestState(heights)

	action := Action{Type: MoveAndBuild, PawnID: 0, Target: target, Build: geometry.Coordinate{X: 2, Y: 2}}
	if err := Apply(s, action, 0); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Apply onto a hole returned %v, want ErrIllegalMove", err)
	}
}

func TestApplyPushAndBuild(t *testing.T) {
	s := newApplyTestState(flatHeights(5, 0))
	victimStart := s.Pawns[2] // an opponent pawn, owned by player 1
	action := Action{
		Type:   PushAndBuild,
		PawnID: 0,
		Target: victimStart,
		Build:  victimStart.Add(geometry.Coordinate{X: 1, Y: 0}),
	}

	if err := Apply(s, action, 0); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if s.Pawns[2] != action.Build {
		t.Errorf("victim pawn did not relocate to the push destination")
	}
	if got := s.Height(action.Target); got != 1 {
		t.Errorf("victim's original cell height = %d, want 1 after the push's build", got)
	}
}

func TestApplyPushRejectsEmptyTarget(t *testing.T) {
	s := newApplyTestState(flatHeights(5, 0))
	action := Action{
		Type:   PushAndBuild,
		PawnID: 0,
		Target: geometry.Coordinate{X: 0, Y: 0}, // no pawn there
		Build:  geometry.Coordinate{X: 1, Y: 0},
	}
	if err := Apply(s, action, 0); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Apply pushing an empty cell returned %v, want ErrIllegalMove", err)
	}
}

func TestApplyPushOntoInvisibleOccupantIsANoOp(t *testing.T) {
	// Pawn 0 at (1,1) pushes opponent pawn 2 at (1,3) east into (2,3),
	// which is occupied by opponent pawn 3 -- invisible to player 0,
	// since neither of player 0's pawns is within Chebyshev distance 1
	// of (2,3). Per the preserved behavior, this validates but mutates
	// nothing.
	s := newApplyTestState(flatHeights(5, 0))
	s.Pawns[3] = geometry.Coordinate{X: 2, Y: 3}

	victimStart := s.Pawns[2]
	dest := geometry.Coordinate{X: 2, Y: 3}
	action := Action{Type: PushAndBuild, PawnID: 0, Target: victimStart, Build: dest}

	beforeVictim := s.Pawns[2]
	beforeHeight := s.Height(victimStart)

	if err := Apply(s, action, 0); err != nil {
		t.Fatalf("Apply returned error: %v, want success with no state change", err)
	}
	if s.Pawns[2] != beforeVictim {
		t.Errorf("victim pawn moved despite the destination being occupied by an invisible pawn")
	}
	if s.Height(victimStart) != beforeHeight {
		t.Errorf("victim's vacated cell was built on despite the push being a no-op")
	}
}

func s5Index(x, y int) int {
	return y*5 + x
}
