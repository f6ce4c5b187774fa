package rules

import (
	"github.com/agade09/wondev-arena/internal/state"
)

// Apply validates a against the current state and the acting player's
// visibility, then mutates s on success. It returns ErrIllegalMove
// for any rule violation in spec §4.3.
func Apply(s *state.State, a Action, player int) error {
	if !a.Target.InBounds(s.W) || !a.Build.InBounds(s.W) {
		return ErrIllegalMove
	}
	if !state.Playable(s.Height(a.Target)) || !state.Playable(s.Height(a.Build)) {
		return ErrIllegalMove
	}

	if a.Type == MoveAndBuild {
		return applyMove(s, a, player)
	}
	return applyPush(s, a, player)
}

func applyMove(s *state.State, a Action, player int) error {
	current := s.Height(s.Pawns[a.PawnID])
	maxHeight := current + 1

	if s.Occupant(a.Target) != -1 {
		return ErrIllegalMove
	}
	if occ := s.Occupant(a.Build); occ != -1 && occ != a.PawnID && s.Visible(player, a.Build) {
		return ErrIllegalMove
	}
	if s.Height(a.Target) > maxHeight {
		return ErrIllegalMove
	}

	s.Pawns[a.PawnID] = a.Target
	if s.Height(a.Target) == 3 {
		s.Score[player]++
	}
	if s.Occupant(a.Build) == -1 {
		s.Build(a.Build)
	}
	return nil
}

func applyPush(s *state.State, a Action, player int) error {
	victim := s.Occupant(a.Target)
	if victim == -1 {
		return ErrIllegalMove
	}
	if s.Height(a.Build) > s.Height(a.Target)+1 {
		return ErrIllegalMove
	}
	if occ := s.Occupant(a.Build); occ != -1 && s.Visible(player, a.Build) {
		return ErrIllegalMove
	}

	// §9.1: if the destination is occupied by an invisible pawn the push
	// is legal but produces no state change, faithful to the observed
	// source behavior.
	if s.Occupant(a.Build) == -1 {
		s.Pawns[victim] = a.Build
		s.Build(a.Target)
	}
	return nil
}
