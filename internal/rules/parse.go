package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agade09/wondev-arena/internal/geometry"
	"github.com/agade09/wondev-arena/internal/state"
)

// Parse interprets one line of contestant output relative to player
// (0 or 1) and the current state, returning a fully-resolved Action.
//
// Recognized forms: "MOVE&BUILD <id> <dir1> <dir2>",
// "PUSH&BUILD <id> <dir1> <dir2>", and "ACCEPT-DEFEAT". Anything else
// is ErrMalformed. Per spec §9.3, only the first newline-terminated
// line matters; callers are expected to have already trimmed to it.
func Parse(s *state.State, line string, player int) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Action{}, ErrMalformed
	}

	verb := fields[0]
	if verb == "ACCEPT-DEFEAT" {
		return Action{}, ErrResign
	}

	var actionType ActionType
	switch verb {
	case "MOVE&BUILD":
		actionType = MoveAndBuild
	case "PUSH&BUILD":
		actionType = PushAndBuild
	default:
		return Action{}, fmt.Errorf("%w: unknown verb %q", ErrMalformed, verb)
	}

	if len(fields) != 4 {
		return Action{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformed, len(fields))
	}

	relID, err := strconv.Atoi(fields[1])
	if err != nil || (relID != 0 && relID != 1) {
		return Action{}, fmt.Errorf("%w: invalid pawn id %q", ErrMalformed, fields[1])
	}
	pawnID := relID + 2*player

	dir1, ok := geometry.ParseDirection(fields[2])
	if !ok {
		return Action{}, fmt.Errorf("%w: invalid direction %q", ErrMalformed, fields[2])
	}
	dir2, ok := geometry.ParseDirection(fields[3])
	if !ok {
		return Action{}, fmt.Errorf("%w: invalid direction %q", ErrMalformed, fields[3])
	}

	if actionType == PushAndBuild {
		if !isForwardContinuation(dir1, dir2) {
			return Action{}, ErrIllegalPushAngle
		}
	}

	target := s.Pawns[pawnID].Add(dir1.Offset())
	build := target.Add(dir2.Offset())

	return Action{Type: actionType, PawnID: pawnID, Target: target, Build: build}, nil
}

// isForwardContinuation reports whether dir2 is one of
// {dir1-1, dir1, dir1+1} modulo 8, i.e. the push continues roughly
// forward.
func isForwardContinuation(dir1, dir2 geometry.Direction) bool {
	for _, delta := range [3]int{-1, 0, 1} {
		if geometry.Normalize(int(dir1)+delta) == dir2 {
			return true
		}
	}
	return false
}
