package rules

import "github.com/agade09/wondev-arena/internal/geometry"

// ActionType distinguishes the two ways a pawn can act in a turn.
type ActionType int

const (
	MoveAndBuild ActionType = iota
	PushAndBuild
)

// Action is a fully-resolved contestant action: which pawn acts, the
// cell it moves to (or the victim cell it pushes), and the cell that
// gets built on (or the victim's destination).
type Action struct {
	Type   ActionType
	PawnID int
	Target geometry.Coordinate
	Build  geometry.Coordinate
}
