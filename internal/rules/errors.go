package rules

import "errors"

// Error kinds for a contestant's turn (spec §7). Every kind disqualifies
// only the bot that produced it; the other contestant plays on.
var (
	ErrMalformed        = errors.New("unparsable or unknown action verb")
	ErrIllegalPushAngle = errors.New("push direction 2 is not adjacent to direction 1")
	ErrIllegalMove      = errors.New("move violates the rules of the game")
	ErrResign           = errors.New("contestant sent ACCEPT-DEFEAT")
)
