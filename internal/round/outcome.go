package round

// Outcome is the result of one game, in the caller's original (pre-swap)
// numbering of the two contestants.
type Outcome int

const (
	// Player0Wins and Player1Wins identify the winner by index.
	Player0Wins Outcome = 0
	Player1Wins Outcome = 1
	// Draw means both players ended with equal scores.
	Draw Outcome = -1
	// Aborted means the round was abandoned because of a shutdown
	// signal; it contributes nothing to the match counters.
	Aborted Outcome = -2
)

// MaxTurns is the turn cap (spec §4.6, §8): at 200 full turns the game
// ends and the score decides. It defaults to the spec value and may be
// overridden once from a loaded arenaconfig.Tuning before any worker
// starts; nothing reads it concurrently with that single write.
var MaxTurns = 200
