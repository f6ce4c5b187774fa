package contestant

import "time"

// Timing holds the per-turn deadlines. Both scale together off a
// single debug/timeout toggle (spec §4.5), matching the reference
// arena's Debug_AI/Timeout constants which both divide the same pair
// of constants by 10.
type Timing struct {
	FirstTurnTime time.Duration
	TimeLimit     time.Duration
}

// NewTiming returns the normal 10s-first-turn/1s-per-turn budget, or
// the 1s/0.1s fast budget used for local debugging and tests when
// fast is true.
func NewTiming(fast bool) Timing {
	if fast {
		return Timing{FirstTurnTime: 1 * time.Second, TimeLimit: 100 * time.Millisecond}
	}
	return Timing{FirstTurnTime: 10 * time.Second, TimeLimit: 1 * time.Second}
}

// Deadline returns the budget for the given turn number (1-indexed).
func (t Timing) Deadline(turn int) time.Duration {
	if turn == 1 {
		return t.FirstTurnTime
	}
	return t.TimeLimit
}
