package round

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/agade09/wondev-arena/internal/arenalog"
	"github.com/agade09/wondev-arena/internal/contestant"
	"github.com/agade09/wondev-arena/internal/mapgen"
	"github.com/agade09/wondev-arena/internal/rules"
	"github.com/agade09/wondev-arena/internal/state"
)

// Names identifies the two contestants by executable path.
type Names [2]string

// Play runs one complete game: a random side-swap, a fresh map and
// spawn placement, and the turn loop, then returns the winner in the
// caller's original numbering (the swap is reversed before reporting,
// per spec's side-swap definition). shouldAbort is polled at the top of
// every turn; when it returns true the round ends in Aborted and
// contributes nothing to the caller's counters.
func Play(rng *rand.Rand, names Names, timing contestant.Timing, shouldAbort func() bool, debugLog *os.File) Outcome {
	swapped := rng.Intn(2) == 1
	playNames := names
	if swapped {
		playNames[0], playNames[1] = names[1], names[0]
	}

	w, heights := mapgen.Generate(rng)
	spawns := mapgen.Spawns(rng, w, heights)
	s := state.New(w, heights, spawns)

	winner := playGame(playNames, s, timing, shouldAbort, debugLog)
	if !swapped || winner == Draw || winner == Aborted {
		return winner
	}
	if winner == Player0Wins {
		return Player1Wins
	}
	return Player0Wins
}

// playGame owns the two contestant handles for the duration of one
// game and guarantees they are destroyed on every exit path.
func playGame(names Names, s *state.State, timing contestant.Timing, shouldAbort func() bool, debugLog *os.File) Outcome {
	var bots [2]*contestant.Handle
	defer func() {
		for _, b := range bots {
			if b != nil {
				b.Close()
			}
		}
	}()

	for id, name := range names {
		h, err := contestant.Start(fmt.Sprintf("player%d", id), name, debugLog)
		if err != nil {
			arenalog.Fatal("failed to start contestant %s: %v", name, err)
			return Draw
		}
		bots[id] = h
		if err := h.Feed(preamble(s)); err != nil {
			arenalog.Disqualify(h.Name, 0, err)
			h.Stop(0)
		}
	}

	for turn := 1; ; turn++ {
		if shouldAbort() {
			return Aborted
		}

		for id := 0; id < 2; id++ {
			if shouldAbort() {
				return Aborted
			}

			if bots[id].Alive() {
				playTurn(s, bots[id], id, timing, turn)
			} else if s.Score[id] < s.Score[1-id] {
				return Outcome(1 - id)
			}
		}

		if !bots[0].Alive() && !bots[1].Alive() {
			return scoreWinner(s)
		}
		if turn == MaxTurns {
			return scoreWinner(s)
		}
	}
}

// playTurn feeds one contestant its turn packet, collects and applies
// its move, and disqualifies it on any error kind from spec §7.
func playTurn(s *state.State, bot *contestant.Handle, player int, timing contestant.Timing, turn int) {
	if err := bot.Feed(turnPacket(s, player)); err != nil {
		arenalog.Disqualify(bot.Name, turn, err)
		bot.Stop(turn)
		return
	}

	line, err := bot.GetMove(timing, turn)
	bot.DrainStderr()
	if err != nil {
		arenalog.Disqualify(bot.Name, turn, err)
		bot.Stop(turn)
		return
	}

	action, err := rules.Parse(s, line, player)
	if err != nil {
		arenalog.Disqualify(bot.Name, turn, err)
		bot.Stop(turn)
		return
	}

	if err := rules.Apply(s, action, player); err != nil {
		arenalog.Disqualify(bot.Name, turn, err)
		bot.Stop(turn)
		return
	}
}

// scoreWinner decides the outcome once both players are out of moves
// (all dead, or the turn cap was reached): the higher score wins,
// equal scores draw.
func scoreWinner(s *state.State) Outcome {
	switch {
	case s.Score[0] > s.Score[1]:
		return Player0Wins
	case s.Score[1] > s.Score[0]:
		return Player1Wins
	default:
		return Draw
	}
}
