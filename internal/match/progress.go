package match

import "fmt"

// FormatProgress renders the running estimate line printed to stdout
// after every completed round (spec §4.7, §6): win rate with standard
// error, round and draw counts, and the confidence that bot0Name is
// the stronger contestant.
func FormatProgress(bot0Name string, s Snapshot) string {
	p, sigma, confidence := s.WinRate()
	return fmt.Sprintf(
		"Wins:%.4g+-%.4g%% Rounds:%d Draws:%d %.4g%% chance that %s is better",
		100*p, 100*sigma, s.Games, s.Draws, 100*confidence, bot0Name,
	)
}
