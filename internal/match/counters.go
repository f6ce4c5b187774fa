package match

import (
	"math"
	"sync/atomic"
)

// Counters tallies round outcomes across every worker. Every field is
// an atomic so the worker pool never needs a lock to update them (spec
// §5): games and draws count whole rounds; pointsX2 holds each
// player's points doubled, since a draw awards half a point and
// atomics have no native float add.
type Counters struct {
	games    atomic.Int64
	draws    atomic.Int64
	pointsX2 [2]atomic.Int64
}

// Record applies the scoring rule for one outcome: a win is worth 1
// point, a draw is worth 0.5 to each player.
func (c *Counters) Record(winner int) {
	switch {
	case winner < 0: // draw
		c.draws.Add(1)
		c.pointsX2[0].Add(1)
		c.pointsX2[1].Add(1)
	default:
		c.pointsX2[winner].Add(2)
	}
	c.games.Add(1)
}

// Snapshot is a point-in-time read of the counters.
type Snapshot struct {
	Games  int64
	Draws  int64
	Points [2]float64
}

// Snapshot reads the current counters.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Games: c.games.Load(),
		Draws: c.draws.Load(),
		Points: [2]float64{
			float64(c.pointsX2[0].Load()) / 2,
			float64(c.pointsX2[1].Load()) / 2,
		},
	}
}

// WinRate returns bot 0's win rate p, its binomial standard error
// sigma, and the one-sided normal confidence that bot 0 is stronger
// (spec §4.7): ½ + ½·erf((p−½)/(σ·√2)).
func (s Snapshot) WinRate() (p, sigma, confidence float64) {
	if s.Games == 0 {
		return 0, 0, 0.5
	}
	p = s.Points[0] / float64(s.Games)
	sigma = math.Sqrt(p * (1 - p) / float64(s.Games))
	if sigma == 0 {
		if p >= 0.5 {
			return p, sigma, 1
		}
		return p, sigma, 0
	}
	confidence = 0.5 + 0.5*math.Erf((p-0.5)/(sigma*math.Sqrt2))
	return p, sigma, confidence
}
