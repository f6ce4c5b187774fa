package match

import (
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/agade09/wondev-arena/internal/contestant"
	"github.com/agade09/wondev-arena/internal/round"
)

// playFunc plays one round and reports its outcome. round.Play
// satisfies this signature; tests substitute a cheaper stand-in so the
// pool's fan-in/shutdown plumbing can be exercised without spawning
// real contestant processes.
type playFunc func(rng *rand.Rand, names round.Names, timing contestant.Timing, shouldAbort func() bool, debugLog *os.File) round.Outcome

// worker repeatedly plays rounds until done is closed, publishing each
// non-aborted outcome on the returned channel. Each worker owns its
// own random source, matching the reference arena's per-round
// default_random_engine seeded off the clock. wg is marked Done only
// once the worker's goroutine has actually unwound from play(...), so
// a caller waiting on wg is guaranteed every contestant this worker
// spawned has been reaped (spec §5, §9).
func worker(id int, done <-chan struct{}, names round.Names, timing contestant.Timing, debugLog *os.File, play playFunc, wg *sync.WaitGroup) <-chan int {
	out := make(chan int)
	rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(id)<<32))

	shouldAbort := func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(out)
		for {
			select {
			case <-done:
				return
			default:
			}

			outcome := play(rng, names, timing, shouldAbort, debugLog)
			if outcome == round.Aborted {
				return
			}

			select {
			case out <- int(outcome):
			case <-done:
				return
			}
		}
	}()

	return out
}
