package match

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/agade09/wondev-arena/internal/contestant"
	"github.com/agade09/wondev-arena/internal/round"
)

// Options configures one match run.
type Options struct {
	Names      round.Names
	Timing     contestant.Timing
	Workers    int
	MaxGames   int64 // 0 means unbounded; stop is then driven by Done only.
	DebugLog   *os.File
	OnProgress func(string)
}

// clampWorkers applies spec §5's worker-count bound: at least one
// worker, at most twice the host's CPU count.
func clampWorkers(n int) int {
	if n < 1 {
		n = 1
	}
	max := 2 * runtime.NumCPU()
	if n > max {
		n = max
	}
	return n
}

// Run drives the worker pool until done is closed or MaxGames rounds
// have completed, printing a progress line after every round. Every
// round result passes through this single consumer loop, so prints
// never interleave even though many workers race to fill the merged
// channel (spec §4.7, §5). Run does not return until every worker
// goroutine has actually unwound from its current round, so every
// contestant process any worker spawned is guaranteed reaped before
// the caller regains control (spec §5, §9).
func Run(done <-chan struct{}, opts Options) Snapshot {
	return run(done, opts, round.Play)
}

func run(done <-chan struct{}, opts Options, play playFunc) Snapshot {
	n := clampWorkers(opts.Workers)

	// workerDone is the shutdown signal workers actually watch. It
	// closes either when the caller's done closes, or when this run
	// has collected MaxGames results of its own accord; either way
	// workers notice at the top of their next round (or the next time
	// they block trying to publish a result) and return, and wg.Wait
	// below blocks until they have.
	workerDone := make(chan struct{})
	var stopOnce sync.Once
	stop := func() { stopOnce.Do(func() { close(workerDone) }) }

	// A done that is already closed stops the workers before any round.
	select {
	case <-done:
		stop()
	default:
	}

	go func() {
		select {
		case <-done:
			stop()
		case <-workerDone:
		}
	}()

	var wg sync.WaitGroup
	workers := make([]<-chan int, n)
	for i := 0; i < n; i++ {
		workers[i] = worker(i, workerDone, opts.Names, opts.Timing, opts.DebugLog, play, &wg)
	}

	merged := channerics.Merge(workerDone, workers...)
	results := channerics.OrDone(workerDone, merged)

	var counters Counters

	for winner := range results {
		counters.Record(winner)
		snap := counters.Snapshot()

		line := FormatProgress(opts.Names[0], snap)
		if opts.OnProgress != nil {
			opts.OnProgress(line)
		} else {
			fmt.Println(line)
		}

		if opts.MaxGames > 0 && snap.Games >= opts.MaxGames {
			stop()
			break
		}
	}

	wg.Wait()
	return counters.Snapshot()
}
