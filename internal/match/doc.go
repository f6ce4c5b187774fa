// Package match runs many rounds concurrently on a fixed worker pool,
// aggregates the running win counters under atomic discipline, and
// formats the running win-probability estimate.
//
// Each worker publishes round outcomes (as ints) on its own channel;
// channerics.Merge fans all workers into one channel, which
// channerics.OrDone wraps against a done channel closed once on
// shutdown, so the consumer loop unblocks promptly instead of busy
// polling (grounded on niceyeti-tabular's worker-pool fan-in).
package match
