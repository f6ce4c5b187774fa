// Package arenalog writes the arena's human-readable, per-event
// diagnostics. It mirrors the "Warning: ..."-prefixed style used
// throughout the teacher's session and config managers: the stdlib log
// package, nothing heavier. Standard error carries these diagnostics;
// standard output carries only the running progress line and the
// startup banner (spec §6).
package arenalog

import (
	"log"
)

// Disqualify reports that a contestant was disqualified from the
// current turn and why.
func Disqualify(name string, turn int, reason error) {
	log.Printf("Loss by disqualification of %s on turn %d: %v", name, turn, reason)
}

// Fatal reports an arena-fatal error: one that prevents play from
// starting at all (spec §7).
func Fatal(format string, args ...any) {
	log.Printf("fatal: "+format, args...)
}

// Warning reports a non-fatal anomaly that does not affect the
// outcome of a round.
func Warning(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}
