// Package round drives one complete game between two contestants:
// side-swap, map setup, the per-turn protocol exchange, validation via
// package rules, and every end condition (all dead, turn 200, or a
// shutdown abort).
package round
