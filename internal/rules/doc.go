// Package rules parses a contestant's textual action, validates it
// against the current game state and the two-sided visibility rule,
// mutates the state on success, and awards score for climbing a
// height-3 tower.
package rules
