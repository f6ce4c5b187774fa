// Package state holds the mutable game state shared by the rules
// engine and the round driver: board heights, the four pawns, and the
// two players' scores.
package state
