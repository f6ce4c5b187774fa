// Package arenaconfig loads the optional JSON tuning file that
// overrides arena defaults (turn limit, per-turn time budgets, the
// debug stderr log toggle), the way game/config.Manager loads game
// configs: read, unmarshal, validate, cache behind a lock, and fall
// back to a baked-in default when no file is given.
package arenaconfig
