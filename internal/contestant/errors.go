package contestant

import "errors"

// Error kinds for a contestant's turn (spec §7), complementing the
// parse/validation errors in package rules.
var (
	ErrTimeout    = errors.New("deadline exceeded before a complete move")
	ErrPipeRead   = errors.New("cannot query or drain stdout")
	ErrFeedFailed = errors.New("short write while feeding inputs")
)
