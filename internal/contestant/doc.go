// Package contestant owns one bot's child process: its three pipes,
// feeding it turn packets, reading a move back under a wall-clock
// deadline, and guaranteed cleanup on every exit path (normal end of
// game, disqualification, or an aborted round).
//
// The reference arena forks and execs a child directly and polls its
// stdout file descriptor with poll(2) plus ioctl(FIONREAD) to avoid a
// blocking read. Go has no portable fork and no non-blocking peek into
// an os.File, so Handle uses os/exec with explicit pipes and a
// background goroutine that continuously drains stdout into a buffer;
// GetMove polls that buffer against the remaining deadline instead of
// polling the file descriptor directly. The externally observable
// contract — poll with the remaining budget, drain whatever is
// available on each readable edge, take the text up to the first
// newline as the move — is preserved.
package contestant
