package contestant

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

// gracePeriod is how long Stop waits for a graceful exit before
// escalating to an unconditional kill.
const gracePeriod = 2 * time.Second

// Handle owns one contestant's process id, its three pipe endpoints,
// its name, and its aliveness. Every exit path (normal end of game,
// disqualification, or abort) must call Close, which is idempotent and
// guarantees the pipes are closed and the process is terminated.
type Handle struct {
	Name string

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr io.ReadCloser

	mu          sync.Mutex
	buf         bytes.Buffer
	readErr     error
	turnOfDeath int // -1 while alive
	dataCh      chan struct{}
	exitCh      chan struct{}

	debugLog *os.File
}

// Start forks (execs, in Go terms) the contestant binary at path and
// returns a Handle owning its stdin/stdout/stderr pipes. The path is
// expected to have already been checked for existence by the caller
// (spec §4.5: "checked for existence before any fork").
func Start(name, path string, debugLog *os.File) (*Handle, error) {
	cmd := exec.Command(path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("allocating stdin pipe for %s: %w", name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("allocating stdout pipe for %s: %w", name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("allocating stderr pipe for %s: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting contestant %s: %w", name, err)
	}

	h := &Handle{
		Name:        name,
		cmd:         cmd,
		stdin:       stdin,
		stderr:      stderr,
		turnOfDeath: -1,
		dataCh:      make(chan struct{}, 1),
		exitCh:      make(chan struct{}),
		debugLog:    debugLog,
	}

	go h.readStdout(stdout)
	go h.waitExit()

	return h, nil
}

// readStdout continuously drains stdout into h.buf, standing in for
// the reference arena's poll+ioctl(FIONREAD) readability loop. It
// closes the stdout pipe once the child's end reaches EOF or fails.
func (h *Handle) readStdout(r io.ReadCloser) {
	defer r.Close()
	tmp := make([]byte, 4096)
	for {
		n, err := r.Read(tmp)
		if n > 0 {
			h.mu.Lock()
			h.buf.Write(tmp[:n])
			h.mu.Unlock()
			h.notify()
		}
		if err != nil {
			h.mu.Lock()
			if h.readErr == nil {
				h.readErr = err
			}
			h.mu.Unlock()
			h.notify()
			return
		}
	}
}

func (h *Handle) notify() {
	select {
	case h.dataCh <- struct{}{}:
	default:
	}
}

// waitExit reaps the process exactly once and closes exitCh, so Stop
// and Alive never wait on the process more than once. It waits on the
// process directly rather than via cmd.Wait, which would close the
// stdout and stderr pipes before their buffered output was read.
func (h *Handle) waitExit() {
	h.cmd.Process.Wait()
	close(h.exitCh)
}

// Alive reports whether the process has not yet been reaped.
func (h *Handle) Alive() bool {
	select {
	case <-h.exitCh:
		return false
	default:
		return true
	}
}

// TurnOfDeath returns the turn at which the contestant was stopped, or
// -1 if it is still alive.
func (h *Handle) TurnOfDeath() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.turnOfDeath
}

// Feed performs a single blocking write of the exact byte length of
// text; a short write is ErrFeedFailed.
func (h *Handle) Feed(text string) error {
	n, err := io.WriteString(h.stdin, text)
	if err != nil || n != len(text) {
		return fmt.Errorf("%w: %s: %v", ErrFeedFailed, h.Name, err)
	}
	return nil
}

// DrainStderr empties whatever the contestant has written to stderr
// since the last call, optionally appending it to the debug log.
func (h *Handle) DrainStderr() {
	// Bound the reads so that a contestant with nothing new on stderr
	// does not block the round.
	if f, ok := h.stderr.(*os.File); ok {
		f.SetReadDeadline(time.Now().Add(time.Millisecond))
	}
	buf := make([]byte, 4096)
	var collected []byte
	for {
		n, err := h.stderr.Read(buf)
		if n > 0 {
			collected = append(collected, buf[:n]...)
		}
		if err != nil {
			break
		}
		if n < len(buf) {
			break
		}
	}
	if len(collected) > 0 && h.debugLog != nil {
		h.debugLog.Write(collected)
		h.debugLog.Write([]byte("\n"))
	}
}

// Stop records the death turn, sends a graceful termination signal,
// and waits for the child to report its exit status; if it does not
// exit in time, escalates to an unconditional kill. Idempotent: a dead
// contestant may be stopped again with no effect.
func (h *Handle) Stop(turn int) {
	h.mu.Lock()
	if h.turnOfDeath == -1 {
		h.turnOfDeath = turn
	}
	h.mu.Unlock()

	if !h.Alive() {
		return
	}

	terminate(h.cmd.Process)

	select {
	case <-h.exitCh:
	case <-time.After(gracePeriod):
		kill(h.cmd.Process)
		<-h.exitCh
	}
}

// Close releases all three pipe endpoints and stops the process if it
// is still alive. Safe to call multiple times.
func (h *Handle) Close() {
	h.stderr.Close()
	h.stdin.Close()
	h.Stop(-1)
}
