package contestant

import (
	"bytes"
	"fmt"
	"time"
)

// GetMove reads a complete move from the contestant's stdout within
// the deadline for the given turn. A move is "complete" once the
// accumulated buffer contains a newline (spec §4.5, §9.3): the text up
// to the first newline is the move; anything after it is carried over
// for the next call.
func (h *Handle) GetMove(timing Timing, turn int) (string, error) {
	deadline := timing.Deadline(turn)
	start := time.Now()

	for {
		h.mu.Lock()
		if idx := bytes.IndexByte(h.buf.Bytes(), '\n'); idx >= 0 {
			line := string(h.buf.Bytes()[:idx])
			remainder := make([]byte, h.buf.Len()-idx-1)
			copy(remainder, h.buf.Bytes()[idx+1:])
			h.buf.Reset()
			h.buf.Write(remainder)
			h.mu.Unlock()
			return line, nil
		}
		readErr := h.readErr
		h.mu.Unlock()

		if readErr != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrPipeRead, h.Name, readErr)
		}

		remaining := deadline - time.Since(start)
		if remaining <= 0 {
			return "", ErrTimeout
		}

		select {
		case <-h.dataCh:
		case <-time.After(remaining):
			return "", ErrTimeout
		}
	}
}
