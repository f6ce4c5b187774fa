package contestant

import (
	"testing"
	"time"
)

func TestNewTiming(t *testing.T) {
	normal := NewTiming(false)
	if normal.FirstTurnTime != 10*time.Second {
		t.Errorf("normal FirstTurnTime = %v, want 10s", normal.FirstTurnTime)
	}
	if normal.TimeLimit != 1*time.Second {
		t.Errorf("normal TimeLimit = %v, want 1s", normal.TimeLimit)
	}

	fast := NewTiming(true)
	if fast.FirstTurnTime != 1*time.Second {
		t.Errorf("fast FirstTurnTime = %v, want 1s", fast.FirstTurnTime)
	}
	if fast.TimeLimit != 100*time.Millisecond {
		t.Errorf("fast TimeLimit = %v, want 100ms", fast.TimeLimit)
	}
}

func TestTimingDeadline(t *testing.T) {
	timing := NewTiming(false)
	if got := timing.Deadline(1); got != timing.FirstTurnTime {
		t.Errorf("Deadline(1) = %v, want FirstTurnTime", got)
	}
	if got := timing.Deadline(2); got != timing.TimeLimit {
		t.Errorf("Deadline(2) = %v, want TimeLimit", got)
	}
	if got := timing.Deadline(200); got != timing.TimeLimit {
		t.Errorf("Deadline(200) = %v, want TimeLimit", got)
	}
}
