package contestant

import (
	"os"
	"syscall"
)

// terminate asks the process to exit gracefully.
func terminate(p *os.Process) {
	p.Signal(syscall.SIGTERM)
}

// kill unconditionally ends the process; used when a graceful
// termination was not honored within the grace period.
func kill(p *os.Process) {
	p.Signal(syscall.SIGKILL)
}
