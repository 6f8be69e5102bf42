//go:build windows

package proc

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
)

// Windows has no process groups in the Unix sense, so liveness and
// termination apply to the direct child only. See the package doc for the
// reduced guarantee.

func groupAlive(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 is not supported here; a successful FindProcess is the best
	// available liveness signal.
	_ = p
	return true
}

func terminateGroup(pid int) {
	p, err := os.FindProcess(pid)
	if err != nil {
		return
	}
	if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		log.Debug("kill process", "pid", pid, "err", err)
	}
}
