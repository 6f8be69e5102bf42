//go:build !windows

package proc

import (
	"errors"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

// groupAlive probes the process group with signal 0. ESRCH means every
// member is gone; EPERM means something is still there but owned by someone
// else; any other error is treated as alive so termination keeps escalating.
func groupAlive(pid int) bool {
	err := syscall.Kill(-pid, syscall.Signal(0))
	if err == nil {
		return true
	}
	if errors.Is(err, syscall.ESRCH) {
		return false
	}
	return true
}

// terminateGroup escalates from SIGTERM to SIGKILL. The group gets the grace
// window to exit cooperatively; survivors are killed outright. Signal errors
// are logged and otherwise ignored: a vanished group is success.
func terminateGroup(pid int) {
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return
		}
		log.Debug("sigterm process group", "pid", pid, "err", err)
	}

	deadline := time.Now().Add(termGrace)
	for time.Now().Before(deadline) {
		if !groupAlive(pid) {
			return
		}
		time.Sleep(pollInterval)
	}

	if !groupAlive(pid) {
		return
	}
	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		log.Debug("sigkill process group", "pid", pid, "err", err)
	}
}
