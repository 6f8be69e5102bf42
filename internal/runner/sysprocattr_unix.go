//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// configureCmdSysProcAttr makes the child its own process group leader, so
// its pid doubles as the pgid and signals to -pid reach the whole tree.
func configureCmdSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true, Pgid: 0}
}
