//go:build windows

package runner

import "os/exec"

// Windows has no Unix process groups; termination reaches the direct child
// only. See the proc package doc for the reduced guarantee.
func configureCmdSysProcAttr(cmd *exec.Cmd) {}
