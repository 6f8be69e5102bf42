package proc

import (
	"sync"
	"time"
)

const (
	// termGrace is how long a group gets to exit after SIGTERM before
	// SIGKILL is sent.
	termGrace = 250 * time.Millisecond
	// pollInterval is how often group liveness is probed during the grace
	// window.
	pollInterval = 50 * time.Millisecond
)

// Handle owns the identity of one spawned script's process group. The pid
// doubles as the pgid because the child is spawned as its own group leader.
// A Handle must never be duplicated: exactly one owner decides termination.
type Handle struct {
	pid        int
	scriptPath string

	mu     sync.Mutex
	killed bool
}

// NewHandle adopts a freshly spawned group leader and records it in the
// registry so a process-wide sweep can find it.
func NewHandle(pid int, scriptPath string) *Handle {
	h := &Handle{pid: pid, scriptPath: scriptPath}
	defaultRegistry.register(pid, scriptPath)
	return h
}

// Pid returns the group leader's pid.
func (h *Handle) Pid() int { return h.pid }

// ScriptPath returns the script this handle was spawned for.
func (h *Handle) ScriptPath() string { return h.scriptPath }

// Killed reports whether termination has been initiated. The flag is
// monotonic: once set it never clears.
func (h *Handle) Killed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.killed
}

// Alive probes whether the process group still has live members.
func (h *Handle) Alive() bool {
	return groupAlive(h.pid)
}

// Kill terminates the process group: graceful signal first, then a poll of
// the grace window, then forceful kill if anything survived. Repeat calls
// are no-ops, so racing callers and the Close backstop never double-signal.
// Cleanup is best-effort and never returns an error.
func (h *Handle) Kill() {
	h.mu.Lock()
	if h.killed {
		h.mu.Unlock()
		return
	}
	h.killed = true
	h.mu.Unlock()

	terminateGroup(h.pid)
}

// Close unregisters the process and then kills its group. It is the backstop
// on every exit path: for a process that already exited cleanly the kill
// degenerates to a no-op probe.
func (h *Handle) Close() {
	defaultRegistry.unregister(h.pid)
	h.Kill()
}
