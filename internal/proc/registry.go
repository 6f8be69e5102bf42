package proc

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Entry describes one live script process.
type Entry struct {
	Pid        int
	ScriptPath string
	SessionID  uuid.UUID
	StartedAt  time.Time
}

// registry tracks every live script process so shutdown can sweep stragglers
// no matter which code path spawned them.
type registry struct {
	mu      sync.Mutex
	entries map[int]Entry
}

var defaultRegistry = &registry{entries: make(map[int]Entry)}

func (r *registry) register(pid int, scriptPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[pid] = Entry{
		Pid:        pid,
		ScriptPath: scriptPath,
		SessionID:  uuid.New(),
		StartedAt:  time.Now(),
	}
}

func (r *registry) unregister(pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, pid)
}

// Snapshot returns the currently registered processes ordered by pid.
func Snapshot() []Entry {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	out := make([]Entry, 0, len(defaultRegistry.entries))
	for _, e := range defaultRegistry.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pid < out[j].Pid })
	return out
}

// KillAll terminates every registered process group. It is the final
// backstop on launcher shutdown; individual failures are logged and do not
// stop the sweep.
func KillAll() {
	for _, e := range Snapshot() {
		log.Debug("killing leftover script process",
			"pid", e.Pid, "script", e.ScriptPath, "session", e.SessionID)
		terminateGroup(e.Pid)
		defaultRegistry.unregister(e.Pid)
	}
}
