package proc

import (
	"os/exec"
	stdruntime "runtime"
	"syscall"
	"testing"
	"time"
)

func spawnSleeper(t *testing.T, args ...string) *exec.Cmd {
	t.Helper()
	if stdruntime.GOOS == "windows" {
		t.Skip("process group tests skipped on windows")
	}
	cmd := exec.Command("/bin/sh", args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return cmd
}

func TestKillTerminatesGroup(t *testing.T) {
	cmd := spawnSleeper(t, "-c", "sleep 30")
	h := NewHandle(cmd.Process.Pid, "test.ts")
	defer h.Close()

	if !h.Alive() {
		t.Fatal("group dead before kill")
	}
	h.Kill()
	_ = cmd.Wait()
	if h.Alive() {
		t.Fatal("group alive after kill")
	}
	if !h.Killed() {
		t.Fatal("killed flag not set")
	}
}

func TestKillIsIdempotent(t *testing.T) {
	cmd := spawnSleeper(t, "-c", "sleep 30")
	h := NewHandle(cmd.Process.Pid, "test.ts")
	defer h.Close()

	h.Kill()
	_ = cmd.Wait()
	// Repeat calls must be no-ops even though the pid may be recycled.
	h.Kill()
	h.Kill()
	if !h.Killed() {
		t.Fatal("killed flag not set")
	}
}

func TestCooperativeExitAvoidsSigkill(t *testing.T) {
	// The child traps TERM and exits 0 within the grace window.
	cmd := spawnSleeper(t, "-c", "trap 'exit 0' TERM; sleep 30 & wait")
	h := NewHandle(cmd.Process.Pid, "test.ts")
	defer h.Close()

	// Give the shell a beat to install the trap.
	time.Sleep(100 * time.Millisecond)
	h.Kill()

	err := cmd.Wait()
	if err != nil {
		t.Fatalf("expected clean exit after trapped TERM, got %v", err)
	}
}

func TestCloseUnregisters(t *testing.T) {
	cmd := spawnSleeper(t, "-c", "sleep 30")
	h := NewHandle(cmd.Process.Pid, "registered.ts")

	found := false
	for _, e := range Snapshot() {
		if e.Pid == cmd.Process.Pid {
			found = true
			if e.ScriptPath != "registered.ts" {
				t.Fatalf("script path: %q", e.ScriptPath)
			}
			if e.SessionID.String() == "00000000-0000-0000-0000-000000000000" {
				t.Fatal("session id not assigned")
			}
		}
	}
	if !found {
		t.Fatal("spawned process missing from registry")
	}

	h.Close()
	_ = cmd.Wait()
	for _, e := range Snapshot() {
		if e.Pid == cmd.Process.Pid {
			t.Fatal("process still registered after close")
		}
	}
}

func TestKillAllSweepsRegistry(t *testing.T) {
	cmd := spawnSleeper(t, "-c", "sleep 30")
	NewHandle(cmd.Process.Pid, "swept.ts")

	KillAll()
	_ = cmd.Wait()

	for _, e := range Snapshot() {
		if e.Pid == cmd.Process.Pid {
			t.Fatal("process still registered after sweep")
		}
	}
	if groupAlive(cmd.Process.Pid) {
		t.Fatal("group alive after sweep")
	}
}
