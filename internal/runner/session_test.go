package runner

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	stdruntime "runtime"
	"testing"
	"time"

	"github.com/Paintersrp/skit/internal/config"
	"github.com/Paintersrp/skit/internal/protocol"
)

func spawnShell(t *testing.T, script string) *Session {
	t.Helper()
	if stdruntime.GOOS == "windows" {
		t.Skip("shell-based session tests skipped on windows")
	}
	sess, err := spawn(Attempt{
		Name:  "sh",
		Label: "sh",
		Cmd:   "/bin/sh",
		Args:  []string{"-c", script},
	}, "test-script.ts", config.Default())
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	return sess
}

func TestSpawnScrubsEnvironment(t *testing.T) {
	t.Setenv("SKIT_PROBE", "passed")
	t.Setenv("UNLISTED_PROBE", "leaked")

	sess := spawnShell(t, `printf '{"type":"say","text":"%s|%s"}\n' "$SKIT_PROBE" "$UNLISTED_PROBE"`)
	defer sess.Close()

	msg, err := sess.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	say, ok := msg.Payload.(*protocol.Say)
	if !ok {
		t.Fatalf("payload: %T", msg.Payload)
	}
	if say.Text != "passed|" {
		t.Fatalf("environment not scrubbed as expected: %q", say.Text)
	}
	if _, err := sess.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestSpawnPassesConfiguredExtraEnv(t *testing.T) {
	t.Setenv("EDITOR_PROBE", "vi")
	cfg := config.Default()
	cfg.ExtraEnv = []string{"EDITOR_PROBE"}

	sess, err := spawn(Attempt{
		Name: "sh", Label: "sh", Cmd: "/bin/sh",
		Args: []string{"-c", `printf '{"type":"say","text":"%s"}\n' "$EDITOR_PROBE"`},
	}, "test-script.ts", cfg)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	defer sess.Close()

	msg, err := sess.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if msg.Payload.(*protocol.Say).Text != "vi" {
		t.Fatalf("extra env not passed: %+v", msg.Payload)
	}
	_, _ = sess.Wait()
}

func TestSplitSessionRoundTrip(t *testing.T) {
	sess := spawnShell(t, "cat")
	w, r := sess.Split()
	defer r.Close()

	if err := w.Send(protocol.New(&protocol.SetInput{Text: "echoed"})); err != nil {
		t.Fatalf("send: %v", err)
	}
	msg, err := r.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if msg.Payload.(*protocol.SetInput).Text != "echoed" {
		t.Fatalf("round trip: %+v", msg.Payload)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close write half: %v", err)
	}
	if _, err := r.Receive(); err != io.EOF {
		t.Fatalf("expected EOF after stdin close, got %v", err)
	}
	code, err := r.Wait()
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code: %d", code)
	}
}

func TestWaitReportsExitCode(t *testing.T) {
	sess := spawnShell(t, "exit 7")
	defer sess.Close()
	code, err := sess.Wait()
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if code != 7 {
		t.Fatalf("exit code: %d", code)
	}
}

func TestKillStopsRunningScript(t *testing.T) {
	sess := spawnShell(t, "sleep 30")
	defer sess.Close()

	if !sess.Running() {
		t.Fatal("session not running after spawn")
	}
	sess.Kill()
	code, err := sess.Wait()
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if code != -1 {
		t.Fatalf("expected signal exit, got code %d", code)
	}
	if sess.Running() {
		t.Fatal("session still running after kill")
	}
}

func TestReceiveIsolatesBadLines(t *testing.T) {
	sess := spawnShell(t, `printf 'not json\n{"type":"beep"}\n'`)
	defer sess.Close()

	_, err := sess.Receive()
	var pe *protocol.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected parse error, got %T %v", err, err)
	}
	msg, err := sess.Receive()
	if err != nil {
		t.Fatalf("stream did not survive: %v", err)
	}
	if msg.Type != protocol.TypeBeep {
		t.Fatalf("type: %q", msg.Type)
	}
	_, _ = sess.Wait()
}

func TestExecuteInteractiveResolutionFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	script := filepath.Join(t.TempDir(), "demo.ts")
	if err := os.WriteFile(script, []byte("// noop\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Runtimes.Bun = "skit-test-no-such-runtime"

	_, err := ExecuteInteractive(script, cfg)
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("error type: %T %v", err, err)
	}
	if len(re.Failures) == 0 {
		t.Fatal("no failures recorded")
	}
}

func TestExecuteInteractiveMissingScript(t *testing.T) {
	if _, err := ExecuteInteractive("/definitely/not/here.ts", config.Default()); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestCloseIsSafeAfterExit(t *testing.T) {
	sess := spawnShell(t, "exit 0")
	if _, err := sess.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	sess.Close()
	sess.Close()

	// Kill after Close is a no-op thanks to the monotonic killed flag.
	start := time.Now()
	sess.Kill()
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("kill after close took %v", elapsed)
	}
}
