package cli

import (
	"bytes"
	stdcontext "context"
	"io"
	"os"
	"path/filepath"
	stdruntime "runtime"
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/skit/internal/config"
)

// shellConfig abuses the node binary override to run .js scripts with the
// shell, so the bridge can be exercised without a JavaScript runtime.
func shellConfig(t *testing.T) *config.Config {
	t.Helper()
	if stdruntime.GOOS == "windows" {
		t.Skip("shell-based bridge tests skipped on windows")
	}
	cfg := config.Default()
	cfg.Runtimes.Node = "/bin/sh"
	return cfg
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.js")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunOnceReportsExitCode(t *testing.T) {
	script := writeScript(t, "exit 5\n")
	appCtx := &appContext{cfg: shellConfig(t)}

	code, err := runOnce(stdcontext.Background(), script, appCtx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 5 {
		t.Fatalf("exit code: %d", code)
	}
}

func TestRunOnceHonorsScriptedExitCode(t *testing.T) {
	script := writeScript(t, `printf '{"type":"exit","code":3}\n'`+"\n")
	appCtx := &appContext{cfg: shellConfig(t)}

	code, err := runOnce(stdcontext.Background(), script, appCtx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 3 {
		t.Fatalf("exit code: %d", code)
	}
}

func TestRunOnceAnswersHello(t *testing.T) {
	// The script exits 0 only if the launcher answers its hello with an ack.
	script := writeScript(t, strings.Join([]string{
		`printf '{"type":"hello","protocol":1,"sdkVersion":"test","capabilities":["submitJson"]}\n'`,
		`read -r line`,
		`case "$line" in *helloAck*) exit 0;; *) exit 9;; esac`,
	}, "\n")+"\n")
	appCtx := &appContext{cfg: shellConfig(t)}

	code, err := runOnce(stdcontext.Background(), script, appCtx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Fatalf("handshake not acknowledged, exit code %d", code)
	}
}

func TestRunOnceKillsOnContextCancel(t *testing.T) {
	script := writeScript(t, "sleep 30\n")
	appCtx := &appContext{cfg: shellConfig(t)}

	ctx, cancel := stdcontext.WithTimeout(stdcontext.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	code, err := runOnce(ctx, script, appCtx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != -1 {
		t.Fatalf("expected signal exit, got code %d", code)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("cancellation took %v", elapsed)
	}
}

func TestRunCommandRequiresScriptArg(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root, _ := newRootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"run"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error without a script argument")
	}
}

func TestDoctorReportsRuntimes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root, _ := newRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"doctor"})
	if err := root.Execute(); err != nil {
		t.Fatalf("doctor: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"bun", "node", "sdk"} {
		if !strings.Contains(out, want) {
			t.Fatalf("doctor output missing %q:\n%s", want, out)
		}
	}
}
