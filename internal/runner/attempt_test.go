package runner

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Paintersrp/skit/internal/config"
)

func TestAttemptChainTypeScript(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	attempts, err := attemptsFor("/tmp/demo.ts", config.Default())
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempt count: %d", len(attempts))
	}
	if attempts[0].Label != "bun (sdk preload)" {
		t.Fatalf("first attempt: %q", attempts[0].Label)
	}
	if attempts[0].Args[0] != "run" || attempts[0].Args[1] != "--preload" {
		t.Fatalf("preload args: %v", attempts[0].Args)
	}
	if attempts[0].Args[len(attempts[0].Args)-1] != "/tmp/demo.ts" {
		t.Fatalf("script not last arg: %v", attempts[0].Args)
	}
	if attempts[1].Label != "bun" {
		t.Fatalf("second attempt: %q", attempts[1].Label)
	}
	for _, arg := range attempts[1].Args {
		if arg == "--preload" {
			t.Fatalf("fallback attempt carries preload: %v", attempts[1].Args)
		}
	}
}

func TestAttemptChainJavaScript(t *testing.T) {
	attempts, err := attemptsFor("/tmp/demo.js", config.Default())
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Name != "node" {
		t.Fatalf("attempts: %+v", attempts)
	}
	if attempts[0].Args[len(attempts[0].Args)-1] != "/tmp/demo.js" {
		t.Fatalf("script not last arg: %v", attempts[0].Args)
	}
}

func TestAttemptChainRespectsBinaryOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Runtimes.Node = "/opt/custom/node-canary"
	attempts, err := attemptsFor("/tmp/demo.js", cfg)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if attempts[0].Cmd != "/opt/custom/node-canary" {
		t.Fatalf("override lost: %q", attempts[0].Cmd)
	}
}

func TestAttemptChainRejectsUnknownExtension(t *testing.T) {
	if _, err := attemptsFor("/tmp/demo.py", config.Default()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestRunFallbackStopsAtFirstSuccess(t *testing.T) {
	attempts := []Attempt{
		{Name: "bun", Label: "bun (sdk preload)"},
		{Name: "bun", Label: "bun"},
		{Name: "node", Label: "node"},
	}
	var tried []string
	want := &Session{}
	sess, err := runFallback("/tmp/demo.ts", attempts, func(att Attempt) (*Session, error) {
		tried = append(tried, att.Label)
		if att.Label == "bun" {
			return want, nil
		}
		return nil, errors.New("spawn failed")
	})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if sess != want {
		t.Fatal("wrong session returned")
	}
	if len(tried) != 2 || tried[0] != "bun (sdk preload)" || tried[1] != "bun" {
		t.Fatalf("attempt order: %v", tried)
	}
}

func TestRunFallbackAggregatesFailures(t *testing.T) {
	attempts := []Attempt{
		{Name: "bun", Label: "bun (sdk preload)"},
		{Name: "bun", Label: "bun"},
	}
	_, err := runFallback("/tmp/demo.ts", attempts, func(att Attempt) (*Session, error) {
		return nil, fmt.Errorf("exec %q: not found", att.Label)
	})
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("error type: %T", err)
	}
	if len(re.Failures) != 2 {
		t.Fatalf("failure count: %d", len(re.Failures))
	}
	msg := err.Error()
	if !strings.Contains(msg, "/tmp/demo.ts") {
		t.Fatalf("script missing from message: %s", msg)
	}
	if !strings.Contains(msg, "bun (sdk preload)") || !strings.Contains(msg, "is bun installed?") {
		t.Fatalf("message lacks detail: %s", msg)
	}
}
