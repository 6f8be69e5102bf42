package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Paintersrp/skit/internal/config"
	"github.com/Paintersrp/skit/internal/metrics"
	"github.com/Paintersrp/skit/internal/sdk"
)

// Attempt is one immutable candidate invocation in the runtime fallback
// chain. Args already include the script path.
type Attempt struct {
	// Name identifies the runtime ("bun", "node") for logs and metrics.
	Name string
	// Label distinguishes variants of the same runtime in diagnostics.
	Label string
	// Cmd is the executable: an absolute path when a well-known directory
	// had it, otherwise a bare name resolved via PATH at spawn time.
	Cmd string
	// Args are the full arguments, script path included.
	Args []string
}

func isTypeScript(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".tsx":
		return true
	}
	return false
}

func isJavaScript(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return true
	}
	return false
}

// attemptsFor builds the fallback chain for a script. TypeScript prefers bun
// with the SDK preloaded and falls back to bun without it; JavaScript runs
// on node. Config may rename the binaries but never reorders the chain.
func attemptsFor(scriptPath string, cfg *config.Config) ([]Attempt, error) {
	switch {
	case isTypeScript(scriptPath):
		bun := resolveRuntime(cfg.Runtimes.Bun)
		var attempts []Attempt
		if sdkPath, err := sdk.Path(); err == nil {
			attempts = append(attempts, Attempt{
				Name:  "bun",
				Label: "bun (sdk preload)",
				Cmd:   bun,
				Args:  []string{"run", "--preload", sdkPath, scriptPath},
			})
		} else {
			log.Debug("sdk unavailable, skipping preload attempt", "err", err)
		}
		attempts = append(attempts, Attempt{
			Name:  "bun",
			Label: "bun",
			Cmd:   bun,
			Args:  []string{"run", scriptPath},
		})
		return attempts, nil

	case isJavaScript(scriptPath):
		return []Attempt{{
			Name:  "node",
			Label: "node",
			Cmd:   resolveRuntime(cfg.Runtimes.Node),
			Args:  []string{scriptPath},
		}}, nil

	default:
		return nil, fmt.Errorf("unsupported script type %q", filepath.Ext(scriptPath))
	}
}

// AttemptFailure records one failed link of the fallback chain.
type AttemptFailure struct {
	Label string
	Err   error
}

// ResolutionError aggregates every failed attempt after the chain is
// exhausted.
type ResolutionError struct {
	ScriptPath string
	Failures   []AttemptFailure
}

func (e *ResolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no runtime could launch %s:", e.ScriptPath)
	seen := make(map[string]bool)
	var names []string
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  %s: %v", f.Label, f.Err)
		name := strings.Fields(f.Label)[0]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	fmt.Fprintf(&b, "\nis %s installed?", strings.Join(names, " or "))
	return b.String()
}

// runFallback tries attempts strictly in order. The first successful spawn
// wins; an earlier failure never stops later attempts.
func runFallback(scriptPath string, attempts []Attempt, spawnFn func(Attempt) (*Session, error)) (*Session, error) {
	var failures []AttemptFailure
	for _, att := range attempts {
		sess, err := spawnFn(att)
		metrics.RecordSpawnAttempt(att.Name, err == nil)
		if err == nil {
			return sess, nil
		}
		log.Debug("runtime attempt failed", "label", att.Label, "err", err)
		failures = append(failures, AttemptFailure{Label: att.Label, Err: err})
	}
	return nil, &ResolutionError{ScriptPath: scriptPath, Failures: failures}
}
