// Package runner locates a runtime for a script, spawns it in its own
// process group with a scrubbed environment, and hands back a session
// speaking the JSONL protocol over the child's stdio.
package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Paintersrp/skit/internal/config"
)

// ExecuteInteractive launches a script and returns its live session. The
// runtime fallback chain runs strictly in order; the first successful spawn
// wins, and exhaustion yields a *ResolutionError naming every failure.
func ExecuteInteractive(scriptPath string, cfg *config.Config) (*Session, error) {
	resolved, err := resolveScript(scriptPath, cfg)
	if err != nil {
		return nil, err
	}

	attempts, err := attemptsFor(resolved, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}

	log.Debug("launching script", "script", resolved, "attempts", len(attempts))
	return runFallback(resolved, attempts, func(att Attempt) (*Session, error) {
		return spawn(att, resolved, cfg)
	})
}

// resolveScript makes the script path absolute, resolving relative paths
// against the configured scripts directory when one is set.
func resolveScript(scriptPath string, cfg *config.Config) (string, error) {
	path := scriptPath
	if !filepath.IsAbs(path) && cfg.ScriptsDir != "" {
		candidate := filepath.Join(cfg.ScriptsDir, path)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("script %s: %w", abs, err)
	}
	return abs, nil
}
