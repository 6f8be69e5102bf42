// Package sdk provisions the TypeScript preload script that gives scripts
// their global prompt helpers. The embedded copy is the source of truth for
// installed builds; development trees fall back to the checked-in file.
package sdk

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

//go:embed assets/skit-sdk.ts
var embedded []byte

// FileName is the on-disk name of the SDK preload script.
const FileName = "skit-sdk.ts"

var (
	once       sync.Once
	cachedPath string
	cachedErr  error
)

// Path resolves the SDK script, in order: an already-extracted copy under
// ~/.skit/sdk, a fresh extraction of the embedded copy, a file next to the
// running executable, and finally scripts/skit-sdk.ts in the working tree.
// The result is resolved once per process; concurrent first callers converge
// on a single extraction.
func Path() (string, error) {
	once.Do(func() {
		cachedPath, cachedErr = resolve()
	})
	return cachedPath, cachedErr
}

func resolve() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		installed := filepath.Join(home, ".skit", "sdk", FileName)
		if fileExists(installed) {
			return installed, nil
		}
		if err := extractTo(installed); err == nil {
			return installed, nil
		} else {
			log.Debug("sdk extraction failed, falling back", "path", installed, "err", err)
		}
	}

	if exe, err := os.Executable(); err == nil {
		beside := filepath.Join(filepath.Dir(exe), FileName)
		if fileExists(beside) {
			return beside, nil
		}
	}

	dev := filepath.Join("scripts", FileName)
	if fileExists(dev) {
		abs, err := filepath.Abs(dev)
		if err != nil {
			return dev, nil
		}
		return abs, nil
	}

	return "", fmt.Errorf("sdk script %s not found in any location", FileName)
}

// extractTo writes the embedded SDK atomically: temp file in the target
// directory, then rename, so a concurrent reader never sees a partial file.
func extractTo(target string) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sdk dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp sdk file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(embedded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write sdk file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close sdk file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("install sdk file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
