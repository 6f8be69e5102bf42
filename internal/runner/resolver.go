package runner

import (
	"os"
	"path/filepath"
)

// wellKnownBinDirs are searched in order when a runtime binary is not
// already an absolute path. The list covers the common install locations of
// bun, node and their version managers. Entries beginning with "~" resolve
// against the user's home directory.
var wellKnownBinDirs = []string{
	"~/.bun/bin",
	"~/Library/pnpm",
	"~/.nvm/current/bin",
	"~/.volta/bin",
	"~/.local/bin",
	"~/bin",
	"/opt/homebrew/bin",
	"/usr/local/bin",
	"/usr/bin",
	"/bin",
}

// FindExecutable searches the well-known directories for a binary. The first
// existing file wins. A miss is not an error: the caller passes the bare name
// along and lets the spawn fall back to a PATH lookup.
func FindExecutable(name string) (string, bool) {
	home, homeErr := os.UserHomeDir()
	for _, dir := range wellKnownBinDirs {
		if len(dir) > 0 && dir[0] == '~' {
			if homeErr != nil {
				continue
			}
			dir = filepath.Join(home, dir[1:])
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// resolveRuntime maps a configured runtime binary to a concrete path when
// one of the well-known directories has it, and otherwise leaves the name
// for PATH resolution at spawn time.
func resolveRuntime(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if path, ok := FindExecutable(name); ok {
		return path
	}
	return name
}
