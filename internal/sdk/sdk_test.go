package sdk

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestPathExtractsOnceUnderConcurrency(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	const callers = 16
	paths := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], errs[i] = Path()
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if paths[i] != paths[0] {
			t.Fatalf("callers diverged: %q vs %q", paths[i], paths[0])
		}
	}

	want := filepath.Join(home, ".skit", "sdk", FileName)
	if paths[0] != want {
		t.Fatalf("resolved %q, want %q", paths[0], want)
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read extracted sdk: %v", err)
	}
	if !bytes.Equal(data, embedded) {
		t.Fatal("extracted sdk differs from embedded copy")
	}

	// No temp files may survive extraction.
	entries, err := os.ReadDir(filepath.Dir(paths[0]))
	if err != nil {
		t.Fatalf("read sdk dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files after extraction: %v", entries)
	}
}

func TestResolvePrefersInstalledCopy(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	installed := filepath.Join(home, ".skit", "sdk", FileName)
	if err := os.MkdirAll(filepath.Dir(installed), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(installed, []byte("// pinned local copy\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != installed {
		t.Fatalf("resolved %q, want installed copy %q", got, installed)
	}
	data, _ := os.ReadFile(got)
	if !bytes.Contains(data, []byte("pinned local copy")) {
		t.Fatal("installed copy was overwritten")
	}
}

func TestExtractToIsAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, FileName)
	if err := extractTo(target); err != nil {
		t.Fatalf("extract: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, embedded) {
		t.Fatal("content mismatch")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestEmbeddedAssetSpeaksProtocol(t *testing.T) {
	for _, marker := range []string{`"hello"`, "submitJson", "process.stdout.write"} {
		if !bytes.Contains(embedded, []byte(marker)) {
			t.Fatalf("embedded sdk missing %q", marker)
		}
	}
}
