package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// FakeCargoOpts configures the script written by FakeCargo.
type FakeCargoOpts struct {
	// FailOn is the cargo subcommand (check, update, bench, metadata) that
	// exits with status 101. Empty means every subcommand succeeds.
	FailOn string
	// Stderr is written to standard error by the failing subcommand.
	Stderr string
	// Metadata is printed by `metadata`. Defaults to a minimal JSON document.
	Metadata string
}

// FakeCargo writes an executable shell script standing in for cargo.
// Every invocation appends its arguments as one line to the returned log file.
// Tests using it are skipped on Windows.
func FakeCargo(t *testing.T, opts FakeCargoOpts) (bin, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cargo script needs a POSIX shell")
	}
	dir := t.TempDir()
	bin = filepath.Join(dir, "cargo")
	logPath = filepath.Join(dir, "invocations.log")

	stderrPath := filepath.Join(dir, "stderr.txt")
	writeFile(t, stderrPath, opts.Stderr, 0644)

	metadata := opts.Metadata
	if metadata == "" {
		metadata = `{"packages":[],"version":1}`
	}
	metadataPath := filepath.Join(dir, "metadata.json")
	writeFile(t, metadataPath, metadata, 0644)

	script := fmt.Sprintf(`#!/bin/sh
echo "$*" >> %[1]q
if [ "$1" = "--version" ]; then
  echo "cargo 1.80.0 (fake)"
  exit 0
fi
if [ "$1" = %[2]q ]; then
  cat %[3]q >&2
  exit 101
fi
if [ "$1" = "metadata" ]; then
  cat %[4]q
fi
exit 0
`, logPath, opts.FailOn, stderrPath, metadataPath)
	writeFile(t, bin, script, 0755)
	return bin, logPath
}

// Invocations returns the argument lines logged by a FakeCargo script.
func Invocations(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath) //nolint:gosec // test log file
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading fake cargo log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), perm); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}
}
