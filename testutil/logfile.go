// Package testutil provides shared helpers for tests that touch the
// appointment log file. Every path lives under t.TempDir(), so tests never
// write into the working directory and need no manual cleanup.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// LogPath returns a fresh appointment log path inside a per-test temporary
// directory. The file itself does not exist yet.
func LogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "appointments.txt")
}

// UnwritableLogPath returns a path whose parent directory does not exist, so
// opening it for append fails regardless of the user running the tests
// (permission bits are ignored for root, a missing directory is not).
func UnwritableLogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing", "appointments.txt")
}

// ReadLog returns the full contents of the log at path, failing the test if
// it cannot be read.
func ReadLog(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("testutil.ReadLog: %v", err)
	}
	return string(b)
}

// WriteLog seeds the log at path with raw content, for parser tests.
func WriteLog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil.WriteLog: %v", err)
	}
}
