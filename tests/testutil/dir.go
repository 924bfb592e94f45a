// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"mailscribe/internal/model"
)

// DiscardLogger returns a logger whose output goes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DataDir creates a temporary data directory with an empty conversations
// subdirectory. The directory is removed when the test finishes.
func DataDir(t *testing.T) model.Paths {
	t.Helper()

	paths := model.Paths{Data: t.TempDir()}
	if err := os.MkdirAll(paths.Conversations(), 0o755); err != nil {
		t.Fatalf("creating conversations directory: %v", err)
	}
	return paths
}

// WriteFile writes a file under dir, creating parents as needed, and
// returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
