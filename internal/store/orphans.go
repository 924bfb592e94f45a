package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// CleanOrphans removes Markdown files under convDir that a full sync did
// not touch. Such files belong to threads the server no longer returns.
// Files that are not conversation Markdown are left alone, as are
// subdirectories.
func CleanOrphans(convDir string, touched map[string]bool, log *slog.Logger) error {
	entries, err := os.ReadDir(convDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", convDir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(convDir, e.Name())
		if touched[path] {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing orphan %s: %w", path, err)
		}
		log.Info("removed orphaned conversation", "file", e.Name())
	}
	return nil
}
