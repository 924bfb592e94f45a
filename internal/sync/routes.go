package sync

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mailscribe/internal/markdown"
)

// ApplyRoutes copies every conversation file under convDir whose labels
// match a routing rule into the rule's destination directories. Existing
// copies are overwritten so label and message additions propagate.
// It returns the number of copies made and the number of files skipped
// because they did not parse.
func ApplyRoutes(convDir string, routes map[string][]string, log *slog.Logger) (copied, skipped int, err error) {
	entries, err := os.ReadDir(convDir)
	if err != nil {
		return 0, 0, fmt.Errorf("reading %s: %w", convDir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(convDir, e.Name())
		text, err := os.ReadFile(path)
		if err != nil {
			return copied, skipped, fmt.Errorf("reading %s: %w", path, err)
		}
		thread, ok := markdown.Decode(string(text))
		if !ok {
			skipped++
			continue
		}
		for _, label := range thread.Labels {
			for _, dir := range routes[strings.ToLower(label)] {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return copied, skipped, fmt.Errorf("creating %s: %w", dir, err)
				}
				dest := filepath.Join(dir, e.Name())
				if err := os.WriteFile(dest, text, 0o644); err != nil {
					return copied, skipped, fmt.Errorf("writing %s: %w", dest, err)
				}
				log.Debug("routed conversation", "file", e.Name(), "dest", dir)
				copied++
			}
		}
	}
	return copied, skipped, nil
}
