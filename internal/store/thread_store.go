// Package store persists the sync artifacts in the data directory:
// conversation Markdown files, the cursor file, and the generated
// manifest.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"mailscribe/internal/markdown"
	"mailscribe/internal/model"
)

// threadIDPattern locates the thread key inside an existing file without a
// full decode.
var threadIDPattern = regexp.MustCompile(`(?m)^\*\*Thread ID\*\*:\s*(.+)$`)

// ThreadStore merges fetched messages into conversation files under a
// directory.
type ThreadStore struct {
	Log *slog.Logger
}

// Merge folds one message into the thread file for threadKey under dir,
// creating the directory and file as needed. It returns the path of the
// file it wrote.
//
// An existing file that no longer parses is replaced by a fresh thread
// holding only the new message; its path is reused. A message whose sender
// and date are already present is dropped, and the existing file is
// rewritten as-is so its labels and accounts still pick up additions.
func (s *ThreadStore) Merge(dir, label, account string, msg model.Message, threadKey string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	existing := findThreadFile(dir, threadKey)
	var thread *model.Thread
	if existing != "" {
		text, err := os.ReadFile(existing)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", existing, err)
		}
		var ok bool
		thread, ok = markdown.Decode(string(text))
		if !ok {
			s.Log.Warn("conversation file does not parse, rebuilding it", "file", filepath.Base(existing))
			thread = &model.Thread{ID: threadKey, Subject: msg.Subject}
		}
	} else {
		thread = &model.Thread{ID: threadKey, Subject: msg.Subject}
	}

	thread.AddLabel(label)
	thread.AddAccount(account)

	if thread.HasMessage(msg.From, msg.Date) {
		if existing != "" {
			if err := s.write(existing, thread); err != nil {
				return "", err
			}
		}
		return existing, nil
	}

	thread.Messages = append(thread.Messages, msg)
	sort.SliceStable(thread.Messages, func(i, j int) bool {
		return markdown.ParseDate(thread.Messages[i].Date).Before(markdown.ParseDate(thread.Messages[j].Date))
	})
	thread.LastDate = thread.Messages[len(thread.Messages)-1].Date

	path := existing
	if path == "" {
		path = filepath.Join(dir, uniqueSlug(dir, markdown.Slugify(thread.Subject))+".md")
	}
	if err := s.write(path, thread); err != nil {
		return "", err
	}
	return path, nil
}

func (s *ThreadStore) write(path string, t *model.Thread) error {
	if err := os.WriteFile(path, []byte(markdown.Encode(t)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	stampMtime(path, t.LastDate)
	return nil
}

// stampMtime sets the file's modification time to the thread's last
// message date so directory listings sort by activity. Failures and dates
// that do not parse past the epoch are ignored.
func stampMtime(path, date string) {
	t := markdown.ParseDate(date)
	if t.Year() <= 1970 {
		return
	}
	_ = os.Chtimes(path, t, t)
}

// findThreadFile scans dir for the Markdown file whose Thread ID metadata
// equals threadKey. It returns "" when no file matches.
func findThreadFile(dir, threadKey string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		text, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if m := threadIDPattern.FindSubmatch(text); m != nil && strings.TrimSpace(string(m[1])) == threadKey {
			return path
		}
	}
	return ""
}

// uniqueSlug returns slug, or the first numbered variant (slug-2, slug-3,
// ...) whose .md file does not exist in dir yet.
func uniqueSlug(dir, slug string) string {
	if _, err := os.Stat(filepath.Join(dir, slug+".md")); err != nil {
		return slug
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", slug, n)
		if _, err := os.Stat(filepath.Join(dir, candidate+".md")); err != nil {
			return candidate
		}
	}
}
