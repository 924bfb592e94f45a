package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"mailscribe/internal/crossref"
	"mailscribe/internal/markdown"
	"mailscribe/internal/model"
)

// ManifestEntry is one thread's row in manifest.toml.
type ManifestEntry struct {
	Subject     string   `toml:"subject"`
	ThreadID    string   `toml:"thread_id"`
	Labels      []string `toml:"labels"`
	Accounts    []string `toml:"accounts"`
	LastUpdated string   `toml:"last_updated"`
	Contacts    []string `toml:"contacts"`
}

// Manifest is the generated thread index, keyed by file stem.
type Manifest struct {
	Threads map[string]ManifestEntry `toml:"threads"`
}

// WriteManifest rebuilds the manifest from every conversation file under
// convDir and writes it to path. Senders are matched against contacts to
// fill each entry's contact list. A missing conversations directory writes
// nothing; a thread file that does not parse is skipped with a warning.
func WriteManifest(convDir, path string, contacts []model.Contact, log *slog.Logger) error {
	entries, err := os.ReadDir(convDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", convDir, err)
	}

	threads := make(map[string]ManifestEntry)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		file := filepath.Join(convDir, e.Name())
		text, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		thread, ok := markdown.Decode(string(text))
		if !ok {
			log.Warn("skipping conversation file that does not parse", "file", e.Name())
			continue
		}
		senders := make([]string, 0, len(thread.Messages))
		for _, m := range thread.Messages {
			senders = append(senders, m.From)
		}
		stem := strings.TrimSuffix(e.Name(), ".md")
		threads[stem] = ManifestEntry{
			Subject:     thread.Subject,
			ThreadID:    thread.ID,
			Labels:      emptyIfNil(thread.Labels),
			Accounts:    emptyIfNil(thread.Accounts),
			LastUpdated: thread.LastDate,
			Contacts:    emptyIfNil(crossref.MatchContacts(senders, contacts)),
		}
	}

	data, err := toml.Marshal(Manifest{Threads: threads})
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	log.Info("wrote manifest", "threads", len(threads))
	return nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
