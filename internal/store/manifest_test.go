package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mailscribe/internal/model"
	"mailscribe/tests/testutil"
)

func TestWriteManifest(t *testing.T) {
	paths := testutil.DataDir(t)
	s := testStore()

	a := msg("Alice <alice@test.com>", "Mon, 10 Feb 2025 10:00:00 +0000", "Planning", "let's plan")
	if _, err := s.Merge(paths.Conversations(), "inbox", "work", a, a.ThreadID); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	b := msg("Unknown <nobody@test.com>", "Mon, 10 Feb 2025 11:00:00 +0000", "Newsletter", "read me")
	if _, err := s.Merge(paths.Conversations(), "newsletters", "work", b, b.ThreadID); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	contacts := []model.Contact{{Name: "Alice", Emails: []string{"alice@test.com"}}}
	if err := WriteManifest(paths.Conversations(), paths.ManifestFile(), contacts, testutil.DiscardLogger()); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	var manifest Manifest
	if err := toml.Unmarshal([]byte(testutil.ReadFile(t, paths.ManifestFile())), &manifest); err != nil {
		t.Fatalf("manifest does not parse: %v", err)
	}
	if len(manifest.Threads) != 2 {
		t.Fatalf("threads = %d, want 2", len(manifest.Threads))
	}

	entry, ok := manifest.Threads["planning"]
	if !ok {
		t.Fatalf("manifest missing planning entry: %v", manifest.Threads)
	}
	if entry.Subject != "Planning" {
		t.Errorf("subject = %q", entry.Subject)
	}
	if entry.ThreadID != "planning" {
		t.Errorf("thread id = %q", entry.ThreadID)
	}
	if len(entry.Labels) != 1 || entry.Labels[0] != "inbox" {
		t.Errorf("labels = %v", entry.Labels)
	}
	if entry.LastUpdated != "Mon, 10 Feb 2025 10:00:00 +0000" {
		t.Errorf("last updated = %q", entry.LastUpdated)
	}
	if len(entry.Contacts) != 1 || entry.Contacts[0] != "Alice" {
		t.Errorf("contacts = %v, want [Alice]", entry.Contacts)
	}

	newsletter := manifest.Threads["newsletter"]
	if len(newsletter.Contacts) != 0 {
		t.Errorf("newsletter contacts = %v, want none", newsletter.Contacts)
	}
}

func TestWriteManifestSkipsUnparseableFiles(t *testing.T) {
	paths := testutil.DataDir(t)
	s := testStore()

	m := msg("Alice <alice@test.com>", "Mon, 10 Feb 2025 10:00:00 +0000", "Good", "fine")
	if _, err := s.Merge(paths.Conversations(), "inbox", "work", m, m.ThreadID); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	testutil.WriteFile(t, paths.Conversations(), "junk.md", "no heading at all\n")

	if err := WriteManifest(paths.Conversations(), paths.ManifestFile(), nil, testutil.DiscardLogger()); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	var manifest Manifest
	if err := toml.Unmarshal([]byte(testutil.ReadFile(t, paths.ManifestFile())), &manifest); err != nil {
		t.Fatalf("manifest does not parse: %v", err)
	}
	if len(manifest.Threads) != 1 {
		t.Errorf("threads = %d, want 1", len(manifest.Threads))
	}
}

func TestWriteManifestMissingDirWritesNothing(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.toml")
	err := WriteManifest(filepath.Join(dir, "conversations"), manifestPath, nil, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	if _, err := os.Stat(manifestPath); !os.IsNotExist(err) {
		t.Error("manifest should not be written without a conversations directory")
	}
}

func TestWriteManifestUsesThreadsTable(t *testing.T) {
	paths := testutil.DataDir(t)
	s := testStore()

	m := msg("Alice <alice@test.com>", "Mon, 10 Feb 2025 10:00:00 +0000", "Shape Check", "x")
	if _, err := s.Merge(paths.Conversations(), "inbox", "work", m, m.ThreadID); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if err := WriteManifest(paths.Conversations(), paths.ManifestFile(), nil, testutil.DiscardLogger()); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	raw := testutil.ReadFile(t, paths.ManifestFile())
	if !strings.Contains(raw, "[threads.shape-check]") {
		t.Errorf("manifest should nest entries under the threads table:\n%s", raw)
	}
}
