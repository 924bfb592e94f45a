package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	senderPattern    = regexp.MustCompile(`(?m)^## (.+?) \x{2014}`)
	lastDatePattern  = regexp.MustCompile(`\*\*Last updated\*\*:\s*(\S+)`)
	labelLinePattern = regexp.MustCompile(`\*\*Labels?\*\*:\s*(.+)`)
)

// UnansweredThread is a conversation whose most recent message did not
// come from the owner.
type UnansweredThread struct {
	File   string
	Labels string
	Sender string
	Date   string
}

// FindUnanswered walks every Markdown file under root, including routed
// copies in nested mailbox directories, and reports the threads whose last
// sender does not mention owner (case-insensitive substring match).
// Results are ordered newest first by the recorded update date.
//
// The scan works on raw text rather than the full codec so that partially
// written or legacy files still show up.
func FindUnanswered(root, owner string) ([]UnansweredThread, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(files)

	ownerLower := strings.ToLower(owner)
	var out []UnansweredThread
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		text := string(data)
		sender := lastSender(text)
		if sender == "" || strings.Contains(strings.ToLower(sender), ownerLower) {
			continue
		}
		labels := firstCapture(labelLinePattern, text)
		if labels == "" {
			labels = filepath.Base(filepath.Dir(file))
		}
		date := firstCapture(lastDatePattern, text)
		if date == "" {
			date = "unknown"
		}
		out = append(out, UnansweredThread{
			File:   filepath.Base(file),
			Labels: labels,
			Sender: sender,
			Date:   date,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func lastSender(text string) string {
	matches := senderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return strings.TrimSpace(matches[len(matches)-1][1])
}

func firstCapture(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
