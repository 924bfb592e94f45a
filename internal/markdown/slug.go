package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxSlugLen = 60

var (
	slugPattern        = regexp.MustCompile(`[^a-z0-9]+`)
	replyPrefixPattern = regexp.MustCompile(`^(re|fwd?):\s*`)
)

// Slugify derives a file name stem from a subject: lowercased, runs of
// non-alphanumeric characters collapsed to single hyphens, trimmed, and
// capped at 60 bytes. An empty result becomes "untitled".
func Slugify(text string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		end := maxSlugLen
		for end > 0 && !utf8.RuneStart(slug[end]) {
			end--
		}
		slug = slug[:end]
	}
	if slug == "" {
		return "untitled"
	}
	return slug
}

// ThreadKey normalizes a subject into the key that groups messages into
// one thread: trimmed, lowercased, with a single leading reply or forward
// marker removed.
func ThreadKey(subject string) string {
	key := strings.ToLower(strings.TrimSpace(subject))
	return replyPrefixPattern.ReplaceAllString(key, "")
}
