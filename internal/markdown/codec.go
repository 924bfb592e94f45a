// Package markdown renders conversation threads to their Markdown file
// form and parses them back. The layout is fixed: an H1 subject, a block
// of **Key**: value metadata lines, then one "## sender — date" section
// per message, separated by horizontal rules.
package markdown

import (
	"regexp"
	"strings"

	"mailscribe/internal/model"
)

var (
	metaPattern    = regexp.MustCompile(`(?m)^\*\*(.+?)\*\*:\s*(.+)$`)
	messagePattern = regexp.MustCompile(`^## (.+?) — (.+)$`)
)

// Encode renders a thread as Markdown. The output always ends with a
// newline and message bodies are stored trimmed.
func Encode(t *model.Thread) string {
	lines := []string{
		"# " + t.Subject,
		"",
		"**Labels**: " + strings.Join(t.Labels, ", "),
		"**Accounts**: " + strings.Join(t.Accounts, ", "),
		"**Thread ID**: " + t.ID,
		"**Last updated**: " + t.LastDate,
		"",
	}
	for _, m := range t.Messages {
		lines = append(lines,
			"---",
			"",
			"## "+m.From+" — "+m.Date,
			"",
			strings.TrimSpace(m.Body),
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// Decode parses a conversation file back into a thread. It reports false
// when the text has no H1 heading or the heading is empty; such files are
// not threads.
//
// Decoding is deliberately lenient: metadata lines may appear anywhere,
// unknown metadata keys are ignored, and a file with no message sections
// still yields a thread.
func Decode(text string) (*model.Thread, bool) {
	lines := strings.Split(text, "\n")

	subject := ""
	found := false
	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			subject = strings.TrimSpace(rest)
			found = true
			break
		}
	}
	if !found || subject == "" {
		return nil, false
	}

	meta := make(map[string]string)
	for _, m := range metaPattern.FindAllStringSubmatch(text, -1) {
		meta[m[1]] = strings.TrimSpace(m[2])
	}

	key := ThreadKey(subject)
	var messages []model.Message
	var from, date string
	var body []string
	inMessage := false
	flush := func() {
		if !inMessage {
			return
		}
		messages = append(messages, model.Message{
			ThreadID: key,
			From:     from,
			Date:     date,
			Subject:  subject,
			Body:     strings.TrimSpace(strings.Join(body, "\n")),
		})
	}
	for _, line := range lines {
		if m := messagePattern.FindStringSubmatch(line); m != nil {
			flush()
			from, date = m[1], m[2]
			body = nil
			inMessage = true
			continue
		}
		if inMessage && strings.TrimSpace(line) != "---" {
			body = append(body, line)
		}
	}
	flush()

	return &model.Thread{
		ID:       meta["Thread ID"],
		Subject:  subject,
		Labels:   splitList(meta["Labels"]),
		Accounts: splitList(meta["Accounts"]),
		Messages: messages,
		LastDate: meta["Last updated"],
	}, true
}

// splitList parses a comma-separated metadata value, dropping empty
// entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
