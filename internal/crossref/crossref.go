// Package crossref matches conversation senders against the configured
// address book.
package crossref

import (
	"regexp"
	"strings"

	"mailscribe/internal/model"
)

// addressPattern matches the address inside an angle-bracket pair, as in
// "Alice Smith <alice@example.com>".
var addressPattern = regexp.MustCompile(`<([^>]+)>`)

// Address extracts the bare e-mail address from a From header value,
// lowercased. A value without angle brackets is returned whole.
func Address(from string) string {
	if m := addressPattern.FindStringSubmatch(from); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	return strings.ToLower(strings.TrimSpace(from))
}

// MatchContacts returns the names of the contacts whose addresses appear
// among the given senders. Each name appears once, in order of first
// appearance. When several contacts claim the same address, the last one
// configured wins.
func MatchContacts(senders []string, contacts []model.Contact) []string {
	byAddress := make(map[string]string)
	for _, c := range contacts {
		for _, email := range c.Emails {
			byAddress[strings.ToLower(email)] = c.Name
		}
	}

	seen := make(map[string]bool)
	var names []string
	for _, from := range senders {
		name, ok := byAddress[Address(from)]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
