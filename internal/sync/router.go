package sync

import (
	"path/filepath"
	"sort"
	"strings"
)

// BuildRoutes expands the configured routing table into destination
// directories per label for one account.
//
// A routing key is either a bare label ("newsletters") matching every
// account, or "account:label" matching one. Viper lowercases the keys on
// load, so matching is case-insensitive. Each destination names a mailbox
// directory under the data root; threads land in its conversations
// subdirectory. An empty accountName matches every scoped key, which the
// batch router uses to apply all rules at once.
func BuildRoutes(routing map[string][]string, dataDir, accountName string) map[string][]string {
	routes := make(map[string][]string)
	account := strings.ToLower(accountName)
	for key, targets := range routing {
		label := strings.ToLower(key)
		if scope, rest, ok := strings.Cut(label, ":"); ok {
			if account != "" && scope != account {
				continue
			}
			label = rest
		}
		for _, target := range targets {
			routes[label] = append(routes[label], filepath.Join(dataDir, target, "conversations"))
		}
	}
	return routes
}

// combineLabels merges an account's configured labels with the labels the
// routing table mentions, preserving configuration order and appending
// route-only labels in sorted order.
func combineLabels(configured []string, routes map[string][]string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, label := range configured {
		key := strings.ToLower(label)
		if !seen[key] {
			seen[key] = true
			labels = append(labels, label)
		}
	}
	routed := make([]string, 0, len(routes))
	for label := range routes {
		routed = append(routed, label)
	}
	sort.Strings(routed)
	for _, label := range routed {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}
