package sync

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuildRoutesBareLabel(t *testing.T) {
	routes := BuildRoutes(map[string][]string{"inbox": {"team"}}, "/data", "work")

	want := map[string][]string{"inbox": {filepath.Join("/data", "team", "conversations")}}
	if !reflect.DeepEqual(routes, want) {
		t.Errorf("routes = %v, want %v", routes, want)
	}
}

func TestBuildRoutesScopedToAccount(t *testing.T) {
	routing := map[string][]string{
		"work:receipts":     {"money"},
		"personal:receipts": {"household"},
	}

	routes := BuildRoutes(routing, "/data", "work")
	want := map[string][]string{"receipts": {filepath.Join("/data", "money", "conversations")}}
	if !reflect.DeepEqual(routes, want) {
		t.Errorf("routes = %v, want %v", routes, want)
	}
}

func TestBuildRoutesEmptyAccountMatchesEveryScope(t *testing.T) {
	routing := map[string][]string{
		"work:receipts": {"money"},
		"inbox":         {"team"},
	}

	routes := BuildRoutes(routing, "/data", "")
	if len(routes) != 2 {
		t.Fatalf("routes = %v, want both labels", routes)
	}
	if len(routes["receipts"]) != 1 || len(routes["inbox"]) != 1 {
		t.Errorf("routes = %v", routes)
	}
}

func TestBuildRoutesMultipleTargets(t *testing.T) {
	routes := BuildRoutes(map[string][]string{"inbox": {"team", "archive"}}, "/data", "work")

	if len(routes["inbox"]) != 2 {
		t.Fatalf("targets = %v, want 2", routes["inbox"])
	}
}

func TestBuildRoutesLowercasesKeys(t *testing.T) {
	routes := BuildRoutes(map[string][]string{"Work:Receipts": {"money"}}, "/data", "Work")

	if _, ok := routes["receipts"]; !ok {
		t.Errorf("routes = %v, want the lowercase label key", routes)
	}
}

func TestCombineLabels(t *testing.T) {
	routes := map[string][]string{
		"zebra":    {"/z"},
		"archive":  {"/a"},
		"inbox":    {"/i"},
		"receipts": {"/r"},
	}

	labels := combineLabels([]string{"INBOX", "Receipts"}, routes)
	want := []string{"INBOX", "Receipts", "archive", "zebra"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestCombineLabelsDropsDuplicates(t *testing.T) {
	labels := combineLabels([]string{"inbox", "Inbox", "inbox"}, nil)

	if len(labels) != 1 || labels[0] != "inbox" {
		t.Errorf("labels = %v, want [inbox]", labels)
	}
}
