package model

import "testing"

func TestAddLabel(t *testing.T) {
	thread := &Thread{}
	thread.AddLabel("inbox")
	thread.AddLabel("inbox")
	thread.AddLabel("")
	thread.AddLabel("receipts")

	if len(thread.Labels) != 2 || thread.Labels[0] != "inbox" || thread.Labels[1] != "receipts" {
		t.Errorf("Labels = %v, want [inbox receipts]", thread.Labels)
	}
}

func TestAddAccount(t *testing.T) {
	thread := &Thread{}
	thread.AddAccount("work")
	thread.AddAccount("")
	thread.AddAccount("work")

	if len(thread.Accounts) != 1 || thread.Accounts[0] != "work" {
		t.Errorf("Accounts = %v, want [work]", thread.Accounts)
	}
}

func TestHasMessage(t *testing.T) {
	thread := &Thread{Messages: []Message{
		{From: "Alice <alice@test.com>", Date: "Mon, 10 Feb 2025 09:00:00 +0000"},
	}}

	if !thread.HasMessage("Alice <alice@test.com>", "Mon, 10 Feb 2025 09:00:00 +0000") {
		t.Error("existing message not found")
	}
	if thread.HasMessage("Alice <alice@test.com>", "Tue, 11 Feb 2025 09:00:00 +0000") {
		t.Error("same sender on a different date should not match")
	}
	if thread.HasMessage("Bob <bob@test.com>", "Mon, 10 Feb 2025 09:00:00 +0000") {
		t.Error("different sender on the same date should not match")
	}
}

func TestSyncStateCursors(t *testing.T) {
	state := &SyncState{}

	if _, ok := state.Label("work", "inbox"); ok {
		t.Error("empty state should have no cursor")
	}

	state.SetLabel("work", "inbox", LabelState{UIDValidity: 7, LastUID: 41})
	state.SetLabel("work", "sent", LabelState{UIDValidity: 7, LastUID: 3})

	ls, ok := state.Label("work", "inbox")
	if !ok || ls.UIDValidity != 7 || ls.LastUID != 41 {
		t.Errorf("cursor = %+v, ok=%v", ls, ok)
	}

	state.SetLabel("work", "inbox", LabelState{UIDValidity: 8, LastUID: 2})
	if ls, _ := state.Label("work", "inbox"); ls.UIDValidity != 8 || ls.LastUID != 2 {
		t.Errorf("cursor = %+v, want the overwrite", ls)
	}
	if ls, _ := state.Label("work", "sent"); ls.LastUID != 3 {
		t.Errorf("sibling cursor = %+v, want it untouched", ls)
	}
}
